package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	quotedArgumentTemplateConstant          = "\"%s\""
	spaceCharacterConstant                  = " "
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	fallbackUnknownValueLabelConstant       = "unknown"
	gitOptionPrefixConstant                 = "-"
	gitDirectoryOptionPrefixConstant        = "--git-dir="
	gitWorkTreeOptionPrefixConstant         = "--work-tree="
	gitChangeDirectoryOptionConstant        = "-C"
	gitVersionOptionConstant                = "--version"
	gitBareFlagConstant                     = "--bare"
)

const (
	gitInitSubcommandNameConstant     = "init"
	gitCloneSubcommandNameConstant    = "clone"
	gitConfigSubcommandNameConstant   = "config"
	gitCheckoutSubcommandNameConstant = "checkout"
)

const (
	gitInitStartTemplateConstant             = "Creating bare repository at %s"
	gitInitSuccessTemplateConstant           = "Created bare repository at %s"
	gitInitFailureTemplateConstant           = "Failed to create bare repository at %s (exit code %d%s)"
	gitInitExecutionFailureTemplateConstant  = "Unable to create bare repository at %s: %s"
	gitCloneStartTemplateConstant            = "Cloning %s into %s"
	gitCloneSuccessTemplateConstant          = "Cloned %s into %s"
	gitCloneFailureTemplateConstant          = "Failed to clone %s into %s (exit code %d%s)"
	gitCloneExecutionFailureTemplateConstant = "Unable to clone %s into %s: %s"
	gitConfigStartTemplateConstant           = "Setting %s to %s for %s"
	gitConfigSuccessTemplateConstant         = "Set %s to %s for %s"
	gitConfigFailureTemplateConstant         = "Failed to set %s to %s for %s (exit code %d%s)"
	gitConfigExecutionFailureTemplate        = "Unable to set %s to %s for %s: %s"
	gitConfigReadStartTemplateConstant       = "Reading %s for %s"
	gitConfigReadSuccessTemplateConstant     = "%s for %s is %s"
	gitConfigReadFailureTemplateConstant     = "Failed to read %s for %s (exit code %d%s)"
	gitConfigReadExecutionFailureTemplate    = "Unable to read %s for %s: %s"
	gitCheckoutStartTemplateConstant         = "Checking out tracked files from %s into %s"
	gitCheckoutSuccessTemplateConstant       = "Checked out tracked files from %s into %s"
	gitCheckoutFailureTemplateConstant       = "Failed to check out tracked files from %s into %s (exit code %d%s)"
	gitCheckoutExecutionFailureTemplate      = "Unable to check out tracked files from %s into %s: %s"
	gitVersionStartTemplateConstant          = "Reading git version"
	gitVersionSuccessTemplateConstant        = "Read git version"
	gitVersionFailureTemplateConstant        = "Failed to read git version (exit code %d%s)"
	gitVersionExecutionFailureTemplate       = "Unable to read git version: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// FormatCommandLine renders the executable and its arguments as a single line.
// Arguments containing a space are wrapped in double quotes; no other escaping
// is applied, so the output is diagnostic only and must never be re-executed.
func (formatter CommandMessageFormatter) FormatCommandLine(command ShellCommand) string {
	commandParts := make([]string, 0, len(command.Details.Arguments)+1)
	commandParts = append(commandParts, formatter.naivelyEscape(command.ExecutablePath()))
	for _, argument := range command.Details.Arguments {
		commandParts = append(commandParts, formatter.naivelyEscape(argument))
	}
	return strings.Join(commandParts, commandArgumentsJoinSeparatorConstant)
}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) naivelyEscape(argument string) string {
	if !strings.Contains(argument, spaceCharacterConstant) {
		return argument
	}
	return fmt.Sprintf(quotedArgumentTemplateConstant, argument)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
	return formatter.describeGitMessage(command, result, failure, stage)
}

func (formatter CommandMessageFormatter) describeGitMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	location := parseGitLocation(command.Details.Arguments)

	if len(location.subcommandArguments) == 0 {
		if location.versionRequested {
			return formatter.describeGitVersionMessage(result, failure, stage)
		}
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(location.subcommandArguments[0])
	switch subcommand {
	case gitInitSubcommandNameConstant:
		return formatter.describeGitInitMessage(command, location, result, failure, stage)
	case gitCloneSubcommandNameConstant:
		return formatter.describeGitCloneMessage(command, location, result, failure, stage)
	case gitConfigSubcommandNameConstant:
		return formatter.describeGitConfigMessage(command, location, result, failure, stage)
	case gitCheckoutSubcommandNameConstant:
		if len(location.subcommandArguments) == 1 {
			return formatter.describeGitCheckoutMessage(location, result, failure, stage)
		}
		return formatter.buildGenericMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitInitMessage(command ShellCommand, location gitLocation, result ExecutionResult, failure error, stage messageStage) string {
	target := formatter.ensureValue(formatter.lastNonFlagArgument(location.subcommandArguments[1:]))
	if !containsArgument(location.subcommandArguments, gitBareFlagConstant) {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitInitStartTemplateConstant, target)
	case messageStageSuccess:
		return fmt.Sprintf(gitInitSuccessTemplateConstant, target)
	case messageStageFailure:
		return fmt.Sprintf(gitInitFailureTemplateConstant, target, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitInitExecutionFailureTemplateConstant, target, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitCloneMessage(command ShellCommand, location gitLocation, result ExecutionResult, failure error, stage messageStage) string {
	positional := formatter.positionalArguments(location.subcommandArguments[1:])
	if len(positional) < 2 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
	source := positional[0]
	destination := positional[1]
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCloneStartTemplateConstant, source, destination)
	case messageStageSuccess:
		return fmt.Sprintf(gitCloneSuccessTemplateConstant, source, destination)
	case messageStageFailure:
		return fmt.Sprintf(gitCloneFailureTemplateConstant, source, destination, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCloneExecutionFailureTemplateConstant, source, destination, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitConfigMessage(command ShellCommand, location gitLocation, result ExecutionResult, failure error, stage messageStage) string {
	positional := formatter.positionalArguments(location.subcommandArguments[1:])
	repository := formatter.ensureValue(location.gitDirectory)

	switch len(positional) {
	case 1:
		key := positional[0]
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitConfigReadStartTemplateConstant, key, repository)
		case messageStageSuccess:
			return fmt.Sprintf(gitConfigReadSuccessTemplateConstant, key, repository, formatter.ensureValue(result.StandardOutput))
		case messageStageFailure:
			return fmt.Sprintf(gitConfigReadFailureTemplateConstant, key, repository, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitConfigReadExecutionFailureTemplate, key, repository, formatter.describeFailure(failure))
		}
	case 2:
		key := positional[0]
		value := positional[1]
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitConfigStartTemplateConstant, key, value, repository)
		case messageStageSuccess:
			return fmt.Sprintf(gitConfigSuccessTemplateConstant, key, value, repository)
		case messageStageFailure:
			return fmt.Sprintf(gitConfigFailureTemplateConstant, key, value, repository, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		default:
			return fmt.Sprintf(gitConfigExecutionFailureTemplate, key, value, repository, formatter.describeFailure(failure))
		}
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeGitCheckoutMessage(location gitLocation, result ExecutionResult, failure error, stage messageStage) string {
	repository := formatter.ensureValue(location.gitDirectory)
	workTree := formatter.ensureValue(location.workTree)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCheckoutStartTemplateConstant, repository, workTree)
	case messageStageSuccess:
		return fmt.Sprintf(gitCheckoutSuccessTemplateConstant, repository, workTree)
	case messageStageFailure:
		return fmt.Sprintf(gitCheckoutFailureTemplateConstant, repository, workTree, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitCheckoutExecutionFailureTemplate, repository, workTree, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) describeGitVersionMessage(result ExecutionResult, failure error, stage messageStage) string {
	switch stage {
	case messageStageStart:
		return gitVersionStartTemplateConstant
	case messageStageSuccess:
		return gitVersionSuccessTemplateConstant
	case messageStageFailure:
		return fmt.Sprintf(gitVersionFailureTemplateConstant, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(gitVersionExecutionFailureTemplate, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	label := formatter.FormatCommandLine(command) + formatter.formatWorkingDirectorySuffix(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, label)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, label)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, label, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, label, formatter.describeFailure(failure))
	}
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) positionalArguments(arguments []string) []string {
	positional := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, gitOptionPrefixConstant) {
			continue
		}
		positional = append(positional, trimmed)
	}
	return positional
}

func (formatter CommandMessageFormatter) lastNonFlagArgument(arguments []string) string {
	positional := formatter.positionalArguments(arguments)
	if len(positional) == 0 {
		return emptyStringConstant
	}
	return positional[len(positional)-1]
}

// gitLocation separates git's global options from the subcommand that follows them.
type gitLocation struct {
	gitDirectory        string
	workTree            string
	versionRequested    bool
	subcommandArguments []string
}

func parseGitLocation(arguments []string) gitLocation {
	location := gitLocation{}
	for index := 0; index < len(arguments); index++ {
		argument := strings.TrimSpace(arguments[index])
		switch {
		case strings.HasPrefix(argument, gitDirectoryOptionPrefixConstant):
			location.gitDirectory = strings.TrimPrefix(argument, gitDirectoryOptionPrefixConstant)
		case strings.HasPrefix(argument, gitWorkTreeOptionPrefixConstant):
			location.workTree = strings.TrimPrefix(argument, gitWorkTreeOptionPrefixConstant)
		case argument == gitChangeDirectoryOptionConstant:
			index++
		case argument == gitVersionOptionConstant:
			location.versionRequested = true
		case strings.HasPrefix(argument, gitOptionPrefixConstant):
			continue
		default:
			location.subcommandArguments = arguments[index:]
			return location
		}
	}
	return location
}

func containsArgument(arguments []string, target string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == target {
			return true
		}
	}
	return false
}
