package homegit

import "strings"

// Action identifies the handler selected for an invocation.
type Action string

// Supported actions. ActionNone marks a bare invocation and is handled as help.
const (
	ActionNone        Action = ""
	ActionInit        Action = "init"
	ActionClone       Action = "clone"
	ActionHelp        Action = "help"
	ActionVersion     Action = "version"
	ActionUntrack     Action = "untrack"
	ActionPassThrough Action = "passthrough"
)

const (
	versionLongFlagConstant  = "--version"
	versionShortFlagConstant = "-v"
	helpLongFlagConstant     = "--help"
	helpShortFlagConstant    = "-h"
	flagValueSeparator       = "="
)

var actionLookup = map[string]Action{
	string(ActionInit):       ActionInit,
	string(ActionClone):      ActionClone,
	string(ActionHelp):       ActionHelp,
	string(ActionVersion):    ActionVersion,
	string(ActionUntrack):    ActionUntrack,
	versionLongFlagConstant:  ActionVersion,
	versionShortFlagConstant: ActionVersion,
	helpLongFlagConstant:     ActionHelp,
	helpShortFlagConstant:    ActionHelp,
}

// locationOverrideFlags would relocate the repository or work tree if honored.
var locationOverrideFlags = []string{"--bare", "--git-dir", "--work-tree"}

// ParsedCommand is the classification of one invocation.
type ParsedCommand struct {
	Action Action
	// IgnoredArguments lists each location override flag found, once, in first-seen order.
	IgnoredArguments []string
}

// ParseCommand classifies arguments, which exclude the program name.
func ParseCommand(arguments []string) ParsedCommand {
	parsedCommand := ParsedCommand{Action: ActionNone}
	if len(arguments) > 0 {
		action, recognized := actionLookup[strings.ToLower(arguments[0])]
		if !recognized {
			action = ActionPassThrough
		}
		parsedCommand.Action = action
	}

	seenFlags := map[string]struct{}{}
	for _, argument := range arguments {
		flagName, isOverride := matchLocationOverride(argument)
		if !isOverride {
			continue
		}
		if _, alreadySeen := seenFlags[flagName]; alreadySeen {
			continue
		}
		seenFlags[flagName] = struct{}{}
		parsedCommand.IgnoredArguments = append(parsedCommand.IgnoredArguments, flagName)
	}

	return parsedCommand
}

func matchLocationOverride(argument string) (string, bool) {
	for _, flagName := range locationOverrideFlags {
		if argument == flagName || strings.HasPrefix(argument, flagName+flagValueSeparator) {
			return flagName, true
		}
	}
	return "", false
}
