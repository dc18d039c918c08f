package repos

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	versionUseConstant      = "version"
	versionShortDescription = "Print the homegit and git versions"
	versionMessageTemplate  = "homegit version %s"
)

// VersionCommandBuilder assembles the version command.
type VersionCommandBuilder struct {
	CommandDependencies
	VersionProvider VersionProvider
}

// Build constructs the version command. Extra arguments are accepted and ignored.
func (builder *VersionCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:                versionUseConstant,
		Short:              versionShortDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               builder.run,
	}
	return command, nil
}

func (builder *VersionCommandBuilder) run(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.buildService(command)
	if serviceError != nil {
		return serviceError
	}

	executionContext := commandContext(command)
	version := ""
	if builder.VersionProvider != nil {
		version = builder.VersionProvider(executionContext)
	}
	newPrinter(command).Info(fmt.Sprintf(versionMessageTemplate, version))

	exitCode, versionError := service.GitVersion(executionContext)
	if versionError != nil {
		return versionError
	}
	if exitCode != 0 {
		return ExitStatusError{Code: exitCode}
	}
	return nil
}
