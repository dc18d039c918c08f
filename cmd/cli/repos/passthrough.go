package repos

import (
	"github.com/spf13/cobra"
)

// PassThroughCommandName names the hidden command that forwards arguments to git.
const PassThroughCommandName = "passthrough"

const (
	passThroughUseConstant      = PassThroughCommandName + " [git arguments...]"
	passThroughShortDescription = "Run git against the bare repository with the home directory as work tree"
)

// PassThroughCommandBuilder assembles the command that forwards arbitrary arguments to git.
type PassThroughCommandBuilder struct {
	CommandDependencies
}

// Build constructs the hidden pass-through command.
func (builder *PassThroughCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:                passThroughUseConstant,
		Short:              passThroughShortDescription,
		Hidden:             true,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               builder.run,
	}
	return command, nil
}

func (builder *PassThroughCommandBuilder) run(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.buildService(command)
	if serviceError != nil {
		return serviceError
	}

	exitCode, passThroughError := service.PassThrough(commandContext(command), arguments)
	if passThroughError != nil {
		return passThroughError
	}
	if exitCode != 0 {
		return ExitStatusError{Code: exitCode}
	}
	return nil
}
