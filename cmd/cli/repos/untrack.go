package repos

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	untrackUseConstant       = "untrack"
	untrackShortDescription  = "Delete the bare repository while leaving tracked files in place"
	untrackedMessageTemplate = "Stopped tracking homegit repo at %s"
)

// UntrackCommandBuilder assembles the untrack command.
type UntrackCommandBuilder struct {
	CommandDependencies
}

// Build constructs the untrack command. Extra arguments are accepted and ignored.
func (builder *UntrackCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:                untrackUseConstant,
		Short:              untrackShortDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               builder.run,
	}
	return command, nil
}

func (builder *UntrackCommandBuilder) run(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.buildService(command)
	if serviceError != nil {
		return serviceError
	}

	result, untrackError := service.Untrack(commandContext(command))
	if untrackError != nil {
		return untrackError
	}

	newPrinter(command).Info(fmt.Sprintf(untrackedMessageTemplate, result.RepositoryPath))
	return nil
}
