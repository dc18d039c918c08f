package repos

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	initUseConstant            = "init"
	initShortDescription       = "Create the bare repository that tracks the home directory"
	initializedMessageTemplate = "Initialized %s repo"
)

// InitCommandBuilder assembles the init command.
type InitCommandBuilder struct {
	CommandDependencies
}

// Build constructs the init command. Extra arguments are accepted and ignored.
func (builder *InitCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:                initUseConstant,
		Short:              initShortDescription,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE:               builder.run,
	}
	return command, nil
}

func (builder *InitCommandBuilder) run(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.buildService(command)
	if serviceError != nil {
		return serviceError
	}

	result, initError := service.Init(commandContext(command))
	if initError != nil {
		return initError
	}

	newPrinter(command).Success(fmt.Sprintf(initializedMessageTemplate, result.RepositoryName))
	return nil
}
