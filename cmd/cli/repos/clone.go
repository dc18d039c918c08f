package repos

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	cloneUseConstant               = "clone <repository_url>"
	cloneShortDescription          = "Clone a remote repository and check its files out into the home directory"
	clonedMessageTemplate          = "Cloned %s repo"
	alreadyClonedMessageTemplate   = "Repo (%s) is already cloned"
	checkoutWarningMessageTemplate = "Warning: could not checkout latest changes (%s)"
)

// CloneCommandBuilder assembles the clone command.
type CloneCommandBuilder struct {
	CommandDependencies
}

// Build constructs the clone command, which requires exactly one repository url.
func (builder *CloneCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:                cloneUseConstant,
		Short:              cloneShortDescription,
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		RunE:               builder.run,
	}
	return command, nil
}

func (builder *CloneCommandBuilder) run(command *cobra.Command, arguments []string) error {
	service, serviceError := builder.buildService(command)
	if serviceError != nil {
		return serviceError
	}

	result, cloneError := service.Clone(commandContext(command), arguments[0])
	if cloneError != nil {
		return cloneError
	}

	printer := newPrinter(command)
	if result.AlreadyCloned {
		printer.Info(fmt.Sprintf(alreadyClonedMessageTemplate, result.RepositoryName))
		return nil
	}
	if result.CheckoutFailed {
		printer.Warning(fmt.Sprintf(checkoutWarningMessageTemplate, result.RepositoryName))
	}
	printer.Success(fmt.Sprintf(clonedMessageTemplate, result.RepositoryName))
	return nil
}
