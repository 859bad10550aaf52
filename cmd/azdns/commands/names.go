package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azdns/cmd/azdns/handlers"
)

// Names returns the names command.
func Names() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "Print a generated name plan without touching Azure",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Names(cmd.OutOrStdout(), nil)
		},
	}
}
