// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in the
// handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the azdns CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "azdns",
		Short:         "Provision and tear down an Azure DNS sample environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(Run())
	cmd.AddCommand(Names())
	cmd.AddCommand(Version())

	return cmd
}
