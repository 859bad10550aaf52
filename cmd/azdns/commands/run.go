package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azdns/cmd/azdns/handlers"
)

// Run returns the run command.
func Run() *cobra.Command {
	opts := handlers.RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Provision the DNS sample environment, then delete it",
		Long: `Run provisions a fixed graph of Azure resources inside a fresh resource group:

  - a DNS zone contoso<n>.com
  - an App Service plan and web app with a custom domain bound to the zone
  - verification records (CNAME www, TXT asuid.www and asuid)
  - two Linux VMs with networking, published through A records
  - a delegated child zone partners.<zone>

The resource group is always deleted at the end, even when a step fails or
the run is interrupted.

Credentials are read from CLIENT_ID, CLIENT_SECRET, TENANT_ID and
SUBSCRIPTION_ID (a .env file in the working directory is loaded first).

Exit codes:
  0  success
  2  invalid configuration
  3  provisioning failed
  4  cleanup failed (only with --strict-cleanup)

Example:
  azdns run --config azdns.yaml --pause`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Version = version
			return handlers.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to optional YAML settings file")
	cmd.Flags().BoolVar(&opts.Pause, "pause", false, "Wait for confirmation after the zone is created")
	cmd.Flags().BoolVar(&opts.StrictCleanup, "strict-cleanup", false, "Exit non-zero when the resource group cannot be deleted")

	return cmd
}
