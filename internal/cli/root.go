package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the DinoKicks CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dinokicks",
		Short: "DinoKicks storefront backend",
		Long:  "REST backend for the DINO KICKS storefront: catalog, session carts, checkout and the dino style quiz.",
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewSeedCommand())

	return cmd
}
