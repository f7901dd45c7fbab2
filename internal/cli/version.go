package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/iconlookup/pkg/iconlookup"
)

const modulePath = "github.com/mesh-intelligence/iconlookup"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the iconlookup version",
		Args:  cobra.NoArgs,
		// version needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "iconlookup v%s\nmodule: %s\n", iconlookup.Version, modulePath)
			return nil
		},
	}
}
