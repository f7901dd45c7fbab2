// Implements: freedesktop.org Icon Theme 0.13 (§ Directory Layout).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newDirsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Print the icon base directories in search order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettings(a.cfg)
			if err != nil {
				return userError(err)
			}
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), s.baseDirs)
			}
			for _, d := range s.baseDirs {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
}
