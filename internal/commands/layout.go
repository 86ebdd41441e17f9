package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledger-tools/ledger2latex/internal/config"
)

func newLayoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layout <path>",
		Short: "Write the default layout file for use with --layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default layout to %s\n", args[0])
			return nil
		},
	}
}
