package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledger-tools/ledger2latex/internal/buildinfo"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ledger2latex version %s\n", buildinfo.Version)
		},
	}
}
