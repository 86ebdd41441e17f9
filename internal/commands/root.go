package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledger-tools/ledger2latex/internal/buildinfo"
)

const usage = `ledger report latex generator ledger2latex.

Reads a control file (from the given path or standard input), runs ledger
once per job line and writes each report as a LaTeX fragment.

Control file format:
  register_columns: [code_title]; [date_title]; [payee_title]; [account_title]; [amount_title]; [sum_title]
  [out_file];[bal|balance|reg|register];[ledger_args]...

Column widths and the balance layout can be overridden with --layout;
"ledger2latex layout layout.yaml" writes the defaults as a starting point.

Example:
  ledger2latex < my_config.cfg`

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var opts renderOptions

	rootCmd := &cobra.Command{
		Use:     "ledger2latex [control-file]",
		Short:   "Render ledger balance and register reports as LaTeX",
		Long:    usage,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		Args:    cobra.MaximumNArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.controlFile = args[0]
			}
			return runRender(cmd.Context(), cmd.InOrStdin(), opts, cmd.Flags().Changed("ledger"))
		},
	}
	rootCmd.SetVersionTemplate("ledger2latex version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringVar(&opts.ledgerBinary, "ledger", "ledger", "ledger binary to run")
	flags.StringVar(&opts.layoutFile, "layout", "", "YAML file overriding column widths and balance layout")
	flags.StringVarP(&opts.outputDir, "output-dir", "C", "", "directory for relative output paths")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "parse the control file and log jobs without running ledger")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log ledger invocations")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newLayoutCommand())

	return rootCmd
}
