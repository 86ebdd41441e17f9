package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ledger-tools/ledger2latex/internal/config"
	"github.com/ledger-tools/ledger2latex/internal/ledger"
	"github.com/ledger-tools/ledger2latex/internal/report"
)

type renderOptions struct {
	controlFile  string
	ledgerBinary string
	layoutFile   string
	outputDir    string
	dryRun       bool
	verbose      bool
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func runRender(ctx context.Context, stdin io.Reader, opts renderOptions, ledgerFlagSet bool) error {
	cfg := config.Default()
	if opts.layoutFile != "" {
		loaded, err := config.Load(opts.layoutFile)
		if err != nil {
			return fmt.Errorf("loading layout: %w", err)
		}
		cfg = loaded
	}
	if ledgerFlagSet || opts.layoutFile == "" {
		cfg.Ledger.Binary = opts.ledgerBinary
	}

	in := stdin
	if opts.controlFile != "" && opts.controlFile != "-" {
		f, err := os.Open(opts.controlFile)
		if err != nil {
			return fmt.Errorf("opening control file: %w", err)
		}
		defer f.Close()
		in = f
	}

	driver := report.NewDriver(ledger.NewCommand(cfg.Ledger.Binary), cfg,
		report.WithOutputDir(opts.outputDir),
		report.WithDryRun(opts.dryRun),
	)
	results, err := driver.Process(ctx, in)
	if err != nil {
		return err
	}
	slog.Debug("done", slog.Int("reports", len(results)))
	return nil
}
