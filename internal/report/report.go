// Package report executes control-file jobs: it asks ledger for each report,
// converts the output to LaTeX and writes it to the job's output file.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ledger-tools/ledger2latex/internal/config"
	"github.com/ledger-tools/ledger2latex/internal/control"
	"github.com/ledger-tools/ledger2latex/internal/latex"
	"github.com/ledger-tools/ledger2latex/internal/ledger"
	"github.com/ledger-tools/ledger2latex/internal/model"
)

// Driver runs jobs sequentially against a ledger Runner.
type Driver struct {
	runner    ledger.Runner
	cfg       *config.Config
	outputDir string
	dryRun    bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithOutputDir resolves relative output paths against dir.
func WithOutputDir(dir string) Option {
	return func(d *Driver) { d.outputDir = dir }
}

// WithDryRun logs jobs without invoking ledger or writing files.
func WithDryRun(dryRun bool) Option {
	return func(d *Driver) { d.dryRun = dryRun }
}

// NewDriver creates a Driver. A nil cfg uses config.Default().
func NewDriver(runner ledger.Runner, cfg *config.Config, opts ...Option) *Driver {
	if cfg == nil {
		cfg = config.Default()
	}
	d := &Driver{runner: runner, cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Result describes one written report.
type Result struct {
	Job   model.ReportJob
	Path  string
	Bytes int
}

// Formatter builds the formatter for a job.
func (d *Driver) Formatter(job model.ReportJob) (latex.Formatter, error) {
	switch job.Kind {
	case model.KindBalance:
		return latex.NewBalanceFormatter(d.cfg.Balance), nil
	case model.KindRegister:
		if job.Headers == nil {
			return nil, control.ErrUndefinedHeaders
		}
		return latex.NewRegisterFormatter(job.Headers, d.cfg.Widths,
			latex.WithNegativeColor(d.cfg.Register.ColorNegative))
	default:
		return nil, fmt.Errorf("%w %q", control.ErrUnknownKind, job.Kind)
	}
}

// OutputPath resolves where a job's output is written.
func (d *Driver) OutputPath(job model.ReportJob) string {
	if d.outputDir == "" || filepath.IsAbs(job.OutputPath) {
		return job.OutputPath
	}
	return filepath.Join(d.outputDir, job.OutputPath)
}

// Execute runs a single job, overwriting its output file.
func (d *Driver) Execute(ctx context.Context, job model.ReportJob) (Result, error) {
	f, err := d.Formatter(job)
	if err != nil {
		return Result{}, err
	}

	path := d.OutputPath(job)
	args := f.LedgerArgs(job.Args)
	if d.dryRun {
		slog.Info("dry run", slog.String("path", path), slog.String("kind", string(job.Kind)), slog.Any("args", job.Args))
		return Result{Job: job, Path: path}, nil
	}

	out, err := d.runner.Run(ctx, args)
	if err != nil {
		return Result{}, err
	}

	tex := f.Format(out)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Result{}, fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(tex), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}

	slog.Info("wrote report", slog.String("path", path), slog.String("kind", string(job.Kind)), slog.Int("bytes", len(tex)))
	return Result{Job: job, Path: path, Bytes: len(tex)}, nil
}

// Process reads a control file and executes each job as soon as it is read.
// The first error stops the run; files written by earlier jobs are kept.
func (d *Driver) Process(ctx context.Context, r io.Reader) ([]Result, error) {
	cr := control.NewReader(r)
	var results []Result
	for {
		job, err := cr.Next()
		if errors.Is(err, io.EOF) {
			return results, nil
		}
		if err != nil {
			return results, err
		}
		res, err := d.Execute(ctx, job)
		if err != nil {
			return results, fmt.Errorf("line %d (%s): %w", job.Line, job.OutputPath, err)
		}
		results = append(results, res)
	}
}
