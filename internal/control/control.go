// Package control reads the line-oriented control file that lists the
// reports to generate.
//
// Grammar:
//
//	register_columns: <code>; <date>; <payee>; <account>; <amount>; <total>
//	<output file>; <bal|balance|reg|register>[; <ledger arg>]...
//
// A register_columns line applies to every register job after it.
package control

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ledger-tools/ledger2latex/internal/model"
)

// ColumnsKeyword introduces the register header declaration.
const ColumnsKeyword = "register_columns:"

var (
	// ErrTooFewFields is returned for a job line without output and type.
	ErrTooFewFields = errors.New("you have to at least specify the output and type")
	// ErrUnknownKind is returned for a job type other than bal/balance/reg/register.
	ErrUnknownKind = errors.New("unknown report type")
	// ErrUndefinedHeaders is returned for a register job before any register_columns line.
	ErrUndefinedHeaders = errors.New("register columns are undefined")
)

// Reader yields jobs from a control file one line at a time.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	headers model.Headers
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next job. It returns io.EOF once the input is exhausted.
func (r *Reader) Next() (model.ReportJob, error) {
	for r.sc.Scan() {
		r.line++
		text := r.sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if strings.HasPrefix(text, ColumnsKeyword) {
			if r.headers != nil {
				slog.Warn("register columns redeclared", slog.Int("line", r.line))
			}
			r.headers = ParseColumns(text)
			continue
		}
		job, err := ParseJob(text, r.headers)
		if err != nil {
			return model.ReportJob{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		job.Line = r.line
		return job, nil
	}
	if err := r.sc.Err(); err != nil {
		return model.ReportJob{}, fmt.Errorf("reading control file: %w", err)
	}
	return model.ReportJob{}, io.EOF
}

// ParseColumns parses a register_columns line into trimmed labels.
func ParseColumns(line string) model.Headers {
	return splitFields(strings.TrimPrefix(line, ColumnsKeyword))
}

// ParseJob parses a job line. headers is attached to register jobs and must
// be non-nil for them.
func ParseJob(line string, headers model.Headers) (model.ReportJob, error) {
	fields := splitFields(line)
	if len(fields) < 3 {
		return model.ReportJob{}, fmt.Errorf("%w: %q", ErrTooFewFields, line)
	}
	kind, ok := model.ParseKind(fields[1])
	if !ok {
		return model.ReportJob{}, fmt.Errorf("%w %q", ErrUnknownKind, fields[1])
	}
	job := model.ReportJob{
		OutputPath: fields[0],
		Kind:       kind,
		Args:       fields[2:],
	}
	if kind == model.KindRegister {
		if headers == nil {
			return model.ReportJob{}, fmt.Errorf("%w for %s", ErrUndefinedHeaders, job.OutputPath)
		}
		job.Headers = append(model.Headers(nil), headers...)
	}
	return job, nil
}

func splitFields(s string) []string {
	fields := strings.Split(s, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}
