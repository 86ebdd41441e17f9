package model

import (
	"errors"
	"fmt"
)

// ReportKind selects the ledger report a job renders.
type ReportKind string

const (
	KindBalance  ReportKind = "balance"
	KindRegister ReportKind = "register"
)

// ParseKind maps a control-file kind literal to a ReportKind.
// Matching is case-sensitive.
func ParseKind(s string) (ReportKind, bool) {
	switch s {
	case "bal", "balance":
		return KindBalance, true
	case "reg", "register":
		return KindRegister, true
	}
	return "", false
}

// NumColumns is the number of register columns (and header labels).
const NumColumns = 6

// Headers holds the register column labels in render order:
// code, date, payee, account, amount, total.
type Headers []string

// ErrHeaderCount is returned when a register is not given exactly NumColumns labels.
var ErrHeaderCount = errors.New("the register has to have 6 columns")

// Validate checks that exactly NumColumns labels are present.
func (h Headers) Validate() error {
	if len(h) != NumColumns {
		return fmt.Errorf("%w, got %d", ErrHeaderCount, len(h))
	}
	return nil
}

// ReportJob is one job line of a control file.
type ReportJob struct {
	Line       int // 1-based line number in the control file
	OutputPath string
	Kind       ReportKind
	Args       []string // passed verbatim to ledger after the report command
	Headers    Headers  // nil unless register_columns was declared before this job
}
