// Package latex turns fixed-width ledger reports into LaTeX fragments.
package latex

import "strings"

// Formatter renders one kind of ledger report.
type Formatter interface {
	// LedgerArgs returns the full ledger argument list for the report.
	LedgerArgs(userArgs []string) []string
	// Format converts ledger's standard output into LaTeX.
	Format(report string) string
}

// Column is a half-open rune window [Start, End) of a report line.
// End < 0 extends the window to the end of the line.
type Column struct {
	Start int
	End   int
}

// Slice returns the part of line covered by c, clamped to the line length.
func (c Column) Slice(line []rune) string {
	start, end := c.Start, c.End
	if end < 0 || end > len(line) {
		end = len(line)
	}
	if start > end {
		return ""
	}
	return string(line[start:end])
}

// splitLines splits a report into lines without a length limit. A final
// newline does not start an extra line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
