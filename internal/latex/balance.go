package latex

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledger-tools/ledger2latex/internal/config"
	"github.com/ledger-tools/ledger2latex/internal/ledger"
	"github.com/ledger-tools/ledger2latex/internal/model"
)

// BalanceFormatter renders `ledger bal` output as a bulleted list.
type BalanceFormatter struct {
	amount  Column
	account Column
	rule    string
	indent  string
}

var _ Formatter = (*BalanceFormatter)(nil)

// NewBalanceFormatter creates a BalanceFormatter for the given layout.
func NewBalanceFormatter(layout config.BalanceConfig) *BalanceFormatter {
	return &BalanceFormatter{
		amount:  Column{Start: 0, End: layout.AmountEnd},
		account: Column{Start: layout.AccountStart, End: -1},
		rule:    layout.Rule,
		indent:  layout.Indent,
	}
}

// LedgerArgs returns ["bal", userArgs...].
func (f *BalanceFormatter) LedgerArgs(userArgs []string) []string {
	return ledger.BalanceArgs(userArgs)
}

// ParseLine splits one report row into amount and account.
func (f *BalanceFormatter) ParseLine(line string) model.BalanceLine {
	runes := []rune(line)
	account := f.account.Slice(runes)
	return model.BalanceLine{
		Amount:      strings.TrimSpace(f.amount.Slice(runes)),
		Account:     strings.TrimSpace(account),
		IndentLevel: IndentLevel(account),
	}
}

// Parse returns the data rows preceding the totals rule.
func (f *BalanceFormatter) Parse(report string) []model.BalanceLine {
	var entries []model.BalanceLine
	for _, line := range splitLines(report) {
		if strings.TrimRightFunc(line, unicode.IsSpace) == f.rule {
			break
		}
		entries = append(entries, f.ParseLine(line))
	}
	return entries
}

// Render emits one list item per entry, in order.
func (f *BalanceFormatter) Render(entries []model.BalanceLine) string {
	var b strings.Builder
	for _, e := range entries {
		color := ` \color{black}`
		if e.Negative() {
			color = ` \color{red}`
		}
		b.WriteString("- ")
		b.WriteString(strings.Repeat(f.indent, e.IndentLevel))
		fmt.Fprintf(&b, "%s \\hfill %s %s \\color{black} \\newline\n", e.Account, color, e.Amount)
	}
	return b.String()
}

// Format parses and renders a balance report.
func (f *BalanceFormatter) Format(report string) string {
	return f.Render(f.Parse(report))
}

// IndentLevel counts the nesting depth ledger encodes with two-space runs:
// the number of "  "-separated segments of the right-trimmed account, minus one.
func IndentLevel(account string) int {
	return len(strings.Split(strings.TrimRightFunc(account, unicode.IsSpace), "  ")) - 1
}
