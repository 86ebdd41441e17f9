package latex

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledger-tools/ledger2latex/internal/config"
	"github.com/ledger-tools/ledger2latex/internal/ledger"
	"github.com/ledger-tools/ledger2latex/internal/model"
)

// TableSpec is the longtable column specification of the register.
const TableSpec = `|r | c || l | l | r | r |`

// RegisterColumns are the rune windows of a register line. The layout is
// date, code, payee, account, amount, total with one separator between each.
type RegisterColumns struct {
	Date    Column
	Code    Column
	Payee   Column
	Account Column
	Amount  Column
	Total   Column
}

// ColumnsFor derives the windows from the widths ledger is asked to use.
func ColumnsFor(w config.Widths) RegisterColumns {
	var c RegisterColumns
	c.Date = Column{Start: 0, End: w.Date}
	c.Code = next(c.Date, w.Code)
	c.Payee = next(c.Code, w.Payee)
	c.Account = next(c.Payee, w.Account)
	c.Amount = next(c.Account, w.Amount)
	c.Total = Column{Start: c.Amount.End + 1, End: -1}
	return c
}

func next(prev Column, width int) Column {
	return Column{Start: prev.End + 1, End: prev.End + 1 + width}
}

// RegisterFormatter renders `ledger reg` output as a longtable.
type RegisterFormatter struct {
	headers       model.Headers
	widths        config.Widths
	columns       RegisterColumns
	colorNegative bool
}

var _ Formatter = (*RegisterFormatter)(nil)

// RegisterOption configures a RegisterFormatter.
type RegisterOption func(*RegisterFormatter)

// WithNegativeColor renders negative amounts and totals in red.
func WithNegativeColor(enabled bool) RegisterOption {
	return func(f *RegisterFormatter) { f.colorNegative = enabled }
}

// ErrHeaderCount is returned when the register headers are not exactly six labels.
var ErrHeaderCount = model.ErrHeaderCount

// NewRegisterFormatter creates a RegisterFormatter. headers must hold exactly
// six labels.
func NewRegisterFormatter(headers model.Headers, widths config.Widths, opts ...RegisterOption) (*RegisterFormatter, error) {
	if err := headers.Validate(); err != nil {
		return nil, err
	}
	f := &RegisterFormatter{
		headers: headers,
		widths:  widths,
		columns: ColumnsFor(widths),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// LedgerArgs requests a register laid out with the formatter's widths.
func (f *RegisterFormatter) LedgerArgs(userArgs []string) []string {
	return ledger.RegisterArgs(f.widths, userArgs)
}

// Header opens the longtable and prints the column labels.
func (f *RegisterFormatter) Header() string {
	return fmt.Sprintf("\\begin{longtable}{%s} \n\\hline\n%s   \\\\\n\\hline\n",
		TableSpec, strings.Join(f.headers, " & "))
}

// Footer closes the longtable.
func (f *RegisterFormatter) Footer() string {
	return `\end{longtable}`
}

// ParseLine extracts the six fields of a register line.
func (f *RegisterFormatter) ParseLine(line string) model.RegisterLine {
	runes := []rune(line)
	cell := func(c Column) string { return strings.TrimSpace(c.Slice(runes)) }
	return model.RegisterLine{
		Code:    cell(f.columns.Code),
		Date:    cell(f.columns.Date),
		Payee:   cell(f.columns.Payee),
		Account: cell(f.columns.Account),
		Amount:  cell(f.columns.Amount),
		Total:   cell(f.columns.Total),
	}
}

// Parse extracts every line of the report; none are skipped.
func (f *RegisterFormatter) Parse(report string) []model.RegisterLine {
	lines := splitLines(report)
	rows := make([]model.RegisterLine, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, f.ParseLine(line))
	}
	return rows
}

// Row renders one table row followed by a rule.
func (f *RegisterFormatter) Row(l model.RegisterLine) string {
	if f.colorNegative {
		l.Amount = colorIfNegative(l.Amount)
		l.Total = colorIfNegative(l.Total)
	}
	return strings.Join(l.Fields(), " & ") + " \\\\\n\\hline"
}

// Render emits the whole table.
func (f *RegisterFormatter) Render(rows []model.RegisterLine) string {
	var b strings.Builder
	b.WriteString(f.Header())
	for _, r := range rows {
		b.WriteString(f.Row(r))
		b.WriteByte('\n')
	}
	b.WriteString(f.Footer())
	return b.String()
}

// Format parses and renders a register report.
func (f *RegisterFormatter) Format(report string) string {
	return f.Render(f.Parse(report))
}

var quantityPattern = regexp.MustCompile(`-?\d[\d,]*(\.\d+)?`)

// IsNegative reports whether a ledger amount such as "$-1,200.50", "-$5.00"
// or "-3 EUR" is below zero. A minus sign before the quantity, with or
// without a commodity in between, makes it negative. Amounts without a
// readable quantity fall back to looking for a minus sign.
func IsNegative(amount string) bool {
	loc := quantityPattern.FindStringIndex(amount)
	if loc == nil {
		return strings.Contains(amount, "-")
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(amount[loc[0]:loc[1]], ",", ""))
	if err != nil {
		return strings.Contains(amount, "-")
	}
	if strings.Contains(amount[:loc[0]], "-") {
		d = d.Neg()
	}
	return d.IsNegative()
}

func colorIfNegative(amount string) string {
	if amount == "" || !IsNegative(amount) {
		return amount
	}
	return `\textcolor{red}{` + amount + `}`
}
