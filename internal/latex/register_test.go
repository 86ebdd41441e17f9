package latex

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledger-tools/ledger2latex/internal/config"
	"github.com/ledger-tools/ledger2latex/internal/model"
)

var testHeaders = model.Headers{"Code", "Date", "Payee", "Account", "Amount", "Total"}

// registerRow lays out a line the way ledger does with the default widths.
func registerRow(date, code, payee, account, amount, total string) string {
	return fmt.Sprintf("%-10s %-7s %-60s %-70s %40s %40s", date, code, payee, account, amount, total)
}

func newRegister(t *testing.T, opts ...RegisterOption) *RegisterFormatter {
	t.Helper()
	f, err := NewRegisterFormatter(testHeaders, config.DefaultWidths(), opts...)
	require.NoError(t, err)
	return f
}

func TestNewRegisterFormatter_HeaderCount(t *testing.T) {
	for _, n := range []int{0, 5, 7} {
		headers := make(model.Headers, n)
		_, err := NewRegisterFormatter(headers, config.DefaultWidths())
		require.Error(t, err, "%d headers", n)
		assert.ErrorIs(t, err, ErrHeaderCount)
	}
}

func TestColumnsFor(t *testing.T) {
	c := ColumnsFor(config.DefaultWidths())

	assert.Equal(t, Column{0, 10}, c.Date)
	assert.Equal(t, Column{11, 18}, c.Code)
	assert.Equal(t, Column{19, 79}, c.Payee)
	assert.Equal(t, Column{80, 150}, c.Account)
	assert.Equal(t, Column{151, 191}, c.Amount)
	assert.Equal(t, Column{192, -1}, c.Total)
}

func TestColumnsFor_CustomWidths(t *testing.T) {
	c := ColumnsFor(config.Widths{Date: 8, Code: 2, Payee: 5, Account: 6, Amount: 4, Total: 4})

	assert.Equal(t, Column{0, 8}, c.Date)
	assert.Equal(t, Column{9, 11}, c.Code)
	assert.Equal(t, Column{12, 17}, c.Payee)
	assert.Equal(t, Column{18, 24}, c.Account)
	assert.Equal(t, Column{25, 29}, c.Amount)
	assert.Equal(t, Column{30, -1}, c.Total)
}

func TestRegisterParseLine(t *testing.T) {
	f := newRegister(t)
	line := registerRow("2024/03/01", "1042", "Grocery Store", "Expenses:Food", "$-42.10", "$957.90")

	got := f.ParseLine(line)
	assert.Equal(t, model.RegisterLine{
		Code:    "1042",
		Date:    "2024/03/01",
		Payee:   "Grocery Store",
		Account: "Expenses:Food",
		Amount:  "$-42.10",
		Total:   "$957.90",
	}, got)
}

func TestRegisterParseLine_FullWidthFields(t *testing.T) {
	f := newRegister(t)
	payee := strings.Repeat("p", 60)
	account := strings.Repeat("a", 70)

	got := f.ParseLine(registerRow("2024/03/01", "ABCDEFG", payee, account, "1", "2"))
	assert.Equal(t, "ABCDEFG", got.Code)
	assert.Equal(t, payee, got.Payee)
	assert.Equal(t, account, got.Account)
}

func TestRegisterParseLine_Continuation(t *testing.T) {
	f := newRegister(t)
	line := registerRow("", "", "", "Assets:Checking", "$42.10", "$1000.00")

	got := f.ParseLine(line)
	assert.Equal(t, model.RegisterLine{Account: "Assets:Checking", Amount: "$42.10", Total: "$1000.00"}, got)
}

func TestRegisterParseLine_Short(t *testing.T) {
	got := newRegister(t).ParseLine("2024/03/01")
	assert.Equal(t, model.RegisterLine{Date: "2024/03/01"}, got)
}

func TestRegisterHeader(t *testing.T) {
	want := "\\begin{longtable}{|r | c || l | l | r | r |} \n" +
		"\\hline\n" +
		"Code & Date & Payee & Account & Amount & Total   \\\\\n" +
		"\\hline\n"
	assert.Equal(t, want, newRegister(t).Header())
	assert.Equal(t, `\end{longtable}`, newRegister(t).Footer())
}

func TestRegisterRowMatchesFields(t *testing.T) {
	f := newRegister(t)
	lines := []string{
		registerRow("2024/03/01", "1042", "Grocery Store", "Expenses:Food", "$-42.10", "$957.90"),
		registerRow("", "", "", "Assets:Checking", "$42.10", "$1000.00"),
		"",
	}
	for _, line := range lines {
		parsed := f.ParseLine(line)
		want := strings.Join(parsed.Fields(), " & ") + " \\\\\n\\hline"
		assert.Equal(t, want, f.Row(parsed))
	}
}

func TestRegisterFormat(t *testing.T) {
	report := registerRow("2024/03/01", "1042", "Grocery Store", "Expenses:Food", "$42.10", "$42.10") + "\n" +
		registerRow("", "", "", "Assets:Checking", "$-42.10", "0") + "\n"

	want := "\\begin{longtable}{|r | c || l | l | r | r |} \n" +
		"\\hline\n" +
		"Code & Date & Payee & Account & Amount & Total   \\\\\n" +
		"\\hline\n" +
		"1042 & 2024/03/01 & Grocery Store & Expenses:Food & $42.10 & $42.10 \\\\\n" +
		"\\hline\n" +
		" &  &  & Assets:Checking & $-42.10 & 0 \\\\\n" +
		"\\hline\n" +
		"\\end{longtable}"
	assert.Equal(t, want, newRegister(t).Format(report))
}

func TestRegisterRowCountEqualsLineCount(t *testing.T) {
	var lines []string
	for i := 0; i < 12; i++ {
		lines = append(lines, registerRow("2024/01/01", "", fmt.Sprintf("Payee %d", i), "A", "1", "1"))
	}
	lines = append(lines, "--------------------")

	out := newRegister(t).Format(strings.Join(lines, "\n"))
	// One rule under the header plus one per row.
	assert.Equal(t, 2+len(lines), strings.Count(out, `\hline`))
}

func TestRegisterLongLineKeepsRowCount(t *testing.T) {
	report := registerRow("2024/01/01", "", "a", "A", "1", "1") + "\n" +
		strings.Repeat("x", 2<<20) + "\n" +
		registerRow("2024/01/02", "", "b", "B", "2", "3") + "\n"

	rows := newRegister(t).Parse(report)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[0].Payee)
	assert.Equal(t, "b", rows[2].Payee)
	assert.Equal(t, "3", rows[2].Total)
}

func TestRegisterNegativeColor_PrefixMinus(t *testing.T) {
	row := newRegister(t, WithNegativeColor(true)).Row(model.RegisterLine{Amount: "-$5.00", Total: "$5.00"})
	assert.Contains(t, row, `\textcolor{red}{-$5.00} & $5.00`)
}

func TestRegisterEmptyReport(t *testing.T) {
	f := newRegister(t)
	assert.Equal(t, f.Header()+f.Footer(), f.Format(""))
}

func TestRegisterNegativeColor(t *testing.T) {
	f := newRegister(t, WithNegativeColor(true))
	row := f.Row(model.RegisterLine{Amount: "$-5.00", Total: "$10.00"})
	assert.Equal(t, ` &  &  &  & \textcolor{red}{$-5.00} & $10.00 \\`+"\n"+`\hline`, row)

	plain := newRegister(t).Row(model.RegisterLine{Amount: "$-5.00", Total: "$10.00"})
	assert.NotContains(t, plain, `\textcolor`)
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"$-1,200.50", true},
		{"-3 EUR", true},
		{"EUR -0.01", true},
		{"$1,200.50", false},
		{"-0", false},
		{"$0.00", false},
		{"(none)", false},
		{"--", true},
		{"-$5.00", true},
		{"- EUR 5", true},
		{"-$0.00", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNegative(tt.amount), "IsNegative(%q)", tt.amount)
	}
}

func TestRegisterLedgerArgsUseSameWidths(t *testing.T) {
	w := config.Widths{Date: 8, Code: 2, Payee: 5, Account: 6, Amount: 4, Total: 4}
	f, err := NewRegisterFormatter(testHeaders, w)
	require.NoError(t, err)

	args := f.LedgerArgs([]string{"--period", "this month"})
	assert.Equal(t, "reg", args[2])
	assert.Equal(t, []string{"--date-width", "8"}, args[3:5])
	assert.Equal(t, []string{"--payee-width", "8"}, args[5:7], "code + separator + payee")
	assert.Equal(t, []string{"--period", "this month"}, args[len(args)-2:])

	// Payee column of the ledger layout must equal code + 1 + payee window.
	c := ColumnsFor(w)
	assert.Equal(t, 8, c.Payee.End-c.Code.Start)
}
