package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ledger-tools/ledger2latex/internal/config"
)

// BalanceArgs returns the argument list for a balance report.
func BalanceArgs(userArgs []string) []string {
	args := []string{"bal"}
	return append(args, userArgs...)
}

// PayeeWidth is the width ledger gets for its payee column, which carries the
// code, one space and the payee.
func PayeeWidth(w config.Widths) int {
	return w.Code + 1 + w.Payee
}

// RegisterArgs returns the argument list for a register report laid out with w.
func RegisterArgs(w config.Widths, userArgs []string) []string {
	args := []string{
		"--format", RegisterFormat(w),
		"reg",
		"--date-width", strconv.Itoa(w.Date),
		"--payee-width", strconv.Itoa(PayeeWidth(w)),
		"--account-width", strconv.Itoa(w.Account),
		"--amount-width", strconv.Itoa(w.Amount),
		"--total-width", strconv.Itoa(w.Total),
	}
	return append(args, userArgs...)
}

// RegisterFormat builds the ledger --format template for a plain-text register.
//
// The first posting of a transaction prints date, code+payee, account, amount
// and running total. Later postings print a blank date and either the "Payee"
// tag (indented past the code column) or blanks, followed by the account,
// amount and total of the first line's columns ($3, $4, $5).
func RegisterFormat(w config.Widths) string {
	code := w.Code
	payee := fmt.Sprintf("int(payee_width)-%d", code+1)
	pad := strings.Repeat(" ", code+1)

	var b strings.Builder
	b.WriteString(`%(ansify_if(  ansify_if(justify(format_date(date), int(date_width)),`)
	b.WriteString(`green if color and date > today), bold if should_bold))`)
	fmt.Fprintf(&b, ` %%(ansify_if(ansify_if(justify(truncated(code, %d), %d)`, code, code)
	fmt.Fprintf(&b, `+ " " + justify(truncated(payee, %s), %s),`, payee, payee)
	b.WriteString(`bold if color and !cleared and actual), bold if should_bold))`)
	b.WriteString(` %(ansify_if(ansify_if(justify(truncated(display_account, int(account_width),`)
	b.WriteString(`int(abbrev_len)), int(account_width)), blue if color),`)
	b.WriteString(`bold if should_bold))`)
	b.WriteString(` %(ansify_if(justify(scrub(display_amount), int(amount_width),`)
	b.WriteString(`3 + int(meta_width) + int(date_width) + int(payee_width)`)
	b.WriteString(` + int(account_width) + int(amount_width) + int(prepend_width),`)
	b.WriteString(`true, color), bold if should_bold))`)
	b.WriteString(` %(ansify_if(   justify(scrub(display_total), int(total_width),`)
	b.WriteString(`4 + int(meta_width) + int(date_width) + int(payee_width)`)
	b.WriteString(`+ int(account_width) + int(amount_width) + int(total_width)`)
	b.WriteString(`+ int(prepend_width), true, color),`)
	b.WriteString(`bold if should_bold))\n`)
	b.WriteString(`%/%(justify(" ", int(date_width)))`)
	b.WriteString(` %(ansify_if(   justify(truncated(has_tag("Payee")`)
	fmt.Fprintf(&b, `? "%s" + payee : " ", int(payee_width)), int(payee_width)),`, pad)
	b.WriteString(`bold if should_bold)) %$3 %$4 %$5\n`)
	return b.String()
}
