package model

import "strings"

// BalanceLine is one parsed row of a ledger balance report.
type BalanceLine struct {
	Amount      string
	Account     string
	IndentLevel int
}

// Negative reports whether the amount renders in red.
func (l BalanceLine) Negative() bool {
	return strings.ContainsRune(l.Amount, '-')
}

// RegisterLine is one parsed row of a ledger register report.
type RegisterLine struct {
	Code    string
	Date    string
	Payee   string
	Account string
	Amount  string
	Total   string
}

// Fields returns the cells in table order.
func (l RegisterLine) Fields() []string {
	return []string{l.Code, l.Date, l.Payee, l.Account, l.Amount, l.Total}
}
