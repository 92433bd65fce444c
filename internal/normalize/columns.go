package normalize

import "strings"

// Field is one named cell of a raw statement row.
type Field struct {
	Name  string
	Value string
}

// RawRow is one CSV line as an ordered sequence of named cells. Order is
// significant: when several columns match a candidate, the earliest one in
// the source file wins.
type RawRow []Field

// Candidate substrings per canonical field, scanned in priority order.
// A column qualifies when its normalized name contains the substring and
// its value is non-empty after trimming.
var (
	dateCandidates    = []string{"date", "posted_date", "transaction_date", "posting_date"}
	accountCandidates = []string{"account", "posted_account", "account_number"}
	descCandidates    = []string{"description", "details", "narrative", "memo", "payee"}
	desc2Candidates   = []string{"description_2", "secondary_description", "extended_details"}
	desc3Candidates   = []string{"description_3", "tertiary_description"}
	debitCandidates   = []string{"debit", "withdrawal", "money_out", "paid_out"}
	creditCandidates  = []string{"credit", "deposit", "money_in", "paid_in"}
	balanceCandidates = []string{"balance", "running_balance"}
	amountCandidates  = []string{"amount", "value"}
	typeCandidates    = []string{"type", "transaction_type"}
)

// normalizeColumnName lowercases, trims, and collapses internal whitespace
// to a single underscore, so "  Posted  Date " and "posted_date" compare
// equal.
func normalizeColumnName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "_")
}

// Resolve returns the value of the first column whose normalized name
// contains one of the candidate substrings and whose value is non-empty
// after trimming. Candidates are scanned in priority order; within one
// candidate, columns are scanned in source order. A miss is reported as
// false, never as an error: an absent field is simply absent.
func (r RawRow) Resolve(candidates []string) (string, bool) {
	for _, cand := range candidates {
		for _, f := range r {
			if !strings.Contains(normalizeColumnName(f.Name), cand) {
				continue
			}
			if v := strings.TrimSpace(f.Value); v != "" {
				return v, true
			}
		}
	}
	return "", false
}
