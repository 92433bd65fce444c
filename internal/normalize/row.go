// Package normalize turns raw bank-statement rows of arbitrary schema into
// canonical transactions. Column discovery is fuzzy (substring matching on
// normalized header names) and value parsing is locale-tolerant; individual
// field failures degrade to zero values instead of dropping the row.
package normalize

import "time"

// DefaultCategory is assigned to every freshly normalized transaction.
const DefaultCategory = "Uncategorized"

// Transaction is the canonical record produced from one raw row. Optional
// source fields are pointers; amounts default to zero when the source
// column is absent or unparseable. The record is a pass-through of source
// data: nothing here enforces that only one of debit/credit is set.
type Transaction struct {
	FileID               string
	AccountID            string
	PostedDate           *time.Time
	PostedAccount        *string
	Description          *string
	SecondaryDescription *string
	TertiaryDescription  *string
	DebitAmount          float64
	CreditAmount         float64
	Balance              float64
	TransactionType      *string
	Category             string
}

// Row builds a canonical transaction from one raw row, tagged with the
// caller's file and account identifiers. When the source has no separate
// debit/credit columns but does carry a single signed amount column, the
// amount is split: negative becomes a debit of its absolute value,
// non-negative becomes a credit.
func Row(raw RawRow, fileID, accountID string) Transaction {
	tx := Transaction{
		FileID:    fileID,
		AccountID: accountID,
		Category:  DefaultCategory,
	}

	if v, ok := raw.Resolve(dateCandidates); ok {
		if d, ok := ParseDate(v); ok {
			tx.PostedDate = &d
		}
	}
	if v, ok := raw.Resolve(accountCandidates); ok {
		tx.PostedAccount = &v
	}
	if v, ok := raw.Resolve(descCandidates); ok {
		tx.Description = &v
	}
	if v, ok := raw.Resolve(desc2Candidates); ok {
		tx.SecondaryDescription = &v
	}
	if v, ok := raw.Resolve(desc3Candidates); ok {
		tx.TertiaryDescription = &v
	}
	if v, ok := raw.Resolve(typeCandidates); ok {
		tx.TransactionType = &v
	}
	if v, ok := raw.Resolve(balanceCandidates); ok {
		tx.Balance = ParseAmount(v)
	}

	debitRaw, hasDebit := raw.Resolve(debitCandidates)
	creditRaw, hasCredit := raw.Resolve(creditCandidates)
	switch {
	case hasDebit || hasCredit:
		if hasDebit {
			tx.DebitAmount = ParseAmount(debitRaw)
		}
		if hasCredit {
			tx.CreditAmount = ParseAmount(creditRaw)
		}
	default:
		if v, ok := raw.Resolve(amountCandidates); ok {
			amount := ParseAmount(v)
			if amount < 0 {
				tx.DebitAmount = -amount
			} else {
				tx.CreditAmount = amount
			}
		}
	}
	return tx
}
