// Package repository provides sqlite-backed stores for canonical
// transactions and learned keyword mappings.
package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// Transaction is a stored canonical transaction row.
type Transaction struct {
	ID                   string
	UserID               string
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
	SourceHash           *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TransactionFilters narrows List results.
type TransactionFilters struct {
	AccountID string
	FileID    string
	Category  string
}

// TransactionRepo handles transaction rows.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

const transactionColumns = `id, user_id, file_id, account_id, posted_date, posted_account,
 description, secondary_description, tertiary_description, debit_amount, credit_amount,
 balance, transaction_type, category, source_hash, created_at, updated_at`

func (r *TransactionRepo) Insert(ctx context.Context, t Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions(
	 id, user_id, file_id, account_id, posted_date, posted_account,
	 description, secondary_description, tertiary_description, debit_amount, credit_amount,
	 balance, transaction_type, category, source_hash, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`,
		t.ID, t.UserID, t.FileID, t.AccountID, t.PostedDate, t.PostedAccount,
		t.Description, t.SecondaryDescription, t.TertiaryDescription, t.DebitAmount, t.CreditAmount,
		t.Balance, t.TransactionType, t.Category, t.SourceHash)
	return err
}

func (r *TransactionRepo) UpdateCategory(ctx context.Context, id, category string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE transactions SET category = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, category, id)
	return err
}

func (r *TransactionRepo) Get(ctx context.Context, id string) (*Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepo) List(ctx context.Context, userID string, f TransactionFilters) ([]Transaction, error) {
	where := []string{"user_id = ?"}
	args := []interface{}{userID}

	if f.AccountID != "" {
		where = append(where, "account_id = ?")
		args = append(args, f.AccountID)
	}
	if f.FileID != "" {
		where = append(where, "file_id = ?")
		args = append(args, f.FileID)
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// scanTransaction handles nullable fields for both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row scanner) (Transaction, error) {
	var t Transaction
	var posted sql.NullTime
	var account, desc, desc2, desc3, txType, source sql.NullString
	if err := row.Scan(&t.ID, &t.UserID, &t.FileID, &t.AccountID, &posted, &account,
		&desc, &desc2, &desc3, &t.DebitAmount, &t.CreditAmount,
		&t.Balance, &txType, &t.Category, &source, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return Transaction{}, err
	}
	if posted.Valid {
		t.PostedDate = &posted.Time
	}
	if account.Valid {
		t.PostedAccount = &account.String
	}
	if desc.Valid {
		t.Description = &desc.String
	}
	if desc2.Valid {
		t.SecondaryDescription = &desc2.String
	}
	if desc3.Valid {
		t.TertiaryDescription = &desc3.String
	}
	if txType.Valid {
		t.TransactionType = &txType.String
	}
	if source.Valid {
		t.SourceHash = &source.String
	}
	return t, nil
}
