// Package service orchestrates statement imports and correction feedback
// around the normalization and suggestion engines. Boundary concerns —
// dialect fallback warnings, skipped-row logging, category validation,
// ownership checks — live here, not in the engines.
package service

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/rahulann/bankfeed/internal/database/repository"
	"github.com/rahulann/bankfeed/internal/dialect"
	"github.com/rahulann/bankfeed/internal/normalize"
	"github.com/rahulann/bankfeed/internal/suggest"
)

// headerlessColumns names the positional columns of exports that ship
// without a header row (the common date, amount, description layout).
var headerlessColumns = []string{
	"date", "amount", "description", "secondary description", "tertiary description",
}

// RowError reports one row that could not be turned into a record. The
// import is never aborted for it.
type RowError struct {
	Line int
	Err  error
}

// ImportResult is the report of one import: the records produced in input
// order, the duplicate count, and the per-row failures.
type ImportResult struct {
	Records  []repository.Transaction
	Imported int
	Skipped  int
	Failed   []RowError
}

// ImportService ingests raw statement bytes into canonical transactions
// with suggested categories.
type ImportService struct {
	Transactions *repository.TransactionRepo
	Suggester    *suggest.Model
	Logger       *slog.Logger
}

// ImportCSV reads one statement, normalizes every row, attaches category
// suggestions from the user's learned mappings, and stores the results.
// Row-level problems degrade or skip that row only; the scan always runs
// to the end of the input.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader, fileID, accountID, userID string) (ImportResult, error) {
	res := ImportResult{}

	br := bufio.NewReaderSize(r, dialect.SampleSize)
	sample, err := br.Peek(dialect.SampleSize)
	if err != nil && err != io.EOF {
		return res, fmt.Errorf("sample statement: %w", err)
	}

	d, err := dialect.Detect(sample)
	if err != nil {
		s.Logger.Warn("dialect not recognized, falling back to default",
			"file_id", fileID, "err", err)
		d = dialect.Default()
	}

	cr := csv.NewReader(br)
	cr.Comma = d.Comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	columns := headerlessColumns
	if d.HasHeader {
		header, err := cr.Read()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("read header: %w", err)
		}
		columns = header
	}

	line := 0
	if d.HasHeader {
		line = 1
	}
	seen := map[string]int{}
	for {
		line++
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Failed = append(res.Failed, RowError{Line: line, Err: err})
			s.Logger.Warn("row skipped", "file_id", fileID, "line", line, "err", err)
			continue
		}

		tx, err := s.normalizeRow(ctx, columns, rec, fileID, accountID, userID, seen)
		if err != nil {
			res.Failed = append(res.Failed, RowError{Line: line, Err: err})
			s.Logger.Warn("row skipped", "file_id", fileID, "line", line,
				"row", strings.Join(rec, string(d.Comma)), "err", err)
			continue
		}

		if err := s.Transactions.Insert(ctx, tx); err != nil {
			if isUniqueViolation(err) {
				res.Skipped++
				continue
			}
			res.Failed = append(res.Failed, RowError{Line: line, Err: fmt.Errorf("insert: %w", err)})
			continue
		}
		res.Records = append(res.Records, tx)
		res.Imported++
	}
	return res, nil
}

// normalizeRow converts one CSV record into a stored transaction. The
// recover guard means a fault in one row never takes down the import.
func (s *ImportService) normalizeRow(ctx context.Context, columns, rec []string, fileID, accountID, userID string, seen map[string]int) (tx repository.Transaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("normalize row: %v", r)
		}
	}()

	raw := zipRow(columns, rec)
	canonical := normalize.Row(raw, fileID, accountID)

	if canonical.Description != nil && s.Suggester != nil {
		category, ok, serr := s.Suggester.Suggest(ctx, userID, *canonical.Description)
		if serr != nil {
			return tx, fmt.Errorf("suggest category: %w", serr)
		}
		if ok {
			canonical.Category = category
		}
	}

	return toStored(canonical, userID, seen), nil
}

// zipRow pairs column names with cell values positionally. Cells beyond
// the known columns are dropped, short rows keep whatever cells they have.
func zipRow(columns, rec []string) normalize.RawRow {
	n := len(columns)
	if len(rec) < n {
		n = len(rec)
	}
	row := make(normalize.RawRow, 0, n)
	for i := 0; i < n; i++ {
		row = append(row, normalize.Field{Name: columns[i], Value: rec[i]})
	}
	return row
}

// toStored maps a canonical transaction onto its storage row, stamping it
// with an ID and a deduplication hash. The hash is salted with the row's
// occurrence index within the statement, so two genuinely identical rows
// in one file stay distinct while a re-imported statement, which repeats
// the same occurrences, still dedupes. File identity stays out of the key
// so the same statement uploaded under a new name cannot double-import.
func toStored(c normalize.Transaction, userID string, seen map[string]int) repository.Transaction {
	date := ""
	if c.PostedDate != nil {
		date = c.PostedDate.Format("2006-01-02")
	}
	desc := ""
	if c.Description != nil {
		desc = *c.Description
	}
	key := strings.Join([]string{userID, c.AccountID, date,
		fmt.Sprintf("%.2f|%.2f|%.2f", c.DebitAmount, c.CreditAmount, c.Balance), desc}, "|")
	n := seen[key]
	seen[key]++
	hash := hashSource(key, strconv.Itoa(n))

	return repository.Transaction{
		ID:                   uuid.NewString(),
		UserID:               userID,
		FileID:               c.FileID,
		AccountID:            c.AccountID,
		PostedDate:           c.PostedDate,
		PostedAccount:        c.PostedAccount,
		Description:          c.Description,
		SecondaryDescription: c.SecondaryDescription,
		TertiaryDescription:  c.TertiaryDescription,
		DebitAmount:          c.DebitAmount,
		CreditAmount:         c.CreditAmount,
		Balance:              c.Balance,
		TransactionType:      c.TransactionType,
		Category:             c.Category,
		SourceHash:           &hash,
	}
}

// isUniqueViolation reports whether an insert hit the source-hash unique
// index, which is how a re-imported row announces itself.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique
}

func hashSource(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%x", sum[:])
}
