package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rahulann/bankfeed/internal/database/repository"
	"github.com/rahulann/bankfeed/internal/suggest"
)

var (
	// ErrInvalidCategory means the chosen category is not in the catalog.
	ErrInvalidCategory = errors.New("category not in catalog")
	// ErrUnauthorized means the transaction does not belong to the caller.
	// A missing transaction is reported the same way: either kind of
	// correction is a no-op on model state.
	ErrUnauthorized = errors.New("transaction outside caller scope")
)

// CorrectionService applies a user's category correction to a stored
// transaction and feeds the choice back into the suggestion model.
type CorrectionService struct {
	Transactions *repository.TransactionRepo
	Suggester    *suggest.Model
	Catalog      suggest.Catalog
	Logger       *slog.Logger
}

// Correct sets a transaction's category to the user's choice. The category
// must be in the catalog and the transaction must belong to the user; a
// rejected correction changes nothing. On success, the transaction's
// description and the chosen category update the user's keyword mappings.
func (s *CorrectionService) Correct(ctx context.Context, userID, transactionID, category string) error {
	if !s.Catalog.Contains(category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	tx, err := s.Transactions.Get(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("load transaction: %w", err)
	}
	if tx == nil || tx.UserID != userID {
		return ErrUnauthorized
	}

	if err := s.Transactions.UpdateCategory(ctx, transactionID, category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	if tx.Description != nil {
		if err := s.Suggester.RecordCorrection(ctx, userID, *tx.Description, category); err != nil {
			return fmt.Errorf("record correction: %w", err)
		}
	}
	s.Logger.Info("correction recorded",
		"transaction_id", transactionID, "category", category)
	return nil
}
