package suggest

import (
	"context"
	"fmt"
	"time"
)

// Mapping is one learned association between a description keyword and a
// category, scoped per user. UseCount and LastUsed order competing
// mappings for the same keyword.
type Mapping struct {
	Keyword  string
	Category string
	UseCount int
	LastUsed time.Time
}

// MappingStore is the persistence collaborator for learned mappings.
// FindBest returns the highest-count mapping for (user, keyword), or nil
// when the keyword has never been seen. Create and Touch must be atomic
// per key so concurrent corrections for one user do not lose updates.
type MappingStore interface {
	FindBest(ctx context.Context, userID, keyword string) (*Mapping, error)
	Create(ctx context.Context, userID, keyword, category string, now time.Time) error
	Touch(ctx context.Context, userID, keyword, category string, now time.Time) error
}

// Model scores category suggestions from a user's correction history.
type Model struct {
	store MappingStore
	now   func() time.Time
}

// NewModel creates a suggestion model backed by store.
func NewModel(store MappingStore) *Model {
	return &Model{store: store, now: time.Now}
}

// Suggest proposes a category for a description. Keywords are tried in
// extraction order and the first one with any mapping at all wins; no
// attempt is made to find the best-scoring keyword overall. It reports
// false when no keyword is known for the user.
func (m *Model) Suggest(ctx context.Context, userID, description string) (string, bool, error) {
	for _, kw := range Keywords(description) {
		best, err := m.store.FindBest(ctx, userID, kw)
		if err != nil {
			return "", false, fmt.Errorf("lookup keyword %q: %w", kw, err)
		}
		if best != nil {
			return best.Category, true, nil
		}
	}
	return "", false, nil
}

// RecordCorrection feeds a confirmed (description, category) pair back
// into the model. For each keyword: a matching mapping has its count
// incremented and timestamp refreshed; a keyword whose best mapping names
// a different category gains an additional mapping with count 1, leaving
// the old one untouched; an unknown keyword gains its first mapping.
// Competing mappings for one (user, keyword) pair are never merged;
// FindBest ordering decides which one wins.
func (m *Model) RecordCorrection(ctx context.Context, userID, description, category string) error {
	now := m.now()
	for _, kw := range Keywords(description) {
		best, err := m.store.FindBest(ctx, userID, kw)
		if err != nil {
			return fmt.Errorf("lookup keyword %q: %w", kw, err)
		}
		switch {
		case best == nil:
			err = m.store.Create(ctx, userID, kw, category, now)
		case best.Category == category:
			err = m.store.Touch(ctx, userID, kw, category, now)
		default:
			err = m.store.Create(ctx, userID, kw, category, now)
		}
		if err != nil {
			return fmt.Errorf("record keyword %q: %w", kw, err)
		}
	}
	return nil
}
