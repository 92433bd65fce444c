package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/rahulann/bankfeed/internal/suggest"
)

// KeywordMappingRepo stores learned keyword-to-category mappings. It
// implements suggest.MappingStore.
type KeywordMappingRepo struct {
	db *sql.DB
}

func NewKeywordMappingRepo(db *sql.DB) *KeywordMappingRepo { return &KeywordMappingRepo{db: db} }

// FindBest returns the highest-count mapping for (user, keyword), or nil
// when the keyword is unknown. Ties break on recency.
func (r *KeywordMappingRepo) FindBest(ctx context.Context, userID, keyword string) (*suggest.Mapping, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT keyword, category, use_count, last_used
	FROM keyword_mappings
	WHERE user_id = ? AND keyword = ?
	ORDER BY use_count DESC, last_used DESC
	LIMIT 1
	`, userID, keyword)
	var m suggest.Mapping
	if err := row.Scan(&m.Keyword, &m.Category, &m.UseCount, &m.LastUsed); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Create inserts a fresh mapping with count 1. Competing mappings for the
// same (user, keyword) pair are allowed to accumulate.
func (r *KeywordMappingRepo) Create(ctx context.Context, userID, keyword, category string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO keyword_mappings(id, user_id, keyword, category, use_count, last_used)
	VALUES(?, ?, ?, ?, 1, ?)
	`, uuid.NewString(), userID, keyword, category, now)
	return err
}

// Touch increments the count and refreshes the timestamp of the single
// strongest mapping matching (user, keyword, category). The update is one
// statement so concurrent corrections cannot lose counts.
func (r *KeywordMappingRepo) Touch(ctx context.Context, userID, keyword, category string, now time.Time) error {
	_, err := r.db.ExecContext(ctx, `
	UPDATE keyword_mappings SET use_count = use_count + 1, last_used = ?
	WHERE id = (
		SELECT id FROM keyword_mappings
		WHERE user_id = ? AND keyword = ? AND category = ?
		ORDER BY use_count DESC, last_used DESC
		LIMIT 1
	)
	`, now, userID, keyword, category)
	return err
}

// ListForUser returns every mapping a user has accumulated, strongest
// first.
func (r *KeywordMappingRepo) ListForUser(ctx context.Context, userID string) ([]suggest.Mapping, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT keyword, category, use_count, last_used
	FROM keyword_mappings
	WHERE user_id = ?
	ORDER BY use_count DESC, last_used DESC, keyword
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []suggest.Mapping
	for rows.Next() {
		var m suggest.Mapping
		if err := rows.Scan(&m.Keyword, &m.Category, &m.UseCount, &m.LastUsed); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
