package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rahulann/bankfeed/internal/database"
)

func setupRepoTest(t *testing.T) (*KeywordMappingRepo, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))

	return NewKeywordMappingRepo(db), ctx
}

func TestKeywordMappings_FindBestByCount(t *testing.T) {
	t.Parallel()
	repo, ctx := setupRepoTest(t)
	now := database.Now()

	require.NoError(t, repo.Create(ctx, "u1", "starbucks", "Dining", now))
	require.NoError(t, repo.Create(ctx, "u1", "starbucks", "Travel", now))
	require.NoError(t, repo.Touch(ctx, "u1", "starbucks", "Travel", now))
	require.NoError(t, repo.Touch(ctx, "u1", "starbucks", "Travel", now))

	best, err := repo.FindBest(ctx, "u1", "starbucks")
	require.NoError(t, err)
	require.NotNil(t, best)
	require.Equal(t, "Travel", best.Category)
	require.Equal(t, 3, best.UseCount)
}

func TestKeywordMappings_CompetingRowsCoexist(t *testing.T) {
	t.Parallel()
	repo, ctx := setupRepoTest(t)
	now := database.Now()

	require.NoError(t, repo.Create(ctx, "u1", "costco", "Groceries", now))
	require.NoError(t, repo.Create(ctx, "u1", "costco", "Shopping", now))

	all, err := repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 2)

	categories := map[string]bool{}
	for _, m := range all {
		require.Equal(t, "costco", m.Keyword)
		categories[m.Category] = true
	}
	require.True(t, categories["Groceries"])
	require.True(t, categories["Shopping"])
}

func TestKeywordMappings_TouchOnlyStrongestMatchingRow(t *testing.T) {
	t.Parallel()
	repo, ctx := setupRepoTest(t)
	now := database.Now()

	require.NoError(t, repo.Create(ctx, "u1", "uber", "Transport", now))
	require.NoError(t, repo.Create(ctx, "u1", "uber", "Transport", now.Add(time.Second)))
	require.NoError(t, repo.Touch(ctx, "u1", "uber", "Transport", now.Add(2*time.Second)))

	all, err := repo.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, 2, all[0].UseCount)
	require.Equal(t, 1, all[1].UseCount)
}

func TestKeywordMappings_ScopedPerUser(t *testing.T) {
	t.Parallel()
	repo, ctx := setupRepoTest(t)
	now := database.Now()

	require.NoError(t, repo.Create(ctx, "u1", "netflix", "Entertainment", now))

	best, err := repo.FindBest(ctx, "u2", "netflix")
	require.NoError(t, err)
	require.Nil(t, best)

	none, err := repo.ListForUser(ctx, "u2")
	require.NoError(t, err)
	require.Empty(t, none)
}
