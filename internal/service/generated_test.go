package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rahulann/bankfeed/internal/testdata"
)

func TestImportCSV_GeneratedHeaderedStatement(t *testing.T) {
	t.Parallel()
	importer, _, _, ctx := setupImportTest(t)

	data := testdata.Headered(';', 25, 1)
	res, err := importer.ImportCSV(ctx, strings.NewReader(data), "gen-1", "acct-1", "u1")
	require.NoError(t, err)
	require.Empty(t, res.Failed)
	require.Equal(t, 25, res.Imported)

	for _, rec := range res.Records {
		require.NotNil(t, rec.PostedDate)
		require.NotNil(t, rec.Description)
		require.True(t, rec.DebitAmount > 0 || rec.CreditAmount > 0)
		require.False(t, rec.DebitAmount > 0 && rec.CreditAmount > 0)
	}
}

func TestImportCSV_GeneratedHeaderlessStatement(t *testing.T) {
	t.Parallel()
	importer, _, _, ctx := setupImportTest(t)

	data := testdata.Headerless(10, 2)
	res, err := importer.ImportCSV(ctx, strings.NewReader(data), "gen-2", "acct-1", "u1")
	require.NoError(t, err)
	require.Empty(t, res.Failed)
	require.Equal(t, 10, res.Imported)

	for _, rec := range res.Records {
		require.NotNil(t, rec.PostedDate)
		require.NotNil(t, rec.Description)
	}
}
