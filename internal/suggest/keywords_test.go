package suggest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeywords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want []string
	}{
		{"Payment to AMZN #123 for 12", []string{"payment", "amzn", "for"}},
		{"STARBUCKS COFFEE 17", []string{"starbucks", "coffee"}},
		{"UBER *EATS-SYDNEY", []string{"uber", "eatssydney"}},
		{"CAFÉ MÜNCHEN #7", []string{"café", "münchen"}},
		{"", nil},
		{"12 34 56", nil},
		{"ab cd ef", nil},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Keywords(tc.in), "input %q", tc.in)
	}
}

func TestKeywords_DuplicatesPreservedInOrder(t *testing.T) {
	t.Parallel()

	got := Keywords("TRANSFER SAVINGS TRANSFER")
	require.Equal(t, []string{"transfer", "savings", "transfer"}, got)
}
