package search

import (
	"testing"

	"github.com/ratel-online/landlord/card"
	"github.com/stretchr/testify/require"
)

func TestCombinations(t *testing.T) {
	ranks := []card.Rank{card.Three, card.Four, card.Five, card.Six}

	var got [][]card.Rank
	require.True(t, combinations(ranks, 2, func(picked []card.Rank) bool {
		got = append(got, append([]card.Rank(nil), picked...))
		return true
	}))
	require.Equal(t, [][]card.Rank{
		{card.Three, card.Four},
		{card.Three, card.Five},
		{card.Three, card.Six},
		{card.Four, card.Five},
		{card.Four, card.Six},
		{card.Five, card.Six},
	}, got)

	t.Run("stops_when_told", func(t *testing.T) {
		calls := 0
		require.False(t, combinations(card.Ranks(), 3, func([]card.Rank) bool {
			calls++
			return calls < 4
		}))
		require.Equal(t, 4, calls)
	})

	t.Run("out_of_range", func(t *testing.T) {
		calls := 0
		combinations(ranks, 5, func([]card.Rank) bool {
			calls++
			return true
		})
		require.Zero(t, calls)
	})
}
