package play_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/hand"
	"github.com/ratel-online/landlord/play"
	"github.com/ratel-online/landlord/shape"
	"github.com/stretchr/testify/require"
)

func counts(m map[card.Rank]int) card.Counts {
	c := card.Counts{}
	for r, n := range m {
		c[r] = n
	}
	return c
}

// mustPlay builds a play out of the full deck.
func mustPlay(t *testing.T, m map[card.Rank]int) play.Play {
	t.Helper()
	p, err := play.From(hand.FullDeck(), counts(m))
	require.NoError(t, err)
	return p
}

func TestFrom(t *testing.T) {
	h, err := hand.FromMap(map[card.Rank]int{card.Queen: 3, card.King: 3, card.Three: 1, card.Four: 1, card.Two: 2})
	require.NoError(t, err)

	t.Run("recognizes_held_cards", func(t *testing.T) {
		p, err := play.From(h, counts(map[card.Rank]int{card.Queen: 3, card.King: 3, card.Three: 1, card.Four: 1}))
		require.NoError(t, err)
		require.Equal(t, shape.AirplaneWithSolos, p.Kind())
		require.Equal(t, card.Queen, p.Primary())
		require.Equal(t, 2, p.Length())
		require.Equal(t, []card.Rank{card.Queen, card.King}, p.Core())
		require.Equal(t, []card.Rank{card.Three, card.Four}, p.Wings())
		require.Equal(t, 8, p.Cards())
		require.Equal(t, shape.AirplaneWithSolos, p.Shape().Kind())
	})

	t.Run("rejects_cards_not_held", func(t *testing.T) {
		_, err := play.From(h, counts(map[card.Rank]int{card.Ace: 1}))
		require.True(t, errors.Is(err, consts.ErrorsInsufficientCards))
	})

	t.Run("rejects_more_copies_than_held", func(t *testing.T) {
		_, err := play.From(h, counts(map[card.Rank]int{card.Two: 3}))
		require.True(t, errors.Is(err, consts.ErrorsInsufficientCards))
	})

	t.Run("rejects_unrecognized_selection", func(t *testing.T) {
		_, err := play.From(h, counts(map[card.Rank]int{card.Three: 1, card.Four: 1}))
		require.True(t, errors.Is(err, consts.ErrorsUnrecognizedShape))
	})

	t.Run("rejects_impossible_counts", func(t *testing.T) {
		_, err := play.From(h, counts(map[card.Rank]int{card.Two: 5}))
		require.True(t, errors.Is(err, consts.ErrorsInvalidCount))
	})

	t.Run("round_trips_through_the_hand", func(t *testing.T) {
		p, err := play.From(h, counts(map[card.Rank]int{card.Two: 2}))
		require.NoError(t, err)
		require.True(t, h.Contains(p))
		rest, err := h.Without(p)
		require.NoError(t, err)
		require.Equal(t, 0, rest.Count(card.Two))
		require.Equal(t, h.Len()-2, rest.Len())
	})
}

func TestOf(t *testing.T) {
	_, err := play.Of(hand.FullDeck(), counts(map[card.Rank]int{card.Ten: 4}), shape.Bomb)
	require.NoError(t, err)

	_, err = play.Of(hand.FullDeck(), counts(map[card.Rank]int{card.Ten: 3}), shape.Bomb)
	require.True(t, errors.Is(err, consts.ErrorsUnrecognizedShape))
}

func TestZeroPlay(t *testing.T) {
	var zero play.Play
	require.Equal(t, shape.None, zero.Kind())
	require.False(t, zero.Comparable(zero))
	require.False(t, zero.Beats(mustPlay(t, map[card.Rank]int{card.Three: 1})))
}
