package hand

import (
	"strconv"
	"strings"

	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

// Holding is anything that occupies a number of cards per rank.
type Holding interface {
	Counts() card.Counts
}

// Hand is a validated multiset of cards. It is a value: deriving a hand
// never modifies the one it was derived from.
type Hand struct {
	counts card.Counts
}

var fullDeck = func() Hand {
	h := Hand{}
	for _, r := range card.Ranks() {
		h.counts[r] = r.Limit()
	}
	return h
}()

// FullDeck returns the 54 card deck.
func FullDeck() Hand {
	return fullDeck
}

// New validates counts into a Hand.
func New(counts card.Counts) (Hand, error) {
	if err := counts.Validate(); err != nil {
		return Hand{}, err
	}
	return Hand{counts: counts}, nil
}

// FromSlice builds a Hand from one count per rank, weakest first.
func FromSlice(counts []int) (Hand, error) {
	if len(counts) != card.RankCount {
		return Hand{}, consts.ErrorsInvalidCount.With("expected %d counts, got %d", card.RankCount, len(counts))
	}
	c := card.Counts{}
	copy(c[:], counts)
	return New(c)
}

// FromMap builds a Hand from a rank:count description.
func FromMap(counts map[card.Rank]int) (Hand, error) {
	c := card.Counts{}
	for r, n := range counts {
		if !r.Valid() {
			return Hand{}, consts.ErrorsInvalidCount.With("unknown rank %s", r)
		}
		c[r] = n
	}
	return New(c)
}

func (h Hand) Counts() card.Counts {
	return h.counts
}

func (h Hand) Count(r card.Rank) int {
	return h.counts[r]
}

// Len is the number of cards in the hand.
func (h Hand) Len() int {
	return h.counts.Len()
}

func (h Hand) IsEmpty() bool {
	return h.Len() == 0
}

// Contains reports whether every card of x is available in h.
func (h Hand) Contains(x Holding) bool {
	c := x.Counts()
	for i := range h.counts {
		if c[i] > h.counts[i] {
			return false
		}
	}
	return true
}

// Without returns h with the cards of x removed.
func (h Hand) Without(x Holding) (Hand, error) {
	c := x.Counts()
	for i := range h.counts {
		if c[i] < 0 {
			return Hand{}, consts.ErrorsInvalidCount.With("negative count of %s", card.Rank(i))
		}
		if c[i] > h.counts[i] {
			return Hand{}, consts.ErrorsInsufficientCards.With("need %d %s, hold %d", c[i], card.Rank(i), h.counts[i])
		}
		h.counts[i] -= c[i]
	}
	return h, nil
}

// Add returns h with the cards of x added.
func (h Hand) Add(x Holding) (Hand, error) {
	c := x.Counts()
	for i := range h.counts {
		c[i] += h.counts[i]
	}
	return New(c)
}

func (h Hand) String() string {
	parts := make([]string, 0, card.RankCount)
	for _, r := range h.counts.Ranks() {
		parts = append(parts, r.String()+":"+strconv.Itoa(h.counts[r]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
