package card

import (
	"fmt"

	"github.com/ratel-online/landlord/consts"
)

// Rank is a card rank ordered by Dou Dizhu strength. Suits play no part.
type Rank uint8

const (
	Three Rank = iota
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
	BlackJoker
	RedJoker
)

// RankCount is the number of distinct ranks.
const RankCount = 15

var rankNames = [RankCount]string{
	"Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten",
	"Jack", "Queen", "King", "Ace", "Two", "BlackJoker", "RedJoker",
}

// RankOf returns the rank at index i. It panics when i is outside [0, 14].
func RankOf(i int) Rank {
	if i < 0 || i >= RankCount {
		panic(fmt.Sprintf("card: rank index %d out of range", i))
	}
	return Rank(i)
}

// Ranks returns every rank, weakest first.
func Ranks() []Rank {
	ranks := make([]Rank, RankCount)
	for i := range ranks {
		ranks[i] = Rank(i)
	}
	return ranks
}

func (r Rank) Index() int {
	return int(r)
}

func (r Rank) Valid() bool {
	return r <= RedJoker
}

// Compare returns -1, 0 or 1 as r is weaker than, equal to or stronger than o.
func (r Rank) Compare(o Rank) int {
	switch {
	case r < o:
		return -1
	case r > o:
		return 1
	}
	return 0
}

func (r Rank) IsJoker() bool {
	return r == BlackJoker || r == RedJoker
}

// Chainable reports whether r may take part in a chain or airplane.
// Twos and jokers never do.
func (r Rank) Chainable() bool {
	return r <= Ace
}

// Limit is the number of copies of r in a single deck.
func (r Rank) Limit() int {
	if r.IsJoker() {
		return consts.MaxJoker
	}
	return consts.MaxOrdinary
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return rankNames[r]
}

// Key returns the ratel poker key of r: 1 is the ace, 2 the two, 3..13 the
// face values, 14 and 15 the black and red jokers.
func (r Rank) Key() int {
	switch {
	case r == Ace:
		return 1
	case r == Two:
		return 2
	case r.IsJoker():
		return int(r) + 1
	}
	return int(r) + 3
}

// RankOfKey is the inverse of Key.
func RankOfKey(key int) (Rank, bool) {
	switch {
	case key == 1:
		return Ace, true
	case key == 2:
		return Two, true
	case key >= 3 && key <= 13:
		return Rank(key - 3), true
	case key == 14 || key == 15:
		return Rank(key - 1), true
	}
	return 0, false
}
