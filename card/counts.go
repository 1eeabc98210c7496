package card

import "github.com/ratel-online/landlord/consts"

// Counts holds a number of cards per rank, indexed by Rank.
// It carries no invariant by itself; see Validate.
type Counts [RankCount]int

// Len returns the total number of cards.
func (c Counts) Len() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

func (c Counts) Get(r Rank) int {
	return c[r]
}

// With returns a copy of c with the count of r set to n.
func (c Counts) With(r Rank, n int) Counts {
	c[r] = n
	return c
}

// Ranks returns the ranks with a non-zero count, weakest first.
func (c Counts) Ranks() []Rank {
	ranks := make([]Rank, 0, RankCount)
	for i, v := range c {
		if v != 0 {
			ranks = append(ranks, Rank(i))
		}
	}
	return ranks
}

// Validate checks every count against the single deck limits.
func (c Counts) Validate() error {
	for i, v := range c {
		r := Rank(i)
		if v < 0 {
			return consts.ErrorsInvalidCount.With("negative count of %s", r)
		}
		if v > r.Limit() {
			return consts.ErrorsInvalidCount.With("more than %d %s specified", r.Limit(), r)
		}
	}
	return nil
}
