package shape

import (
	"strings"

	"github.com/ratel-online/landlord/card"
)

// Shape is a recognized play pattern bound to concrete ranks.
// Values are produced by Match only and never change afterwards.
type Shape struct {
	kind    Kind
	primary card.Rank
	length  int
	counts  card.Counts
}

func (s Shape) Kind() Kind {
	return s.kind
}

// Primary is the lowest rank of the core run, or the quad rank of a bomb.
func (s Shape) Primary() card.Rank {
	return s.primary
}

// Length is the number of ranks in the core run, 1 for non chain kinds.
func (s Shape) Length() int {
	return s.length
}

func (s Shape) Counts() card.Counts {
	return s.counts
}

// Cards is the total number of cards in the shape.
func (s Shape) Cards() int {
	return s.counts.Len()
}

// Core returns the ranks of the core run, weakest first.
func (s Shape) Core() []card.Rank {
	if s.kind == Rocket {
		return []card.Rank{card.BlackJoker, card.RedJoker}
	}
	core := make([]card.Rank, 0, s.length)
	for i := 0; i < s.length; i++ {
		core = append(core, s.primary+card.Rank(i))
	}
	return core
}

// Wings returns the attached ranks, weakest first.
func (s Shape) Wings() []card.Rank {
	if s.kind.WingSize() == 0 {
		return nil
	}
	wings := make([]card.Rank, 0, s.kind.Wings(s.length))
	for _, r := range s.counts.Ranks() {
		if r < s.primary || r >= s.primary+card.Rank(s.length) {
			wings = append(wings, r)
		}
	}
	return wings
}

func (s Shape) String() string {
	buf := strings.Builder{}
	buf.WriteString(s.kind.String())
	buf.WriteString("(")
	for i, r := range s.Core() {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(r.String())
	}
	if wings := s.Wings(); len(wings) > 0 {
		buf.WriteString(" +")
		for _, r := range wings {
			buf.WriteString(" ")
			buf.WriteString(r.String())
		}
	}
	buf.WriteString(")")
	return buf.String()
}
