// Package search enumerates the plays a hand can make.
//
// Sequences are lazy: plays are recognized one at a time while the caller
// ranges over them, so stopping early never pays for the remaining wing
// combinations. Plays come out by ascending primary rank, then ascending
// run length, then wing ranks in lexicographic order. No play is yielded
// twice.
package search

import (
	"fmt"
	"iter"

	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/hand"
	"github.com/ratel-online/landlord/play"
	"github.com/ratel-online/landlord/shape"
)

// Plays yields every play of the given kind held in h, of any run length.
func Plays(h hand.Hand, kind shape.Kind) iter.Seq[play.Play] {
	return func(yield func(play.Play) bool) {
		walk(h, kind, 0, yield)
	}
}

// PlaysOfLength yields the plays of the given kind whose core run has
// exactly length ranks.
func PlaysOfLength(h hand.Hand, kind shape.Kind, length int) iter.Seq[play.Play] {
	return func(yield func(play.Play) bool) {
		if length < 1 {
			return
		}
		walk(h, kind, length, yield)
	}
}

// All yields every play held in h, kind by kind in shape.Kinds order.
func All(h hand.Hand) iter.Seq[play.Play] {
	return func(yield func(play.Play) bool) {
		for _, kind := range shape.Kinds() {
			if !walk(h, kind, 0, yield) {
				return
			}
		}
	}
}

// walk yields the plays of kind in h. A zero length accepts every length.
// It returns false once yield asked to stop.
func walk(h hand.Hand, kind shape.Kind, length int, yield func(play.Play) bool) bool {
	if !kind.Valid() {
		return true
	}
	if kind == shape.Rocket {
		if length > 1 || h.Count(card.BlackJoker) == 0 || h.Count(card.RedJoker) == 0 {
			return true
		}
		rocket := card.Counts{}.With(card.BlackJoker, 1).With(card.RedJoker, 1)
		return emit(h, rocket, kind, yield)
	}
	if !kind.Chained() && length > 1 {
		return true
	}
	unit := kind.Unit()
	for _, start := range card.Ranks() {
		if h.Count(start) < unit {
			continue
		}
		if !kind.Chained() {
			if !withWings(h, kind, start, 1, yield) {
				return false
			}
			continue
		}
		for n := 1; ; n++ {
			r := start + card.Rank(n-1)
			if !r.Chainable() || h.Count(r) < unit {
				break
			}
			if length != 0 && n > length {
				break
			}
			if n < kind.MinLength() || (length != 0 && n != length) {
				continue
			}
			if !withWings(h, kind, start, n, yield) {
				return false
			}
		}
	}
	return true
}

// withWings yields the plays whose core run is the n ranks from start,
// one per distinct choice of wing ranks.
func withWings(h hand.Hand, kind shape.Kind, start card.Rank, n int, yield func(play.Play) bool) bool {
	end := start + card.Rank(n)
	core := card.Counts{}
	for r := start; r < end; r++ {
		core[r] = kind.Unit()
	}
	size := kind.WingSize()
	if size == 0 {
		return emit(h, core, kind, yield)
	}
	candidates := make([]card.Rank, 0, card.RankCount)
	for _, r := range card.Ranks() {
		if (r < start || r >= end) && h.Count(r) >= size {
			candidates = append(candidates, r)
		}
	}
	return combinations(candidates, kind.Wings(n), func(wings []card.Rank) bool {
		if size == 1 && holdsRocket(wings) {
			return true
		}
		selected := core
		for _, r := range wings {
			selected[r] = size
		}
		return emit(h, selected, kind, yield)
	})
}

func emit(h hand.Hand, selected card.Counts, kind shape.Kind, yield func(play.Play) bool) bool {
	p, err := play.Of(h, selected, kind)
	if err != nil {
		panic(fmt.Sprintf("search: enumerated %v as %s: %v", selected, kind, err))
	}
	return yield(p)
}
