package search

import (
	"iter"

	"github.com/ratel-online/landlord/hand"
	"github.com/ratel-online/landlord/play"
	"github.com/ratel-online/landlord/shape"
)

// Beating yields the plays of h that beat last: stronger plays of the same
// kind and run length first, then the bombs that beat it, then the rocket.
func Beating(h hand.Hand, last play.Play) iter.Seq[play.Play] {
	return func(yield func(play.Play) bool) {
		kind := last.Kind()
		if !kind.Valid() || kind == shape.Rocket {
			return
		}
		stronger := func(p play.Play) bool {
			if p.Beats(last) {
				return yield(p)
			}
			return true
		}
		if !walk(h, kind, last.Length(), stronger) {
			return
		}
		if kind != shape.Bomb && !walk(h, shape.Bomb, 0, yield) {
			return
		}
		walk(h, shape.Rocket, 0, yield)
	}
}
