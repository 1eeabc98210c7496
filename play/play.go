package play

import (
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/hand"
	"github.com/ratel-online/landlord/shape"
)

// Play is a shape that has been checked against the hand it comes from.
// The only way to obtain one is From; the zero Play has kind shape.None
// and compares with nothing.
type Play struct {
	shape shape.Shape
}

// From recognizes the selected cards and checks that h holds them.
func From(h hand.Hand, selected card.Counts) (Play, error) {
	s, err := shape.Match(selected)
	if err != nil {
		return Play{}, err
	}
	if !h.Contains(s) {
		return Play{}, consts.ErrorsInsufficientCards.With("%s is not held in %s", s, h)
	}
	return Play{shape: s}, nil
}

// Of is From restricted to a single kind.
func Of(h hand.Hand, selected card.Counts, kind shape.Kind) (Play, error) {
	p, err := From(h, selected)
	if err != nil {
		return Play{}, err
	}
	if p.Kind() != kind {
		return Play{}, consts.ErrorsUnrecognizedShape.With("%s is not a %s", p, kind)
	}
	return p, nil
}

func (p Play) Shape() shape.Shape {
	return p.shape
}

func (p Play) Kind() shape.Kind {
	return p.shape.Kind()
}

func (p Play) Primary() card.Rank {
	return p.shape.Primary()
}

func (p Play) Length() int {
	return p.shape.Length()
}

func (p Play) Counts() card.Counts {
	return p.shape.Counts()
}

func (p Play) Core() []card.Rank {
	return p.shape.Core()
}

func (p Play) Wings() []card.Rank {
	return p.shape.Wings()
}

// Cards is the number of cards the play spends.
func (p Play) Cards() int {
	return p.shape.Cards()
}

func (p Play) String() string {
	return p.shape.String()
}
