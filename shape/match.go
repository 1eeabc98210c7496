package shape

import (
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/rule"
)

// groups holds the selected ranks by multiplicity: groups[n] lists the
// ranks selected exactly n times, weakest first.
type groups [consts.MaxOrdinary + 1][]card.Rank

func group(c card.Counts) groups {
	g := groups{}
	for _, r := range c.Ranks() {
		g[c[r]] = append(g[c[r]], r)
	}
	return g
}

func (g groups) solos() []card.Rank { return g[1] }
func (g groups) pairs() []card.Rank { return g[2] }
func (g groups) trios() []card.Rank { return g[3] }
func (g groups) fours() []card.Rank { return g[4] }

func isRocket(ranks []card.Rank) bool {
	return len(ranks) == 2 && ranks[0] == card.BlackJoker && ranks[1] == card.RedJoker
}

// holdsRocket reports whether both jokers are among the ranks.
func holdsRocket(ranks []card.Rank) bool {
	n := len(ranks)
	return n >= 2 && ranks[n-2] == card.BlackJoker && ranks[n-1] == card.RedJoker
}

func isStraight(ranks []card.Rank, unit int) bool {
	return rule.LandlordRules.IsStraight(rule.Faces(ranks), unit)
}

// Match recognizes the play formed by exactly the selected cards.
// Every selected card must be consumed by the shape; leftovers are
// a rejection, not a partial match.
func Match(c card.Counts) (Shape, error) {
	if err := c.Validate(); err != nil {
		return Shape{}, err
	}
	g := group(c)
	solos, pairs, trios, fours := g.solos(), g.pairs(), g.trios(), g.fours()
	var (
		kind   Kind
		core   []card.Rank
		length = 1
	)
	switch {
	case len(fours) > 0:
		if len(fours) != 1 || len(trios) != 0 {
			break
		}
		core = fours
		switch {
		case len(solos) == 0 && len(pairs) == 0:
			kind = Bomb
		case len(solos) == 2 && len(pairs) == 0 && !isRocket(solos):
			kind = FourWithDualSolo
		case len(pairs) == 2 && len(solos) == 0:
			kind = FourWithDualPair
		}
	case len(trios) == 1:
		core = trios
		switch {
		case len(solos) == 0 && len(pairs) == 0:
			kind = Trio
		case len(solos) == 1 && len(pairs) == 0:
			kind = TrioWithSolo
		case len(pairs) == 1 && len(solos) == 0:
			kind = TrioWithPair
		}
	case len(trios) > 1:
		if !isStraight(trios, 3) {
			break
		}
		core, length = trios, len(trios)
		switch {
		case len(solos) == 0 && len(pairs) == 0:
			kind = Airplane
		case len(solos) == length && len(pairs) == 0 && !holdsRocket(solos):
			kind = AirplaneWithSolos
		case len(pairs) == length && len(solos) == 0:
			kind = AirplaneWithPairs
		}
	case len(pairs) > 0:
		if len(solos) != 0 {
			break
		}
		core = pairs
		switch {
		case len(pairs) == 1:
			kind = Pair
		case isStraight(pairs, 2):
			kind, length = PairChain, len(pairs)
		}
	case len(solos) > 0:
		core = solos
		switch {
		case len(solos) == 1:
			kind = Solo
		case isRocket(solos):
			kind = Rocket
		case isStraight(solos, 1):
			kind, length = SoloChain, len(solos)
		}
	}
	if kind == None {
		return Shape{}, consts.ErrorsUnrecognizedShape.With("%d cards of %d ranks", c.Len(), len(c.Ranks()))
	}
	return Shape{kind: kind, primary: core[0], length: length, counts: c}, nil
}

// MatchKind is Match restricted to a single kind.
func MatchKind(c card.Counts, kind Kind) (Shape, error) {
	s, err := Match(c)
	if err != nil {
		return Shape{}, err
	}
	if s.kind != kind {
		return Shape{}, consts.ErrorsUnrecognizedShape.With("%s is not a %s", s, kind)
	}
	return s, nil
}
