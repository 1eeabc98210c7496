package rule

import "github.com/ratel-online/landlord/card"

// LandlordRules is the classic three player rule set.
// It satisfies the poker.Rules interface of ratel-online/core, so faces are
// strength values: 1 for the three up to 12 for the ace, 13 for the two,
// 14 and 15 for the jokers.
var LandlordRules = _rules{}

type _rules struct{}

// Value maps a ratel poker key to its strength value.
func (r _rules) Value(key int) int {
	if key == 1 {
		return 12
	} else if key == 2 {
		return 13
	} else if key > 13 {
		return key
	}
	return key - 2
}

// IsStraight reports whether the sorted faces, each held count times,
// form a chain.
func (r _rules) IsStraight(faces []int, count int) bool {
	if len(faces) == 0 {
		return false
	}
	for i := 1; i < len(faces); i++ {
		if faces[i] != faces[i-1]+1 {
			return false
		}
	}
	if _, upper := r.StraightBoundary(); faces[0] < 1 || faces[len(faces)-1] > upper {
		return false
	}
	least := r.MinChain(count)
	return least > 0 && len(faces) >= least
}

func (r _rules) StraightBoundary() (int, int) {
	return 1, 12
}

// Reserved only completes poker.Rules; nothing here reads it.
func (r _rules) Reserved() bool {
	return true
}

// MinChain is the shortest chain of units of the given size: five solos,
// three pairs or two trios. Quads never chain.
func (r _rules) MinChain(count int) int {
	switch count {
	case 1:
		return 5
	case 2:
		return 3
	case 3:
		return 2
	}
	return 0
}

// Faces converts ranks to their strength values under LandlordRules.
func Faces(ranks []card.Rank) []int {
	faces := make([]int, len(ranks))
	for i, r := range ranks {
		faces[i] = LandlordRules.Value(r.Key())
	}
	return faces
}
