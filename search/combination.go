package search

import "github.com/ratel-online/landlord/card"

// combinations calls yield with every k sized subset of ranks, in
// lexicographic order, until yield returns false. The slice passed to
// yield is reused between calls. Only the current subset is ever held.
func combinations(ranks []card.Rank, k int, yield func([]card.Rank) bool) bool {
	if k < 0 || k > len(ranks) {
		return true
	}
	picked := make([]card.Rank, 0, k)
	var walk func(start int) bool
	walk = func(start int) bool {
		if len(picked) == k {
			return yield(picked)
		}
		for i := start; i <= len(ranks)-(k-len(picked)); i++ {
			picked = append(picked, ranks[i])
			if !walk(i + 1) {
				return false
			}
			picked = picked[:len(picked)-1]
		}
		return true
	}
	return walk(0)
}

func holdsRocket(ranks []card.Rank) bool {
	black, red := false, false
	for _, r := range ranks {
		black = black || r == card.BlackJoker
		red = red || r == card.RedJoker
	}
	return black && red
}
