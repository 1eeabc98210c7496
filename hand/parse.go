package hand

import (
	"strings"

	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/util/poker"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

// Parse reads a hand typed as ratel poker aliases, one alias per card,
// the way players type their sells.
func Parse(aliases string) (Hand, error) {
	c := card.Counts{}
	for _, alias := range strings.ToLower(aliases) {
		if alias == ' ' || alias == ',' {
			continue
		}
		r, ok := card.RankOfKey(poker.GetKey(string(alias)))
		if !ok {
			return Hand{}, consts.ErrorsUnknownPokerAlias.With("%q", alias)
		}
		c[r]++
	}
	return New(c)
}

// FromPokers counts ratel pokers by key.
func FromPokers(pokers model.Pokers) (Hand, error) {
	c := card.Counts{}
	for _, p := range pokers {
		r, ok := card.RankOfKey(p.Key)
		if !ok {
			return Hand{}, consts.ErrorsInvalidCount.With("unknown poker key %d", p.Key)
		}
		c[r]++
	}
	return New(c)
}

// Aliases renders h as ratel poker aliases, strongest first.
func (h Hand) Aliases() string {
	buf := strings.Builder{}
	for _, key := range consts.MnemonicSorted {
		r, _ := card.RankOfKey(key)
		alias := poker.GetAlias(key)
		for i := 0; i < h.counts[r]; i++ {
			buf.WriteString(alias)
		}
	}
	return buf.String()
}
