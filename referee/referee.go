// Package referee judges sells the way the ratel play loop does, on top of
// the stateless rules engine. It keeps no state between calls.
package referee

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/hand"
	"github.com/ratel-online/landlord/play"
	"github.com/ratel-online/landlord/search"
	"github.com/ratel-online/landlord/shape"
)

// Judge checks that sell is a play held in h and, when last is not nil,
// that it beats last.
func Judge(h hand.Hand, sell card.Counts, last *play.Play) (play.Play, error) {
	p, err := play.From(h, sell)
	if err != nil {
		return play.Play{}, err
	}
	if last == nil {
		return p, nil
	}
	c, err := p.Compare(*last)
	if err != nil {
		return play.Play{}, err
	}
	if c <= 0 {
		return play.Play{}, consts.ErrorsPokersFacesInvalid.With("%s does not beat %s", p, last)
	}
	return p, nil
}

// JudgePokers is Judge over ratel pokers.
func JudgePokers(held, sell model.Pokers, last *play.Play) (play.Play, error) {
	h, err := hand.FromPokers(held)
	if err != nil {
		log.Error(err)
		return play.Play{}, err
	}
	s, err := hand.FromPokers(sell)
	if err != nil {
		log.Error(err)
		return play.Play{}, err
	}
	p, err := Judge(h, s.Counts(), last)
	if err != nil {
		log.Infof("sell %s rejected: %v\n", s, err)
		return play.Play{}, err
	}
	return p, nil
}

// MustPlay reports whether h holds a play that beats last. A leading
// player, with last nil, must play whenever any card is left.
func MustPlay(h hand.Hand, last *play.Play) bool {
	if last == nil {
		return !h.IsEmpty()
	}
	for range search.Beating(h, *last) {
		return true
	}
	return false
}

// Hint suggests a play. When last is nil it leads with the weakest single
// card; otherwise it returns the first play that beats last.
func Hint(h hand.Hand, last *play.Play) (play.Play, bool) {
	if last == nil {
		for p := range search.Plays(h, shape.Solo) {
			return p, true
		}
		return play.Play{}, false
	}
	for p := range search.Beating(h, *last) {
		return p, true
	}
	return play.Play{}, false
}
