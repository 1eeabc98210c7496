package play

import "github.com/ratel-online/landlord/consts"

// Compare orders p against o: -1 when p is weaker, 0 when equal, 1 when
// stronger. The rocket beats bombs and bombs beat every other kind.
// Apart from that, only plays of the same kind and run length compare,
// by primary rank; wings never count. Other pairs of plays fail with
// ErrorsIncomparablePlays.
func (p Play) Compare(o Play) (int, error) {
	mine, theirs := p.Kind(), o.Kind()
	if !mine.Valid() || !theirs.Valid() {
		return 0, consts.ErrorsIncomparablePlays.With("invalid play")
	}
	if mine != theirs {
		if !mine.IsTrump() && !theirs.IsTrump() {
			return 0, consts.ErrorsIncomparablePlays.With("%s against %s", mine, theirs)
		}
		if mine.Category() < theirs.Category() {
			return -1, nil
		}
		return 1, nil
	}
	if p.Length() != o.Length() {
		return 0, consts.ErrorsIncomparablePlays.With("%s of length %d against length %d", mine, p.Length(), o.Length())
	}
	return p.Primary().Compare(o.Primary()), nil
}

// Comparable reports whether Compare succeeds.
func (p Play) Comparable(o Play) bool {
	_, err := p.Compare(o)
	return err == nil
}

// Beats reports whether p is strictly stronger than o.
func (p Play) Beats(o Play) bool {
	c, err := p.Compare(o)
	return err == nil && c > 0
}
