package shape

import "github.com/ratel-online/landlord/rule"

// Kind is a play category. The zero value is None and matches nothing.
type Kind int

const (
	None Kind = iota
	Solo
	Pair
	Trio
	TrioWithSolo
	TrioWithPair
	SoloChain
	PairChain
	Airplane
	AirplaneWithSolos
	AirplaneWithPairs
	Bomb
	FourWithDualSolo
	FourWithDualPair
	Rocket
)

type descriptor struct {
	name         string
	unit         int
	chained      bool
	wingSize     int
	wingsPerUnit int
}

var descriptors = map[Kind]descriptor{
	Solo:              {name: "Solo", unit: 1},
	Pair:              {name: "Pair", unit: 2},
	Trio:              {name: "Trio", unit: 3},
	TrioWithSolo:      {name: "TrioWithSolo", unit: 3, wingSize: 1, wingsPerUnit: 1},
	TrioWithPair:      {name: "TrioWithPair", unit: 3, wingSize: 2, wingsPerUnit: 1},
	SoloChain:         {name: "SoloChain", unit: 1, chained: true},
	PairChain:         {name: "PairChain", unit: 2, chained: true},
	Airplane:          {name: "Airplane", unit: 3, chained: true},
	AirplaneWithSolos: {name: "AirplaneWithSolos", unit: 3, chained: true, wingSize: 1, wingsPerUnit: 1},
	AirplaneWithPairs: {name: "AirplaneWithPairs", unit: 3, chained: true, wingSize: 2, wingsPerUnit: 1},
	Bomb:              {name: "Bomb", unit: 4},
	FourWithDualSolo:  {name: "FourWithDualSolo", unit: 4, wingSize: 1, wingsPerUnit: 2},
	FourWithDualPair:  {name: "FourWithDualPair", unit: 4, wingSize: 2, wingsPerUnit: 2},
	Rocket:            {name: "Rocket", unit: 1},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(descriptors))
	for k := Solo; k <= Rocket; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) Valid() bool {
	_, ok := descriptors[k]
	return ok
}

func (k Kind) String() string {
	if d, ok := descriptors[k]; ok {
		return d.name
	}
	return "None"
}

// Unit is the number of cards each core rank contributes.
func (k Kind) Unit() int {
	return descriptors[k].unit
}

func (k Kind) Chained() bool {
	return descriptors[k].chained
}

// MinLength is the shortest core run of k.
func (k Kind) MinLength() int {
	if !k.Valid() {
		return 0
	}
	if k.Chained() {
		return rule.LandlordRules.MinChain(k.Unit())
	}
	return 1
}

// WingSize is the number of cards in each wing: 0, 1 or 2.
func (k Kind) WingSize() int {
	return descriptors[k].wingSize
}

// Wings returns how many wing ranks a core run of the given length carries.
func (k Kind) Wings(length int) int {
	return descriptors[k].wingsPerUnit * length
}

// IsTrump reports whether k beats every non trump play.
func (k Kind) IsTrump() bool {
	return k == Bomb || k == Rocket
}

// Category is the dominance level of k: 2 for the rocket, 1 for bombs,
// 0 for everything else.
func (k Kind) Category() int {
	switch k {
	case Rocket:
		return 2
	case Bomb:
		return 1
	}
	return 0
}
