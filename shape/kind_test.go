package shape_test

import (
	"testing"

	"github.com/ratel-online/landlord/shape"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	kinds := shape.Kinds()
	require.Len(t, kinds, 14)
	require.Equal(t, shape.Solo, kinds[0])
	require.Equal(t, shape.Rocket, kinds[len(kinds)-1])
	require.False(t, shape.None.Valid())
	require.Equal(t, "None", shape.None.String())
	for _, k := range kinds {
		require.True(t, k.Valid())
		require.NotEqual(t, "None", k.String())
	}
}

func TestKindDescriptors(t *testing.T) {
	scenarios := []struct {
		kind      shape.Kind
		unit      int
		minLength int
		wingSize  int
		wings     int
		category  int
	}{
		{kind: shape.Solo, unit: 1, minLength: 1},
		{kind: shape.SoloChain, unit: 1, minLength: 5},
		{kind: shape.PairChain, unit: 2, minLength: 3},
		{kind: shape.Airplane, unit: 3, minLength: 2},
		{kind: shape.TrioWithPair, unit: 3, minLength: 1, wingSize: 2, wings: 1},
		{kind: shape.AirplaneWithSolos, unit: 3, minLength: 2, wingSize: 1, wings: 2},
		{kind: shape.FourWithDualSolo, unit: 4, minLength: 1, wingSize: 1, wings: 2},
		{kind: shape.FourWithDualPair, unit: 4, minLength: 1, wingSize: 2, wings: 2},
		{kind: shape.Bomb, unit: 4, minLength: 1, category: 1},
		{kind: shape.Rocket, unit: 1, minLength: 1, category: 2},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.kind.String(), func(t *testing.T) {
			require.Equal(t, scenario.unit, scenario.kind.Unit())
			require.Equal(t, scenario.minLength, scenario.kind.MinLength())
			require.Equal(t, scenario.wingSize, scenario.kind.WingSize())
			require.Equal(t, scenario.wings, scenario.kind.Wings(scenario.minLength))
			require.Equal(t, scenario.category, scenario.kind.Category())
			require.Equal(t, scenario.category > 0, scenario.kind.IsTrump())
		})
	}
}
