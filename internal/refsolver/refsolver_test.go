package refsolver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinCostFlowTwoSourceTwoSink(t *testing.T) {
	supply := []int64{3, 2, -1, -4}
	arcs := []SupplyArc{
		{0, 2, 1},
		{0, 3, 4},
		{1, 2, 2},
		{1, 3, 3},
	}

	cost, err := MinCostFlow(supply, arcs)
	require.NoError(t, err)
	require.Equal(t, int64(15), cost)
}

func TestMinCostFlowTrivial(t *testing.T) {
	cost, err := MinCostFlow([]int64{1, -1}, []SupplyArc{{0, 1, 7}})
	require.NoError(t, err)
	require.Equal(t, int64(7), cost)
}

func TestMinCostFlowInfeasibleWhenDisconnected(t *testing.T) {
	_, err := MinCostFlow([]int64{1, -1}, nil)
	require.Error(t, err)
}

func TestMinCostFlowDegenerateCycleCostsNothing(t *testing.T) {
	supply := []int64{0, 0, 0, 0}
	arcs := []SupplyArc{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1},
	}
	cost, err := MinCostFlow(supply, arcs)
	require.NoError(t, err)
	require.Equal(t, int64(0), cost)
}
