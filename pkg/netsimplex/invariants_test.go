package netsimplex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// InvariantsSuite exercises spec.md §8's six invariant properties against a
// constructed two-source, two-sink instance (S2), which is small enough to
// hand-check but exercises both init() and a handful of real pivots.
type InvariantsSuite struct {
	suite.Suite
	sv *Solver[int64]
}

func TestInvariantsSuite(t *testing.T) {
	suite.Run(t, new(InvariantsSuite))
}

func (s *InvariantsSuite) SetupTest() {
	sv, err := New[int64](4, 4, ModeFull)
	s.Require().NoError(err)
	s.Require().NoError(sv.AddNode(0, 3))
	s.Require().NoError(sv.AddNode(1, 2))
	s.Require().NoError(sv.AddNode(2, -1))
	s.Require().NoError(sv.AddNode(3, -4))
	_, err = sv.AddArc(0, 2, 1)
	s.Require().NoError(err)
	_, err = sv.AddArc(0, 3, 4)
	s.Require().NoError(err)
	_, err = sv.AddArc(1, 2, 2)
	s.Require().NoError(err)
	_, err = sv.AddArc(1, 3, 3)
	s.Require().NoError(err)
	s.sv = sv
}

func (s *InvariantsSuite) TestProperty1_BasisConsistency() {
	status := s.sv.Run(RuleBlockSearch)
	require.Equal(s.T(), StatusOptimal, status)

	n := s.sv.n
	root := s.sv.root

	// thread/rev_thread are mutual inverses.
	for u := NodeID(0); u <= root; u++ {
		require.Equal(s.T(), u, s.sv.revThread[s.sv.thread[u]], "node %d", u)
	}

	// The parent chain from every real node reaches root.
	for u := 0; u < n; u++ {
		depth := 0
		for v := NodeID(u); v != root; v = s.sv.parent[v] {
			depth++
			require.Less(s.T(), depth, n+2, "parent chain from %d did not reach root", u)
		}
	}

	// succ_num matches a freshly computed subtree size via the parent array.
	want := make([]int32, n+1)
	for u := 0; u <= n; u++ {
		for v := NodeID(u); ; v = s.sv.parent[v] {
			want[v]++
			if v == root {
				break
			}
		}
	}
	for u := 0; u <= n; u++ {
		require.Equal(s.T(), want[u], s.sv.succNum[u], "succ_num mismatch at node %d", u)
	}
}

func (s *InvariantsSuite) TestProperty2_OptimalityCertificate() {
	status := s.sv.Run(RuleBlockSearch)
	require.Equal(s.T(), StatusOptimal, status)

	for e := ArcID(0); e < ArcID(s.sv.n+s.sv.numRealArcs); e++ {
		if s.sv.arcState[e] == stateTree {
			continue
		}
		cert := float64(s.sv.arcState[e]) * float64(s.sv.reducedCost(e))
		require.GreaterOrEqual(s.T(), cert, -s.sv.cfg.optTolerance, "arc %d violates optimality certificate", e)
	}
}

func (s *InvariantsSuite) TestProperty3_FlowBalance() {
	status := s.sv.Run(RuleBlockSearch)
	require.Equal(s.T(), StatusOptimal, status)

	balance := make([]int64, s.sv.n)
	for e := ArcID(s.sv.n); e < ArcID(s.sv.n+s.sv.numRealArcs); e++ {
		balance[s.sv.arcSource[e]] += s.sv.arcFlow[e]
		balance[s.sv.arcTarget[e]] -= s.sv.arcFlow[e]
	}
	for u := 0; u < s.sv.n; u++ {
		require.Equal(s.T(), s.sv.supply[u], balance[u], "flow imbalance at node %d", u)
	}
}

func (s *InvariantsSuite) TestProperty4_DummyZeroAtOptimum() {
	status := s.sv.Run(RuleBlockSearch)
	require.Equal(s.T(), StatusOptimal, status)

	for e := ArcID(0); e < ArcID(s.sv.n); e++ {
		require.Zero(s.T(), s.sv.arcFlow[e], "dummy arc %d carries flow at optimum", e)
	}
}

func (s *InvariantsSuite) TestProperty5_RoundTripCost() {
	status := s.sv.Run(RuleBlockSearch)
	require.Equal(s.T(), StatusOptimal, status)

	var external int64
	for e := ArcID(s.sv.n); e < ArcID(s.sv.n+s.sv.numRealArcs); e++ {
		external += s.sv.arcFlow[e] * s.sv.arcCost[e]
	}
	require.Equal(s.T(), external, s.sv.TotalCost())
	require.Equal(s.T(), int64(15), s.sv.TotalCost())
}

func (s *InvariantsSuite) TestProperty6_WarmStartIdempotence() {
	status := s.sv.Run(RuleBlockSearch)
	require.Equal(s.T(), StatusOptimal, status)

	cost := s.sv.TotalCost()
	iters := s.sv.Iterations()

	status = s.sv.ReRun(RuleBlockSearch)
	require.Equal(s.T(), StatusOptimal, status)
	require.Equal(s.T(), iters, s.sv.Iterations(), "reRun on an optimal basis performed extra pivots")
	require.Equal(s.T(), cost, s.sv.TotalCost())
}
