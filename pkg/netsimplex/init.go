package netsimplex

import "math"

// bigMCost computes the artificial-arc cost (spec.md §4.2): for exact
// integer types, TYPE_MAX/2+1; for floating types, (1+maxRealCost)*N.
func bigMCost[T Number](maxRealCost T, n int) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return T((1 + float64(maxRealCost)) * float64(n))
	default:
		return T(math.MaxInt64/2 + 1)
	}
}

// init resets all flows/states and rebuilds the basis from scratch: a star
// of dummy arcs rooted at the artificial node, per spec.md §4.2. Called by
// Run; never by ReRun.
func (s *Solver[T]) init() {
	root := s.root

	var sumSupply T
	var maxRealCost T
	for e := ArcID(s.n); e < ArcID(s.n+s.numRealArcs); e++ {
		if c := s.arcCost[e]; c > maxRealCost {
			maxRealCost = c
		}
		s.arcFlow[e] = 0
		s.arcState[e] = stateAtLower
	}
	for i := 0; i < s.n; i++ {
		sumSupply += s.supply[i]
	}
	s.artCost = bigMCost(maxRealCost, s.n)

	// Root installation.
	s.supply[root] = -sumSupply
	s.pi[root] = 0
	s.parent[root] = noNode
	s.pred[root] = noArc
	s.thread[root] = 0
	s.revThread[0] = root
	s.succNum[root] = int32(s.n + 1)
	s.lastSucc[root] = NodeID(s.n - 1)

	for u := 0; u < s.n; u++ {
		uid := NodeID(u)
		e := ArcID(u)
		sup := s.supply[uid]
		if sup >= 0 {
			s.arcSource[e] = uid
			s.arcTarget[e] = root
			s.arcFlow[e] = sup
			s.arcCost[e] = 0
			s.pi[uid] = 0
			s.predDir[uid] = dirUp
		} else {
			s.arcSource[e] = root
			s.arcTarget[e] = uid
			s.arcFlow[e] = -sup
			s.arcCost[e] = s.artCost
			s.pi[uid] = s.artCost
			s.predDir[uid] = dirDown
		}
		s.arcState[e] = stateTree

		s.parent[uid] = root
		s.pred[uid] = e
		s.thread[uid] = NodeID(u + 1)
		s.revThread[u+1] = uid
		s.succNum[uid] = 1
		s.lastSucc[uid] = uid
	}

	s.nextArc = ArcID(s.n)
	s.iterations = 0
	s.status = StatusOptimal
}
