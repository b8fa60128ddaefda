package netsimplex

import "sync"

// augment pushes delta units of flow around the cycle closed by the
// entering arc (spec.md §4.5). The two walks from each cycle endpoint up to
// the join touch disjoint sets of pred arcs by construction, so they are
// safe to run concurrently; parallelAugmentThreshold gates that optional
// fan-out to cycles whose two walks together are long enough for it to pay
// for the goroutine overhead (spec.md §5's "one optional data-parallel section").
const parallelAugmentThreshold = 256

func (s *Solver[T]) augment(info pivotInfo[T]) {
	delta := info.delta
	s.arcFlow[info.inArc] += delta

	uSource := s.arcSource[info.inArc]
	uTarget := s.arcTarget[info.inArc]
	firstDepth := s.depthTo(uSource, info.join)
	secondDepth := s.depthTo(uTarget, info.join)

	if delta != 0 && firstDepth+secondDepth >= parallelAugmentThreshold {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.walkAugment(uSource, info.join, -delta)
		}()
		go func() {
			defer wg.Done()
			s.walkAugment(uTarget, info.join, delta)
		}()
		wg.Wait()
	} else {
		s.walkAugment(uSource, info.join, -delta)
		s.walkAugment(uTarget, info.join, delta)
	}

	s.arcState[info.inArc] = stateTree
	leavingArc := s.pred[info.uOut]
	s.arcState[leavingArc] = stateAtLower

	// A dummy arc (id < n) that just left the tree is, by the pivot math
	// above, pushed to exactly its lower bound. Nonzero flow here — as
	// opposed to a dummy arc still in the tree at termination, which
	// checkFeasibility legitimately reports as StatusInfeasible — means the
	// pivot arithmetic itself is wrong (spec.md §7).
	if leavingArc < ArcID(s.n) {
		invariant(floatAbs(s.arcFlow[leavingArc]) <= feasibilityTolerance,
			"dummy arc left the basis carrying non-zero flow")
	}
}

func (s *Solver[T]) walkAugment(from, to NodeID, signedDelta T) {
	for u := from; u != to; u = s.parent[u] {
		e := s.pred[u]
		s.arcFlow[e] += T(s.predDir[u]) * signedDelta
	}
}

func (s *Solver[T]) depthTo(from, to NodeID) int {
	d := 0
	for u := from; u != to; u = s.parent[u] {
		d++
	}
	return d
}
