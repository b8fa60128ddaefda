package netsimplex

// Candidate is one arc to (re)introduce via UpdateArcs.
type Candidate[T Number] struct {
	Source, Target NodeID
	Cost           T
}

// UpdateArcs is the column-generation helper from spec.md §4.8: an AtLower
// arc with strictly positive reduced cost is provably non-basic and
// non-improving, so its slot can be reused without disturbing the current
// basis. Existing real arcs are scanned from id n upward; every AtLower arc
// whose reduced cost exceeds 1e-9 is overwritten in place with the next
// unconsumed candidate. Any candidates left over once existing slots run
// out are appended via AddArc. The arc id of the first slot written becomes
// the pivot selector's next scan position, so the freshly introduced arcs
// are seen on the very next findEnteringArc call. UpdateArcs returns the
// number of candidates actually installed (<= len(candidates)).
func (s *Solver[T]) UpdateArcs(candidates []Candidate[T]) (int, error) {
	const reuseTolerance = 1e-9

	installed := 0
	firstWritten := noArc

	for e := ArcID(s.n); e < ArcID(s.n+s.numRealArcs) && installed < len(candidates); e++ {
		if s.arcState[e] != stateAtLower {
			continue
		}
		if float64(s.reducedCost(e)) <= reuseTolerance {
			continue
		}
		c := candidates[installed]
		idx := int(e) - s.n
		if err := s.SetArc(idx, c.Source, c.Target, c.Cost); err != nil {
			return installed, err
		}
		s.arcFlow[e] = 0
		s.arcState[e] = stateAtLower
		if firstWritten == noArc {
			firstWritten = e
		}
		installed++
	}

	for ; installed < len(candidates); installed++ {
		c := candidates[installed]
		id, err := s.AddArc(c.Source, c.Target, c.Cost)
		if err != nil {
			return installed, err
		}
		if firstWritten == noArc {
			firstWritten = id
		}
	}

	if firstWritten != noArc {
		s.nextArc = firstWritten
	}
	return installed, nil
}
