package netsimplex

import "math"

// blockSearch implements the Block Search pivot rule (spec.md §4.3),
// grounded on original_source/include/KWD_NetSimplexCapacity.h's
// BlockSearchPivotRule::findEnteringArc: scan arcs in blocks of
// ceil(sqrt(M)), committing the best-below-threshold arc found within a
// block rather than scanning the whole arc set every call.
type blockSearch struct {
	blockSize int
}

const minBlockSize = 20

func newBlockSearch(searchArcNum int) *blockSearch {
	size := int(math.Ceil(math.Sqrt(float64(searchArcNum))))
	if size < minBlockSize {
		size = minBlockSize
	}
	return &blockSearch{blockSize: size}
}

// findEnteringArc scans starting at s.nextArc, wrapping once around the
// real-arc range [n, n+numRealArcs), and returns the best eligible entering arc,
// or noArc if none has reduced cost below -tolerance. s.nextArc is advanced
// past the returned arc so the next call continues the scan.
func (s *Solver[T]) findEnteringArc(bs *blockSearch) ArcID {
	searchArcNum := ArcID(s.n + s.numRealArcs)
	firstReal := ArcID(s.n)
	if searchArcNum <= firstReal {
		return noArc
	}

	threshold := T(math.Nextafter(-s.cfg.optTolerance, 0))

	var best T
	bestArc := noArc
	cnt := bs.blockSize

	scan := func(from, to ArcID) ArcID {
		for e := from; e < to; e++ {
			r := s.signedReducedCost(e)
			if bestArc == noArc || r < best {
				best = r
				bestArc = e
			}
			cnt--
			if cnt == 0 {
				if best < threshold {
					return bestArc
				}
				cnt = bs.blockSize
			}
		}
		return noArc
	}

	if e := scan(s.nextArc, searchArcNum); e != noArc {
		s.nextArc = e + 1
		return e
	}
	if e := scan(firstReal, s.nextArc); e != noArc {
		s.nextArc = e + 1
		return e
	}
	if bestArc != noArc && best < threshold {
		s.nextArc = bestArc + 1
		return bestArc
	}
	return noArc
}

// signedReducedCost is state[e] * reducedCost(e): tree arcs (state 0)
// contribute 0 by invariant 5, AtLower arcs (state +1) contribute their raw
// reduced cost.
func (s *Solver[T]) signedReducedCost(e ArcID) T {
	if s.arcState[e] == stateTree {
		return 0
	}
	return T(s.arcState[e]) * s.reducedCost(e)
}
