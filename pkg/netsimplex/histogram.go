package netsimplex

import (
	"os"

	"github.com/aybabtme/uniplot/histogram"
)

// logCostHistogram prints a cost-distribution histogram of the real arcs
// currently at AtLower, the same pattern the teacher uses to eyeball its
// flow graphs before solving (flowgraph.CopyGraph, algorithms/utils.
// ExamCostModel): bucket the reduced costs, then histogram.Fprint a
// fixed-width ASCII chart. Debug-only; never affects solver behavior.
func (s *Solver[T]) logCostHistogram() {
	costs := make([]float64, 0, s.numRealArcs)
	for e := ArcID(s.n); e < ArcID(s.n+s.numRealArcs); e++ {
		if s.arcState[e] != stateAtLower {
			continue
		}
		costs = append(costs, float64(s.reducedCost(e)))
	}
	if len(costs) == 0 {
		return
	}
	buckets := 20
	if len(costs) < buckets {
		buckets = len(costs)
	}
	hist := histogram.Hist(buckets, costs)
	_ = histogram.Fprint(os.Stdout, hist, histogram.Linear(5))
}
