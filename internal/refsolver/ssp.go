package refsolver

import "fmt"

// solveSSP runs successive shortest augmenting paths from src to dst,
// maintaining node potentials so every later Dijkstra pass only ever sees
// non-negative reduced costs, grounded on
// pkg/scheduling/algorithms/mcmf/mcmf.go's SuccessiveShortestPathWithDijkstra
// (same potential-update step: reachable nodes absorb the pass's distance,
// unreachable nodes hold their potential). Requires every arc's cost to be
// non-negative before any flow is pushed, which holds for the
// super-source/super-sink construction MinCostFlow builds.
func solveSSP(g *Graph, src, dst NodeID) (flow int64, cost int64) {
	potential := make([]int64, g.NumNodes())

	for {
		res := reducedCostDijkstra(g, src, potential)
		if !res.reachable[dst] {
			return flow, cost
		}

		// bottleneck residual capacity along the augmenting path
		bottleneck := int64(infDist)
		for v := dst; v != src; {
			arcIdx := res.predArc[v]
			if r := g.residual(arcIdx); r < bottleneck {
				bottleneck = r
			}
			v = g.arcs[arcIdx^1].To
		}

		pathCost := int64(0)
		for v := dst; v != src; {
			arcIdx := res.predArc[v]
			pathCost += g.arcs[arcIdx].Cost
			g.pushFlow(arcIdx, bottleneck)
			v = g.arcs[arcIdx^1].To
		}

		flow += bottleneck
		cost += bottleneck * pathCost

		for u := 0; u < g.NumNodes(); u++ {
			if res.reachable[NodeID(u)] {
				potential[u] -= res.dist[u]
			}
		}
	}
}

// SupplyArc describes one real arc of a min-cost flow instance, mirroring
// netsimplex.Candidate's (Source, Target, Cost) shape so tests can build
// the same instance for both solvers from one slice.
type SupplyArc struct {
	Source, Target NodeID
	Cost           int64
}

// MinCostFlow solves a supply/demand transportation instance: supply[i] > 0
// is a source, supply[i] < 0 is a sink, supply[i] == 0 is transshipment.
// It routes every unit of supply through a synthetic super-source/
// super-sink pair and returns the total cost, or an error if the instance
// cannot absorb all supply (the SSP analogue of netsimplex's
// StatusInfeasible).
func MinCostFlow(supply []int64, arcs []SupplyArc) (int64, error) {
	n := len(supply)
	g := NewGraph(n + 2)
	superSrc := NodeID(n)
	superDst := NodeID(n + 1)

	var totalSupply int64
	for i, s := range supply {
		if s > 0 {
			g.AddArc(superSrc, NodeID(i), s, 0)
			totalSupply += s
		} else if s < 0 {
			g.AddArc(NodeID(i), superDst, -s, 0)
		}
	}
	for _, a := range arcs {
		g.AddArc(a.Source, a.Target, infDist, a.Cost)
	}

	flow, cost := solveSSP(g, superSrc, superDst)
	if flow != totalSupply {
		return 0, fmt.Errorf("refsolver: infeasible, routed %d of %d units of supply", flow, totalSupply)
	}
	return cost, nil
}
