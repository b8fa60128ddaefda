package refsolver

import (
	"container/heap"
	"math"
)

const infDist = math.MaxInt64 / 2

// dijkstraResult holds the shortest-path distances and predecessor arcs
// from a single source, both indexed by node.
type dijkstraResult struct {
	dist       []int64
	predArc    []int // index into g.arcs of the arc that reaches this node, -1 for unreached
	reachable  []bool
}

// reducedCostDijkstra runs Dijkstra over arc.Cost - potential[u] + potential[v]
// (all arcs made non-negative by a feasible potential vector), the same
// reweighting pkg/scheduling/algorithms/mcmf/shortestpath.go's Dijkstra uses
// before the teacher's successive-shortest-path loop subtracts the
// resulting distances back into the potentials.
func reducedCostDijkstra(g *Graph, src NodeID, potential []int64) dijkstraResult {
	n := g.NumNodes()
	res := dijkstraResult{
		dist:      make([]int64, n),
		predArc:   make([]int, n),
		reachable: make([]bool, n),
	}
	for i := range res.dist {
		res.dist[i] = infDist
		res.predArc[i] = -1
	}
	res.dist[src] = 0

	h := &distHeap{{node: src, dist: 0}}
	visited := make([]bool, n)

	for h.Len() > 0 {
		top := heap.Pop(h).(distItem)
		u := top.node
		if visited[u] {
			continue
		}
		visited[u] = true
		res.reachable[u] = true

		for _, arcIdx := range g.adj[u] {
			if g.residual(arcIdx) <= 0 {
				continue
			}
			v := g.arcs[arcIdx].To
			if visited[v] {
				continue
			}
			reduced := g.arcs[arcIdx].Cost - potential[u] + potential[v]
			nd := res.dist[u] + reduced
			if nd < res.dist[v] {
				res.dist[v] = nd
				res.predArc[v] = arcIdx
				heap.Push(h, distItem{node: v, dist: nd})
			}
		}
	}
	return res
}
