package netsimplex

// updatePotential shifts the dual potential of every node in u_in's moved
// subtree by sigma, the exact amount needed to zero the entering arc's
// reduced cost (spec.md §4.7). The subtree is walked via thread, from u_in
// up to (but not including) thread[last_succ[u_in]].
func (s *Solver[T]) updatePotential(info pivotInfo[T]) {
	sigma := s.pi[info.vIn] - s.pi[info.uIn] - T(s.predDir[info.uIn])*s.arcCost[info.inArc]
	end := s.thread[s.lastSucc[info.uIn]]
	for u := info.uIn; u != end; u = s.thread[u] {
		s.pi[u] += sigma
	}
}
