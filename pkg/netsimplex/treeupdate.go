package netsimplex

// updateTree splices the entering arc into the basis and the leaving arc
// out of it, restoring invariants 1-4 (spec.md §4.6). It is a direct port
// of the LEMON-derived updateTreeStructure in
// original_source/include/KWD_NetSimplexCapacity.h, which spec.md §4.6
// describes in prose ("the listing specifies the exact six thread/
// rev_thread assignments; implementations must reproduce the effect on the
// permutation") — the six assignments below are exactly that listing.
func (s *Solver[T]) updateTree(info *pivotInfo[T]) {
	uIn, vIn := info.uIn, info.vIn
	uOut := info.uOut
	inArc := info.inArc

	oldRevThread := s.revThread[uOut]
	oldSuccNum := s.succNum[uOut]
	oldLastSucc := s.lastSucc[uOut]
	vOut := s.parent[uOut]
	info.vOut = vOut

	if uIn == uOut {
		// Case A: entering and leaving arcs share an endpoint.
		s.parent[uIn] = vIn
		s.pred[uIn] = inArc
		if uIn == s.arcSource[inArc] {
			s.predDir[uIn] = dirUp
		} else {
			s.predDir[uIn] = dirDown
		}

		if s.thread[vIn] != uOut {
			after := s.thread[oldLastSucc]
			s.thread[oldRevThread] = after
			s.revThread[after] = oldRevThread
			after = s.thread[vIn]
			s.thread[vIn] = uOut
			s.revThread[uOut] = vIn
			s.thread[oldLastSucc] = after
			s.revThread[after] = oldLastSucc
		}
	} else {
		var threadContinue NodeID
		if oldRevThread == vIn {
			threadContinue = s.thread[oldLastSucc]
		} else {
			threadContinue = s.thread[vIn]
		}

		stem := uIn
		parStem := vIn
		last := s.lastSucc[uIn]
		after := s.thread[last]
		s.thread[vIn] = uIn

		dirtyRevs := s.dirtyRevs[:0]
		dirtyRevs = append(dirtyRevs, vIn)

		for stem != uOut {
			nextStem := s.parent[stem]
			s.thread[last] = nextStem
			dirtyRevs = append(dirtyRevs, last)

			before := s.revThread[stem]
			s.thread[before] = after
			s.revThread[after] = before

			s.parent[stem] = parStem
			parStem = stem
			stem = nextStem

			if s.lastSucc[stem] == s.lastSucc[parStem] {
				last = s.revThread[parStem]
			} else {
				last = s.lastSucc[stem]
			}
			after = s.thread[last]
		}
		s.parent[uOut] = parStem
		s.thread[last] = threadContinue
		s.revThread[threadContinue] = last
		s.lastSucc[uOut] = last

		if oldRevThread != vIn {
			s.thread[oldRevThread] = after
			s.revThread[after] = oldRevThread
		}

		for _, u := range dirtyRevs {
			s.revThread[s.thread[u]] = u
		}
		s.dirtyRevs = dirtyRevs[:0]

		tmpSc := int32(0)
		tmpLs := s.lastSucc[uOut]
		for u, p := uOut, s.parent[uOut]; u != uIn; u, p = p, s.parent[p] {
			s.pred[u] = s.pred[p]
			s.predDir[u] = -s.predDir[p]
			tmpSc += s.succNum[u] - s.succNum[p]
			s.succNum[u] = tmpSc
			s.lastSucc[p] = tmpLs
		}
		s.pred[uIn] = inArc
		if uIn == s.arcSource[inArc] {
			s.predDir[uIn] = dirUp
		} else {
			s.predDir[uIn] = dirDown
		}
		s.succNum[uIn] = oldSuccNum
	}

	// Propagate last_succ from v_in towards the root.
	upLimitOut := noNode
	if s.lastSucc[info.join] == vIn {
		upLimitOut = info.join
	}
	lastSuccOut := s.lastSucc[uOut]
	for u := vIn; u != noNode && s.lastSucc[u] == vIn; u = s.parent[u] {
		s.lastSucc[u] = lastSuccOut
	}

	// Propagate last_succ from v_out towards the root.
	if info.join != oldRevThread && vIn != oldRevThread {
		for u := vOut; u != upLimitOut && s.lastSucc[u] == oldLastSucc; u = s.parent[u] {
			s.lastSucc[u] = oldRevThread
		}
	} else if lastSuccOut != oldLastSucc {
		for u := vOut; u != upLimitOut && s.lastSucc[u] == oldLastSucc; u = s.parent[u] {
			s.lastSucc[u] = lastSuccOut
		}
	}

	for u := vIn; u != info.join; u = s.parent[u] {
		s.succNum[u] += oldSuccNum
	}
	for u := vOut; u != info.join; u = s.parent[u] {
		s.succNum[u] -= oldSuccNum
	}
}
