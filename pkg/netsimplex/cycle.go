package netsimplex

// findJoin returns the join node (lowest common ancestor, in the basis
// tree, of u and v): spec.md §4.4. Runs in O(tree depth) by always
// advancing whichever of u, v has the smaller subtree.
func (s *Solver[T]) findJoin(u, v NodeID) NodeID {
	for u != v {
		if s.succNum[u] < s.succNum[v] {
			u = s.parent[u]
		} else {
			v = s.parent[v]
		}
	}
	return u
}

// pivotInfo is the set of values a single pivot computes and threads
// through cycle discovery, augmentation, tree update and potential update.
type pivotInfo[T Number] struct {
	inArc       ArcID
	join        NodeID
	uIn, vIn    NodeID
	uOut, vOut  NodeID
	delta       T
	unbounded   bool
}

// findLeavingArc walks both endpoints of the entering arc up to the join
// node, computing each tree arc's residual with respect to the cycle
// direction the entering arc imposes, and returns the leaving arc's
// information (spec.md §4.4). first/second asymmetric tie-breaking
// (strict "<" on the first walk, "<=" on the second) is Cunningham's
// anti-cycling rule and must not be made symmetric.
func (s *Solver[T]) findLeavingArc(inArc ArcID) pivotInfo[T] {
	first := s.arcSource[inArc]
	second := s.arcTarget[inArc]
	join := s.findJoin(first, second)

	info := pivotInfo[T]{inArc: inArc, join: join}

	// delta starts at the entering arc's own capacity, INF in this
	// uncapacitated engine, exactly as the leaving-arc search in
	// original_source/include/KWD_NetSimplexCapacity.h initializes it to
	// _cap[in_arc].
	delta := maxValue[T]()
	var out NodeID // the node whose pred arc leaves the basis
	found := false
	outIsFirstSide := true

	// Walk from `first` up to join: against-flow iff predDir==dirDown. Every
	// arc is uncapacitated (no finite cap field exists), so the
	// against-direction residual is always literal infinity, mirroring the
	// original's "c >= MAX ? INF : c - d" guard rather than computing
	// MAX - flow.
	for u := first; u != join; u = s.parent[u] {
		e := s.pred[u]
		residual := s.arcFlow[e]
		if s.predDir[u] == dirDown {
			residual = maxValue[T]()
		}
		if residual < delta {
			delta = residual
			out = u
			found = true
			outIsFirstSide = true
		}
	}

	// Walk from `second` up to join: against-flow iff predDir==dirUp. Ties
	// use "<=" so the leaving arc can move to this side on a degenerate
	// pivot (Cunningham's rule).
	for u := second; u != join; u = s.parent[u] {
		e := s.pred[u]
		residual := s.arcFlow[e]
		if s.predDir[u] == dirUp {
			residual = maxValue[T]()
		}
		if residual <= delta {
			delta = residual
			out = u
			found = true
			outIsFirstSide = false
		}
	}

	if !found || delta >= maxValue[T]() {
		info.unbounded = true
		return info
	}

	info.delta = delta
	if outIsFirstSide {
		info.uOut = out
		info.vOut = s.parent[out]
		info.uIn = first
		info.vIn = second
	} else {
		info.uOut = out
		info.vOut = s.parent[out]
		info.uIn = second
		info.vIn = first
	}
	return info
}

// maxValue returns a value that acts as +infinity for residual-capacity
// comparisons in the uncapacitated variant (spec.md §4.4: "taken as INF -
// flow"); arcs never have a finite upper bound, so this sentinel never
// dominates a Big-M dummy arc's residual.
func maxValue[T Number]() T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(float64(1e300)).(T)
	default:
		return T(1<<62 - 1)
	}
}
