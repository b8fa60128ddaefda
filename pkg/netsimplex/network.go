package netsimplex

import (
	"time"
)

// Solver is the network simplex engine. All per-node and per-arc state is
// held in parallel slices indexed by NodeID/ArcID; there are no per-node or
// per-arc heap objects, so a pivot's array writes stay in O(tree depth)
// regardless of instance size (spec.md §2, §9).
type Solver[T Number] struct {
	cfg config

	n    int // number of real nodes (0..n-1); root is node n
	root NodeID

	// Node-indexed arrays, size n+1 (root included at index n).
	supply    []T
	pi        []T
	parent    []NodeID
	pred      []ArcID
	predDir   []direction
	thread    []NodeID
	revThread []NodeID
	succNum   []int32
	lastSucc  []NodeID

	// Arc-indexed arrays. Dummy arcs occupy ids 0..n-1; real arcs occupy
	// ids n..n+numRealArcs-1.
	arcSource []NodeID
	arcTarget []NodeID
	arcCost   []T
	arcFlow   []T
	arcState  []arcState

	numRealArcs int // count of real arcs added so far
	mode        InitMode

	dirtyRevs []NodeID // scratch buffer reused by updateTree

	artCost T

	// Pivot-selector cursor (block search), preserved across ReRun.
	nextArc ArcID

	status     Status
	iterations uint64
	startedAt  time.Time
	elapsed    time.Duration
	ran        bool
}

// New constructs a Solver for a problem with at most nodeNum real nodes and
// (a hint of) arcNum real arcs. mode controls how much arc storage is
// reserved up front: ModeFull reserves 2N+M+1 entries, ModeEmpty reserves
// 4N+1 for incremental/column-generation use (spec.md §6).
func New[T Number](nodeNum, arcNum int, mode InitMode, opts ...Option) (*Solver[T], error) {
	var zero T
	if !isSigned(zero) {
		return nil, ErrUnsignedType
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := nodeNum
	root := NodeID(n)

	var capacity int
	switch mode {
	case ModeFull:
		capacity = 2*n + arcNum + 1
	case ModeEmpty:
		capacity = 4*n + 1
	}
	if capacity < n {
		capacity = n
	}

	s := &Solver[T]{
		cfg:  cfg,
		n:    n,
		root: root,
		mode: mode,

		supply:    make([]T, n+1),
		pi:        make([]T, n+1),
		parent:    make([]NodeID, n+1),
		pred:      make([]ArcID, n+1),
		predDir:   make([]direction, n+1),
		thread:    make([]NodeID, n+1),
		revThread: make([]NodeID, n+1),
		succNum:   make([]int32, n+1),
		lastSucc:  make([]NodeID, n+1),

		arcSource: make([]NodeID, capacity),
		arcTarget: make([]NodeID, capacity),
		arcCost:   make([]T, capacity),
		arcFlow:   make([]T, capacity),
		arcState:  make([]arcState, capacity),
	}
	return s, nil
}

// isSigned reports whether zero's type is able to represent negative
// values. Unsigned instantiations of Number cannot occur given the ~int64 |
// ~float64 constraint, but the check is kept as the cheap, explicit
// "construction error" spec.md §7 calls for.
func isSigned[T Number](zero T) bool {
	return zero-1 < zero
}

// AddNode sets the supply of real node i (positive for a source, negative
// for a sink, zero for transshipment).
func (s *Solver[T]) AddNode(i NodeID, supply T) error {
	if i < 0 || int(i) >= s.n {
		return ErrUnknownNode
	}
	s.supply[i] = supply
	return nil
}

// AddArc appends a real arc (source, target, cost) with flow 0, state
// AtLower, and returns its arc id.
func (s *Solver[T]) AddArc(source, target NodeID, cost T) (ArcID, error) {
	if err := s.checkNode(source); err != nil {
		return noArc, err
	}
	if err := s.checkNode(target); err != nil {
		return noArc, err
	}
	id := ArcID(s.n + s.numRealArcs)
	if int(id) >= len(s.arcSource) {
		if s.mode != ModeEmpty {
			return noArc, ErrCapacityExceeded
		}
		s.growArcs()
	}
	s.arcSource[id] = source
	s.arcTarget[id] = target
	s.arcCost[id] = cost
	s.arcFlow[id] = 0
	s.arcState[id] = stateAtLower
	s.numRealArcs++
	return id, nil
}

// SetArc overwrites the real arc at logical index idx (arc id = n+idx) with
// a new source, target and cost. The arc keeps its current flow and state;
// callers doing this mid-solve are responsible for the consequences (this
// is the raw primitive UpdateArcs builds on).
func (s *Solver[T]) SetArc(idx int, source, target NodeID, cost T) error {
	if idx < 0 || idx >= s.numRealArcs {
		return ErrUnknownArc
	}
	if err := s.checkNode(source); err != nil {
		return err
	}
	if err := s.checkNode(target); err != nil {
		return err
	}
	id := ArcID(s.n + idx)
	s.arcSource[id] = source
	s.arcTarget[id] = target
	s.arcCost[id] = cost
	return nil
}

func (s *Solver[T]) checkNode(id NodeID) error {
	if id < 0 || int(id) >= s.n {
		return ErrUnknownNode
	}
	return nil
}

func (s *Solver[T]) growArcs() {
	grown := len(s.arcSource) + s.n + 1
	s.arcSource = append(s.arcSource, make([]NodeID, grown-len(s.arcSource))...)
	s.arcTarget = append(s.arcTarget, make([]NodeID, grown-len(s.arcTarget))...)
	s.arcCost = append(s.arcCost, make([]T, grown-len(s.arcCost))...)
	s.arcFlow = append(s.arcFlow, make([]T, grown-len(s.arcFlow))...)
	s.arcState = append(s.arcState, make([]arcState, grown-len(s.arcState))...)
}

// NumNodes returns the number of real nodes.
func (s *Solver[T]) NumNodes() int { return s.n }

// NumArcs returns the number of real arcs currently registered.
func (s *Solver[T]) NumArcs() int { return s.numRealArcs }

// reducedCost computes cost[e] + pi[source[e]] - pi[target[e]].
func (s *Solver[T]) reducedCost(e ArcID) T {
	return s.arcCost[e] + s.pi[s.arcSource[e]] - s.pi[s.arcTarget[e]]
}
