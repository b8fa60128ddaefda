package netsimplex

// Number is the set of scalar types a Solver can be instantiated over.
// int64 gives exact arithmetic (the default for transportation/assignment
// instances); float64 trades exactness for arbitrary real costs/supplies.
type Number interface {
	~int64 | ~float64
}

// NodeID identifies a node. Real nodes are 0..N-1; the artificial root is
// node N.
type NodeID int32

// ArcID identifies an arc. Dummy/artificial arcs are 0..N-1 (one per real
// node, id equal to the node it anchors); real arcs are N..M_total-1.
type ArcID int32

const noArc ArcID = -1
const noNode NodeID = -1

// direction indicates which endpoint of a tree arc a node is: Up means the
// arc points from the node toward its parent, Down means it points from the
// parent toward the node.
type direction int8

const (
	dirDown direction = -1
	dirUp   direction = 1
)

// arcState is the non-basis/basis status of an arc. This engine is
// uncapacitated, so only AtLower and Tree occur; stateAtUpper is kept for
// documentation parity with the capacitated extension (spec.md §4.9) and is
// never assigned by this package.
type arcState int8

const (
	stateAtUpper arcState = -1
	stateTree    arcState = 0
	stateAtLower arcState = 1
)

// InitMode selects how a Solver reserves its arc arrays.
type InitMode int

const (
	// ModeFull pre-sizes arc storage for 2N+M+1 entries, for a solver that
	// receives its complete arc set up front.
	ModeFull InitMode = iota
	// ModeEmpty pre-sizes arc storage for 4N+1 entries and starts with only
	// the artificial arcs, for column-generation use where real arcs are
	// appended incrementally via AddArc/UpdateArcs.
	ModeEmpty
)

// Rule selects the pivot-selection strategy used by Run/ReRun. Block search
// is currently the only implemented rule; the parameter exists so callers
// can name their intent and so a future rule can be added without changing
// the Run signature.
type Rule int

const (
	RuleBlockSearch Rule = iota
)

// Status is the outcome of a solve.
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
	StatusTimeLimit
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusTimeLimit:
		return "TIMELIMIT"
	default:
		return "UNKNOWN"
	}
}

// Verbosity controls periodic progress logging only; it never changes
// solver behavior or results.
type Verbosity int

const (
	Silent Verbosity = iota
	Info
	Debug
)
