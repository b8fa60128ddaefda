package netsimplex

import (
	"math"
	"time"
)

const feasibilityTolerance = 1e-9
const balanceTolerance = 1e-5

// Run performs a fresh solve: flows are reset to 0, arc states to AtLower,
// the basis is rebuilt via init, and the pivot loop runs to completion or
// until a stopping condition triggers (spec.md §4.1).
func (s *Solver[T]) Run(rule Rule) Status {
	s.init()
	s.ran = true
	if s.cfg.strict && floatAbs(s.supply[s.root]) > balanceTolerance {
		s.status = StatusInfeasible
		return s.status
	}
	s.startedAt = time.Now()
	return s.solve(rule)
}

// ReRun resumes the pivot loop from the current basis without calling init,
// for warm starts after UpdateArcs/SetArc or after a prior TimeLimit
// (spec.md §4.1, §5).
func (s *Solver[T]) ReRun(rule Rule) Status {
	if !s.ran {
		return s.Run(rule)
	}
	s.startedAt = time.Now()
	return s.solve(rule)
}

func (s *Solver[T]) solve(rule Rule) Status {
	_ = rule // block search is the only implemented rule today
	bs := newBlockSearch(s.n + s.numRealArcs)

	for {
		inArc := s.findEnteringArc(bs)
		if inArc == noArc {
			break
		}

		info := s.findLeavingArc(inArc)
		if info.unbounded {
			s.status = StatusUnbounded
			return s.status
		}

		s.augment(info)
		s.updateTree(&info)
		s.updatePotential(info)

		s.iterations++
		if s.cfg.logInterval > 0 && s.iterations%s.cfg.logInterval == 0 {
			s.logProgress(info)
			if s.timedOut() {
				s.status = StatusTimeLimit
				s.elapsed = time.Since(s.startedAt)
				return s.status
			}
		}
	}

	s.elapsed = time.Since(s.startedAt)
	s.status = s.checkFeasibility()
	return s.status
}

func (s *Solver[T]) timedOut() bool {
	if s.cfg.timeLimit <= 0 {
		return false
	}
	return time.Since(s.startedAt) > s.cfg.timeLimit
}

// checkFeasibility implements the unified post-run dummy-arc check
// (spec.md §7, §9): if any dummy arc (ids 0..n-1) still carries flow beyond
// tolerance, the instance is infeasible.
func (s *Solver[T]) checkFeasibility() Status {
	for e := ArcID(0); e < ArcID(s.n); e++ {
		if floatAbs(s.arcFlow[e]) > feasibilityTolerance {
			return StatusInfeasible
		}
	}
	return StatusOptimal
}

func floatAbs[T Number](v T) float64 {
	f := float64(v)
	return math.Abs(f)
}

// TotalCost returns the sum of flow[e]*cost[e] over real arcs only
// (spec.md §6).
func (s *Solver[T]) TotalCost() T {
	var total T
	for e := ArcID(s.n); e < ArcID(s.n+s.numRealArcs); e++ {
		total += s.arcFlow[e] * s.arcCost[e]
	}
	return total
}

// TotalFlow returns the sum of flow over real arcs only.
func (s *Solver[T]) TotalFlow() T {
	var total T
	for e := ArcID(s.n); e < ArcID(s.n+s.numRealArcs); e++ {
		total += s.arcFlow[e]
	}
	return total
}

// Potential returns the dual potential of node n.
func (s *Solver[T]) Potential(n NodeID) T {
	return s.pi[n]
}

// Flow returns the current flow on arc e.
func (s *Solver[T]) Flow(e ArcID) T {
	return s.arcFlow[e]
}

// ArcEndpoints returns the source and target of arc e.
func (s *Solver[T]) ArcEndpoints(e ArcID) (NodeID, NodeID) {
	return s.arcSource[e], s.arcTarget[e]
}

// Runtime returns the wall-clock duration of the most recent Run/ReRun.
func (s *Solver[T]) Runtime() time.Duration { return s.elapsed }

// Iterations returns the number of pivots performed since the most recent
// Run, including those of any ReRun calls made after it.
func (s *Solver[T]) Iterations() uint64 { return s.iterations }

// Status returns the outcome of the most recent Run/ReRun.
func (s *Solver[T]) Status() Status { return s.status }

func (s *Solver[T]) logProgress(info pivotInfo[T]) {
	if s.cfg.verbosity == Silent {
		return
	}
	ev := s.cfg.logger.Info()
	if s.cfg.verbosity == Debug {
		ev = s.cfg.logger.Debug()
		s.logCostHistogram()
	}
	ev.Uint64("iteration", s.iterations).
		Int64("join", int64(info.join)).
		Msg("netsimplex pivot checkpoint")
}
