// Package refsolver is an independent min-cost flow oracle used only to
// cross-check netsimplex.Solver in tests (spec.md §8, scenario S6). It is
// not a competing implementation: it solves the same supply/demand
// transportation instances via successive shortest augmenting paths with
// node potentials, an algorithm family distinct from network simplex, so an
// agreement between the two is real evidence of correctness rather than a
// shared bug.
package refsolver
