package netsimplex

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// config holds everything an Option can set. It is applied at construction
// and is immutable for the lifetime of a Solver.
type config struct {
	timeLimit    time.Duration
	optTolerance float64
	verbosity    Verbosity
	strict       bool
	logInterval  uint64
	logger       zerolog.Logger
}

const (
	defaultOptTolerance = 1e-6
	// N_IT_LOG defaults, spec.md §5: 10^7 for info, 10^5 for debug, 0
	// disables the check entirely.
	logIntervalInfo  = 10_000_000
	logIntervalDebug = 100_000
)

func defaultConfig() config {
	return config{
		timeLimit:    0, // 0 means "no limit"
		optTolerance: defaultOptTolerance,
		verbosity:    Silent,
		strict:       false,
		logInterval:  logIntervalInfo,
		logger:       log.Logger,
	}
}

// Option customizes a Solver at construction time.
type Option func(*config)

// WithTimeLimit bounds wall-clock solve time; Run/ReRun return
// StatusTimeLimit once exceeded. Zero (the default) means unbounded.
func WithTimeLimit(d time.Duration) Option {
	return func(c *config) { c.timeLimit = d }
}

// WithTolerance sets the optimality tolerance used by the pivot selector and
// by the optimality-certificate check (spec.md §4.3, §8 Property 2).
func WithTolerance(eps float64) Option {
	return func(c *config) {
		if eps <= 0 {
			panic("netsimplex: WithTolerance requires eps > 0")
		}
		c.optTolerance = eps
	}
}

// WithVerbosity controls periodic progress logging; it has no effect on
// results. The iteration cadence it picks (spec.md §5, N_IT_LOG) governs the
// timedOut() check in solve() the same way regardless of verbosity level —
// Silent only suppresses logProgress's own output (driver.go), it does not
// disable timeout enforcement. Use WithLogInterval(0) to do that explicitly.
func WithVerbosity(v Verbosity) Option {
	return func(c *config) {
		c.verbosity = v
		if v == Debug {
			c.logInterval = logIntervalDebug
		} else {
			c.logInterval = logIntervalInfo
		}
	}
}

// WithLogger overrides the zerolog.Logger progress and debug messages are
// written to. The default is the global github.com/rs/zerolog/log logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStrictBalance resolves spec.md §9's open question on the supply-sum
// tolerance check. When strict is true, Run rejects (StatusInfeasible,
// checked right after init before any pivoting) instances whose supplies do
// not sum to within balanceTolerance of zero, instead of silently absorbing
// the imbalance into the root's supply.
func WithStrictBalance(strict bool) Option {
	return func(c *config) { c.strict = strict }
}

// WithLogInterval overrides the iteration count between timeout/progress
// checks (spec.md §5, N_IT_LOG). Zero disables the check.
func WithLogInterval(n uint64) Option {
	return func(c *config) { c.logInterval = n }
}
