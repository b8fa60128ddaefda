package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/go-netsimplex/netsimplex/pkg/netsimplex"
)

// main builds and solves the two-source, two-sink transportation instance
// from spec.md §8 scenario S2, the same fixed shape
// cmd/firmament/main.go demonstrates its scheduler loop on. There is no
// flag parsing here: building instances and wiring in real supplies/arcs is
// a library caller's job, not this demo's (spec.md's Non-goals exclude a
// general-purpose CLI/file-format front end).
func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := log.Logger

	sv, err := netsimplex.New[int64](4, 4, netsimplex.ModeFull, netsimplex.WithVerbosity(netsimplex.Info), netsimplex.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct solver")
	}

	nodes := []struct {
		id     netsimplex.NodeID
		supply int64
	}{
		{0, 3},
		{1, 2},
		{2, -1},
		{3, -4},
	}
	for _, nd := range nodes {
		if err := sv.AddNode(nd.id, nd.supply); err != nil {
			logger.Fatal().Err(err).Int("node", int(nd.id)).Msg("failed to register node")
		}
	}

	arcs := []struct {
		source, target netsimplex.NodeID
		cost           int64
	}{
		{0, 2, 1},
		{0, 3, 4},
		{1, 2, 2},
		{1, 3, 3},
	}
	for _, a := range arcs {
		if _, err := sv.AddArc(a.source, a.target, a.cost); err != nil {
			logger.Fatal().Err(err).Msg("failed to register arc")
		}
	}

	status := sv.Run(netsimplex.RuleBlockSearch)

	event := logger.Info()
	if status != netsimplex.StatusOptimal {
		event = logger.Error()
	}
	event.
		Str("status", status.String()).
		Uint64("iterations", sv.Iterations()).
		Dur("runtime", sv.Runtime()).
		Msg("netsimplex solve finished")

	if status != netsimplex.StatusOptimal {
		os.Exit(1)
	}

	for e := netsimplex.ArcID(sv.NumNodes()); e < netsimplex.ArcID(sv.NumNodes()+sv.NumArcs()); e++ {
		src, dst := sv.ArcEndpoints(e)
		logger.Info().
			Int("source", int(src)).
			Int("target", int(dst)).
			Int64("flow", sv.Flow(e)).
			Msg("arc flow")
	}
	logger.Info().Int64("total_cost", sv.TotalCost()).Msg("solution summary")
}
