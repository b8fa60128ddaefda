package netsimplex_test

import (
	"fmt"

	"github.com/go-netsimplex/netsimplex/pkg/netsimplex"
)

// ExampleSolver demonstrates solving a small two-source, two-sink
// transportation problem: nodes 0,1 supply 3 and 2 units, nodes 2,3 demand 1
// and 4 units, and flow should route along the cheapest arcs available.
func ExampleSolver() {
	sv, err := netsimplex.New[int64](4, 4, netsimplex.ModeFull)
	if err != nil {
		panic(err)
	}
	_ = sv.AddNode(0, 3)
	_ = sv.AddNode(1, 2)
	_ = sv.AddNode(2, -1)
	_ = sv.AddNode(3, -4)
	_, _ = sv.AddArc(0, 2, 1)
	_, _ = sv.AddArc(0, 3, 4)
	_, _ = sv.AddArc(1, 2, 2)
	_, _ = sv.AddArc(1, 3, 3)

	status := sv.Run(netsimplex.RuleBlockSearch)
	fmt.Println(status)
	fmt.Println(sv.TotalCost())
	// Output:
	// OPTIMAL
	// 15
}
