package netsimplex_test

import (
	"math/rand"
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/go-netsimplex/netsimplex/internal/refsolver"
	"github.com/go-netsimplex/netsimplex/pkg/netsimplex"
)

func TestNetsimplexSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "netsimplex driver suite")
}

var _ = Describe("Solver", func() {
	Describe("S1 trivial transportation", func() {
		It("sends the single unit of supply across the only arc", func() {
			sv, err := netsimplex.New[int64](2, 1, netsimplex.ModeFull)
			Expect(err).To(BeNil())
			Expect(sv.AddNode(0, 1)).To(Succeed())
			Expect(sv.AddNode(1, -1)).To(Succeed())
			arc, err := sv.AddArc(0, 1, 7)
			Expect(err).To(BeNil())

			status := sv.Run(netsimplex.RuleBlockSearch)

			Expect(status).To(Equal(netsimplex.StatusOptimal))
			Expect(sv.Flow(arc)).To(Equal(int64(1)))
			Expect(sv.TotalCost()).To(Equal(int64(7)))
			Expect(sv.Potential(0) - sv.Potential(1)).To(Equal(int64(7)))
		})
	})

	Describe("S2 two-source two-sink", func() {
		It("reaches the known LP optimum", func() {
			sv, err := netsimplex.New[int64](4, 4, netsimplex.ModeFull)
			Expect(err).To(BeNil())
			Expect(sv.AddNode(0, 3)).To(Succeed())
			Expect(sv.AddNode(1, 2)).To(Succeed())
			Expect(sv.AddNode(2, -1)).To(Succeed())
			Expect(sv.AddNode(3, -4)).To(Succeed())
			_, _ = sv.AddArc(0, 2, 1)
			_, _ = sv.AddArc(0, 3, 4)
			_, _ = sv.AddArc(1, 2, 2)
			_, _ = sv.AddArc(1, 3, 3)

			status := sv.Run(netsimplex.RuleBlockSearch)

			Expect(status).To(Equal(netsimplex.StatusOptimal))
			Expect(sv.TotalCost()).To(Equal(int64(15)))
		})
	})

	Describe("S3 infeasible instance", func() {
		It("leaves flow stranded on node 0's dummy arc", func() {
			sv, err := netsimplex.New[int64](2, 0, netsimplex.ModeFull)
			Expect(err).To(BeNil())
			Expect(sv.AddNode(0, 1)).To(Succeed())
			Expect(sv.AddNode(1, -1)).To(Succeed())

			status := sv.Run(netsimplex.RuleBlockSearch)

			Expect(status).To(Equal(netsimplex.StatusInfeasible))
		})
	})

	Describe("S4 degenerate cycle", func() {
		It("settles every real arc at flow zero", func() {
			sv, err := netsimplex.New[int64](4, 4, netsimplex.ModeFull)
			Expect(err).To(BeNil())
			for i := netsimplex.NodeID(0); i < 4; i++ {
				Expect(sv.AddNode(i, 0)).To(Succeed())
			}
			arcs := make([]netsimplex.ArcID, 4)
			arcs[0], _ = sv.AddArc(0, 1, 1)
			arcs[1], _ = sv.AddArc(1, 2, 1)
			arcs[2], _ = sv.AddArc(2, 3, 1)
			arcs[3], _ = sv.AddArc(3, 0, 1)

			status := sv.Run(netsimplex.RuleBlockSearch)

			Expect(status).To(Equal(netsimplex.StatusOptimal))
			Expect(sv.TotalCost()).To(Equal(int64(0)))
			for _, a := range arcs {
				Expect(sv.Flow(a)).To(Equal(int64(0)))
			}
		})
	})

	Describe("S5 column generation", func() {
		It("extends a shortest-path chain incrementally without cost regressions", func() {
			const n = 10
			sv, err := netsimplex.New[int64](n, 0, netsimplex.ModeEmpty)
			Expect(err).To(BeNil())
			Expect(sv.AddNode(0, 1)).To(Succeed())
			Expect(sv.AddNode(n-1, -1)).To(Succeed())
			for i := 1; i < n-1; i++ {
				Expect(sv.AddNode(netsimplex.NodeID(i), 0)).To(Succeed())
			}

			status := sv.Run(netsimplex.RuleBlockSearch)
			Expect(status).To(Equal(netsimplex.StatusInfeasible)) // no arcs yet

			chain := make([]netsimplex.Candidate[int64], 0, n-1)
			for i := 0; i < n-1; i++ {
				chain = append(chain, netsimplex.Candidate[int64]{
					Source: netsimplex.NodeID(i),
					Target: netsimplex.NodeID(i + 1),
					Cost:   1,
				})
			}

			// Batches are fed from the sink end backwards: each new batch then
			// joins the tree through the sink's potential, so no chain arc is
			// left at AtLower with positive reduced cost for a later
			// UpdateArcs call to overwrite.
			var prevCost int64 = 1 << 60
			for end := len(chain); end > 0; end -= 3 {
				batchStart := end - 3
				if batchStart < 0 {
					batchStart = 0
				}
				_, err := sv.UpdateArcs(chain[batchStart:end])
				Expect(err).To(BeNil())

				status = sv.ReRun(netsimplex.RuleBlockSearch)
				Expect(status).To(BeElementOf(netsimplex.StatusOptimal, netsimplex.StatusInfeasible))
				if status == netsimplex.StatusOptimal {
					Expect(sv.TotalCost()).To(BeNumerically("<=", prevCost))
					prevCost = sv.TotalCost()
				}
			}

			Expect(status).To(Equal(netsimplex.StatusOptimal))
			Expect(sv.TotalCost()).To(Equal(int64(n - 1)))
		})
	})

	Describe("S6 large random instance", func() {
		It("matches an independent successive-shortest-path reference solver", func() {
			rng := rand.New(rand.NewSource(42))
			const n, m = 80, 300
			half := n / 2

			supply := make([]int64, n)
			for i := 0; i < half; i++ {
				supply[i] = 1
			}
			for i := half; i < n; i++ {
				supply[i] = -1
			}

			sv, err := netsimplex.New[int64](n, m, netsimplex.ModeFull)
			Expect(err).To(BeNil())
			for i, s := range supply {
				Expect(sv.AddNode(netsimplex.NodeID(i), s)).To(Succeed())
			}

			refArcs := make([]refsolver.SupplyArc, 0, m)
			for e := 0; e < m; e++ {
				u := netsimplex.NodeID(rng.Intn(half))
				v := netsimplex.NodeID(half + rng.Intn(n-half))
				cost := int64(1 + rng.Intn(100))
				_, err := sv.AddArc(u, v, cost)
				Expect(err).To(BeNil())
				refArcs = append(refArcs, refsolver.SupplyArc{Source: refsolver.NodeID(u), Target: refsolver.NodeID(v), Cost: cost})
			}

			status := sv.Run(netsimplex.RuleBlockSearch)
			refSupply := make([]int64, n)
			copy(refSupply, supply)
			refCost, refErr := refsolver.MinCostFlow(refSupply, refArcs)

			if refErr != nil {
				Expect(status).To(Equal(netsimplex.StatusInfeasible))
			} else {
				Expect(status).To(Equal(netsimplex.StatusOptimal))
				Expect(sv.TotalCost()).To(Equal(refCost))
				Expect(sv.Iterations()).To(BeNumerically("<=", uint64(n)*uint64(m)))
			}
		})
	})
})
