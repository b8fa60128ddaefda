package refsolver

// NodeID identifies a node in a Graph.
type NodeID int32

// Arc is one directed residual arc. Every AddArc call installs a forward
// arc and its paired reverse arc back to back, the same explicit
// residual-arc bookkeeping pkg/scheduling/algorithms/mcmf's
// SuccessiveShortestPathWithDijkstra does by hand via GetArcByIds/AddArc,
// just kept as sibling slice entries instead of a second map lookup.
type Arc struct {
	To   NodeID
	Cap  int64
	Cost int64
	Flow int64
}

// Graph is an adjacency-list residual network, grounded on the teacher's
// flowgraph.Graph (map[NodeID]*Node with an OutgoingArcMap) but flattened to
// slices: refsolver instances are disposable per test case and never
// mutated concurrently, so there is no need for the teacher's map-of-nodes
// indirection.
type Graph struct {
	arcs []Arc
	adj  [][]int // adj[u] holds indices into arcs of u's outgoing arcs
}

// NewGraph returns an empty graph with room for n nodes.
func NewGraph(n int) *Graph {
	return &Graph{adj: make([][]int, n)}
}

func (g *Graph) AddNode() NodeID {
	g.adj = append(g.adj, nil)
	return NodeID(len(g.adj) - 1)
}

func (g *Graph) NumNodes() int { return len(g.adj) }

// AddArc installs a forward arc u->v with the given capacity and cost, and
// a zero-capacity reverse arc v->u with the negated cost, returning the
// forward arc's index. The reverse arc's index is always the forward
// index ^ 1 (they are always appended as a pair), mirroring how residual
// graphs are conventionally paired in successive-shortest-path solvers.
func (g *Graph) AddArc(u, v NodeID, cap, cost int64) int {
	fwd := len(g.arcs)
	g.arcs = append(g.arcs, Arc{To: v, Cap: cap, Cost: cost})
	g.arcs = append(g.arcs, Arc{To: u, Cap: 0, Cost: -cost})
	g.adj[u] = append(g.adj[u], fwd)
	g.adj[v] = append(g.adj[v], fwd+1)
	return fwd
}

func (g *Graph) residual(arcIdx int) int64 {
	a := g.arcs[arcIdx]
	return a.Cap - a.Flow
}

func (g *Graph) pushFlow(arcIdx int, amount int64) {
	g.arcs[arcIdx].Flow += amount
	g.arcs[arcIdx^1].Flow -= amount
}
