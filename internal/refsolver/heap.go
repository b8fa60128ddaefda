package refsolver

// distItem is one entry in the Dijkstra frontier, grounded on the teacher's
// datastructure.Distance/BinaryMinHeap (pkg/scheduling/algorithms/
// datastructure/binaryheap.go): NewFibHeap, which the teacher's own
// shortestpath.go calls, does not exist anywhere in the retrieved source,
// so this keeps the teacher's container/heap-backed binary min-heap instead
// of the missing Fibonacci heap.
type distItem struct {
	node NodeID
	dist int64
}

type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
