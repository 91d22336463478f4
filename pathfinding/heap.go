package pathfinding

type openItem struct {
	cost float64
	node int
}

// openSet is a min-heap on cost for container/heap.
type openSet []openItem

func (h openSet) Len() int           { return len(h) }
func (h openSet) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h openSet) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *openSet) Push(x any) {
	*h = append(*h, x.(openItem))
}

func (h *openSet) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
