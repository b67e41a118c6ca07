package search

import "container/heap"

// openItem is one entry in the open set: the pooled node, the f-value
// it was pushed with, and an insertion sequence number used to break
// ties deterministically (spec §4.3: "ties broken by insertion
// order"). Updating a node's g does not mutate an item already in the
// heap; a fresher item is pushed instead and the stale one is skipped
// on pop via Node.wasVisited, mirroring the
// teacher's VertexQueue, which never repositions in place either.
type openItem struct {
	node *Node
	f    float64
	seq  uint64
}

// openQueue is a container/heap priority queue over openItem, min-f
// first, insertion-order tie-break.
type openQueue struct {
	items []*openItem
	seq   uint64
}

func newOpenQueue() *openQueue {
	q := &openQueue{}
	heap.Init(q)
	return q
}

func (q *openQueue) Len() int { return len(q.items) }

func (q *openQueue) Less(i, j int) bool {
	if q.items[i].f != q.items[j].f {
		return q.items[i].f < q.items[j].f
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *openQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *openQueue) Push(x interface{}) {
	q.items = append(q.items, x.(*openItem))
}

func (q *openQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// push wraps heap.Push, stamping the item with the next insertion
// sequence number and marking the node queued.
func (q *openQueue) push(node *Node, f float64) {
	q.seq++
	node.markQueued()
	heap.Push(q, &openItem{node: node, f: f, seq: q.seq})
}

// pop wraps heap.Pop, returning the raw item so the caller can inspect
// staleness before touching the node.
func (q *openQueue) pop() *openItem {
	return heap.Pop(q).(*openItem)
}
