package search

import (
	"math"

	"github.com/oceanic-robotics/gridplanner/costmap"
)

// noParent is the "none" sentinel for Node.parent, matching the
// teacher's use of a nil pointer for Vertex.ParentEdge but expressed
// as an index into the arena instead of a pointer (spec §9: "pointer
// graphs -> arena + index").
const noParent = -1

// Node is one search-graph vertex, addressed by its flat row-major
// cell index. One Node exists per grid cell, pre-allocated in a Table
// and reused across planning episodes (spec §3).
type Node struct {
	cellCost        costmap.Cost
	accumulatedCost float64 // g: best known cost-to-reach
	index           int
	wasVisited      bool
	isQueued        bool
	parent          int // index of predecessor, or noParent
	epoch           uint64
}

// AccumulatedCost returns g, the best known cost-to-reach.
func (n *Node) AccumulatedCost() float64 { return n.accumulatedCost }

// CellCost returns the costmap value cached at this node.
func (n *Node) CellCost() costmap.Cost { return n.cellCost }

// Index returns this node's flat cell index.
func (n *Node) Index() int { return n.index }

// WasVisited reports closed-set membership.
func (n *Node) WasVisited() bool { return n.wasVisited }

// IsQueued reports open-set membership.
func (n *Node) IsQueued() bool { return n.isQueued }

// Parent returns the back-pointer index, or (0, false) at the start
// node / an unreached node.
func (n *Node) Parent() (int, bool) {
	if n.parent == noParent {
		return 0, false
	}
	return n.parent, true
}

func (n *Node) markVisited() {
	n.wasVisited = true
	n.isQueued = false
}

func (n *Node) markQueued() {
	n.isQueued = true
}

// resetForEpisode re-stamps a node for reuse, per spec §3: parent goes
// to none, accumulated cost to +Inf, cost/index copied fresh, both set
// membership flags cleared. Mirrors Node2D::reset in the source this
// spec was distilled from.
func (n *Node) resetForEpisode(cost costmap.Cost, index int, epoch uint64) {
	n.cellCost = cost
	n.accumulatedCost = math.Inf(1)
	n.index = index
	n.wasVisited = false
	n.isQueued = false
	n.parent = noParent
	n.epoch = epoch
}

// IsValid reports whether this node may be expanded through, per spec
// §4.1.
func (n *Node) IsValid(traverseUnknown bool) bool {
	return costmap.IsValid(n.cellCost, traverseUnknown)
}

// Table is the pre-allocated, index-addressed arena of Nodes for one
// grid, reused across planning episodes (spec §3/§9). It never grows
// or shrinks after construction; only Node.epoch changes between
// episodes.
//
// Reset is lazy: rather than a teacher-style linear sweep or an
// explicit "touched" list, each Table carries a monotonically
// increasing epoch counter. A node is considered stale — and is
// transparently re-initialized from the costmap the next time it's
// touched — whenever its stored epoch doesn't match the table's
// current epoch. This gives spec §3's "only touched nodes need
// clearing" without bookkeeping a separate touched slice.
type Table struct {
	width, height int
	nodes         []Node
	epoch         uint64
}

// NewTable pre-allocates a Table sized to a width x height grid.
func NewTable(width, height int) *Table {
	return &Table{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
		epoch:  1, // 0 is left as "never touched" for the zero-value nodes slice
	}
}

// Width and Height report the grid dimensions this table is sized to.
func (t *Table) Width() int  { return t.width }
func (t *Table) Height() int { return t.height }

// Reset begins a new episode: no work is done on the nodes themselves,
// each is lazily reset the next time Get touches it.
func (t *Table) Reset() {
	t.epoch++
}

// Get returns the pooled node at index, lazily re-initializing it from
// view if it's stale (belongs to a prior episode) or has never been
// touched. index must be in [0, Width()*Height()).
func (t *Table) Get(index int, view costmap.View) *Node {
	n := &t.nodes[index]
	if n.epoch != t.epoch {
		mx, my := index%t.width, index/t.width
		n.resetForEpisode(view.GetCost(mx, my), index, t.epoch)
	}
	return n
}

// Len returns the number of pooled nodes (Width * Height).
func (t *Table) Len() int { return len(t.nodes) }
