package search

import (
	"math"
	"testing"

	"github.com/oceanic-robotics/gridplanner/costmap"
)

func TestTable_LazyResetOnFirstTouch(t *testing.T) {
	g := costmap.NewGrid(3, 3)
	g.SetCost(1, 1, 42)
	table := NewTable(3, 3)

	n := table.Get(4, g) // (1,1)
	if n.CellCost() != 42 {
		t.Errorf("expected cell cost 42, got %d", n.CellCost())
	}
	if !math.IsInf(n.AccumulatedCost(), 1) {
		t.Errorf("expected +Inf accumulated cost on first touch, got %f", n.AccumulatedCost())
	}
	if _, ok := n.Parent(); ok {
		t.Error("expected no parent at reset")
	}
}

func TestTable_ResetReinitializesTouchedNodes(t *testing.T) {
	g := costmap.NewGrid(3, 3)
	table := NewTable(3, 3)

	n := table.Get(0, g)
	n.accumulatedCost = 7
	n.markVisited()

	table.Reset()
	n2 := table.Get(0, g)
	if n2.WasVisited() {
		t.Error("expected wasVisited cleared after Reset")
	}
	if !math.IsInf(n2.AccumulatedCost(), 1) {
		t.Errorf("expected accumulated cost reset to +Inf, got %f", n2.AccumulatedCost())
	}
}

func TestNode_InvariantVisitedImpliesNotQueued(t *testing.T) {
	n := &Node{}
	n.markQueued()
	n.markVisited()
	if n.IsQueued() {
		t.Error("expected markVisited to clear isQueued")
	}
}

func TestNode_IsValid(t *testing.T) {
	n := &Node{cellCost: costmap.Occupied}
	if n.IsValid(true) {
		t.Error("expected occupied node to be invalid regardless of traverseUnknown")
	}
	n.cellCost = costmap.Unknown
	if n.IsValid(false) {
		t.Error("expected unknown node invalid when traverseUnknown is false")
	}
	if !n.IsValid(true) {
		t.Error("expected unknown node valid when traverseUnknown is true")
	}
}
