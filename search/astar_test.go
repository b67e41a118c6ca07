package search

import (
	"context"
	"errors"
	"testing"

	"github.com/oceanic-robotics/gridplanner/costmap"
)

func TestRun_AllFreeGridMonotonicPath(t *testing.T) {
	g := costmap.NewGrid(5, 5)
	table := NewTable(5, 5)

	path, err := Run(context.Background(), g, table, 0, 0, 4, 4, Options{Connectivity: Moore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 5 {
		t.Fatalf("expected path length 5, got %d", len(path))
	}
	points := Lift(path, 5)
	for i := 1; i < len(points); i++ {
		if points[i].X < points[i-1].X || points[i].Y < points[i-1].Y {
			t.Errorf("expected monotonically increasing x and y, got %v then %v", points[i-1], points[i])
		}
	}
}

func TestRun_RoutesAroundWall(t *testing.T) {
	g := costmap.NewGrid(5, 5)
	for y := 0; y <= 3; y++ {
		g.SetCost(2, y, costmap.Occupied)
	}
	table := NewTable(5, 5)

	path, err := Run(context.Background(), g, table, 0, 2, 4, 2, Options{Connectivity: Moore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	points := Lift(path, 5)
	crossedAtRow4 := false
	for _, p := range points {
		if p.X == 2 {
			if p.Y != 4 {
				t.Errorf("expected the only crossing of column 2 to be at row 4, got %v", p)
			}
			crossedAtRow4 = true
		}
	}
	if !crossedAtRow4 {
		t.Error("expected path to cross column 2 via row 4")
	}
}

func TestRun_NeverVisitsOccupiedCell(t *testing.T) {
	g := costmap.NewGrid(5, 5)
	g.SetCost(2, 2, costmap.Occupied)
	table := NewTable(5, 5)

	path, err := Run(context.Background(), g, table, 0, 0, 4, 4, Options{Connectivity: Moore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, idx := range path {
		if idx == table.Get(2+2*5, g).Index() {
			t.Error("expected path to never include the occupied cell")
		}
	}
}

func TestRun_StartEqualsGoal(t *testing.T) {
	g := costmap.NewGrid(5, 5)
	table := NewTable(5, 5)
	path, err := Run(context.Background(), g, table, 2, 2, 2, 2, Options{Connectivity: VonNeumann})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 1 || path[0] != 2+2*5 {
		t.Errorf("expected single-element path at start==goal, got %v", path)
	}
}

func TestRun_NoValidNeighborFailsWithNoPathFound(t *testing.T) {
	g := costmap.NewGrid(3, 3)
	// wall the interior goal cell (1,1) in on all four sides; with
	// VonNeumann connectivity the start (0,0) then has no valid neighbor
	g.SetCost(0, 1, costmap.Occupied)
	g.SetCost(2, 1, costmap.Occupied)
	g.SetCost(1, 0, costmap.Occupied)
	g.SetCost(1, 2, costmap.Occupied)
	table := NewTable(3, 3)

	_, err := Run(context.Background(), g, table, 0, 0, 1, 1, Options{Connectivity: VonNeumann})
	if !errors.Is(err, ErrNoPathFound) {
		t.Fatalf("expected NoPathFound, got %v", err)
	}
}

func TestRun_StartOrGoalInvalid(t *testing.T) {
	g := costmap.NewGrid(3, 3)
	g.SetCost(0, 0, costmap.Occupied)
	table := NewTable(3, 3)

	_, err := Run(context.Background(), g, table, 0, 0, 2, 2, Options{})
	if !errors.Is(err, ErrStartOrGoalInvalid) {
		t.Fatalf("expected StartOrGoalInvalid, got %v", err)
	}
}

func TestRun_IterationCapExceeded(t *testing.T) {
	g := costmap.NewGrid(10, 10)
	table := NewTable(10, 10)

	_, err := Run(context.Background(), g, table, 0, 0, 9, 9, Options{Connectivity: Moore, IterationCap: 1})
	if !errors.Is(err, ErrIterationLimitExceeded) {
		t.Fatalf("expected IterationLimitExceeded, got %v", err)
	}
}

func TestRun_Cancellation(t *testing.T) {
	g := costmap.NewGrid(10, 10)
	table := NewTable(10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, g, table, 0, 0, 9, 9, Options{Connectivity: Moore})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("expected Cancelled, got %v", err)
	}
}

func TestRun_ResetThenRerunIsIdempotent(t *testing.T) {
	g := costmap.NewGrid(6, 6)
	g.SetCost(3, 0, costmap.Occupied)
	g.SetCost(3, 1, costmap.Occupied)
	g.SetCost(3, 2, costmap.Occupied)
	table := NewTable(6, 6)

	path1, err := Run(context.Background(), g, table, 0, 0, 5, 5, Options{Connectivity: Moore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path2, err := Run(context.Background(), g, table, 0, 0, 5, 5, Options{Connectivity: Moore})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path1) != len(path2) {
		t.Fatalf("expected identical path lengths, got %d and %d", len(path1), len(path2))
	}
	for i := range path1 {
		if path1[i] != path2[i] {
			t.Errorf("expected identical paths at index %d: %d != %d", i, path1[i], path2[i])
		}
	}
}

func TestRun_InvalidConnectivity(t *testing.T) {
	g := costmap.NewGrid(3, 3)
	table := NewTable(3, 3)
	_, err := Run(context.Background(), g, table, 0, 0, 2, 2, Options{Connectivity: Connectivity(42)})
	if !errors.Is(err, ErrInvalidNeighborhood) {
		t.Fatalf("expected InvalidNeighborhood, got %v", err)
	}
}
