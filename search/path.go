package search

// Path is an ordered sequence of flat row-major cell indices from
// start to goal, produced by Run (spec §3).
type Path []int

// Point is a coordinate in floating-point cell units, not world
// meters (spec §3: world<->cell conversion is the costmap's
// responsibility).
type Point struct {
	X, Y float64
}

// Lift converts a discrete Path into continuous cell-unit Points,
// seeding the smoother's parameter vector (spec §3's "path lifter").
func Lift(path Path, width int) []Point {
	points := make([]Point, len(path))
	for i, idx := range path {
		points[i] = coordsOf(idx, width)
	}
	return points
}

func coordsOf(index, width int) Point {
	return Point{X: float64(index % width), Y: float64(index / width)}
}

// reconstruct walks parent pointers from goal back to start and
// reverses the result, mirroring the TracePlan/reverse-slice idiom
// used for backtracking a discovered plan.
func reconstruct(table *Table, goalIndex int) Path {
	path := Path{goalIndex}
	current := goalIndex
	for {
		node := &table.nodes[current]
		parent, ok := node.Parent()
		if !ok {
			break
		}
		path = append(path, parent)
		current = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
