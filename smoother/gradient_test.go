package smoother

import (
	"math"
	"testing"

	"github.com/oceanic-robotics/gridplanner/costmap"
)

func linearRampGrid(width, height int) *costmap.Grid {
	g := costmap.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.SetCost(x, y, costmap.Cost(x))
		}
	}
	return g
}

func TestCostmapGradient_LinearRampInteriorMatchesUnitSlope(t *testing.T) {
	g := linearRampGrid(10, 5)
	dx, dy := costmapGradient(g, 5, 2)
	if math.Abs(dx-1.0) > 1e-9 {
		t.Errorf("expected normalized dx ~1.0 on a c(x,y)=x ramp, got %f", dx)
	}
	if math.Abs(dy) > 1e-9 {
		t.Errorf("expected dy ~0 on a ramp with no y variation, got %f", dy)
	}
}

func TestCostmapGradient_BorderSampleStaysFinite(t *testing.T) {
	g := linearRampGrid(10, 5)
	dx, dy := costmapGradient(g, 0, 0)
	if math.IsNaN(dx) || math.IsInf(dx, 0) || math.IsNaN(dy) || math.IsInf(dy, 0) {
		t.Errorf("expected finite gradient at the grid corner, got (%f, %f)", dx, dy)
	}
}

func TestCostmapGradient_FlatCostmapIsZeroVector(t *testing.T) {
	g := costmap.NewGrid(10, 5)
	dx, dy := costmapGradient(g, 4, 2)
	if dx != 0 || dy != 0 {
		t.Errorf("expected zero gradient on a flat costmap, got (%f, %f)", dx, dy)
	}
}

func TestNormalizedOrthogonalComplement_OrthogonalToB(t *testing.T) {
	a := Point{X: 1, Y: 1}
	b := Point{X: 1, Y: 0}
	result := normalizedOrthogonalComplement(a, b, norm(a), norm(b))
	if math.Abs(dot(result, b)) > 1e-9 {
		t.Errorf("expected result orthogonal to b, got dot=%f", dot(result, b))
	}
}
