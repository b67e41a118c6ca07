package smoother

import (
	"math"

	"github.com/oceanic-robotics/gridplanner/costmap"
)

// costmapGradient estimates the local cost gradient at map cell (mx, my)
// using a seven-point symmetric finite-difference stencil in each axis,
// normalized to a unit vector (spec §4.4's "costmap finite-difference
// gradient"). Samples that fall outside the grid default to 0 rather
// than propagating an out-of-bounds error, matching the source's
// bounds-guarded sampling.
//
// Axis labeling: this core assigns the horizontal (left/right) stencil
// to the x component and the vertical (up/down) stencil to the y
// component — the conventional mapping. The source swaps the two
// (assigns the vertical stencil to gradient[0] and the horizontal one
// to gradient[1]); see DESIGN.md for why this core does not carry that
// swap forward.
func costmapGradient(view costmap.View, mx, my int) (dx, dy float64) {
	sample := func(x, y int) float64 {
		if x < 0 || x >= view.SizeX() || y < 0 || y >= view.SizeY() {
			return 0
		}
		return float64(view.GetCost(x, y))
	}

	right1, right2, right3 := sample(mx+1, my), sample(mx+2, my), sample(mx+3, my)
	left1, left2, left3 := sample(mx-1, my), sample(mx-2, my), sample(mx-3, my)
	up1, up2, up3 := sample(mx, my+1), sample(mx, my+2), sample(mx, my+3)
	down1, down2, down3 := sample(mx, my-1), sample(mx, my-2), sample(mx, my-3)

	dx = (45*right1 - 9*right2 + right3 - 45*left1 + 9*left2 - left3) / 60
	dy = (45*up1 - 9*up2 + up3 - 45*down1 + 9*down2 - down3) / 60

	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return 0, 0
	}
	return dx / norm, dy / norm
}

// normalizedOrthogonalComplement computes (a - b*(a.b/b.b)) / (|a|*|b|),
// the projection of a onto the plane normal to b, scaled by both norms
// (spec's GLOSSARY entry; used by the curvature Jacobian).
func normalizedOrthogonalComplement(a, b Point, aNorm, bNorm float64) Point {
	bDotB := dot(b, b)
	if bDotB == 0 {
		return Point{}
	}
	scale := dot(a, b) / bDotB
	numerator := sub(a, scaleVec(b, scale))
	denom := aNorm * bNorm
	if denom == 0 {
		return Point{}
	}
	return scaleVec(numerator, 1/denom)
}

func add(a, b Point) Point       { return Point{X: a.X + b.X, Y: a.Y + b.Y} }
func sub(a, b Point) Point       { return Point{X: a.X - b.X, Y: a.Y - b.Y} }
func scaleVec(a Point, s float64) Point { return Point{X: a.X * s, Y: a.Y * s} }
func dot(a, b Point) float64     { return a.X*b.X + a.Y*b.Y }
func norm(a Point) float64       { return math.Hypot(a.X, a.Y) }
func negate(a Point) Point       { return Point{X: -a.X, Y: -a.Y} }
