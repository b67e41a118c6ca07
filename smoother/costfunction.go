// Package smoother implements the gradient-based path smoother's cost
// function: a weighted sum of four residual terms (smoothness,
// curvature bound, costmap avoidance, distance-to-original) plus their
// analytical gradients over a flattened (x, y) parameter vector.
//
// Grounded on original_source/smac_planner's
// UnconstrainedSmootherCostFunction, generalized from a fixed Eigen
// vector-of-points model into a flat []float64 parameter surface so
// any first-order optimizer honoring the {NumParameters, Evaluate}
// shape (spec §4.5/§9) can drive it — the core defines the function,
// never the optimizer.
package smoother

import (
	"context"
	"math"

	"github.com/oceanic-robotics/gridplanner/costmap"
	"github.com/oceanic-robotics/gridplanner/search"
)

// Point is a 2D coordinate in the same cell-unit frame search.Point
// uses; the smoother's parameter vector is a flattened sequence of
// these.
type Point = search.Point

const curvatureEpsilon = 1e-4

// CostFunction is the smoother's objective: NumParameters reports the
// flattened vector length, Evaluate computes the scalar cost and,
// when gradient is non-nil, the analytical gradient at parameters.
// Endpoints (index 0 and n-1) are held fixed by construction — their
// gradient slots are always zero and they never contribute a residual.
type CostFunction struct {
	originalPath []Point
	view         costmap.View
	params       Params
}

// New builds a CostFunction anchored to originalPath (the discrete
// search result, lifted to continuous points) and view, the costmap
// consulted by the avoidance term.
func New(originalPath []Point, view costmap.View, params Params) *CostFunction {
	return &CostFunction{originalPath: originalPath, view: view, params: params}
}

// NumParameters returns 2n for an n-point path.
func (c *CostFunction) NumParameters() int {
	return 2 * len(c.originalPath)
}

// Evaluate computes the total cost of parameters and, if gradient is
// non-nil, fills it with the cost's gradient. Both slices must have
// length NumParameters(). Returns ErrCancelled if ctx is already done
// (checked once per call, per spec §5), or *ErrDiverged if a
// non-finite value appears in the running cost or in any gradient
// component.
func (c *CostFunction) Evaluate(ctx context.Context, parameters []float64, gradient []float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, ErrCancelled
	}

	n := len(c.originalPath)
	var totalCost float64

	for i := 0; i < n; i++ {
		xIndex, yIndex := 2*i, 2*i+1
		if gradient != nil {
			gradient[xIndex] = 0
			gradient[yIndex] = 0
		}
		if i < 1 || i >= n-1 {
			continue
		}

		xi := Point{X: parameters[xIndex], Y: parameters[yIndex]}
		xim1 := Point{X: parameters[xIndex-2], Y: parameters[yIndex-2]}
		xip1 := Point{X: parameters[xIndex+2], Y: parameters[yIndex+2]}

		curv := computeCurvature(xim1, xi, xip1, c.params.MaxCurvature)

		totalCost += smoothingResidual(c.params.SmoothWeight, xi, xip1, xim1)
		totalCost += curvatureResidual(c.params.CurvatureWeight, curv)
		totalCost += distanceResidual(c.params.DistanceWeight, xi, c.originalPath[i])

		mx, my, inBounds := cellOf(c.view, xi)
		var cellCost costmap.Cost
		if inBounds {
			cellCost = c.view.GetCost(mx, my)
			totalCost += costResidual(c.params.CostmapWeight, cellCost)
		}

		if gradient == nil {
			continue
		}

		gx, gy := smoothingJacobian(c.params.SmoothWeight, xi, xip1, xim1)
		cgx, cgy := curvatureJacobian(c.params.CurvatureWeight, xim1, xi, xip1, curv)
		dgx, dgy := distanceJacobian(c.params.DistanceWeight, xi, c.originalPath[i])
		gx, gy = gx+cgx+dgx, gy+cgy+dgy

		if inBounds {
			jgx, jgy := costJacobian(c.params.CostmapWeight, c.view, mx, my, cellCost)
			gx += jgx
			gy += jgy
		}

		if math.IsNaN(gx) || math.IsInf(gx, 0) || math.IsNaN(gy) || math.IsInf(gy, 0) {
			return 0, &ErrDiverged{Index: i}
		}
		gradient[xIndex], gradient[yIndex] = gx, gy
	}

	if math.IsNaN(totalCost) || math.IsInf(totalCost, 0) {
		return 0, &ErrDiverged{Index: -1}
	}
	return totalCost, nil
}

// smoothingResidual penalizes the discrete second difference at xi
// (spec §4.4 smoothing term).
func smoothingResidual(weight float64, xi, xip1, xim1 Point) float64 {
	return weight * (dot(xip1, xip1) -
		4*dot(xip1, xi) +
		2*dot(xip1, xim1) +
		4*dot(xi, xi) -
		4*dot(xi, xim1) +
		dot(xim1, xim1))
}

func smoothingJacobian(weight float64, xi, xip1, xim1 Point) (gx, gy float64) {
	gx = weight * (-4*xim1.X + 8*xi.X - 4*xip1.X)
	gy = weight * (-4*xim1.Y + 8*xi.Y - 4*xip1.Y)
	return gx, gy
}

// distanceResidual anchors xi toward its pre-smoothing position.
func distanceResidual(weight float64, xi, original Point) float64 {
	d := sub(xi, original)
	return weight * dot(d, d)
}

func distanceJacobian(weight float64, xi, original Point) (gx, gy float64) {
	gx = weight * 2 * (xi.X - original.X)
	gy = weight * 2 * (xi.Y - original.Y)
	return gx, gy
}

// curvature caches the intermediate values shared between
// curvatureResidual and curvatureJacobian so both passes agree on
// whether the term is active (spec §4.4/§9's "valid cache").
type curvature struct {
	valid            bool
	delta, deltaPrim Point
	deltaNorm        float64
	deltaPrimNorm    float64
	turningAngle     float64
	slack            float64
}

// computeCurvature evaluates the one-sided quadratic curvature penalty
// setup for the triplet (xim1, xi, xip1). It never returns an error:
// degenerate geometry (near-zero segments, NaN, Inf) simply marks the
// result invalid, which both the residual and Jacobian honor.
func computeCurvature(xim1, xi, xip1 Point, maxCurvature float64) curvature {
	c := curvature{
		delta:     sub(xi, xim1),
		deltaPrim: sub(xip1, xi),
	}
	c.deltaNorm = norm(c.delta)
	c.deltaPrimNorm = norm(c.deltaPrim)

	if c.deltaNorm < curvatureEpsilon || c.deltaPrimNorm < curvatureEpsilon ||
		math.IsNaN(c.deltaNorm) || math.IsNaN(c.deltaPrimNorm) ||
		math.IsInf(c.deltaNorm, 0) || math.IsInf(c.deltaPrimNorm, 0) {
		return c
	}

	projection := dot(c.delta, c.deltaPrim) / (c.deltaNorm * c.deltaPrimNorm)
	if math.Abs(1-projection) < curvatureEpsilon || math.Abs(1+projection) < curvatureEpsilon {
		projection = 1.0
	}

	c.turningAngle = math.Acos(projection)
	localCurvature := c.turningAngle / c.deltaNorm
	c.slack = localCurvature - maxCurvature

	if c.slack <= curvatureEpsilon {
		return c
	}
	c.valid = true
	return c
}

func curvatureResidual(weight float64, c curvature) float64 {
	if !c.valid {
		return 0
	}
	return weight * c.slack * c.slack
}

func curvatureJacobian(weight float64, xim1, xi, xip1 Point, c curvature) (gx, gy float64) {
	if !c.valid {
		return 0, 0
	}
	cosPhi := math.Cos(c.turningAngle)
	dPhiByDCosPhi := -1 / math.Sqrt(1-cosPhi*cosPhi)

	negXip1 := negate(xip1)
	p1 := normalizedOrthogonalComplement(xi, negXip1, c.deltaNorm, c.deltaPrimNorm)
	p2 := normalizedOrthogonalComplement(negXip1, xi, c.deltaPrimNorm, c.deltaNorm)

	u := 2 * c.slack
	alpha := (-1 / c.deltaNorm) * dPhiByDCosPhi
	beta := c.turningAngle / (c.deltaNorm * c.deltaNorm)
	ones := Point{X: 1, Y: 1}

	ji := sub(scaleVec(add(negate(p1), negate(p2)), alpha), scaleVec(ones, beta))
	jim1 := sub(scaleVec(p2, alpha), scaleVec(ones, beta))
	jip1 := scaleVec(p1, alpha)

	ji = scaleVec(ji, u)
	jim1 = scaleVec(jim1, u)
	jip1 = scaleVec(jip1, u)

	combined := add(sub(jim1, scaleVec(ji, 2)), jip1)
	gx = weight * combined.X
	gy = weight * combined.Y
	return gx, gy
}

// cellOf rounds a smoother parameter (cell-unit coordinates, per
// search.Point's convention — the path lifter never touches world
// units) to the nearest map cell and reports whether it lies in
// bounds. This intentionally bypasses View.WorldToMap: that conversion
// is for world-frame collaborators, and the parameter vector this
// function operates on is already in cell units by construction.
func cellOf(view costmap.View, p Point) (mx, my int, inBounds bool) {
	mx = int(math.Round(p.X))
	my = int(math.Round(p.Y))
	inBounds = mx >= 0 && mx < view.SizeX() && my >= 0 && my < view.SizeY()
	return mx, my, inBounds
}

// costResidual implements the "steer away" costmap term. The residual
// is negative and grows in magnitude as the cell cost drops further
// below costmap.MaxNonObstacle — under gradient descent's
// x_new = x - step*gradient update, this is what actually pulls a
// point toward lower costmap values (see costJacobian). A naive
// positive `+diff²` reads as "steer away" but produces the opposite
// descent direction: it is minimized (zero force) exactly at
// MaxNonObstacle, the cell value closest to an obstacle, and grows as
// cost falls toward Free, pulling points toward the obstacle instead
// of away from it. FREE and UNKNOWN cells exert no force.
func costResidual(weight float64, cost costmap.Cost) float64 {
	if cost == costmap.Free || cost == costmap.Unknown {
		return 0
	}
	diff := float64(cost) - float64(costmap.MaxNonObstacle)
	return -weight * diff * diff
}

func costJacobian(weight float64, view costmap.View, mx, my int, cost costmap.Cost) (gx, gy float64) {
	if cost == costmap.Free || cost == costmap.Unknown {
		return 0, 0
	}
	dx, dy := costmapGradient(view, mx, my)
	prefix := -2 * weight * (float64(cost) - float64(costmap.MaxNonObstacle))
	return prefix * dx, prefix * dy
}
