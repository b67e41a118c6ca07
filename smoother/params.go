package smoother

// Params holds the smoother's four term weights plus the curvature
// threshold, per spec §6's SmootherParams external interface.
//
// Note: the source declares a CollisionWeight field that its
// residual/Jacobian never reference (spec §9's flagged open question).
// This core does not carry that dead field forward — see DESIGN.md for
// the decision record. A future collision term needs its own
// residual/Jacobian pair, not a bare unused weight.
type Params struct {
	SmoothWeight    float64
	CurvatureWeight float64
	CostmapWeight   float64
	DistanceWeight  float64
	MaxCurvature    float64
}
