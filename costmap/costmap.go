// Package costmap defines the read-only occupancy-grid contract the
// search and smoother packages consume, plus a dense reference
// implementation used by tests and the CLI demo.
//
// The costmap *producer* is explicitly out of scope for this module
// (see spec §1/§6): a real deployment injects its own View backed by
// whatever occupancy source it has (a rolling window costmap, a static
// map server, ...). Grid exists only so this repository is runnable
// end to end without an external collaborator.
package costmap

// Cost is an 8-bit costmap cell value. Values in (Free, MaxNonObstacle]
// are ordinary traversal costs that linearly inflate step cost;
// Unknown, Inscribed and Occupied are reserved semantic bands.
type Cost = uint8

// Reserved cost-code constants shared between search and smoother, per
// spec §3/§6. Values follow the convention used throughout the
// navigation-stack costmap this core was distilled from: obstacle
// costs sit at the top of the uint8 range, free space at the bottom.
const (
	Free            Cost = 0
	MaxNonObstacle  Cost = 252
	Inscribed       Cost = 253
	Occupied        Cost = 254
	Unknown         Cost = 255
)

// View is the read-only interface the search engine and smoother
// consume. All reads are infallible for (mx, my) within
// [0, SizeX())x[0, SizeY()); behavior outside that range is
// implementation-defined (Grid returns Unknown; a real costmap should
// document its own choice).
type View interface {
	SizeX() int
	SizeY() int
	GetCost(mx, my int) Cost
	// WorldToMap converts a world-frame coordinate into map cell
	// indices. ok is false when (wx, wy) falls outside the grid.
	WorldToMap(wx, wy float64) (mx, my int, ok bool)
}

// Grid is a dense, in-memory reference implementation of View with an
// identity world-to-map mapping scaled by Resolution and offset by
// Origin — enough to exercise the search and smoother against
// synthetic scenarios without a real navigation stack.
type Grid struct {
	width, height int
	cells         []Cost
	// Resolution is world units per cell; OriginX/OriginY is the
	// world-frame coordinate of cell (0, 0)'s lower-left corner.
	Resolution       float64
	OriginX, OriginY float64
}

// NewGrid allocates a width x height grid with every cell set to Free.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:      width,
		height:     height,
		cells:      make([]Cost, width*height),
		Resolution: 1.0,
	}
	return g
}

func (g *Grid) SizeX() int { return g.width }
func (g *Grid) SizeY() int { return g.height }

// Index returns the flat row-major index of (mx, my), matching spec
// §3's `x + y*W` node index convention.
func (g *Grid) Index(mx, my int) int { return mx + my*g.width }

func (g *Grid) inBounds(mx, my int) bool {
	return mx >= 0 && mx < g.width && my >= 0 && my < g.height
}

// GetCost returns Unknown for out-of-bounds cells rather than
// panicking, so finite-difference stencils that probe past the border
// (spec §4.4) can treat it uniformly — callers that need spec's
// "defaults to 0" stencil behavior handle that explicitly at the
// stencil site, not here.
func (g *Grid) GetCost(mx, my int) Cost {
	if !g.inBounds(mx, my) {
		return Unknown
	}
	return g.cells[g.Index(mx, my)]
}

// SetCost writes a cell's cost. It is a no-op for out-of-bounds
// indices.
func (g *Grid) SetCost(mx, my int, cost Cost) {
	if !g.inBounds(mx, my) {
		return
	}
	g.cells[g.Index(mx, my)] = cost
}

// WorldToMap applies the grid's resolution/origin to convert a
// world-frame point into cell indices.
func (g *Grid) WorldToMap(wx, wy float64) (mx, my int, ok bool) {
	mx = int((wx - g.OriginX) / g.Resolution)
	my = int((wy - g.OriginY) / g.Resolution)
	return mx, my, g.inBounds(mx, my)
}

// MapToWorld is the inverse of WorldToMap, returning the world-frame
// coordinate of a cell's center.
func (g *Grid) MapToWorld(mx, my int) (wx, wy float64) {
	wx = g.OriginX + (float64(mx)+0.5)*g.Resolution
	wy = g.OriginY + (float64(my)+0.5)*g.Resolution
	return wx, wy
}

// IsValid implements node validity per spec §4.1: occupied and
// inscribed cells are never traversable; unknown cells are
// traversable only when traverseUnknown is set; every other value
// (including ordinary traversal costs) is valid.
func IsValid(cost Cost, traverseUnknown bool) bool {
	if cost == Occupied || cost == Inscribed {
		return false
	}
	if cost == Unknown && !traverseUnknown {
		return false
	}
	return true
}
