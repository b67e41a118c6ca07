package search

// Connectivity selects the neighbor offset table used during
// expansion (spec §3).
type Connectivity int

const (
	VonNeumann Connectivity = iota // 4-connected
	Moore                          // 8-connected
)

// offsets builds the signed flat-index deltas for connectivity over a
// grid of the given width, cardinal offsets first: the Moore table
// lists the four cardinal offsets and then the four diagonal ones.
// Directly grounded in the source's Node2D::initNeighborhoods.
func offsets(width int, connectivity Connectivity) ([]int, error) {
	switch connectivity {
	case VonNeumann:
		return []int{-1, +1, -width, +width}, nil
	case Moore:
		return []int{
			-1, +1, -width, +width,
			-width - 1, -width + 1, +width - 1, +width + 1,
		}, nil
	default:
		return nil, newError(InvalidNeighborhood, "unknown connectivity kind")
	}
}

// neighborhood is the episode-owned offset table (spec §9: never a
// process-wide global, so that concurrent searches on different grid
// widths never race).
type neighborhood struct {
	offsets []int
}

func newNeighborhood(width int, connectivity Connectivity) (*neighborhood, error) {
	o, err := offsets(width, connectivity)
	if err != nil {
		return nil, err
	}
	return &neighborhood{offsets: o}, nil
}

// forEach visits every valid neighbor of the node at fromIndex, in
// offset-table order, calling visit for each. valid both filters and
// resolves the pooled Node for the candidate index, per spec §4.2.
// forEach itself only drops candidates at index <= 0; an offset that
// wraps across a row edge is left for valid to reject (Run's valid
// does so by comparing the columns of the two cells).
func (nh *neighborhood) forEach(fromIndex int, valid func(candidateIndex int) (*Node, bool), visit func(*Node)) {
	for _, d := range nh.offsets {
		j := fromIndex + d
		if j <= 0 {
			continue
		}
		if node, ok := valid(j); ok {
			visit(node)
		}
	}
}
