// Package search implements the A*-style graph search engine over an
// occupancy grid: pre-allocated node storage reused across planning
// episodes, an episode-owned neighborhood offset table, and a
// priority-queue best-first loop with deterministic tie-breaking.
//
// Grounded on the smac_planner Node2D design (node validity, cost
// accumulation, reuse-by-reset) and generalized from a continuous-state,
// dubins-connected vertex/edge/heap trio originally built for
// RRT/BIT*/RHRSA* search down to the flat, index-addressed grid case
// this planner needs.
package search

import (
	"context"
	"math"

	"github.com/oceanic-robotics/gridplanner/costmap"
	"github.com/oceanic-robotics/gridplanner/logging"
)

// DefaultNeutralCost is the baseline per-step cost used to scale the
// heuristic and the transition cost equivalently (spec's Neutral cost
// glossary entry), matching the navigation-stack convention this
// module was distilled from.
const DefaultNeutralCost = 50.0

// Options configures one planning episode (spec §6).
type Options struct {
	Connectivity    Connectivity
	TraverseUnknown bool
	// IterationCap caps the number of outer-loop expansions. Zero or
	// negative means unlimited.
	IterationCap int
	// NeutralCost overrides DefaultNeutralCost when non-zero.
	NeutralCost float64
	// Logger receives episode-level trace records; defaults to
	// logging.Discard.
	Logger logging.Logger
}

func (o Options) neutralCost() float64 {
	if o.NeutralCost > 0 {
		return o.NeutralCost
	}
	return DefaultNeutralCost
}

func (o Options) logger() logging.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Discard
}

// Run performs one A* planning episode over view using table as the
// node arena, from (startX, startY) to (goalX, goalY) in map cells.
// table must already be sized to view's dimensions; callers reuse a
// table across episodes by relying on Run to call table.Reset() at the
// start of every call — the caller never needs to reset it manually.
//
// ctx is checked once per outer iteration for cancellation, per spec
// §5.
func Run(ctx context.Context, view costmap.View, table *Table, startX, startY, goalX, goalY int, opts Options) (Path, error) {
	width := view.SizeX()
	table.Reset()

	nh, err := newNeighborhood(width, opts.Connectivity)
	if err != nil {
		return nil, err
	}

	startIndex := startX + startY*width
	goalIndex := goalX + goalY*width
	neutral := opts.neutralCost()
	logger := opts.logger()

	startNode := table.Get(startIndex, view)
	goalCoords := Point{X: float64(goalX), Y: float64(goalY)}

	if !startNode.IsValid(opts.TraverseUnknown) {
		return nil, newError(StartOrGoalInvalid, "start cell is not valid")
	}
	goalNode := table.Get(goalIndex, view)
	if !goalNode.IsValid(opts.TraverseUnknown) {
		return nil, newError(StartOrGoalInvalid, "goal cell is not valid")
	}

	if startIndex == goalIndex {
		return Path{startIndex}, nil
	}

	startNode.accumulatedCost = 0

	open := newOpenQueue()
	open.push(startNode, heuristic(coordsOf(startIndex, width), goalCoords, neutral))

	iterations := 0
	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, newError(Cancelled, ctx.Err().Error())
		default:
		}

		if opts.IterationCap > 0 && iterations >= opts.IterationCap {
			return nil, newError(IterationLimitExceeded, "")
		}
		iterations++

		top := open.pop()
		current := top.node
		if current.wasVisited {
			// stale queue entry left behind by a cheaper relaxation
			continue
		}
		current.markVisited()

		if current.index == goalIndex {
			logger.Debug("goal reached", "iterations", iterations, "cost", current.accumulatedCost)
			return reconstruct(table, goalIndex), nil
		}

		nh.forEach(current.index, func(candidateIndex int) (*Node, bool) {
			if candidateIndex >= table.Len() {
				return nil, false
			}
			// reject offsets that wrapped across a row edge
			if dx := candidateIndex%width - current.index%width; dx > 1 || dx < -1 {
				return nil, false
			}
			node := table.Get(candidateIndex, view)
			if node.wasVisited || !node.IsValid(opts.TraverseUnknown) {
				return nil, false
			}
			return node, true
		}, func(neighbor *Node) {
			tentative := current.accumulatedCost + stepCost(neutral, neighbor.cellCost)
			if tentative < neighbor.accumulatedCost {
				neighbor.accumulatedCost = tentative
				neighbor.parent = current.index
				f := tentative + heuristic(coordsOf(neighbor.index, width), goalCoords, neutral)
				open.push(neighbor, f)
			}
		})
	}

	return nil, newError(NoPathFound, "")
}

// heuristic is the Euclidean distance from a to b scaled by the
// neutral cost constant (spec §4.3/glossary). With VonNeumann
// connectivity it never overestimates the remaining cost. With Moore
// connectivity a diagonal step costs the same as a cardinal one while
// h can drop by sqrt(2) neutral costs, so h can overestimate and the
// returned path is not guaranteed to be minimum-cost.
func heuristic(a, b Point, neutralCost float64) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y) * neutralCost
}

// stepCost is the transition cost from any u to v: the costmap value
// linearly inflates the baseline step (spec §4.3). Diagonal neighbors
// use the same additive rule with no sqrt(2) correction — intentional,
// see spec §4.6/§9.
func stepCost(neutralCost float64, targetCost costmap.Cost) float64 {
	return neutralCost + float64(targetCost)
}
