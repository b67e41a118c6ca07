package smoother

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by Evaluate when ctx is already done,
// mirroring search.ErrCancelled's sentinel pattern for the smoother's
// own cancellation point (spec §5: cancellation is checked once per
// smoother Evaluate call, not once per point in its inner loop).
var ErrCancelled = errors.New("smoother: cancelled")

// ErrDiverged is returned by Evaluate when the accumulated cost or any
// gradient component becomes non-finite mid-evaluation. The curvature
// term's own degeneracies are handled by clamping, not this error —
// this only fires on an actual NaN/Inf leaking through, e.g. from a
// pathological weight or an original path containing NaN.
type ErrDiverged struct {
	Index int // point index where the divergence was detected
}

func (e *ErrDiverged) Error() string {
	return fmt.Sprintf("smoother: diverged at point %d", e.Index)
}

// Is lets errors.Is(err, new(ErrDiverged)) match any divergence
// regardless of which point index triggered it.
func (e *ErrDiverged) Is(target error) bool {
	_, ok := target.(*ErrDiverged)
	return ok
}
