package search

import "fmt"

// Kind enumerates the error conditions the search engine surfaces
// (spec §7).
type Kind int

const (
	// InvalidNeighborhood: unknown connectivity kind at init.
	InvalidNeighborhood Kind = iota
	// StartOrGoalInvalid: start or goal fails the validity predicate.
	StartOrGoalInvalid
	// NoPathFound: open set exhausted without reaching goal.
	NoPathFound
	// IterationLimitExceeded: the iteration cap was reached.
	IterationLimitExceeded
	// Cancelled: the caller's cancellation token fired.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidNeighborhood:
		return "InvalidNeighborhood"
	case StartOrGoalInvalid:
		return "StartOrGoalInvalid"
	case NoPathFound:
		return "NoPathFound"
	case IterationLimitExceeded:
		return "IterationLimitExceeded"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is the sentinel error type search returns. Kind is comparable
// with errors.Is against the package-level Err* sentinels below.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is(err, search.ErrNoPathFound) work by comparing Kind
// only, ignoring Message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Sentinel errors usable with errors.Is(err, search.ErrNoPathFound).
var (
	ErrInvalidNeighborhood  = &Error{Kind: InvalidNeighborhood}
	ErrStartOrGoalInvalid   = &Error{Kind: StartOrGoalInvalid}
	ErrNoPathFound          = &Error{Kind: NoPathFound}
	ErrIterationLimitExceeded = &Error{Kind: IterationLimitExceeded}
	ErrCancelled            = &Error{Kind: Cancelled}
)
