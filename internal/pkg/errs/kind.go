package errs

import "errors"

// Kind classifies an error for transport-level translation.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindInvalidState
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindInvalidState:
		return "invalid_state"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// KindOf walks the error chain (joined errors included) and returns the first matching kind.
// Argument errors win over state errors so that a malformed request is reported as such.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidArgument
	case errors.Is(err, ErrStateIsInvalid):
		return KindInvalidState
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrObjectAlreadyExists):
		return KindConflict
	default:
		return KindInternal
	}
}
