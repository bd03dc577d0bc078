package sanity

import (
	"errors"
	"fmt"
)

// Check failure kinds. Every error returned by this package unwraps to
// exactly one of these sentinels, so callers can branch with errors.Is.
var (
	// ErrInvalidConfig is returned when a check's own options are malformed
	// and the check cannot be evaluated at all. It reflects a programming
	// error in the caller, not a problem with the argument being checked, so
	// the ErrorMessage option never applies to it.
	ErrInvalidConfig = errors.New("invalid check configuration")

	// ErrTypeMismatch is returned when the argument's runtime type is
	// unacceptable.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidValue is returned when the argument's type is acceptable but
	// its value is not (membership, range, or length violations).
	ErrInvalidValue = errors.New("invalid value")
)

// Error describes a single failed check.
type Error struct {
	// Arg is the argument name the check was invoked with.
	Arg string

	// Message is the human-readable diagnostic.
	Message string

	kind error
}

func (e *Error) Error() string { return e.Message }

// Unwrap reports the failure kind, so errors.Is(err, ErrTypeMismatch) and
// friends work on every error this package returns.
func (e *Error) Unwrap() error { return e.kind }

func configError(arg, format string, args ...any) error {
	return &Error{Arg: arg, Message: fmt.Sprintf(format, args...), kind: ErrInvalidConfig}
}

// failure builds a type or value error, honoring an ErrorMessage override.
// The override replaces the message text only, never the kind.
func failure(kind error, arg, override, format string, args ...any) error {
	msg := override
	if msg == "" {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Arg: arg, Message: msg, kind: kind}
}
