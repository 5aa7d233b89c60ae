package model

import "errors"

// Sentinel errors shared by the storage, service and transport layers.
var (
	// ErrNotFound means the storage reported no matching row.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a write violated a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrValidation means caller input was rejected before reaching storage.
	ErrValidation = errors.New("validation failed")
)

// Kind is the normalized outcome of a user operation.
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindConflict
	KindValidation
	KindInternal
)

// KindOf collapses err into one of the outcome kinds.
// Anything that does not wrap a sentinel above is internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInternal
	}
}

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation_failed"
	default:
		return "internal_error"
	}
}

// OutcomeError pairs a sentinel with a message that is safe to show clients.
type OutcomeError struct {
	Sentinel error
	Message  string
	Cause    error
}

func NewValidationError(message string) error {
	return &OutcomeError{Sentinel: ErrValidation, Message: message}
}

func NewConflictError(message string, cause error) error {
	return &OutcomeError{Sentinel: ErrConflict, Message: message, Cause: cause}
}

func (e *OutcomeError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *OutcomeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Sentinel, e.Cause}
	}
	return []error{e.Sentinel}
}

// MessageOf returns the client-facing message carried by err, or err.Error()
// when there is none.
func MessageOf(err error) string {
	var outcome *OutcomeError
	if errors.As(err, &outcome) {
		return outcome.Message
	}
	return err.Error()
}
