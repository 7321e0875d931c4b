package services

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a candidate range has check_out not
// strictly after check_in.
var ErrInvalidRange = errors.New("validation: check_out must be after check_in")

// ValidationError marks malformed input beyond the range check (missing room,
// both or neither of guest name / pilgrimage set, unknown status value).
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return "validation: " + e.Msg
}

// NotFoundError marks a reference to an unknown room, pilgrimage or
// reservation id.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// InvalidTransitionError marks an illegal reservation status change.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a validation failure (bad range or
// malformed input).
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.Is(err, ErrInvalidRange) || errors.As(err, &ve)
}

// IsInvalidTransition reports whether err is (or wraps) an
// InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var it InvalidTransitionError
	return errors.As(err, &it)
}
