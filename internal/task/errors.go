package task

import (
	"errors"
	"fmt"
)

// ErrEmptyDescription is returned when a description is the empty string.
var ErrEmptyDescription = errors.New("task description cannot be empty")

// ErrInvalidDescription is returned when a description is not valid UTF-8
// and so could not be stored unchanged.
var ErrInvalidDescription = errors.New("task description must be valid UTF-8")

// ErrDuplicateID is returned when a task is created with an id that is
// already taken by a live task.
var ErrDuplicateID = errors.New("task id already in use")

// InvalidIDError reports text that could not be parsed as a task id.
type InvalidIDError struct {
	Input string
	Err   error
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("expected numeric id, got %s", e.Input)
}

// Unwrap returns the underlying parse error.
func (e *InvalidIDError) Unwrap() error {
	return e.Err
}

// UnknownStatusError reports a status token outside the known set.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status: %s", e.Status)
}

// NotFoundError reports an id-keyed operation on a missing task.
type NotFoundError struct {
	ID ID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found. Id: %s", e.ID)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
