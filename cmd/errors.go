package cmd

import "errors"

// reportedError marks an error that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// IsReported reports whether err was already printed by Run, so the caller
// only needs to set the exit status.
func IsReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}
