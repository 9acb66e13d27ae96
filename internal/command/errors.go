package command

import (
	"errors"
	"fmt"
)

// ErrNoCommand is returned when no command word was given.
var ErrNoCommand = errors.New("no command provided")

// UnknownCommandError reports an unrecognised command word.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("invalid command %s", e.Command)
}

// ArgCountError reports a command given the wrong number of arguments.
type ArgCountError struct {
	Expected int
	Got      int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("wrong number of arguments: Expected %d, got %d", e.Expected, e.Got)
}

// TooManyArgsError reports a command with an optional argument given too
// many arguments.
type TooManyArgsError struct {
	Max int
	Got int
}

func (e *TooManyArgsError) Error() string {
	return fmt.Sprintf("wrong number of arguments: Expected up to %d, got %d", e.Max, e.Got)
}
