// Package presenter renders executor results for the user.
package presenter

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/nibzard/tasktracker-go/internal/executor"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// Presenter receives the outcome of one command.
type Presenter interface {
	ShowTasks(tasks []task.Task, filter *task.Status) error
	ShowAdded(t task.Task) error
	ShowUpdated(t task.Task) error
	ShowDeleted(id task.ID) error
	ShowStatusChange(change executor.StatusChange) error
	ShowError(err error) error
	ShowHelp() error
}

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("invalid output format %q, must be one of: text, json", s)
}

// Render routes res to the matching hook of p.
func Render(p Presenter, res executor.Result) error {
	switch r := res.(type) {
	case executor.AddResult:
		return p.ShowAdded(r.Task)
	case executor.UpdateResult:
		return p.ShowUpdated(r.Task)
	case executor.DeleteResult:
		return p.ShowDeleted(r.ID)
	case executor.StatusResult:
		return p.ShowStatusChange(r.Change)
	case executor.ListResult:
		return p.ShowTasks(r.Tasks, r.Filter)
	default:
		return fmt.Errorf("unsupported result %T", res)
	}
}

// Message returns the user-facing text of err: its message with the first
// letter upper-cased.
func Message(err error) string {
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
