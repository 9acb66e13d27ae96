// Package command defines the closed set of tracker commands and parses
// them from command-line arguments.
package command

import (
	"github.com/nibzard/tasktracker-go/internal/task"
	"github.com/nibzard/tasktracker-go/internal/utils"
)

// Command names as typed on the command line.
const (
	NameAdd            = "add"
	NameUpdate         = "update"
	NameDelete         = "delete"
	NameMarkInProgress = "mark-in-progress"
	NameMarkDone       = "mark-done"
	NameList           = "list"
)

// Names returns every command name in usage order.
func Names() []string {
	return []string{NameAdd, NameUpdate, NameDelete, NameMarkInProgress, NameMarkDone, NameList}
}

// Command is one validated user intent.
type Command interface {
	Name() string
	command()
}

// Add creates a task.
type Add struct {
	Description task.Description
}

// Update replaces a task's description.
type Update struct {
	ID          task.ID
	Description task.Description
}

// Delete removes a task.
type Delete struct {
	ID task.ID
}

// MarkInProgress sets a task's status to in_progress.
type MarkInProgress struct {
	ID task.ID
}

// MarkDone sets a task's status to done.
type MarkDone struct {
	ID task.ID
}

// List shows tasks, optionally only those with Status.
type List struct {
	Status *task.Status
}

func (Add) Name() string            { return NameAdd }
func (Update) Name() string         { return NameUpdate }
func (Delete) Name() string         { return NameDelete }
func (MarkInProgress) Name() string { return NameMarkInProgress }
func (MarkDone) Name() string       { return NameMarkDone }
func (List) Name() string           { return NameList }

func (Add) command()            {}
func (Update) command()         {}
func (Delete) command()         {}
func (MarkInProgress) command() {}
func (MarkDone) command()       {}
func (List) command()           {}

// IsCommand reports whether name is one of the tracker commands.
func IsCommand(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Parse parses args, which exclude the program name, into a Command.
// Argument counts in errors include the program name and the command
// word, so "add" with no description reports "Expected 3, got 2".
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, ErrNoCommand
	}
	// argc mirrors the full argv length including the program name.
	argc := len(args) + 1

	switch args[0] {
	case NameAdd:
		if err := expectArgs(argc, 3); err != nil {
			return nil, err
		}
		d, err := task.NewDescription(args[1])
		if err != nil {
			return nil, err
		}
		return Add{Description: d}, nil
	case NameUpdate:
		if err := expectArgs(argc, 4); err != nil {
			return nil, err
		}
		id, err := task.ParseID(args[1])
		if err != nil {
			return nil, err
		}
		d, err := task.NewDescription(args[2])
		if err != nil {
			return nil, err
		}
		return Update{ID: id, Description: d}, nil
	case NameDelete:
		id, err := parseIDCommand(args, argc)
		if err != nil {
			return nil, err
		}
		return Delete{ID: id}, nil
	case NameMarkInProgress:
		id, err := parseIDCommand(args, argc)
		if err != nil {
			return nil, err
		}
		return MarkInProgress{ID: id}, nil
	case NameMarkDone:
		id, err := parseIDCommand(args, argc)
		if err != nil {
			return nil, err
		}
		return MarkDone{ID: id}, nil
	case NameList:
		switch argc {
		case 2:
			return List{}, nil
		case 3:
			status, err := ParseStatusArg(args[1])
			if err != nil {
				return nil, err
			}
			return List{Status: &status}, nil
		default:
			return nil, &TooManyArgsError{Max: 3, Got: argc}
		}
	default:
		return nil, &UnknownCommandError{Command: args[0]}
	}
}

// ParseStatusArg parses a status as typed by the user, accepting aliases
// such as "in-progress". Errors name the argument as given.
func ParseStatusArg(arg string) (task.Status, error) {
	status, err := task.ParseStatus(utils.NormalizeStatus(arg))
	if err != nil {
		return "", &task.UnknownStatusError{Status: arg}
	}
	return status, nil
}

func parseIDCommand(args []string, argc int) (task.ID, error) {
	if err := expectArgs(argc, 3); err != nil {
		return 0, err
	}
	return task.ParseID(args[1])
}

func expectArgs(got, expected int) error {
	if got != expected {
		return &ArgCountError{Expected: expected, Got: got}
	}
	return nil
}
