package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ID identifies a task. Zero is never assigned to a stored task.
type ID uint32

// NewID returns the id for a raw number.
func NewID(n uint32) ID {
	return ID(n)
}

// ParseID parses user-supplied text as a task id.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, &InvalidIDError{Input: s, Err: err}
	}
	return ID(n), nil
}

// String returns the decimal form of the id.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Description is the non-empty text of a task.
type Description struct {
	text string
}

// NewDescription validates s. The empty string and text that is not valid
// UTF-8 are rejected; surrounding whitespace is kept as typed.
func NewDescription(s string) (Description, error) {
	if s == "" {
		return Description{}, ErrEmptyDescription
	}
	if !utf8.ValidString(s) {
		return Description{}, ErrInvalidDescription
	}
	return Description{text: s}, nil
}

// MustDescription is NewDescription for literals known to be valid.
func MustDescription(s string) Description {
	d, err := NewDescription(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the description text.
func (d Description) String() string {
	return d.text
}

// IsZero reports whether d was never constructed.
func (d Description) IsZero() bool {
	return d.text == ""
}

// MarshalText implements encoding.TextMarshaler.
func (d Description) MarshalText() ([]byte, error) {
	return []byte(d.text), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and applies the same
// validation as NewDescription.
func (d *Description) UnmarshalText(b []byte) error {
	parsed, err := NewDescription(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Status represents a task status.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// ParseStatus parses a serialized status token.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s), nil
	}
	return "", &UnknownStatusError{Status: s}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// String returns the serialized token.
func (s Status) String() string {
	return string(s)
}

// Label returns a human-readable name for the status.
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Task represents a single tracked task.
type Task struct {
	ID          ID          `json:"id"`
	Description Description `json:"description"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// New returns a todo task created at now.
func New(id ID, description Description, now time.Time) Task {
	now = now.UTC()
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsZero returns true if the task is empty (has no ID).
func (t *Task) IsZero() bool {
	return t.ID == 0
}

// SetDescription replaces the description and sets updated_at.
func (t *Task) SetDescription(d Description, now time.Time) {
	t.Description = d
	t.touch(now)
}

// SetStatus replaces the status and sets updated_at.
func (t *Task) SetStatus(s Status, now time.Time) {
	t.Status = s
	t.touch(now)
}

func (t *Task) touch(now time.Time) {
	now = now.UTC()
	if now.Before(t.UpdatedAt) {
		now = t.UpdatedAt
	}
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

// String renders the task as a multi-line block.
func (t Task) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task: %s\n", t.ID)
	fmt.Fprintf(&b, "Description: %s\n", t.Description)
	fmt.Fprintf(&b, "Status: %s\n", t.Status)
	fmt.Fprintf(&b, "Created At: %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Updated At: %s\n", t.UpdatedAt.Format(time.RFC3339))
	return b.String()
}

// Filter returns the tasks whose status equals *status, preserving order.
// A nil status returns a copy of all tasks.
func Filter(tasks []Task, status *Status) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if status != nil && t.Status != *status {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CountByStatus returns the number of tasks per status.
func CountByStatus(tasks []Task) map[Status]int {
	counts := map[Status]int{
		StatusTodo:       0,
		StatusInProgress: 0,
		StatusDone:       0,
	}
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}
