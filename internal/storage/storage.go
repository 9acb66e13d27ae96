// Package storage persists the task collection.
//
// Storage is the capability the executor works against. FileStorage keeps
// the collection in a single JSON document and rewrites the whole document
// on every mutation; MemoryStorage keeps it in memory only and is meant for
// tests.
package storage

import (
	"github.com/nibzard/tasktracker-go/internal/task"
)

// Storage owns an ordered task collection.
type Storage interface {
	// Load reads the persisted collection. A missing backing store yields
	// an empty collection.
	Load() error
	// CreateTask appends t and persists the collection.
	CreateTask(t task.Task) error
	// GetTask returns the task with the given id.
	GetTask(id task.ID) (task.Task, bool)
	// AllTasks returns a copy of the collection in insertion order.
	AllTasks() []task.Task
	// UpdateTask replaces the task with the given id in place and persists.
	UpdateTask(id task.ID, t task.Task) error
	// DeleteTask removes the task with the given id and persists.
	DeleteTask(id task.ID) error
	// CountTasks returns the number of live tasks.
	CountTasks() int
	// MaxID returns the highest id ever stored, including deleted tasks,
	// or 0 when nothing was ever stored.
	MaxID() task.ID
}

// AccessError reports persisted data that could not be read or parsed.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return "could not access persisted data"
}

// Unwrap returns the underlying error.
func (e *AccessError) Unwrap() error {
	return e.Err
}

// PersistError reports a failed write of the collection.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return "could not persist changes"
}

// Unwrap returns the underlying error.
func (e *PersistError) Unwrap() error {
	return e.Err
}
