// Package executor applies one validated command to a task storage.
//
// The executor owns the business rules storage does not know about, such as
// how the next task id is chosen. Every operation performs at most one
// storage mutation and returns storage errors unchanged.
package executor

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasktracker-go/internal/command"
	"github.com/nibzard/tasktracker-go/internal/logging"
	"github.com/nibzard/tasktracker-go/internal/storage"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// ErrIDSpaceExhausted is returned when no further id can be assigned.
var ErrIDSpaceExhausted = errors.New("no task ids left")

// Option configures an Executor.
type Option func(*Executor)

// WithClock sets the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDStrategy sets how new task ids are derived.
func WithIDStrategy(s IDStrategy) Option {
	return func(e *Executor) {
		e.ids = s
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *Executor) {
		e.logger = logging.OrDiscard(logger)
	}
}

// Executor applies commands against a Storage.
type Executor struct {
	store  storage.Storage
	now    func() time.Time
	ids    IDStrategy
	logger *log.Logger
}

// New returns an executor over store.
func New(store storage.Storage, opts ...Option) *Executor {
	e := &Executor{
		store:  store,
		now:    time.Now,
		ids:    DefaultIDStrategy,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StatusChange describes a status transition of one task.
type StatusChange struct {
	ID  task.ID     `json:"id"`
	Old task.Status `json:"old_status"`
	New task.Status `json:"new_status"`
}

// Add creates a todo task with the next id.
func (e *Executor) Add(description task.Description) (task.Task, error) {
	id, err := e.nextID()
	if err != nil {
		return task.Task{}, err
	}
	t := task.New(id, description, e.now())
	if err := e.store.CreateTask(t); err != nil {
		return task.Task{}, err
	}
	e.logger.Debug("task added", "id", id, "strategy", e.ids)
	return t, nil
}

// Update replaces the description of an existing task.
func (e *Executor) Update(id task.ID, description task.Description) (task.Task, error) {
	t, ok := e.store.GetTask(id)
	if !ok {
		return task.Task{}, &task.NotFoundError{ID: id}
	}
	t.SetDescription(description, e.now())
	if err := e.store.UpdateTask(id, t); err != nil {
		return task.Task{}, err
	}
	e.logger.Debug("task updated", "id", id)
	return t, nil
}

// Delete removes a task and returns its id.
func (e *Executor) Delete(id task.ID) (task.ID, error) {
	if err := e.store.DeleteTask(id); err != nil {
		return 0, err
	}
	e.logger.Debug("task deleted", "id", id)
	return id, nil
}

// MarkInProgress sets a task's status to in_progress.
func (e *Executor) MarkInProgress(id task.ID) (StatusChange, error) {
	return e.setStatus(id, task.StatusInProgress)
}

// MarkDone sets a task's status to done.
func (e *Executor) MarkDone(id task.ID) (StatusChange, error) {
	return e.setStatus(id, task.StatusDone)
}

func (e *Executor) setStatus(id task.ID, status task.Status) (StatusChange, error) {
	t, ok := e.store.GetTask(id)
	if !ok {
		return StatusChange{}, &task.NotFoundError{ID: id}
	}
	change := StatusChange{ID: id, Old: t.Status, New: status}
	t.SetStatus(status, e.now())
	if err := e.store.UpdateTask(id, t); err != nil {
		return StatusChange{}, err
	}
	e.logger.Debug("task status changed", "id", id, "from", change.Old, "to", change.New)
	return change, nil
}

// List returns all tasks, or those whose status equals *status, in stored
// order.
func (e *Executor) List(status *task.Status) []task.Task {
	return task.Filter(e.store.AllTasks(), status)
}

func (e *Executor) nextID() (task.ID, error) {
	var last uint64
	switch e.ids {
	case IDStrategyCount:
		last = uint64(e.store.CountTasks())
	default:
		last = uint64(e.store.MaxID())
	}
	if last >= math.MaxUint32 {
		return 0, ErrIDSpaceExhausted
	}
	return task.NewID(uint32(last + 1)), nil
}

// Execute dispatches cmd to the matching operation.
func (e *Executor) Execute(cmd command.Command) (Result, error) {
	switch c := cmd.(type) {
	case command.Add:
		t, err := e.Add(c.Description)
		if err != nil {
			return nil, err
		}
		return AddResult{Task: t}, nil
	case command.Update:
		t, err := e.Update(c.ID, c.Description)
		if err != nil {
			return nil, err
		}
		return UpdateResult{Task: t}, nil
	case command.Delete:
		id, err := e.Delete(c.ID)
		if err != nil {
			return nil, err
		}
		return DeleteResult{ID: id}, nil
	case command.MarkInProgress:
		change, err := e.MarkInProgress(c.ID)
		if err != nil {
			return nil, err
		}
		return StatusResult{Change: change}, nil
	case command.MarkDone:
		change, err := e.MarkDone(c.ID)
		if err != nil {
			return nil, err
		}
		return StatusResult{Change: change}, nil
	case command.List:
		return ListResult{Tasks: e.List(c.Status), Filter: c.Status}, nil
	default:
		return nil, fmt.Errorf("unsupported command %T", cmd)
	}
}
