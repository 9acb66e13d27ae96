package storage

import (
	"errors"

	"github.com/nibzard/tasktracker-go/internal/task"
)

var errWritesDisabled = errors.New("writes disabled")

// MemoryStorage is an in-process Storage for tests. Set FailWrites to make
// every mutation fail with a PersistError.
type MemoryStorage struct {
	FailWrites bool

	tasks  collection
	lastID task.ID
	writes int
}

// NewMemoryStorage returns a storage seeded with tasks.
func NewMemoryStorage(tasks ...task.Task) *MemoryStorage {
	seed := collection(tasks).clone()
	return &MemoryStorage{tasks: seed, lastID: seed.maxID()}
}

// Load is a no-op; the collection lives in memory.
func (m *MemoryStorage) Load() error {
	return nil
}

// CreateTask appends t.
func (m *MemoryStorage) CreateTask(t task.Task) error {
	next, err := m.tasks.withCreated(t)
	if err != nil {
		return err
	}
	return m.commit(next)
}

// GetTask returns the task with the given id.
func (m *MemoryStorage) GetTask(id task.ID) (task.Task, bool) {
	return m.tasks.get(id)
}

// AllTasks returns a copy of the collection.
func (m *MemoryStorage) AllTasks() []task.Task {
	return m.tasks.clone()
}

// UpdateTask replaces the task with the given id.
func (m *MemoryStorage) UpdateTask(id task.ID, t task.Task) error {
	next, err := m.tasks.withUpdated(id, t)
	if err != nil {
		return err
	}
	return m.commit(next)
}

// DeleteTask removes the task with the given id.
func (m *MemoryStorage) DeleteTask(id task.ID) error {
	next, err := m.tasks.withDeleted(id)
	if err != nil {
		return err
	}
	return m.commit(next)
}

// CountTasks returns the number of tasks held.
func (m *MemoryStorage) CountTasks() int {
	return len(m.tasks)
}

// MaxID returns the highest id ever stored, including deleted tasks.
func (m *MemoryStorage) MaxID() task.ID {
	return m.lastID
}

func (m *MemoryStorage) commit(next collection) error {
	if m.FailWrites {
		return &PersistError{Path: "memory", Err: errWritesDisabled}
	}
	m.tasks = next
	m.lastID = max(m.lastID, next.maxID())
	m.writes++
	return nil
}

var (
	_ Storage = (*FileStorage)(nil)
	_ Storage = (*MemoryStorage)(nil)
)
