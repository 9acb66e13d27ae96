package storage

import (
	"github.com/nibzard/tasktracker-go/internal/task"
)

// collection is the ordered task list shared by the Storage implementations.
// Mutators return a new slice so callers can swap it in only after a
// successful write.
type collection []task.Task

func (c collection) index(id task.ID) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

func (c collection) get(id task.ID) (task.Task, bool) {
	if i := c.index(id); i >= 0 {
		return c[i], true
	}
	return task.Task{}, false
}

func (c collection) clone() collection {
	out := make(collection, len(c))
	copy(out, c)
	return out
}

func (c collection) withCreated(t task.Task) (collection, error) {
	if c.index(t.ID) >= 0 {
		return nil, task.ErrDuplicateID
	}
	out := make(collection, len(c), len(c)+1)
	copy(out, c)
	return append(out, t), nil
}

// withUpdated keeps the stored id even if t carries a different one.
func (c collection) withUpdated(id task.ID, t task.Task) (collection, error) {
	i := c.index(id)
	if i < 0 {
		return nil, &task.NotFoundError{ID: id}
	}
	out := c.clone()
	t.ID = id
	out[i] = t
	return out, nil
}

func (c collection) withDeleted(id task.ID) (collection, error) {
	i := c.index(id)
	if i < 0 {
		return nil, &task.NotFoundError{ID: id}
	}
	out := make(collection, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...), nil
}

func (c collection) maxID() task.ID {
	var highest task.ID
	for i := range c {
		if c[i].ID > highest {
			highest = c[i].ID
		}
	}
	return highest
}
