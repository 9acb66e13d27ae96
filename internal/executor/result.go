package executor

import "github.com/nibzard/tasktracker-go/internal/task"

// Result is the outcome of one executed command.
type Result interface {
	result()
}

// AddResult carries the created task.
type AddResult struct {
	Task task.Task
}

// UpdateResult carries the task after its description changed.
type UpdateResult struct {
	Task task.Task
}

// DeleteResult carries the id of the removed task.
type DeleteResult struct {
	ID task.ID
}

// StatusResult carries a status transition.
type StatusResult struct {
	Change StatusChange
}

// ListResult carries the listed tasks and the filter that produced them.
type ListResult struct {
	Tasks  []task.Task
	Filter *task.Status
}

func (AddResult) result()    {}
func (UpdateResult) result() {}
func (DeleteResult) result() {}
func (StatusResult) result() {}
func (ListResult) result()   {}
