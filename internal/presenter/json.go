package presenter

import (
	"encoding/json"
	"io"

	"github.com/nibzard/tasktracker-go/internal/executor"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// JSON writes one machine-readable document per command.
type JSON struct {
	out    io.Writer
	errOut io.Writer
	prog   string
}

// NewJSON returns a JSON presenter.
func NewJSON(out, errOut io.Writer, prog string) *JSON {
	return &JSON{out: out, errOut: errOut, prog: prog}
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ShowTasks writes {"tasks": [...]}.
func (p *JSON) ShowTasks(tasks []task.Task, filter *task.Status) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return encode(p.out, struct {
		Filter *task.Status `json:"filter,omitempty"`
		Tasks  []task.Task  `json:"tasks"`
	}{Filter: filter, Tasks: tasks})
}

// ShowAdded writes {"added": task}.
func (p *JSON) ShowAdded(t task.Task) error {
	return encode(p.out, map[string]task.Task{"added": t})
}

// ShowUpdated writes {"updated": task}.
func (p *JSON) ShowUpdated(t task.Task) error {
	return encode(p.out, map[string]task.Task{"updated": t})
}

// ShowDeleted writes {"deleted": id}.
func (p *JSON) ShowDeleted(id task.ID) error {
	return encode(p.out, map[string]task.ID{"deleted": id})
}

// ShowStatusChange writes the transition.
func (p *JSON) ShowStatusChange(c executor.StatusChange) error {
	return encode(p.out, c)
}

// ShowError writes {"error": message} to the error writer.
func (p *JSON) ShowError(e error) error {
	return encode(p.errOut, map[string]string{"error": Message(e)})
}

// ShowHelp writes the usage text; help is for humans.
func (p *JSON) ShowHelp() error {
	_, err := io.WriteString(p.out, HelpText(p.prog))
	return err
}

var (
	_ Presenter = (*Text)(nil)
	_ Presenter = (*JSON)(nil)
)
