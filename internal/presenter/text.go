package presenter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasktracker-go/internal/command"
	"github.com/nibzard/tasktracker-go/internal/executor"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// Text writes human-readable output, styled with lipgloss when color is on.
type Text struct {
	out    io.Writer
	errOut io.Writer
	prog   string
	color  bool
	styles textStyles
}

type textStyles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	err     lipgloss.Style
	status  map[task.Status]lipgloss.Style
}

// NewText returns a text presenter. prog is used in help output.
func NewText(out, errOut io.Writer, prog string, color bool) *Text {
	r := lipgloss.NewRenderer(out)
	return &Text{
		out:    out,
		errOut: errOut,
		prog:   prog,
		color:  color,
		styles: textStyles{
			heading: r.NewStyle().Bold(true),
			label:   r.NewStyle().Faint(true),
			err:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
			status: map[task.Status]lipgloss.Style{
				task.StatusTodo:       r.NewStyle().Foreground(lipgloss.Color("12")),
				task.StatusInProgress: r.NewStyle().Foreground(lipgloss.Color("11")),
				task.StatusDone:       r.NewStyle().Foreground(lipgloss.Color("10")),
			},
		},
	}
}

func (p *Text) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p *Text) status(s task.Status) string {
	return p.paint(p.styles.status[s], s.String())
}

func (p *Text) formatTask(t task.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", p.paint(p.styles.label, "Task:"), t.ID)
	fmt.Fprintf(&b, "%s %s\n", p.paint(p.styles.label, "Description:"), t.Description)
	fmt.Fprintf(&b, "%s %s\n", p.paint(p.styles.label, "Status:"), p.status(t.Status))
	fmt.Fprintf(&b, "%s %s\n", p.paint(p.styles.label, "Created At:"), t.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "%s %s\n", p.paint(p.styles.label, "Updated At:"), t.UpdatedAt.Format(time.RFC3339))
	return b.String()
}

// ShowTasks writes one block per task in the given order.
func (p *Text) ShowTasks(tasks []task.Task, filter *task.Status) error {
	if len(tasks) == 0 {
		if filter != nil {
			_, err := fmt.Fprintf(p.out, "No %s tasks.\n", filter)
			return err
		}
		_, err := fmt.Fprintln(p.out, "No tasks.")
		return err
	}
	blocks := make([]string, 0, len(tasks))
	for _, t := range tasks {
		blocks = append(blocks, p.formatTask(t))
	}
	_, err := io.WriteString(p.out, strings.Join(blocks, "\n"))
	return err
}

// ShowAdded writes the created task.
func (p *Text) ShowAdded(t task.Task) error {
	_, err := fmt.Fprintf(p.out, "%s\n%s", p.paint(p.styles.heading, "Added Task:"), p.formatTask(t))
	return err
}

// ShowUpdated writes the updated task.
func (p *Text) ShowUpdated(t task.Task) error {
	_, err := fmt.Fprintf(p.out, "%s\n%s", p.paint(p.styles.heading, "Updated Task:"), p.formatTask(t))
	return err
}

// ShowDeleted confirms a deletion.
func (p *Text) ShowDeleted(id task.ID) error {
	_, err := fmt.Fprintf(p.out, "Successfully Deleted Task %s\n", id)
	return err
}

// ShowStatusChange writes the previous and new status.
func (p *Text) ShowStatusChange(c executor.StatusChange) error {
	_, err := fmt.Fprintf(p.out, "Task Id: %s\nPrevious status: %s\nNew status: %s\n",
		c.ID, p.status(c.Old), p.status(c.New))
	return err
}

// ShowError writes "Error: <message>" to the error writer.
func (p *Text) ShowError(e error) error {
	_, err := fmt.Fprintf(p.errOut, "%s %s\n", p.paint(p.styles.err, "Error:"), Message(e))
	return err
}

// ShowHelp writes usage.
func (p *Text) ShowHelp() error {
	_, err := io.WriteString(p.out, HelpText(p.prog))
	return err
}

// HelpText returns the full usage text for prog.
func HelpText(prog string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage:\n  %s [flags] <command> [args]\n\n", prog)
	b.WriteString(command.Usage(prog))
	b.WriteString("\n# Other commands\n")
	fmt.Fprintf(&b, "%s tui [--refresh <dur>]  Browse tasks interactively\n", prog)
	fmt.Fprintf(&b, "%s export <file.pdf> [status]  Write tasks to a PDF report\n", prog)
	fmt.Fprintf(&b, "%s config                 Show effective configuration\n", prog)
	fmt.Fprintf(&b, "%s init-config            Print an example config file\n", prog)
	fmt.Fprintf(&b, "%s doctor [file]          Check config and data file validity\n", prog)
	fmt.Fprintf(&b, "%s version                Show version\n", prog)
	b.WriteString("\nFlags:\n")
	b.WriteString("  --data-file <path>      Data file (default ~/.roadmap-task-tracker.json)\n")
	b.WriteString("  --id-strategy <name>    How new ids are chosen: max or count\n")
	b.WriteString("  --validate-schema       Validate the data file against its JSON Schema\n")
	b.WriteString("  --output <format>       Output format: text or json\n")
	b.WriteString("  --no-color              Disable colored output\n")
	b.WriteString("  --log-level <level>     Log level (debug, info, warn, error)\n")
	b.WriteString("  --log-format <format>   Log format (text, json, logfmt)\n")
	b.WriteString("  --log-timestamps        Show timestamps in logs\n")
	return b.String()
}
