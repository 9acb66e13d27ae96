// Package ui provides optional terminal interfaces.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasktracker-go/internal/storage"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// ErrNotTTY is returned by RunTUI when stdout is not a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

// DefaultRefreshInterval is how often the viewer reloads from storage
// unless WithRefreshInterval says otherwise.
const DefaultRefreshInterval = 2 * time.Second

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	interval time.Duration
	color    bool
	source   string
}

// WithRefreshInterval sets how often the viewer reloads from storage.
// Zero disables periodic reloads; r still reloads on demand.
func WithRefreshInterval(d time.Duration) TUIOption {
	return func(c *tuiConfig) {
		c.interval = d
	}
}

// WithColor enables or disables styled output.
func WithColor(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.color = enabled
	}
}

// WithSource sets the data file path shown in the footer.
func WithSource(path string) TUIOption {
	return func(c *tuiConfig) {
		c.source = path
	}
}

// RunTUI starts a read-only viewer over store.
func RunTUI(ctx context.Context, store storage.Storage, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return ErrNotTTY
	}
	model := newTUIModel(store, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

type tuiModel struct {
	store    storage.Storage
	cfg      tuiConfig
	styles   tuiStyles
	loadErr  error
	tasks    []task.Task
	loaded   bool
	filter   task.Status // empty means no filter
	showHelp bool
}

type tuiStyles struct {
	title  lipgloss.Style
	faint  lipgloss.Style
	err    lipgloss.Style
	status map[task.Status]lipgloss.Style
}

type tickMsg time.Time

func newTUIModel(store storage.Storage, opts ...TUIOption) *tuiModel {
	cfg := tuiConfig{interval: DefaultRefreshInterval, color: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	r := lipgloss.DefaultRenderer()
	return &tuiModel{
		store: store,
		cfg:   cfg,
		styles: tuiStyles{
			title: r.NewStyle().Bold(true),
			faint: r.NewStyle().Faint(true),
			err:   r.NewStyle().Foreground(lipgloss.Color("9")),
			status: map[task.Status]lipgloss.Style{
				task.StatusTodo:       r.NewStyle().Foreground(lipgloss.Color("12")),
				task.StatusInProgress: r.NewStyle().Foreground(lipgloss.Color("11")),
				task.StatusDone:       r.NewStyle().Foreground(lipgloss.Color("10")),
			},
		},
	}
}

func (m *tuiModel) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.cfg.interval)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
		case "h", "?":
			m.showHelp = !m.showHelp
		case "1":
			m.filter = task.StatusTodo
		case "2":
			m.filter = task.StatusInProgress
		case "3":
			m.filter = task.StatusDone
		case "0":
			m.filter = ""
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.cfg.interval)
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	m.writeTitle(&b)

	if m.showHelp {
		writeHelp(&b)
		m.writeFooter(&b)
		return b.String()
	}

	if m.loadErr != nil {
		b.WriteString(m.paint(m.styles.err, "Error loading tasks:") + "\n")
		b.WriteString("  " + m.loadErr.Error() + "\n\n")
		m.writeFooter(&b)
		return b.String()
	}
	if !m.loaded {
		b.WriteString("Loading...\n\n")
		m.writeFooter(&b)
		return b.String()
	}

	m.writeOverview(&b)
	if m.filter != "" {
		b.WriteString(fmt.Sprintf("Filter: %s (0 to clear)\n\n", m.filter.Label()))
	}
	m.writeTasks(&b)
	m.writeFooter(&b)
	return b.String()
}

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *tuiModel) refresh() {
	if err := m.store.Load(); err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.tasks = m.store.AllTasks()
	m.loaded = true
}

// visible returns the tasks matching the current filter, in stored order.
func (m *tuiModel) visible() []task.Task {
	if m.filter == "" {
		return m.tasks
	}
	status := m.filter
	return task.Filter(m.tasks, &status)
}

func (m *tuiModel) paint(style lipgloss.Style, s string) string {
	if !m.cfg.color {
		return s
	}
	return style.Render(s)
}

func (m *tuiModel) writeTitle(b *strings.Builder) {
	title := "Task Tracker"
	b.WriteString(m.paint(m.styles.title, title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *tuiModel) writeOverview(b *strings.Builder) {
	counts := task.CountByStatus(m.tasks)
	parts := make([]string, 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		parts = append(parts, m.paint(m.styles.status[s], fmt.Sprintf("%s: %d", s.Label(), counts[s])))
	}
	b.WriteString("  " + strings.Join(parts, "  ") + "\n\n")
}

func (m *tuiModel) writeTasks(b *strings.Builder) {
	tasks := m.visible()
	if len(tasks) == 0 {
		if m.filter != "" {
			b.WriteString(fmt.Sprintf("  No %s tasks.\n\n", m.filter))
		} else {
			b.WriteString("  No tasks.\n\n")
		}
		return
	}
	for _, t := range tasks {
		b.WriteString(m.formatTask(t) + "\n")
	}
	b.WriteString("\n")
}

func (m *tuiModel) formatTask(t task.Task) string {
	statusIcon := " "
	switch t.Status {
	case task.StatusInProgress:
		statusIcon = ">"
	case task.StatusDone:
		statusIcon = "x"
	}
	icon := m.paint(m.styles.status[t.Status], "["+statusIcon+"]")
	return fmt.Sprintf("  %s %4s  %s", icon, t.ID, t.Description)
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  q, ctrl+c    Quit\n")
	b.WriteString("  r, F5        Reload from storage\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  1            Filter by todo\n")
	b.WriteString("  2            Filter by in progress\n")
	b.WriteString("  3            Filter by done\n")
	b.WriteString("  0            Clear filter\n\n")
}

func (m *tuiModel) writeFooter(b *strings.Builder) {
	if m.cfg.source != "" {
		b.WriteString(m.paint(m.styles.faint, "Data: "+m.cfg.source) + "\n")
	}
	footer := "Press h for help | q to quit"
	if m.cfg.interval > 0 {
		footer += fmt.Sprintf(" | Refreshing every %s", m.cfg.interval)
	}
	b.WriteString(m.paint(m.styles.faint, footer) + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
