package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tasktracker-go/internal/storage"
	"github.com/nibzard/tasktracker-go/internal/task"
)

func sampleStore() *storage.MemoryStorage {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	done := task.New(2, task.MustDescription("write docs"), now)
	done.SetStatus(task.StatusDone, now)
	doing := task.New(3, task.MustDescription("fix bug"), now)
	doing.SetStatus(task.StatusInProgress, now)
	return storage.NewMemoryStorage(
		task.New(1, task.MustDescription("buy milk"), now),
		done,
		doing,
	)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(store storage.Storage) *tuiModel {
	m := newTUIModel(store, WithColor(false), WithRefreshInterval(0), WithSource("/tmp/tasks.json"))
	m.Init()
	return m
}

func TestViewShowsCountsAndTasksInOrder(t *testing.T) {
	m := newTestModel(sampleStore())
	view := m.View()

	if !strings.Contains(view, "Todo: 1  In Progress: 1  Done: 1") {
		t.Errorf("view missing counts:\n%s", view)
	}
	milk := strings.Index(view, "buy milk")
	docs := strings.Index(view, "write docs")
	bug := strings.Index(view, "fix bug")
	if milk < 0 || docs < 0 || bug < 0 || !(milk < docs && docs < bug) {
		t.Errorf("tasks not listed in stored order:\n%s", view)
	}
	if !strings.Contains(view, "[x]    2  write docs") {
		t.Errorf("done task not marked:\n%s", view)
	}
	if !strings.Contains(view, "Data: /tmp/tasks.json") {
		t.Errorf("view missing data path:\n%s", view)
	}
}

func TestFilterKeys(t *testing.T) {
	tests := []struct {
		key     string
		want    []string
		notWant []string
	}{
		{"1", []string{"buy milk"}, []string{"write docs", "fix bug"}},
		{"2", []string{"fix bug"}, []string{"buy milk", "write docs"}},
		{"3", []string{"write docs"}, []string{"buy milk", "fix bug"}},
		{"0", []string{"buy milk", "write docs", "fix bug"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newTestModel(sampleStore())
			m.Update(key("3"))
			m.Update(key(tt.key))
			view := m.View()
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("view missing %q:\n%s", s, view)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("view should not contain %q:\n%s", s, view)
				}
			}
		})
	}
}

func TestFilterWithNoMatches(t *testing.T) {
	m := newTestModel(storage.NewMemoryStorage())
	if view := m.View(); !strings.Contains(view, "No tasks.") {
		t.Errorf("empty view = %q", view)
	}
	m.Update(key("3"))
	if view := m.View(); !strings.Contains(view, "No done tasks.") {
		t.Errorf("filtered empty view = %q", view)
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	store := sampleStore()
	m := newTestModel(store)

	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	if err := store.CreateTask(task.New(4, task.MustDescription("new arrival"), now)); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if strings.Contains(m.View(), "new arrival") {
		t.Fatal("view changed before reload")
	}
	m.Update(key("r"))
	if !strings.Contains(m.View(), "new arrival") {
		t.Errorf("reload did not pick up new task:\n%s", m.View())
	}
}

type failingStore struct {
	*storage.MemoryStorage
}

func (failingStore) Load() error {
	return &storage.AccessError{Path: "tasks.json", Err: errors.New("boom")}
}

func TestLoadErrorShown(t *testing.T) {
	m := newTestModel(failingStore{storage.NewMemoryStorage()})
	view := m.View()
	if !strings.Contains(view, "Error loading tasks:") || !strings.Contains(view, "could not access persisted data") {
		t.Errorf("view = %q", view)
	}
}

func TestHelpAndQuit(t *testing.T) {
	m := newTestModel(sampleStore())

	m.Update(key("h"))
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help screen not shown")
	}
	m.Update(key("?"))
	if strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help screen not toggled off")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer reported as TTY")
	}
}
