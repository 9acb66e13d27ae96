// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/nibzard/tasktracker-go/internal/command"
	"github.com/nibzard/tasktracker-go/internal/config"
	"github.com/nibzard/tasktracker-go/internal/storage"
	"github.com/nibzard/tasktracker-go/internal/task"
	"github.com/nibzard/tasktracker-go/internal/ui"
)

// sandbox isolates HOME, the working directory and TASKTRACKER_* variables,
// and returns a data file path inside a temp dir.
func sandbox(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{
		"TASKTRACKER_DATA_FILE",
		"TASKTRACKER_ID_STRATEGY",
		"TASKTRACKER_VALIDATE_SCHEMA",
		"TASKTRACKER_OUTPUT",
		"TASKTRACKER_LOG_LEVEL",
		"TASKTRACKER_LOG_FORMAT",
		"TASKTRACKER_LOG_TIMESTAMPS",
		"NO_COLOR",
	} {
		t.Setenv(key, "")
	}
	testChdir(t, t.TempDir())
	return filepath.Join(t.TempDir(), "tasks.json")
}

type result struct {
	stdout string
	stderr string
	err    error
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// runTasks runs args against dataFile with color off.
func runTasks(t *testing.T, dataFile string, args ...string) result {
	t.Helper()
	return runCLI(t, append([]string{"--no-color", "--data-file", dataFile}, args...)...)
}

func loadTasks(t *testing.T, dataFile string) []task.Task {
	t.Helper()
	store, err := storage.OpenFileStorage(dataFile)
	if err != nil {
		t.Fatalf("OpenFileStorage: %v", err)
	}
	return store.AllTasks()
}

func TestRunHelpAndVersion(t *testing.T) {
	sandbox(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "Usage:"},
		{"--help flag", []string{"--help"}, "Usage:"},
		{"-h flag", []string{"-h"}, "Usage:"},
		{"help command", []string{"help"}, "# Adding a new task"},
		{"--version flag", []string{"--version"}, "tasktracker version dev"},
		{"-v flag", []string{"-v"}, "tasktracker version dev"},
		{"version command", []string{"version"}, "tasktracker version dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, tt.args...)
			if res.err != nil {
				t.Fatalf("unexpected error: %v", res.err)
			}
			if !strings.Contains(res.stdout, tt.want) {
				t.Errorf("stdout = %q, want containing %q", res.stdout, tt.want)
			}
		})
	}
}

func TestRunTaskLifecycle(t *testing.T) {
	dataFile := sandbox(t)

	res := runTasks(t, dataFile, "add", "Buy groceries")
	if res.err != nil {
		t.Fatalf("add: %v (stderr %q)", res.err, res.stderr)
	}
	if !strings.HasPrefix(res.stdout, "Added Task:\nTask: 1\nDescription: Buy groceries\nStatus: todo\n") {
		t.Errorf("add output = %q", res.stdout)
	}

	if res := runTasks(t, dataFile, "add", "Cook dinner"); res.err != nil {
		t.Fatalf("second add: %v", res.err)
	}

	res = runTasks(t, dataFile, "mark-in-progress", "2")
	if res.err != nil {
		t.Fatalf("mark-in-progress: %v", res.err)
	}
	if want := "Task Id: 2\nPrevious status: todo\nNew status: in_progress\n"; res.stdout != want {
		t.Errorf("mark-in-progress output = %q, want %q", res.stdout, want)
	}

	if res := runTasks(t, dataFile, "mark-done", "1"); res.err != nil {
		t.Fatalf("mark-done: %v", res.err)
	}

	res = runTasks(t, dataFile, "list", "done")
	if res.err != nil {
		t.Fatalf("list done: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Buy groceries") || strings.Contains(res.stdout, "Cook dinner") {
		t.Errorf("list done output = %q", res.stdout)
	}

	res = runTasks(t, dataFile, "list", "in-progress")
	if res.err != nil || !strings.Contains(res.stdout, "Cook dinner") {
		t.Errorf("list in-progress = %q, %v", res.stdout, res.err)
	}

	res = runTasks(t, dataFile, "update", "1", "Buy groceries and cook dinner")
	if res.err != nil {
		t.Fatalf("update: %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "Updated Task:\nTask: 1\nDescription: Buy groceries and cook dinner\nStatus: done\n") {
		t.Errorf("update output = %q", res.stdout)
	}

	res = runTasks(t, dataFile, "delete", "2")
	if res.err != nil {
		t.Fatalf("delete: %v", res.err)
	}
	if res.stdout != "Successfully Deleted Task 2\n" {
		t.Errorf("delete output = %q", res.stdout)
	}

	tasks := loadTasks(t, dataFile)
	if len(tasks) != 1 || tasks[0].ID != 1 || tasks[0].Status != task.StatusDone {
		t.Fatalf("persisted tasks = %+v", tasks)
	}

	res = runTasks(t, dataFile, "list", "todo")
	if res.err != nil || res.stdout != "No todo tasks.\n" {
		t.Errorf("list todo = %q, %v", res.stdout, res.err)
	}
}

func TestRunTaskErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantMsg   string
		checkType func(error) bool
	}{
		{
			name:    "unknown command",
			args:    []string{"frobnicate"},
			wantMsg: "Error: Invalid command frobnicate\n",
			checkType: func(err error) bool {
				var target *command.UnknownCommandError
				return errors.As(err, &target)
			},
		},
		{
			name:    "missing description",
			args:    []string{"add"},
			wantMsg: "Error: Wrong number of arguments: Expected 3, got 2\n",
			checkType: func(err error) bool {
				var target *command.ArgCountError
				return errors.As(err, &target)
			},
		},
		{
			name:      "empty description",
			args:      []string{"add", ""},
			wantMsg:   "Error: Task description cannot be empty\n",
			checkType: func(err error) bool { return errors.Is(err, task.ErrEmptyDescription) },
		},
		{
			name:      "invalid utf-8 description",
			args:      []string{"add", "a\xffb"},
			wantMsg:   "Error: Task description must be valid UTF-8\n",
			checkType: func(err error) bool { return errors.Is(err, task.ErrInvalidDescription) },
		},
		{
			name:    "non numeric id",
			args:    []string{"delete", "abc"},
			wantMsg: "Error: Expected numeric id, got abc\n",
			checkType: func(err error) bool {
				var target *task.InvalidIDError
				return errors.As(err, &target)
			},
		},
		{
			name:    "unknown status",
			args:    []string{"list", "later"},
			wantMsg: "Error: Unknown status: later\n",
			checkType: func(err error) bool {
				var target *task.UnknownStatusError
				return errors.As(err, &target)
			},
		},
		{
			name:      "missing task",
			args:      []string{"mark-done", "7"},
			wantMsg:   "Error: Task not found. Id: 7\n",
			checkType: task.IsNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataFile := sandbox(t)
			res := runTasks(t, dataFile, tt.args...)
			if res.err == nil {
				t.Fatal("expected error, got nil")
			}
			if !IsReported(res.err) {
				t.Errorf("error %v was not reported", res.err)
			}
			if !tt.checkType(res.err) {
				t.Errorf("error %v has unexpected type %T", res.err, errors.Unwrap(res.err))
			}
			if res.stderr != tt.wantMsg {
				t.Errorf("stderr = %q, want %q", res.stderr, tt.wantMsg)
			}
			if _, err := os.Stat(dataFile); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("data file should not be created on failure (stat err %v)", err)
			}
		})
	}
}

func TestRunCorruptDataFile(t *testing.T) {
	dataFile := sandbox(t)
	if err := os.WriteFile(dataFile, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	res := runTasks(t, dataFile, "list")
	var ae *storage.AccessError
	if !errors.As(res.err, &ae) {
		t.Fatalf("err = %v, want AccessError", res.err)
	}
	if res.stderr != "Error: Could not access persisted data\n" {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestRunIDStrategies(t *testing.T) {
	tests := []struct {
		strategy string
		wantErr  error
		wantIDs  []task.ID
	}{
		{"max", nil, []task.ID{2, 3}},
		{"count", task.ErrDuplicateID, []task.ID{2}},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			dataFile := sandbox(t)
			for _, args := range [][]string{{"add", "a"}, {"add", "b"}, {"delete", "1"}} {
				if res := runTasks(t, dataFile, args...); res.err != nil {
					t.Fatalf("%v: %v", args, res.err)
				}
			}
			res := runTasks(t, dataFile, "--id-strategy", tt.strategy, "add", "c")
			if tt.wantErr != nil {
				if !errors.Is(res.err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", res.err, tt.wantErr)
				}
			} else if res.err != nil {
				t.Fatalf("add: %v", res.err)
			}

			tasks := loadTasks(t, dataFile)
			if len(tasks) != len(tt.wantIDs) {
				t.Fatalf("got %d tasks, want %d", len(tasks), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if tasks[i].ID != id {
					t.Errorf("tasks[%d].ID = %s, want %s", i, tasks[i].ID, id)
				}
			}
		})
	}
}

func TestRunJSONOutput(t *testing.T) {
	dataFile := sandbox(t)

	res := runTasks(t, dataFile, "--output", "json", "add", "Buy groceries")
	if res.err != nil {
		t.Fatalf("add: %v", res.err)
	}
	var added struct {
		Task struct {
			ID          int    `json:"id"`
			Description string `json:"description"`
			Status      string `json:"status"`
		} `json:"added"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &added); err != nil {
		t.Fatalf("add output is not JSON: %v\n%s", err, res.stdout)
	}
	if added.Task.ID != 1 || added.Task.Description != "Buy groceries" || added.Task.Status != "todo" {
		t.Errorf("added = %+v", added)
	}

	res = runTasks(t, dataFile, "--output", "json", "delete", "9")
	if res.err == nil {
		t.Fatal("expected error")
	}
	var failure map[string]string
	if err := json.Unmarshal([]byte(res.stderr), &failure); err != nil {
		t.Fatalf("error output is not JSON: %v\n%s", err, res.stderr)
	}
	if failure["error"] != "Task not found. Id: 9" {
		t.Errorf("error = %q", failure["error"])
	}
}

func TestRunConfigErrors(t *testing.T) {
	t.Run("invalid setting is not reported twice", func(t *testing.T) {
		sandbox(t)
		res := runCLI(t, "--output", "yaml", "list")
		if res.err == nil || !strings.Contains(res.err.Error(), "invalid output") {
			t.Fatalf("err = %v", res.err)
		}
		if IsReported(res.err) {
			t.Error("config errors are printed by the caller")
		}
	})

	t.Run("home not found", func(t *testing.T) {
		sandbox(t)
		t.Setenv("HOME", "")
		t.Setenv("USERPROFILE", "")
		res := runCLI(t, "list")
		if !errors.Is(res.err, config.ErrHomePathNotFound) {
			t.Fatalf("err = %v, want ErrHomePathNotFound", res.err)
		}
		if !IsReported(res.err) {
			t.Error("error should be shown by the presenter")
		}
		if res.stderr != "Error: Could not discover user's home directory\n" {
			t.Errorf("stderr = %q", res.stderr)
		}
	})
}

func TestRunWithoutHome(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home lookup uses other variables on this platform")
	}
	sandbox(t)
	t.Setenv("HOME", "")
	t.Setenv("USERPROFILE", "")

	for _, args := range [][]string{
		nil,
		{"help"},
		{"--help"},
		{"version"},
		{"-v"},
		{"init-config"},
		{"config"},
	} {
		res := runCLI(t, args...)
		if res.err != nil {
			t.Errorf("%v: unexpected error %v", args, res.err)
		}
		if res.stdout == "" {
			t.Errorf("%v: no output", args)
		}
	}

	dataFile := filepath.Join(t.TempDir(), "tasks.json")
	if res := runTasks(t, dataFile, "add", "no home needed"); res.err != nil {
		t.Errorf("add with explicit data file: %v", res.err)
	}

	res := runCLI(t, "doctor")
	if !errors.Is(res.err, errDoctorFailed) {
		t.Errorf("doctor err = %v, want errDoctorFailed", res.err)
	}
	if !strings.Contains(res.stdout, "Could not discover user's home directory") {
		t.Errorf("doctor output = %q", res.stdout)
	}
}

func TestConfigCommands(t *testing.T) {
	dataFile := sandbox(t)
	t.Setenv("TASKTRACKER_ID_STRATEGY", "count")

	res := runTasks(t, dataFile, "config")
	if res.err != nil {
		t.Fatalf("config: %v", res.err)
	}
	for _, want := range []string{
		"id_strategy",
		"count",
		"(environment)",
		dataFile,
		"(flag)",
		"Config files: none",
	} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("config output missing %q:\n%s", want, res.stdout)
		}
	}

	res = runCLI(t, "init-config")
	if res.err != nil {
		t.Fatalf("init-config: %v", res.err)
	}
	if res.stdout != config.ExampleConfig() {
		t.Errorf("init-config output differs from example config")
	}

	if res := runCLI(t, "config", "extra"); res.err == nil {
		t.Error("config with arguments should fail")
	}
}

func TestExportCommand(t *testing.T) {
	dataFile := sandbox(t)
	for _, d := range []string{"first", "second"} {
		if res := runTasks(t, dataFile, "add", d); res.err != nil {
			t.Fatalf("add: %v", res.err)
		}
	}
	if res := runTasks(t, dataFile, "mark-done", "2"); res.err != nil {
		t.Fatalf("mark-done: %v", res.err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"all", []string{"all.pdf"}, "Exported 2 tasks to"},
		{"filtered", []string{"done.pdf", "done"}, "Exported 1 tasks to"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), tt.args[0])
			args := append([]string{"export", out}, tt.args[1:]...)
			res := runTasks(t, dataFile, args...)
			if res.err != nil {
				t.Fatalf("export: %v", res.err)
			}
			if !strings.HasPrefix(res.stdout, tt.want) {
				t.Errorf("stdout = %q, want prefix %q", res.stdout, tt.want)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("read report: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Error("report is not a PDF")
			}
		})
	}

	t.Run("bad status", func(t *testing.T) {
		res := runTasks(t, dataFile, "export", filepath.Join(t.TempDir(), "x.pdf"), "someday")
		var target *task.UnknownStatusError
		if !errors.As(res.err, &target) {
			t.Fatalf("err = %v, want UnknownStatusError", res.err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		res := runTasks(t, dataFile, "export")
		if res.err == nil || !strings.Contains(res.stderr, "usage:") {
			t.Fatalf("err = %v stderr = %q", res.err, res.stderr)
		}
	})
}

func TestDoctorCommand(t *testing.T) {
	t.Run("missing data file is fine", func(t *testing.T) {
		dataFile := sandbox(t)
		res := runTasks(t, dataFile, "doctor")
		if res.err != nil {
			t.Fatalf("doctor: %v\n%s", res.err, res.stdout)
		}
		if !strings.Contains(res.stdout, "Not created yet") || !strings.Contains(res.stdout, "All checks passed.") {
			t.Errorf("stdout = %q", res.stdout)
		}
	})

	t.Run("valid data file", func(t *testing.T) {
		dataFile := sandbox(t)
		if res := runTasks(t, dataFile, "add", "write tests"); res.err != nil {
			t.Fatalf("add: %v", res.err)
		}
		res := runTasks(t, dataFile, "doctor")
		if res.err != nil {
			t.Fatalf("doctor: %v\n%s", res.err, res.stdout)
		}
		if !strings.Contains(res.stdout, "Schema: valid") || !strings.Contains(res.stdout, "1 tasks (todo 1") {
			t.Errorf("stdout = %q", res.stdout)
		}
	})

	t.Run("invalid data file", func(t *testing.T) {
		dataFile := sandbox(t)
		bad := `{"schema_version":1,"tasks":[{"id":1,"description":"","status":"later","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}]}`
		if err := os.WriteFile(dataFile, []byte(bad), 0o644); err != nil {
			t.Fatal(err)
		}
		res := runTasks(t, dataFile, "doctor")
		if !errors.Is(res.err, errDoctorFailed) {
			t.Fatalf("err = %v, want errDoctorFailed", res.err)
		}
		if !strings.Contains(res.stdout, "❌ Schema:") {
			t.Errorf("stdout = %q", res.stdout)
		}
	})
}

func TestTUIRequiresTTY(t *testing.T) {
	if ui.IsTTY(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	dataFile := sandbox(t)
	for _, args := range [][]string{{"tui"}, {"tui", "--refresh", "0"}, {"tui", "--refresh=500ms"}} {
		res := runTasks(t, dataFile, args...)
		if !errors.Is(res.err, ui.ErrNotTTY) {
			t.Errorf("%v: err = %v, want ErrNotTTY", args, res.err)
		}
	}
}

func TestTUIRejectsBadArguments(t *testing.T) {
	dataFile := sandbox(t)
	for _, args := range [][]string{
		{"tui", "extra"},
		{"tui", "--refresh", "soon"},
		{"tui", "--refresh=-1s"},
	} {
		res := runTasks(t, dataFile, args...)
		if res.err == nil || errors.Is(res.err, ui.ErrNotTTY) {
			t.Errorf("%v: err = %v, want argument error", args, res.err)
		}
		if !strings.HasPrefix(res.stderr, "Error: ") {
			t.Errorf("%v: stderr = %q", args, res.stderr)
		}
	}
}

func TestIsReported(t *testing.T) {
	base := errors.New("boom")
	if IsReported(base) {
		t.Error("plain error reported")
	}
	if !IsReported(&reportedError{err: base}) {
		t.Error("reportedError not reported")
	}
	if !errors.Is(&reportedError{err: base}, base) {
		t.Error("reportedError does not unwrap")
	}
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
