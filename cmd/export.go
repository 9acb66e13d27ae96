package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/nibzard/tasktracker-go/internal/command"
	"github.com/nibzard/tasktracker-go/internal/report"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// exportCommand writes the task list, optionally filtered, to a PDF file.
func (a *app) exportCommand(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: %s export <file.pdf> [status]", progName)
	}
	path := args[0]

	var filter *task.Status
	if len(args) == 2 {
		status, err := command.ParseStatusArg(args[1])
		if err != nil {
			return err
		}
		filter = &status
	}

	store, err := a.openStorage()
	if err != nil {
		return err
	}
	tasks := task.Filter(store.AllTasks(), filter)

	data, err := report.BuildTasksReport(tasks, report.Options{
		Filter:    filter,
		Generated: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	a.logger.Debug("exported report", "path", path, "tasks", len(tasks), "bytes", len(data))

	_, err = fmt.Fprintf(a.stdout, "Exported %d tasks to %s\n", len(tasks), path)
	return err
}
