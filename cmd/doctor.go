package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/nibzard/tasktracker-go/internal/executor"
	"github.com/nibzard/tasktracker-go/internal/presenter"
	"github.com/nibzard/tasktracker-go/internal/storage"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// errDoctorFailed is returned when at least one doctor check fails.
var errDoctorFailed = errors.New("doctor found problems")

// doctorCommand checks the configuration and the data file.
func (a *app) doctorCommand(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments: %v", args[1:])
	}
	var (
		dataPath string
		pathErr  error
	)
	if len(args) == 1 {
		dataPath = args[0]
	} else {
		dataPath, pathErr = a.cfg.DataPath()
	}

	w := a.stdout
	fmt.Fprintln(w, "Task Tracker Doctor")
	fmt.Fprintln(w, "===================")
	fmt.Fprintln(w)

	allOK := true

	fmt.Fprintln(w, "Config:")
	if len(a.sources.Files) == 0 {
		fmt.Fprintln(w, "  ✅ No config files, using defaults")
	}
	for _, f := range a.sources.Files {
		fmt.Fprintf(w, "  ✅ Loaded %s\n", f)
	}
	for _, k := range a.sources.Unknown {
		fmt.Fprintf(w, "  ⚠️  Unknown key %s\n", k)
	}
	if _, err := executor.ParseIDStrategy(a.cfg.IDStrategy); err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Fprintf(w, "  ✅ ID strategy: %s\n", a.cfg.IDStrategy)
	}
	fmt.Fprintln(w)

	if pathErr != nil {
		fmt.Fprintln(w, "Data file:")
		fmt.Fprintf(w, "  ❌ %s\n", presenter.Message(pathErr))
		allOK = false
	} else {
		fmt.Fprintf(w, "Data file: %s\n", dataPath)
		if !checkDataFile(w, dataPath) {
			allOK = false
		}
	}
	fmt.Fprintln(w)

	if !allOK {
		return errDoctorFailed
	}
	fmt.Fprintln(w, "All checks passed.")
	return nil
}

// checkDataFile reports on the data file at path and returns false if it
// cannot be used.
func checkDataFile(w io.Writer, path string) bool {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(w, "  ✅ Not created yet (first add will create it)")
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	}

	ok := true
	if result := storage.ValidateWithSchema(data); result.Valid {
		fmt.Fprintln(w, "  ✅ Schema: valid")
	} else {
		fmt.Fprintln(w, "  ❌ Schema:")
		for _, e := range result.Errors {
			fmt.Fprintf(w, "      %v\n", e)
		}
		ok = false
	}

	doc, err := storage.DecodeDocument(data, false)
	if err != nil {
		fmt.Fprintf(w, "  ❌ Structure: %v\n", err)
		return false
	}
	counts := task.CountByStatus(doc.Tasks)
	fmt.Fprintf(w, "  ✅ Structure: %d tasks (todo %d, in progress %d, done %d)\n",
		len(doc.Tasks), counts[task.StatusTodo], counts[task.StatusInProgress], counts[task.StatusDone])
	return ok
}
