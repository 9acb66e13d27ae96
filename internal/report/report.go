// Package report renders the task list as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nibzard/tasktracker-go/internal/task"
)

// Options controls the report header.
type Options struct {
	// Filter is the status the tasks were filtered by, if any.
	Filter *task.Status
	// Generated is stamped into the header and the document metadata.
	Generated time.Time
}

// column widths in mm; A4 portrait leaves 190mm between 10mm margins
const (
	colID      = 15.0
	colStatus  = 30.0
	colUpdated = 45.0
	colDesc    = 100.0
	rowHeight  = 7.0
)

// BuildTasksReport renders tasks, in the order given, as a PDF table.
func BuildTasksReport(tasks []task.Task, opts Options) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	tr := p.UnicodeTranslatorFromDescriptor("")
	if !opts.Generated.IsZero() {
		p.SetCreationDate(opts.Generated)
	}
	p.SetTitle("Task report", true)
	p.SetAutoPageBreak(true, 15)
	p.AddPage()

	p.SetFont("Arial", "B", 16)
	p.Cell(40, 10, "Task report")
	p.Ln(12)

	p.SetFont("Arial", "", 10)
	scope := "All tasks"
	if opts.Filter != nil {
		scope = "Status: " + opts.Filter.Label()
	}
	p.Cell(40, 6, fmt.Sprintf("%s (%d)", scope, len(tasks)))
	p.Ln(6)
	if !opts.Generated.IsZero() {
		p.Cell(40, 6, "Generated "+opts.Generated.UTC().Format(time.RFC3339))
		p.Ln(6)
	}
	p.Ln(4)

	if len(tasks) == 0 {
		p.Cell(40, 8, "No tasks.")
		p.Ln(8)
	} else {
		writeHeader(p)
		p.SetFont("Arial", "", 10)
		for _, t := range tasks {
			p.CellFormat(colID, rowHeight, t.ID.String(), "1", 0, "R", false, 0, "")
			p.CellFormat(colStatus, rowHeight, t.Status.Label(), "1", 0, "L", false, 0, "")
			p.CellFormat(colUpdated, rowHeight, t.UpdatedAt.UTC().Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
			p.CellFormat(colDesc, rowHeight, tr(truncate(p, t.Description.String(), colDesc-2)), "1", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(p *gofpdf.Fpdf) {
	p.SetFont("Arial", "B", 10)
	p.SetFillColor(230, 230, 230)
	p.CellFormat(colID, rowHeight, "Id", "1", 0, "R", true, 0, "")
	p.CellFormat(colStatus, rowHeight, "Status", "1", 0, "L", true, 0, "")
	p.CellFormat(colUpdated, rowHeight, "Updated (UTC)", "1", 0, "L", true, 0, "")
	p.CellFormat(colDesc, rowHeight, "Description", "1", 1, "L", true, 0, "")
}

// truncate shortens s with "..." so it fits in width at the current font.
func truncate(p *gofpdf.Fpdf, s string, width float64) string {
	if p.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if p.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return "..."
}
