package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tasktracker-go/internal/task"
	"github.com/nibzard/tasktracker-go/internal/utils"
)

// SchemaVersion is the only document version this build reads and writes.
const SchemaVersion = 1

const schemaURL = "tasks.schema.json"

//go:embed tasks.schema.json
var schemaJSON []byte

// Document is the on-disk representation of the collection.
type Document struct {
	SchemaVersion int         `json:"schema_version"`
	LastID        task.ID     `json:"last_id,omitempty"` // highest id ever stored
	Tasks         []task.Task `json:"tasks"`
}

// HighestID returns the larger of LastID and the highest live id.
func (d *Document) HighestID() task.ID {
	return max(d.LastID, collection(d.Tasks).maxID())
}

// Schema returns the JSON Schema the data file is validated against.
func Schema() []byte {
	return bytes.Clone(schemaJSON)
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	UsedSchema bool // true if JSON Schema validation was performed
}

// Err joins all errors, or returns nil when the document is valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return errors.Join(r.Errors...)
}

func (r *ValidationResult) add(path string, err error) {
	r.Valid = false
	r.Errors = append(r.Errors, &ValidationError{Path: path, Err: err})
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{Valid: true, Errors: make([]error, 0)}
}

// DecodeDocument parses and validates raw data file content. With
// useSchema set the raw JSON is checked against the embedded schema
// before decoding; structural checks always run.
func DecodeDocument(data []byte, useSchema bool) (*Document, error) {
	if useSchema {
		if err := ValidateWithSchema(data).Err(); err != nil {
			return nil, err
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse data file: %w", err)
	}
	if err := doc.Validate().Err(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeDocument renders tasks with 2-space indentation and a trailing
// newline. lastID is raised to the highest live id if it is below it.
func EncodeDocument(tasks []task.Task, lastID task.ID) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	doc := Document{SchemaVersion: SchemaVersion, Tasks: tasks}
	doc.LastID = doc.HighestID()
	if lastID > doc.LastID {
		doc.LastID = lastID
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal data file: %w", err)
	}
	return append(data, '\n'), nil
}

// Validate performs structural checks that do not need the schema,
// including those the schema cannot express such as id uniqueness.
func (d *Document) Validate() *ValidationResult {
	result := newValidationResult()

	if d.SchemaVersion != SchemaVersion {
		result.add("schema_version", fmt.Errorf("expected %d, got %d", SchemaVersion, d.SchemaVersion))
	}
	if d.Tasks == nil {
		result.add("tasks", fmt.Errorf("missing required field"))
		return result
	}

	seen := make(map[task.ID]int, len(d.Tasks))
	for i := range d.Tasks {
		path := fmt.Sprintf("tasks[%d]", i)
		if err := validateTask(&d.Tasks[i], path); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
			continue
		}
		if first, dup := seen[d.Tasks[i].ID]; dup {
			result.add(path+".id", fmt.Errorf("duplicate id %s (also tasks[%d])", d.Tasks[i].ID, first))
			continue
		}
		seen[d.Tasks[i].ID] = i
	}
	return result
}

func validateTask(t *task.Task, path string) *ValidationError {
	if t.ID == 0 {
		return &ValidationError{Path: path + ".id", Err: fmt.Errorf("missing required field")}
	}
	if t.Description.IsZero() {
		return &ValidationError{Path: path + ".description", Err: fmt.Errorf("missing required field")}
	}
	if !t.Status.Valid() {
		return &ValidationError{
			Path: path + ".status",
			Err:  fmt.Errorf("invalid status %q, must be one of: todo, in_progress, done", t.Status),
		}
	}
	if t.CreatedAt.IsZero() || t.UpdatedAt.IsZero() {
		return &ValidationError{Path: path, Err: fmt.Errorf("missing timestamps")}
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return &ValidationError{Path: path + ".updated_at", Err: fmt.Errorf("before created_at")}
	}
	return nil
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return compiler.Compile(schemaURL)
})

// ValidateWithSchema validates raw JSON against the embedded schema.
func ValidateWithSchema(data []byte) *ValidationResult {
	result := newValidationResult()

	schema, err := compiledSchema()
	if err != nil {
		result.add("", fmt.Errorf("invalid schema: %w", err))
		return result
	}
	result.UsedSchema = true

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		result.add("", fmt.Errorf("parse data file: %w", err))
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}
