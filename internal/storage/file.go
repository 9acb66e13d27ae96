package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasktracker-go/internal/logging"
	"github.com/nibzard/tasktracker-go/internal/task"
)

// FileOption configures a FileStorage.
type FileOption func(*FileStorage)

// WithSchemaValidation toggles JSON Schema validation on load.
func WithSchemaValidation(enabled bool) FileOption {
	return func(s *FileStorage) {
		s.validateSchema = enabled
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *log.Logger) FileOption {
	return func(s *FileStorage) {
		s.logger = logging.OrDiscard(logger)
	}
}

// FileStorage keeps the collection in a single JSON file.
type FileStorage struct {
	path           string
	validateSchema bool
	logger         *log.Logger
	tasks          collection
	lastID         task.ID
}

// NewFileStorage returns a storage backed by path. Nothing is read until Load.
func NewFileStorage(path string, opts ...FileOption) *FileStorage {
	s := &FileStorage{
		path:           path,
		validateSchema: true,
		logger:         logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenFileStorage creates a FileStorage and loads it.
func OpenFileStorage(path string, opts ...FileOption) (*FileStorage, error) {
	s := NewFileStorage(path, opts...)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *FileStorage) Path() string {
	return s.path
}

// Load reads the data file. A missing file is an empty collection.
func (s *FileStorage) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("data file not found, starting empty", "path", s.path)
			s.tasks = collection{}
			s.lastID = 0
			return nil
		}
		return &AccessError{Path: s.path, Err: fmt.Errorf("read data file: %w", err)}
	}

	doc, err := DecodeDocument(data, s.validateSchema)
	if err != nil {
		return &AccessError{Path: s.path, Err: err}
	}
	s.tasks = collection(doc.Tasks)
	s.lastID = doc.HighestID()
	s.logger.Debug("loaded data file", "path", s.path, "tasks", len(s.tasks), "schema", s.validateSchema)
	return nil
}

// CreateTask appends t and rewrites the file.
func (s *FileStorage) CreateTask(t task.Task) error {
	next, err := s.tasks.withCreated(t)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// GetTask returns the task with the given id.
func (s *FileStorage) GetTask(id task.ID) (task.Task, bool) {
	return s.tasks.get(id)
}

// AllTasks returns a copy of the collection in insertion order.
func (s *FileStorage) AllTasks() []task.Task {
	return s.tasks.clone()
}

// UpdateTask replaces the task with the given id and rewrites the file.
func (s *FileStorage) UpdateTask(id task.ID, t task.Task) error {
	next, err := s.tasks.withUpdated(id, t)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// DeleteTask removes the task with the given id and rewrites the file.
func (s *FileStorage) DeleteTask(id task.ID) error {
	next, err := s.tasks.withDeleted(id)
	if err != nil {
		return err
	}
	return s.commit(next)
}

// CountTasks returns the number of tasks held.
func (s *FileStorage) CountTasks() int {
	return len(s.tasks)
}

// MaxID returns the highest id ever stored, including deleted tasks.
func (s *FileStorage) MaxID() task.ID {
	return s.lastID
}

// commit writes next and only then makes it the in-memory collection.
func (s *FileStorage) commit(next collection) error {
	lastID := max(s.lastID, next.maxID())
	data, err := EncodeDocument(next, lastID)
	if err != nil {
		return &PersistError{Path: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return &PersistError{Path: s.path, Err: fmt.Errorf("write data file: %w", err)}
	}
	s.tasks = next
	s.lastID = lastID
	s.logger.Debug("persisted data file", "path", s.path, "tasks", len(next))
	return nil
}
