package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mergington/activities/internal/infrastructure/config"
)

// Store owns the single JSON file that backs the activity catalog. Every
// operation reads the whole file, mutates the decoded map in memory, and
// writes the whole file back. The mutex serializes those cycles so
// concurrent requests cannot lose updates; there is no cross-process locking.
type Store struct {
	path string
	mu   sync.Mutex
}

// New opens the store at the configured path, creating the parent directory
// and an empty `{}` file when missing.
func New(cfg config.StorageConfig) (*Store, error) {
	s := &Store{path: cfg.DataFile}

	if dir := filepath.Dir(cfg.DataFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := os.WriteFile(s.path, []byte("{}"), 0o644); err != nil {
			return nil, fmt.Errorf("initialize data file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}

	return s, nil
}

// Path returns the data file path
func (s *Store) Path() string {
	return s.path
}

// View runs fn over a read-only snapshot of the decoded file
func (s *Store) View(fn func(data map[string]json.RawMessage) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// Update runs fn over the decoded file and writes the result back. The file
// is left untouched when fn returns an error.
func (s *Store) Update(fn func(data map[string]json.RawMessage) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

// HealthCheck verifies the data file exists and parses
func (s *Store) HealthCheck() error {
	return s.View(func(map[string]json.RawMessage) error { return nil })
}

func (s *Store) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", s.path, err)
	}

	if data == nil {
		data = make(map[string]json.RawMessage)
	}

	return data, nil
}

func (s *Store) write(data map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}

	return nil
}
