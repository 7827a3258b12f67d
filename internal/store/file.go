package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one pretty-printed JSON file per document name inside a
// single directory. It is the primary backend.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory when missing and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the backing directory path.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) string {
	// names come from a fixed allow-list, but keep path traversal out anyway
	return filepath.Join(s.dir, filepath.Base(name)+".json")
}

func (s *FileStore) Read(_ context.Context, name string) (json.RawMessage, error) {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, ErrNotFound
	}
	if !json.Valid(b) {
		return nil, ErrNotFound
	}
	return json.RawMessage(b), nil
}

func (s *FileStore) Write(_ context.Context, name string, data json.RawMessage) error {
	var pretty any
	if err := json.Unmarshal(data, &pretty); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	b, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) Ensure(ctx context.Context, name string, initial interface{}) error {
	if _, err := os.Stat(s.path(name)); err == nil {
		return nil
	}
	b, err := json.Marshal(initial)
	if err != nil {
		return fmt.Errorf("encode initial %s: %w", name, err)
	}
	return s.Write(ctx, name, b)
}
