package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps each collection in its own JSON file. The file holds the
// whole collection as one id-keyed object; a missing file is an empty
// collection, and every save rewrites the file in full.
type FileStore struct {
	paths map[string]string
}

// NewFileStore builds a FileStore from an explicit collection-name to
// file-path mapping. Collections outside the mapping are rejected.
func NewFileStore(paths map[string]string) *FileStore {
	return &FileStore{paths: paths}
}

func (s *FileStore) Load(_ context.Context, name string) (Collection, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var col Collection
	if err := json.Unmarshal(b, &col); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if col == nil {
		col = Collection{}
	}
	return col, nil
}

func (s *FileStore) Save(_ context.Context, name string, col Collection) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir for %s: %w", name, err)
		}
	}
	b, err := json.MarshalIndent(col, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) path(name string) (string, error) {
	p, ok := s.paths[name]
	if !ok {
		return "", fmt.Errorf("unknown collection %q", name)
	}
	return p, nil
}
