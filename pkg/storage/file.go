package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File implements Storage as a single JSON document on disk. Every Set and
// Remove rewrites the file through a temporary sibling and an atomic rename,
// so a crash mid-write never leaves a torn state file behind.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFile opens (or creates) a file-backed store at path. The parent
// directory is created if missing. An existing file that fails to parse is
// treated as empty rather than failing construction, matching the layer's
// rehydration policy of starting fresh on corrupt durable state.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Join(ErrWriteFailed, err)
	}

	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if unmarshalErr := json.Unmarshal(data, &f.values); unmarshalErr != nil {
			f.values = make(map[string]string)
		}
	case os.IsNotExist(err):
		// First run, nothing to load
	default:
		return nil, errors.Join(ErrReadFailed, err)
	}

	return f, nil
}

// Get retrieves the value stored under key
func (f *File) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, ok := f.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores value under key and flushes the full document to disk
func (f *File) Set(ctx context.Context, key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[key] = value
	return f.flush()
}

// Remove deletes the value stored under key and flushes the full document
func (f *File) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

// flush writes the document via temp file + rename. Caller must hold f.mu.
func (f *File) flush() error {
	data, err := json.Marshal(f.values)
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
