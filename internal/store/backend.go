package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const configDirName = "stylesync"

// Backend is the raw key-value medium behind the Store. Get reports
// ok=false when the key has never been written.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemBackend keeps values in a map. It is the swappable test backend.
type MemBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemBackend creates an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (b *MemBackend) Get(key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, ok := b.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (b *MemBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	return nil
}

// FileBackend stores each key as one JSON document under a data directory.
type FileBackend struct {
	dir string
}

// DefaultFileBackend returns a FileBackend rooted at the default location:
// ~/.config/stylesync
func DefaultFileBackend() (*FileBackend, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("getting user config dir: %w", err)
	}
	return NewFileBackend(filepath.Join(configDir, configDirName)), nil
}

// NewFileBackend creates a FileBackend with a custom data directory.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

// Dir returns the directory where collections are stored.
func (b *FileBackend) Dir() string {
	return b.dir
}

// Get reads the document stored under key. A missing file means the key was
// never written.
func (b *FileBackend) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the document under key, creating the data directory if needed.
func (b *FileBackend) Set(key, value string) error {
	if err := os.MkdirAll(b.dir, 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(b.path(key), []byte(value), 0600); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}
