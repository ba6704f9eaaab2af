package database

import (
	"airline-reservation/pkg/utils"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store is the abstraction the repositories work against. Every record type
// in this system lives in a flat comma-delimited text file under one data
// directory, so the surface is line-append, whole-file overwrite and delete.
type Store interface {
	Load(name string) (string, error)
	Append(name, line string) error
	Overwrite(name, data string) error
	Delete(name string) error
	Exists(name string) bool
}

// FileStore implements Store on top of a single data directory.
type FileStore struct {
	dir string
}

// InitStore prepares the data directory (including the per-flight seat map
// and waiting list subdirectories) and returns the store handle.
func InitStore(config utils.StoreConfig) (Store, error) {
	dir := config.DataDir
	if dir == "" {
		dir = "data"
	}

	for _, sub := range []string{"", "seatmaps", "waitinglists"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load returns the whole file content. A missing file is not an error, it
// reads as empty so callers can start from a fresh state.
func (s *FileStore) Load(name string) (string, error) {
	b, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	return string(b), nil
}

// Append adds one record line to the end of the file.
func (s *FileStore) Append(name, line string) error {
	f, err := os.OpenFile(s.path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append %s: %w", name, err)
	}
	return nil
}

// Overwrite replaces the file content. Empty content deletes the file
// instead, so the data directory never accumulates empty files.
func (s *FileStore) Overwrite(name, data string) error {
	if data == "" {
		return s.Delete(name)
	}
	if err := os.WriteFile(s.path(name), []byte(data), 0644); err != nil {
		return fmt.Errorf("overwrite %s: %w", name, err)
	}
	return nil
}

// Delete removes the file. Deleting a file that does not exist succeeds.
func (s *FileStore) Delete(name string) error {
	if err := os.Remove(s.path(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
