package progress

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists the progress blob as a single JSON file, the
// terminal front end's storage location (~/.wortschatz/progress.json).
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at path. The parent directory is
// created on the first write, not here.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading progress file: %w", err)
	}
	return data, true, nil
}

// Put writes to a temp file in the same directory and renames it over
// the target, so a crashed write never leaves a truncated blob behind.
func (f *FileStore) Put(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating progress directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*")
	if err != nil {
		return fmt.Errorf("creating temp progress file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp progress file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing progress file: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }
