package detect

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage holds the uploaded document images so a detection's source can
// be re-fetched and audited after the fact.
type Storage interface {
	// Save writes a document and returns the name it was stored under
	Save(filename string, data []byte) (string, error)

	// Get reads a stored document back
	Get(path string) ([]byte, error)

	// Delete removes a stored document
	Delete(path string) error
}

// LocalStorage keeps documents as flat files in a single directory. The
// service prefixes every name with the detection ID, so collisions are
// not a concern here.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the storage directory if needed
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

func (l *LocalStorage) fullPath(name string) string {
	return filepath.Join(l.basePath, name)
}

// Save writes a document under the base directory
func (l *LocalStorage) Save(filename string, data []byte) (string, error) {
	if err := os.WriteFile(l.fullPath(filename), data, 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return filename, nil
}

// Get reads a stored document
func (l *LocalStorage) Get(path string) ([]byte, error) {
	data, err := os.ReadFile(l.fullPath(path))
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return data, nil
}

// Delete removes a stored document
func (l *LocalStorage) Delete(path string) error {
	if err := os.Remove(l.fullPath(path)); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}
