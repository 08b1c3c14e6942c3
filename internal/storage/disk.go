package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/technaptix/site-api/internal/api/sanitization"
)

// DiskStore keeps uploaded files in a local scratch directory. It is a
// write-only escape hatch: nothing reads the files back.
type DiskStore struct {
	dir string
}

// NewDiskStore resolves dir to an absolute path. The directory is created
// lazily on the first Save.
func NewDiskStore(dir string) (*DiskStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scratch directory %s: %w", dir, err)
	}
	return &DiskStore{dir: abs}, nil
}

// Dir returns the absolute scratch directory
func (s *DiskStore) Dir() string {
	return s.dir
}

// FileName returns "<unix millis>-<sanitized original name>"
func FileName(original string, at time.Time) string {
	return fmt.Sprintf("%d-%s", at.UnixMilli(), sanitization.SanitizeFilename(original))
}

// Save writes data under FileName(original, at) and returns the full path
func (s *DiskStore) Save(original string, data []byte, at time.Time) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	path := filepath.Join(s.dir, FileName(original, at))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
