package exports

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"ocr-backend/internal/shared/util"
)

// Store writes generated documents into a flat output directory. Filenames are
// always uuid-based, so concurrent writers cannot collide and a stored name is
// guaranteed to be a single path segment.
type Store struct {
	dir string
}

// NewStore creates the output directory if absent.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir outputs: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the output directory path.
func (s *Store) Dir() string { return s.dir }

// Save writes data under a fresh uuid filename with the given extension and
// returns the bare filename.
func (s *Store) Save(ext string, data []byte) (string, error) {
	name := uuid.NewString() + "." + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return name, nil
}

// Path resolves a bare filename inside the store. Names with separators or
// traversal sequences are rejected before touching the filesystem.
func (s *Store) Path(filename string) (string, error) {
	name, err := util.BareFileName(filename)
	if err != nil {
		return "", err
	}
	full := filepath.Join(s.dir, name)
	if _, err := os.Stat(full); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return full, nil
}
