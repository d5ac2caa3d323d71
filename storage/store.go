package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tablebook/models"
)

// Store reads and writes one booking data file. It does no locking; callers
// encode under the aggregate lock and hand the snapshot here afterwards.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the data file into the restaurant. The first return value is
// false when the file does not exist, which is a first run and not an error.
func (s *Store) Load(restaurant *models.Restaurant, now time.Time) (bool, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", s.Path, err)
	}
	if err := Decode(data, restaurant, now); err != nil {
		return false, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return true, nil
}

// Save writes an encoded snapshot, creating the parent directory on demand.
func (s *Store) Save(snapshot []byte) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, snapshot, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}
