package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Makepad-fr/budget/internal/logger"
	"github.com/Makepad-fr/budget/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// Every Save rewrites the whole file. No locking; one process at a time.

// DefaultFileName is used when no path is configured.
const DefaultFileName = "budget.json"

// Store reads and writes the item list at Path.
type Store struct {
	Path string
	Log  zerolog.Logger
}

// New returns a Store for path. An empty path means DefaultFileName in the
// working directory.
func New(path string, log zerolog.Logger) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{Path: path, Log: logger.Component(log, "store")}, nil
}

// Load returns the stored items. A missing or malformed file is reset to an
// empty array and read once more; only a failure of that retry is returned.
func (s *Store) Load() ([]model.Item, error) {
	items, err := s.read()
	if err == nil {
		return items, nil
	}
	s.Log.Warn().Err(err).Str("path", s.Path).Msg("data file unusable, resetting to empty list")
	if err := s.Save(nil); err != nil {
		return nil, fmt.Errorf("reset data file: %w", err)
	}
	items, err = s.read()
	if err != nil {
		return nil, fmt.Errorf("reload data file: %w", err)
	}
	return items, nil
}

// Save overwrites the file with items. A nil slice is written as [].
func (s *Store) Save(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.Path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.Log.Debug().Int("items", len(items)).Str("path", s.Path).Msg("saved")
	return nil
}

func (s *Store) read() ([]model.Item, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("data file missing: %w", err)
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if items == nil {
		// "null" decodes to a nil slice; treat it as empty rather than corrupt.
		items = []model.Item{}
	}
	return items, nil
}
