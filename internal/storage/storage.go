package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

// DefaultPath is where results are written when no path is given
const DefaultPath = "picks.json"

// Storage reads and writes the result file
type Storage struct {
	path string
}

// New creates a Storage for path, expanding a leading ~/ and creating the
// parent directory if needed
func New(path string) (*Storage, error) {
	if path == "" {
		path = DefaultPath
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	return &Storage{path: path}, nil
}

// Path returns the resolved file path
func (s *Storage) Path() string {
	return s.path
}

// Save overwrites the result file with result
func (s *Storage) Save(result *pick.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	return nil
}

// Load reads the last written result
func (s *Storage) Load() (*pick.Result, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading result: %w", err)
	}

	var result pick.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing result: %w", err)
	}

	return &result, nil
}
