// internal/state/store.go
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists failure counts between runs as a small JSON file.
// One run reads it once at start and writes it once at end; overlap
// between runs is an external-scheduler responsibility.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted counts. An absent or corrupt file yields
// empty counts and a nil error: the monitor starts over rather than
// failing. The returned error is informational (logged by the
// caller) and never carries corrupt data.
func (s *Store) Load() (Counts, error) {
	counts := Counts{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return counts, nil
		}
		return counts, fmt.Errorf("state: read %s: %w", s.path, err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return Counts{}, fmt.Errorf("state: parse %s, resetting: %w", s.path, err)
	}

	for url, n := range raw {
		counts.Set(url, n)
	}

	return counts, nil
}

// Save rewrites the whole state file atomically (temp file + rename).
func (s *Store) Save(counts Counts) error {
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return fmt.Errorf("state: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".failures-*")
	if err != nil {
		return fmt.Errorf("state: temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("state: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("state: close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("state: rename to %s: %w", s.path, err)
	}

	return nil
}
