package camera

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Store persists camera state to a YAML file, writing only after the camera
// has been still for the debounce interval.
type Store struct {
	path     string
	debounce time.Duration

	pending   bool
	state     State
	lastTouch time.Time
}

// NewStore creates a store. An empty path disables persistence.
func NewStore(path string, debounce time.Duration) *Store {
	return &Store{path: path, debounce: debounce}
}

// Load reads the saved state. ok is false if nothing has been saved yet.
func (s *Store) Load() (st State, ok bool, err error) {
	if s.path == "" {
		return State{}, false, nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("reading camera state: %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return State{}, false, fmt.Errorf("parsing camera state: %w", err)
	}
	return st, true, nil
}

// Touch records a camera change at now.
func (s *Store) Touch(now time.Time, st State) {
	s.pending = true
	s.state = st
	s.lastTouch = now
}

// Flush writes the pending state if it has been quiet long enough.
// It reports whether a write happened.
func (s *Store) Flush(now time.Time) (bool, error) {
	if !s.pending || now.Sub(s.lastTouch) < s.debounce {
		return false, nil
	}
	return true, s.write()
}

// Close writes any pending state immediately.
func (s *Store) Close() error {
	if !s.pending {
		return nil
	}
	return s.write()
}

func (s *Store) write() error {
	s.pending = false
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshaling camera state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing camera state: %w", err)
	}
	return nil
}
