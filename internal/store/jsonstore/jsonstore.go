// Package jsonstore persists the whole app state as one JSON blob.
// Single file, human-readable, portable. Every save is a full overwrite;
// there is no merging. No locking for v1; fine for a local single-user
// app.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/idilsaglam/focusdeck/internal/model"
	"github.com/idilsaglam/focusdeck/internal/xp"
)

// DefaultFileName is used when no data path is configured.
const DefaultFileName = "focusdeck.json"

// State is everything focusdeck persists. Level and the roadmap's
// Unlocked flags are derived from XP; Load recomputes them and never
// trusts the persisted values.
type State struct {
	XP      int            `json:"xp"`
	Level   int            `json:"level"`
	Roadmap []xp.Milestone `json:"roadmap"`
	Tasks   []model.Task   `json:"tasks"`
}

// Store reads and writes one state file.
type Store struct {
	path string
}

func New(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load reads the state file. A missing file or malformed JSON degrades to
// the default empty state with a nil error: task data fails soft. Other
// read errors (permissions and the like) return the default state plus
// the error so CLI callers can surface them.
func (s *Store) Load() (State, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultState(), nil
		}
		return defaultState(), fmt.Errorf("read state: %w", err)
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		slog.Warn("state file malformed, starting empty", "path", s.path, "err", err)
		return defaultState(), nil
	}
	return revalidate(st), nil
}

// Save writes the full state, overwriting prior content. Derived fields
// are refreshed first so the file stays readable by humans, even though
// Load ignores them.
func (s *Store) Save(st State) error {
	st = revalidate(st)
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func defaultState() State {
	return revalidate(State{})
}

// revalidate recomputes every derived field from XP and normalizes nil
// slices so callers can range without checking.
func revalidate(st State) State {
	st.Level = xp.Level(st.XP)
	if len(st.Roadmap) == 0 {
		st.Roadmap = xp.DefaultRoadmap()
	}
	xp.Revalidate(st.Roadmap, st.Level)
	if st.Tasks == nil {
		st.Tasks = []model.Task{}
	}
	return st
}
