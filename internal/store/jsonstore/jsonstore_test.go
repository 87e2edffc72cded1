package jsonstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/focusdeck/internal/model"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "focusdeck.json"))
}

func TestLoadMissingFileReturnsDefaultState(t *testing.T) {
	s := tempStore(t)

	st, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Tasks)
	assert.Equal(t, 0, st.XP)
	assert.Equal(t, 1, st.Level)
	assert.NotEmpty(t, st.Roadmap)
}

func TestLoadMalformedFileFailsSoft(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, st.Tasks)
	assert.Equal(t, 1, st.Level)
}

func TestRoundTripPreservesTasksInOrder(t *testing.T) {
	s := tempStore(t)
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	st, err := s.Load()
	require.NoError(t, err)
	st.Tasks, _ = model.Add(st.Tasks, "first", now)
	st.Tasks, _ = model.Add(st.Tasks, "second", now)
	st.Tasks, _ = model.Add(st.Tasks, "third", now)
	model.Toggle(st.Tasks, st.Tasks[1].ID)
	require.NoError(t, s.Save(st))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Tasks, 3)
	assert.Equal(t, st.Tasks, got.Tasks)
	assert.Equal(t, "first", got.Tasks[0].Text)
	assert.True(t, got.Tasks[1].Done)
	assert.Equal(t, "third", got.Tasks[2].Text)
}

func TestSaveOverwritesFully(t *testing.T) {
	s := tempStore(t)
	now := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	st, _ := s.Load()
	st.Tasks, _ = model.Add(st.Tasks, "doomed", now)
	require.NoError(t, s.Save(st))

	st.Tasks = []model.Task{}
	require.NoError(t, s.Save(st))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Tasks)
}

func TestLoadRecomputesLevelFromXP(t *testing.T) {
	s := tempStore(t)
	blob := `{"xp": 250, "level": 1, "roadmap": [], "tasks": []}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(blob), 0o644))

	st, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 250, st.XP)
	assert.Equal(t, 3, st.Level, "persisted level is cache, not authority")
}

func TestLoadRevalidatesRoadmapFlags(t *testing.T) {
	s := tempStore(t)
	blob := `{"xp": 0, "level": 9,
		"roadmap": [{"title": "Flow state", "level": 8, "unlocked": true}],
		"tasks": []}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(blob), 0o644))

	st, err := s.Load()
	require.NoError(t, err)
	require.Len(t, st.Roadmap, 1)
	assert.False(t, st.Roadmap[0].Unlocked, "flag recomputed from derived level")
}

func TestLoadNormalizesNilTasks(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"xp": 0}`), 0o644))

	st, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, st.Tasks)
	assert.NotEmpty(t, st.Roadmap)
}
