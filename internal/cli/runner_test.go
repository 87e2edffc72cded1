package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/focusdeck/internal/store/jsonstore"
)

func testOptions(t *testing.T) (Options, *jsonstore.Store) {
	t.Helper()
	dir := t.TempDir()
	opt := Options{
		ConfigFile: "",
		DataFile:   filepath.Join(dir, "focusdeck.json"),
		Theme:      "mono",
	}
	return opt, jsonstore.New(opt.DataFile)
}

func TestAddThenList(t *testing.T) {
	opt, store := testOptions(t)

	assert.Equal(t, 0, Run([]string{"add", "Buy", "milk"}, opt))

	st, err := store.Load()
	require.NoError(t, err)
	require.Len(t, st.Tasks, 1)
	assert.Equal(t, "Buy milk", st.Tasks[0].Text)
	assert.False(t, st.Tasks[0].Done)

	assert.Equal(t, 0, Run([]string{"ls"}, opt))
}

func TestDoneTogglesAndGrantsXP(t *testing.T) {
	opt, store := testOptions(t)
	require.Equal(t, 0, Run([]string{"add", "exercise"}, opt))

	assert.Equal(t, 0, Run([]string{"done", "1"}, opt))
	st, _ := store.Load()
	assert.True(t, st.Tasks[0].Done)
	assert.Equal(t, 10, st.XP)

	// Toggling back keeps the XP: points only ratchet upward.
	assert.Equal(t, 0, Run([]string{"done", "1"}, opt))
	st, _ = store.Load()
	assert.False(t, st.Tasks[0].Done)
	assert.Equal(t, 10, st.XP)
}

func TestRemove(t *testing.T) {
	opt, store := testOptions(t)
	require.Equal(t, 0, Run([]string{"add", "a"}, opt))
	require.Equal(t, 0, Run([]string{"add", "b"}, opt))

	assert.Equal(t, 0, Run([]string{"rm", "1"}, opt))

	st, _ := store.Load()
	require.Len(t, st.Tasks, 1)
	assert.Equal(t, "b", st.Tasks[0].Text)
}

func TestIndexOutOfRangeIsUsageError(t *testing.T) {
	opt, store := testOptions(t)
	require.Equal(t, 0, Run([]string{"add", "only one"}, opt))

	assert.Equal(t, 2, Run([]string{"done", "5"}, opt))
	assert.Equal(t, 2, Run([]string{"rm", "0"}, opt))

	st, _ := store.Load()
	assert.Len(t, st.Tasks, 1)
	assert.False(t, st.Tasks[0].Done)
}

func TestBadArgsAreUsageErrors(t *testing.T) {
	opt, _ := testOptions(t)

	assert.Equal(t, 2, Run([]string{"add"}, opt))
	assert.Equal(t, 2, Run([]string{"done", "two"}, opt))
	assert.Equal(t, 2, Run([]string{"rm"}, opt))
	assert.Equal(t, 2, Run([]string{"frobnicate"}, opt))
}

func TestHelpExitsZero(t *testing.T) {
	opt, _ := testOptions(t)
	assert.Equal(t, 0, Run([]string{"help"}, opt))
}

func TestExplicitMissingConfigFails(t *testing.T) {
	opt, _ := testOptions(t)
	opt.ConfigFile = filepath.Join(t.TempDir(), "absent.yaml")
	assert.Equal(t, 1, Run([]string{"ls"}, opt))
}

func TestConfigOverridesSessionLength(t *testing.T) {
	opt, _ := testOptions(t)
	path := filepath.Join(t.TempDir(), "focusdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session_minutes: 50\n"), 0o644))
	opt.ConfigFile = path

	assert.Equal(t, 0, Run([]string{"ls"}, opt))
}
