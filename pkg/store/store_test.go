package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func backends(t *testing.T) map[string]KV {
	t.Helper()
	d, err := OpenDiskv(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(s) })
	return map[string]KV{
		"memory": NewMemory(),
		"diskv":  d,
		"sqlite": s,
	}
}

func TestKVGetMissing(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get("nope")
			assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
		})
	}
}

func TestKVSetOverwrites(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Set("k", []byte("one")))
			require.NoError(t, kv.Set("k", []byte("two")))
			got, err := kv.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "two", string(got))
			assert.Equal(t, []string{"k"}, kv.Keys())
		})
	}
}

func TestLoadMissingOrCorrupt(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, Load[item](kv, "unset"))
			assert.NotNil(t, Load[item](kv, "unset"))

			for _, bad := range []string{"{not json", `{"id":"1"}`, `42`, `null`} {
				require.NoError(t, kv.Set("bad", []byte(bad)))
				got := Load[item](kv, "bad")
				assert.NotNil(t, got, bad)
				assert.Empty(t, got, bad)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	items := []item{{ID: "2", Body: "b"}, {ID: "1", Body: "a"}}
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Save(kv, "items", items))
			assert.Equal(t, items, Load[item](kv, "items"))

			require.NoError(t, Save[item](kv, "items", nil))
			raw, err := kv.Get("items")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(raw))
		})
	}
}

func TestSaveWithoutStore(t *testing.T) {
	assert.Error(t, Save(nil, "k", []item{}))
	assert.Empty(t, Load[item](nil, "k"))
}

type testConfig struct {
	path    string
	backend string
}

func (t testConfig) BasePath() string    { return t.path }
func (t testConfig) Backend() string     { return t.backend }
func (t testConfig) Debug() bool         { return false }
func (t testConfig) SprintMinutes() int  { return 10 }
func (t testConfig) MorningMinutes() int { return 20 }
func (t testConfig) Notify() bool        { return false }

func TestLoadSelectsBackend(t *testing.T) {
	base := t.TempDir()

	kv, err := Load(testConfig{path: base, backend: BackendDiskv})
	require.NoError(t, err)
	d, ok := kv.(*Diskv)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "data"), d.BasePath())

	kv, err = Load(testConfig{path: base, backend: BackendSQLite})
	require.NoError(t, err)
	defer Close(kv)
	s, ok := kv.(*SQLite)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "journal.db"), s.Path())
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STORYJOURNAL_CONFIG_PATH", dir)
	t.Setenv("STORYJOURNAL_PATH", filepath.Join(dir, "journal"))
	t.Setenv("STORYJOURNAL_BACKEND", "sqlite")
	t.Setenv("STORYJOURNAL_SPRINT_MINUTES", "15")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "journal"), cfg.BasePath())
	assert.Equal(t, BackendSQLite, cfg.Backend())
	assert.Equal(t, 15, cfg.SprintMinutes())
	assert.Equal(t, 20, cfg.MorningMinutes())
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORYJOURNAL_CONFIG_PATH", t.TempDir())
	t.Setenv("STORYJOURNAL_BACKEND", "postgres")
	_, err := LoadConfig()
	assert.Error(t, err)
}
