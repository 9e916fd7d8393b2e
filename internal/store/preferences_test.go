package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences_MissingFile(t *testing.T) {
	p := NewPreferences(filepath.Join(t.TempDir(), "preferences.json"))

	v, ok, err := p.Get("preferred-color-scheme")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestPreferences_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")
	p := NewPreferences(path)

	require.NoError(t, p.Set("preferred-color-scheme", "dark"))

	v, ok, err := p.Get("preferred-color-scheme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	// A second store on the same file sees the value.
	other := NewPreferences(path)
	v, ok, err = other.Get("preferred-color-scheme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
}

func TestPreferences_RevisionChangesOnWrite(t *testing.T) {
	p := NewPreferences(filepath.Join(t.TempDir(), "preferences.json"))

	require.NoError(t, p.Set("k", "light"))
	first, ok, err := p.Lookup("k")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, p.Set("k", "dark"))
	second, _, err := p.Lookup("k")
	require.NoError(t, err)

	_, err = ulid.Parse(first.Revision)
	require.NoError(t, err)
	assert.NotEqual(t, first.Revision, second.Revision)
	assert.Equal(t, "dark", second.Value)
	assert.NotZero(t, second.UpdatedAt)
}

func TestPreferences_KeysAreIndependent(t *testing.T) {
	p := NewPreferences(filepath.Join(t.TempDir(), "preferences.json"))

	require.NoError(t, p.Set("a", "light"))
	require.NoError(t, p.Set("b", "dark"))

	a, _, err := p.Get("a")
	require.NoError(t, err)
	b, _, err := p.Get("b")
	require.NoError(t, err)
	assert.Equal(t, "light", a)
	assert.Equal(t, "dark", b)
}

func TestPreferences_Delete(t *testing.T) {
	p := NewPreferences(filepath.Join(t.TempDir(), "preferences.json"))

	require.NoError(t, p.Delete("missing"))
	require.NoError(t, p.Set("k", "dark"))
	require.NoError(t, p.Delete("k"))

	_, ok, err := p.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPreferences_CorruptedFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	p := NewPreferences(path)
	_, ok, err := p.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Set("k", "light"))
	v, _, err := p.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestPreferencesPath_UsesXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	path, err := PreferencesPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "schemeswitch", "preferences.json"), path)
}
