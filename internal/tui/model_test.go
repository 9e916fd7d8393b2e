package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/schemeswitch/internal/colorswitch"
	"github.com/jmylchreest/schemeswitch/internal/scheme"
	"github.com/jmylchreest/schemeswitch/internal/store"
)

func newTestModel(t *testing.T, rootScheme string) (Model, *Document, *store.Preferences) {
	t.Helper()

	attrs := map[string]string{}
	if rootScheme != "" {
		attrs[colorswitch.DefaultRootAttribute] = rootScheme
	}
	doc := NewDocument("--", attrs)
	prefs := store.NewPreferences(filepath.Join(t.TempDir(), "preferences.json"))

	sw, err := colorswitch.New(doc, prefs, colorswitch.SystemFunc(func() bool { return false }), colorswitch.Options{})
	require.NoError(t, err)

	m, err := New(sw, doc)
	require.NoError(t, err)
	return m, doc, prefs
}

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNew_AttachesSwitch(t *testing.T) {
	m, doc, _ := newTestModel(t, "dark")

	require.NotNil(t, doc.Control())
	assert.True(t, doc.Control().Checked())
	assert.Equal(t, colorswitch.DefaultLabel, doc.Control().Label())
	assert.Len(t, doc.StyleSheets(), 1)
	assert.Equal(t, colorswitch.StateAttached, m.sw.State())
}

func TestToggleKey_PersistsScheme(t *testing.T) {
	m, doc, prefs := newTestModel(t, "")

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.Equal(t, scheme.Dark, m.sw.Scheme())
	root, _ := doc.RootAttribute(colorswitch.DefaultRootAttribute)
	assert.Equal(t, "dark", root)
	stored, ok, err := prefs.Get(colorswitch.DefaultStorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", stored)
	assert.Equal(t, "switched to dark", m.statusMsg)
	assert.False(t, m.statusErr)

	m = update(t, m, runeKey("t"))
	assert.Equal(t, scheme.Light, m.sw.Scheme())
	assert.False(t, doc.Control().Checked())
}

func TestSchemeKeys_UseAttributePath(t *testing.T) {
	m, doc, prefs := newTestModel(t, "")

	m = update(t, m, runeKey("d"))
	assert.Equal(t, scheme.Dark, m.sw.Scheme())
	assert.True(t, doc.Control().Checked())
	attr, _ := m.sw.Attribute(colorswitch.AttrScheme)
	assert.Equal(t, "dark", attr)

	stored, _, err := prefs.Get(colorswitch.DefaultStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	m = update(t, m, runeKey("l"))
	assert.Equal(t, scheme.Light, m.sw.Scheme())
	assert.False(t, doc.Control().Checked())
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	_, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_FollowsRootAttribute(t *testing.T) {
	m, _, _ := newTestModel(t, "light")
	assert.Equal(t, palettes[scheme.Light], m.currentPalette())

	m = update(t, m, runeKey("t"))
	assert.Equal(t, palettes[scheme.Dark], m.currentPalette())

	view := m.View()
	assert.Contains(t, view, colorswitch.DefaultLabel)
	assert.Contains(t, view, "switched to dark")
}

// failingStore reads nothing and refuses every write.
type failingStore struct{ err error }

func (s failingStore) Get(string) (string, bool, error) { return "", false, nil }
func (s failingStore) Set(string, string) error         { return s.err }

func TestToggleKey_ShowsStoreError(t *testing.T) {
	doc := NewDocument("--", nil)
	store := failingStore{err: errors.New("disk full")}
	sw, err := colorswitch.New(doc, store, colorswitch.SystemFunc(func() bool { return false }), colorswitch.Options{})
	require.NoError(t, err)
	m, err := New(sw, doc)
	require.NoError(t, err)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	assert.True(t, m.statusErr)
	assert.Contains(t, m.statusMsg, "disk full")
	assert.Contains(t, m.View(), "disk full")
}
