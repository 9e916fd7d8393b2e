package store

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// CurrentSchemaVersion is the current version of the preferences file.
const CurrentSchemaVersion = 1

// DataDir returns the path to the schemeswitch data directory.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/schemeswitch.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "schemeswitch"), nil
}

// PreferencesPath returns the default path of the preferences file.
func PreferencesPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "preferences.json"), nil
}

// Entry is one stored preference.
type Entry struct {
	Value     string `json:"value"`
	UpdatedAt int64  `json:"updated_at"` // Unix timestamp
	Revision  string `json:"revision"`   // ULID, new on every write
}

// Updated returns UpdatedAt as a time.
func (e Entry) Updated() time.Time {
	return time.Unix(e.UpdatedAt, 0)
}

type preferencesFile struct {
	Entries       map[string]Entry `json:"entries"`
	SchemaVersion int              `json:"schema_version"`
}

// Preferences is a key-value store persisted as a JSON file.
// Every write rewrites the file atomically.
type Preferences struct {
	mu   sync.RWMutex
	path string
}

// NewPreferences returns a store backed by the file at path. The file is
// created on first write.
func NewPreferences(path string) *Preferences {
	return &Preferences{path: path}
}

// Path returns the backing file path.
func (p *Preferences) Path() string {
	return p.path
}

// Get returns the value stored under key.
func (p *Preferences) Get(key string) (string, bool, error) {
	entry, ok, err := p.Lookup(key)
	return entry.Value, ok, err
}

// Lookup returns the full entry stored under key.
func (p *Preferences) Lookup(key string) (Entry, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	file, err := p.load()
	if err != nil {
		return Entry{}, false, err
	}
	entry, ok := file.Entries[key]
	return entry, ok, nil
}

// Set stores value under key.
func (p *Preferences) Set(key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	file, err := p.load()
	if err != nil {
		return err
	}

	now := time.Now()
	revision, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return fmt.Errorf("failed to generate revision: %w", err)
	}

	file.Entries[key] = Entry{
		Value:     value,
		UpdatedAt: now.Unix(),
		Revision:  revision.String(),
	}
	return p.save(file)
}

// Delete removes key. Deleting a missing key is not an error.
func (p *Preferences) Delete(key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	file, err := p.load()
	if err != nil {
		return err
	}
	if _, ok := file.Entries[key]; !ok {
		return nil
	}
	delete(file.Entries, key)
	return p.save(file)
}

// load reads the file. A missing or corrupted file reads as empty.
func (p *Preferences) load() (*preferencesFile, error) {
	empty := &preferencesFile{
		Entries:       make(map[string]Entry),
		SchemaVersion: CurrentSchemaVersion,
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return nil, err
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return empty, nil
	}
	if file.Entries == nil {
		file.Entries = make(map[string]Entry)
	}
	if file.SchemaVersion == 0 {
		file.SchemaVersion = CurrentSchemaVersion
	}
	return &file, nil
}

func (p *Preferences) save(file *preferencesFile) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	// Write atomically via temp file
	tmpPath := p.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmpPath, p.path)
}
