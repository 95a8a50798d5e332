// Package prefs stores the user's profile and theme choice.
//
// Storage is best-effort: a failing store never stops the board, it only means the
// defaults are used this session. Failures are logged.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kanbo/internal/logs"

	"gopkg.in/yaml.v3"
)

// MaxNameLength is the longest user name kept, in runes
const MaxNameLength = 20

// ErrNotFound is returned by Read when nothing has been stored yet
var ErrNotFound = errors.New("preferences not found")

// Preferences is the persisted user profile
type Preferences struct {
	Name      string `yaml:"name,omitempty" json:"name"`
	AvatarRef string `yaml:"avatar,omitempty" json:"avatarRef"`
	Theme     string `yaml:"theme,omitempty" json:"theme"`
}

// Defaults returns the profile used before anything is stored
func Defaults() Preferences {
	return Preferences{
		Name:  "Guest",
		Theme: "Default",
	}
}

// Store loads and saves preferences
type Store interface {
	// Load returns the stored preferences merged over the defaults.
	// The bool is false when nothing could be read.
	Load() (Preferences, bool)
	// Save writes the preferences. Failures are logged, not returned.
	Save(Preferences)
}

// NormalizeName trims a user name and cuts it to MaxNameLength runes.
// Returns false when nothing is left.
func NormalizeName(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", false
	}
	runes := []rune(trimmed)
	if len(runes) > MaxNameLength {
		trimmed = strings.TrimSpace(string(runes[:MaxNameLength]))
	}
	return trimmed, true
}

// FileStore keeps preferences in a YAML file
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Read returns the stored preferences merged over the defaults
func (s *FileStore) Read() (Preferences, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), ErrNotFound
		}
		return Defaults(), fmt.Errorf("read preferences: %w", err)
	}

	// Unmarshalling into the defaults keeps any field the file leaves out
	p := Defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Defaults(), fmt.Errorf("parse preferences %s: %w", s.Path, err)
	}

	return p, nil
}

// Write stores p, creating the parent directory if needed
func (s *FileStore) Write(p Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

// Load implements Store
func (s *FileStore) Load() (Preferences, bool) {
	p, err := s.Read()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logs.Warnf("using default preferences: %v", err)
		}
		return p, false
	}
	return p, true
}

// Save implements Store
func (s *FileStore) Save(p Preferences) {
	if err := s.Write(p); err != nil {
		logs.Errorf("saving preferences: %v", err)
	}
}

// MemoryStore keeps preferences in memory only
type MemoryStore struct {
	stored *Preferences
	Saves  int
}

// Load implements Store
func (m *MemoryStore) Load() (Preferences, bool) {
	if m.stored == nil {
		return Defaults(), false
	}
	return *m.stored, true
}

// Save implements Store
func (m *MemoryStore) Save(p Preferences) {
	m.stored = &p
	m.Saves++
}
