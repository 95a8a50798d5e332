package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFileUsesDefaults(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "prefs.yaml"))

	p, ok := store.Load()

	assert.False(t, ok)
	assert.Equal(t, Defaults(), p)

	_, err := store.Read()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", "prefs.yaml"))
	want := Preferences{Name: "Ada", AvatarRef: "https://example.com/a.png", Theme: "France"}

	store.Save(want)
	got, ok := store.Load()

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFileStore_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: Turkey\n"), 0644))

	p, ok := NewFileStore(path).Load()

	assert.True(t, ok)
	assert.Equal(t, "Guest", p.Name)
	assert.Equal(t, "Turkey", p.Theme)
	assert.Empty(t, p.AvatarRef)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated\n"), 0644))

	p, ok := NewFileStore(path).Load()

	assert.False(t, ok)
	assert.Equal(t, Defaults(), p)
}

func TestFileStore_UnwritableIsSilent(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	store := NewFileStore(filepath.Join(blocker, "prefs.yaml"))

	assert.NotPanics(t, func() { store.Save(Defaults()) })
	assert.Error(t, store.Write(Defaults()))
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"  Ada ", "Ada", true},
		{"   ", "", false},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst", true},
	}
	for _, tt := range tests {
		got, ok := NormalizeName(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestMemoryStore(t *testing.T) {
	var m MemoryStore
	p, ok := m.Load()
	assert.False(t, ok)
	assert.Equal(t, Defaults(), p)

	m.Save(Preferences{Name: "Bo", Theme: "Default"})
	p, ok = m.Load()
	assert.True(t, ok)
	assert.Equal(t, "Bo", p.Name)
	assert.Equal(t, 1, m.Saves)
}
