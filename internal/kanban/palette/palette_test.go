package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_DefaultFirst(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	assert.Equal(t, DefaultTheme, names[0])
	for _, name := range names {
		assert.True(t, IsValid(name), "theme %q listed but not defined", name)
	}
}

func TestAt_Wraps(t *testing.T) {
	p, ok := Lookup(DefaultTheme)
	require.True(t, ok)
	require.Len(t, p, 5)

	assert.Equal(t, p[0], p.At(5))
	assert.Equal(t, p[2], p.At(7))
}

func TestAt_EmptyPalette(t *testing.T) {
	var p Palette
	assert.Zero(t, p.At(3))
}

func TestLookup_ReturnsCopy(t *testing.T) {
	p, _ := Lookup("France")
	p[0].Main = "#000000"

	again, _ := Lookup("France")
	assert.Equal(t, "#0055a4", again[0].Main)
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	name, p := Resolve("Atlantis")
	assert.Equal(t, DefaultTheme, name)
	assert.Equal(t, "#4A90E2", p[0].Main)

	name, p = Resolve("Turkey")
	assert.Equal(t, "Turkey", name)
	assert.Equal(t, "#e30a17", p[0].Main)
}
