package palette

import "kanbo/internal/kanban/models"

// DefaultTheme is used when no valid theme has been chosen
const DefaultTheme = "Default"

// Palette is an ordered list of colour pairs assigned to columns by index
type Palette []models.ColorPair

// At returns the colour pair for the column at index, wrapping around.
// An empty palette yields the zero pair.
func (p Palette) At(index int) models.ColorPair {
	if len(p) == 0 || index < 0 {
		return models.ColorPair{}
	}
	return p[index%len(p)]
}

// themeOrder keeps the theme list stable for pickers
var themeOrder = []string{"Default", "Bolivia", "France", "Netherlands", "Turkey"}

var themes = map[string]Palette{
	"Default": {
		{Main: "#4A90E2", Background: "#F0F5FF"}, // blue
		{Main: "#F5A623", Background: "#FFF9F0"}, // orange
		{Main: "#BD10E0", Background: "#FBF0FF"}, // purple
		{Main: "#7ED321", Background: "#F7FFF0"}, // green
		{Main: "#50E3C2", Background: "#F0FFFB"}, // teal
	},
	"Bolivia": {
		{Main: "#d92323", Background: "#ffebeb"},
		{Main: "#ffce00", Background: "#fff9e0"},
		{Main: "#007a3d", Background: "#e0f2e7"},
		{Main: "#ff8c00", Background: "#fff3e0"},
		{Main: "#c62828", Background: "#ffcdd2"},
	},
	"France": {
		{Main: "#0055a4", Background: "#e0e9f2"},
		{Main: "#ef4135", Background: "#fde8e6"},
		{Main: "#808080", Background: "#f2f2f2"},
		{Main: "#0078d7", Background: "#e1f5fe"},
		{Main: "#c62828", Background: "#ffcdd2"},
	},
	"Netherlands": {
		{Main: "#ae1c28", Background: "#f9e4e6"},
		{Main: "#21468b", Background: "#e2e8f3"},
		{Main: "#808080", Background: "#f2f2f2"},
		{Main: "#ff7f00", Background: "#fff2e5"},
		{Main: "#003366", Background: "#e0e6ec"},
	},
	"Turkey": {
		{Main: "#e30a17", Background: "#fce4e6"},
		{Main: "#9e1b22", Background: "#f4e8e9"},
		{Main: "#808080", Background: "#f2f2f2"},
		{Main: "#b71c1c", Background: "#ffcdd2"},
		{Main: "#d50000", Background: "#ff8a80"},
	},
}

// Names returns all theme names, Default first
func Names() []string {
	names := make([]string, len(themeOrder))
	copy(names, themeOrder)
	return names
}

// Lookup returns a copy of the palette for a theme name
func Lookup(name string) (Palette, bool) {
	p, ok := themes[name]
	if !ok {
		return nil, false
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out, true
}

// IsValid checks if a theme name exists
func IsValid(name string) bool {
	_, ok := themes[name]
	return ok
}

// Resolve returns the palette for name, falling back to the default theme
func Resolve(name string) (string, Palette) {
	if p, ok := Lookup(name); ok {
		return name, p
	}
	p, _ := Lookup(DefaultTheme)
	return DefaultTheme, p
}
