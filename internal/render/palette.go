package render

import "github.com/charmbracelet/lipgloss"

// Palette defines the color scheme for the TUI and decorated CLI output
type Palette struct {
	Name        string
	Description string

	Border lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// Built-in palettes
var (
	TokyoNightPalette = Palette{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",
		Border:      lipgloss.Color("#414868"),
		Primary:     lipgloss.Color("#7aa2f7"),
		Secondary:   lipgloss.Color("#9ece6a"),
		Accent:      lipgloss.Color("#bb9af7"),
		Success:     lipgloss.Color("#9ece6a"),
		Error:       lipgloss.Color("#f7768e"),
		Text:        lipgloss.Color("#c0caf5"),
		TextDim:     lipgloss.Color("#565f89"),
		TextMute:    lipgloss.Color("#3b4261"),
	}

	CatppuccinPalette = Palette{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",
		Border:      lipgloss.Color("#45475a"),
		Primary:     lipgloss.Color("#89b4fa"), // Blue
		Secondary:   lipgloss.Color("#a6e3a1"), // Green
		Accent:      lipgloss.Color("#cba6f7"), // Mauve
		Success:     lipgloss.Color("#a6e3a1"),
		Error:       lipgloss.Color("#f38ba8"), // Red
		Text:        lipgloss.Color("#cdd6f4"),
		TextDim:     lipgloss.Color("#6c7086"),
		TextMute:    lipgloss.Color("#45475a"),
	}

	NordPalette = Palette{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",
		Border:      lipgloss.Color("#4c566a"),
		Primary:     lipgloss.Color("#88c0d0"), // Frost
		Secondary:   lipgloss.Color("#a3be8c"), // Aurora green
		Accent:      lipgloss.Color("#b48ead"), // Aurora purple
		Success:     lipgloss.Color("#a3be8c"),
		Error:       lipgloss.Color("#bf616a"), // Aurora red
		Text:        lipgloss.Color("#eceff4"),
		TextDim:     lipgloss.Color("#7b88a1"),
		TextMute:    lipgloss.Color("#4c566a"),
	}
)

// Palettes returns all built-in palettes
func Palettes() []Palette {
	return []Palette{TokyoNightPalette, CatppuccinPalette, NordPalette}
}

// PaletteByName looks up a palette. Unknown names fall back to Tokyo Night
// and report false.
func PaletteByName(name string) (Palette, bool) {
	for _, p := range Palettes() {
		if p.Name == name {
			return p, true
		}
	}
	return TokyoNightPalette, false
}

// PaletteNames returns the palette names for selection
func PaletteNames() []string {
	palettes := Palettes()
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}
