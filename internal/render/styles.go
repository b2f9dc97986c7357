package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour/styles"
)

// Built-in markdown style names
const (
	StyleDark       = "dark"
	StyleLight      = "light"
	StyleTokyoNight = "tokyonight"
	StyleDracula    = "dracula"
	StylePink       = "pink"
	StyleNoTTY      = "notty"
	StyleASCII      = "ascii"
)

// StyleInfo describes a markdown style for display purposes.
type StyleInfo struct {
	Name        string
	Description string
}

// AvailableStyles returns the built-in markdown styles.
func AvailableStyles() []StyleInfo {
	return []StyleInfo{
		{Name: StyleDark, Description: "Dark theme (default)"},
		{Name: StyleLight, Description: "Light theme for bright terminals"},
		{Name: StyleTokyoNight, Description: "Tokyo Night color scheme"},
		{Name: StyleDracula, Description: "Dracula color scheme"},
		{Name: StylePink, Description: "Pink accents"},
		{Name: StyleNoTTY, Description: "Plain text (no styling)"},
		{Name: StyleASCII, Description: "ASCII-only output"},
	}
}

// IsBuiltinStyle returns true if the style name is one of AvailableStyles.
func IsBuiltinStyle(style string) bool {
	for _, s := range AvailableStyles() {
		if s.Name == style {
			return true
		}
	}
	return false
}

// ValidateStyle accepts a built-in style name or the path of an existing
// glamour JSON style file.
func ValidateStyle(style string) error {
	if IsBuiltinStyle(style) {
		return nil
	}
	if style != "" {
		if info, err := os.Stat(style); err == nil && !info.IsDir() {
			return nil
		}
	}

	names := make([]string, 0, len(AvailableStyles()))
	for _, s := range AvailableStyles() {
		names = append(names, s.Name)
	}
	return fmt.Errorf("unknown markdown style %q (built-in: %s, or a path to a JSON style file)",
		style, strings.Join(names, ", "))
}

// glamourStyleName maps our style names onto glamour's standard style names.
// Unknown names are returned unchanged so glamour can treat them as file paths.
func glamourStyleName(style string) string {
	switch style {
	case "":
		return styles.DarkStyle
	case StyleTokyoNight:
		return styles.TokyoNightStyle
	default:
		return style
	}
}
