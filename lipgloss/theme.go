// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"strings"

	"github.com/fwojciec/sectiongrid"
)

// Compile-time interface verification.
var _ sectiongrid.Theme = (*Theme)(nil)

// Theme implements sectiongrid.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles sectiongrid.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() sectiongrid.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme registered under name, falling back to the
// default theme for unknown names.
func ThemeByName(name string) *Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case sectiongrid.ThemeLight:
		return LightTheme()
	default:
		return DefaultTheme()
	}
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: sectiongrid.Styles{
			Header: sectiongrid.ColorPair{
				Foreground: "#9399b2", // Muted lavender gray
			},
			Footer: sectiongrid.ColorPair{
				Foreground: "#45475a", // Subtle separator
			},
			Item: sectiongrid.ColorPair{
				Foreground: "#cdd6f4", // Text
				Background: "#1e1e2e", // Base
			},
			SelectedItem: sectiongrid.ColorPair{
				Foreground: "#ffffff", // White text on accent
				Background: "#2e84fa", // Accent blue
			},
			Border: sectiongrid.ColorPair{
				Foreground: "#45475a", // Surface
			},
			Cursor: sectiongrid.ColorPair{
				Foreground: "#f9e2af", // Yellow
			},
			Status: sectiongrid.ColorPair{
				Foreground: "#a6adc8",
				Background: "#313244",
			},
			Notice: sectiongrid.ColorPair{
				Foreground: "#1e1e2e", // Dark text on bright background
				Background: "#f38ba8", // Red
			},
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: sectiongrid.Styles{
			Header: sectiongrid.ColorPair{
				Foreground: "#97a4b4", // Slate gray
			},
			Footer: sectiongrid.ColorPair{
				Foreground: "#bcc0cc",
			},
			Item: sectiongrid.ColorPair{
				Foreground: "#000000", // Black on white cells
				Background: "#ffffff",
			},
			SelectedItem: sectiongrid.ColorPair{
				Foreground: "#ffffff", // White on gradient end color
				Background: "#5363ec",
			},
			Border: sectiongrid.ColorPair{
				Foreground: "#bcc0cc",
			},
			Cursor: sectiongrid.ColorPair{
				Foreground: "#2e84fa",
			},
			Status: sectiongrid.ColorPair{
				Foreground: "#6c6f85",
				Background: "#eff1f7",
			},
			Notice: sectiongrid.ColorPair{
				Foreground: "#ffffff",
				Background: "#d20f39",
			},
		},
	}
}
