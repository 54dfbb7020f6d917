package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// palette colors a prompt theme.
type palette struct {
	primary       lipgloss.AdaptiveColor
	accent        lipgloss.AdaptiveColor
	muted         lipgloss.AdaptiveColor
	err           lipgloss.AdaptiveColor
	buttonText    lipgloss.AdaptiveColor
	buttonBlurred lipgloss.AdaptiveColor
}

var (
	docvarsPalette = palette{
		primary:       lipgloss.AdaptiveColor{Light: "#4338ca", Dark: "#818cf8"},
		accent:        lipgloss.AdaptiveColor{Light: "#6366f1", Dark: "#a5b4fc"},
		muted:         lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		err:           lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"},
		buttonText:    lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#111827"},
		buttonBlurred: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#374151"},
	}

	// docusaurusPalette follows the default site template colors, so prompts
	// look like the docs they configure.
	docusaurusPalette = palette{
		primary:       lipgloss.AdaptiveColor{Light: "#2e8555", Dark: "#25c2a0"},
		accent:        lipgloss.AdaptiveColor{Light: "#29784c", Dark: "#4fddbf"},
		muted:         lipgloss.AdaptiveColor{Light: "#606770", Dark: "#a8adb4"},
		err:           lipgloss.AdaptiveColor{Light: "#fa383e", Dark: "#ff6b6f"},
		buttonText:    lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#1b1b1d"},
		buttonBlurred: lipgloss.AdaptiveColor{Light: "#ebedf0", Dark: "#444950"},
	}
)

// themes maps config theme names to constructors.
var themes = map[string]func() *huh.Theme{
	"docvars":    docvarsTheme,
	"docusaurus": func() *huh.Theme { return paletteTheme(docusaurusPalette) },
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// ThemeNames returns the accepted theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsValidTheme reports whether name selects a known theme.
func IsValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// GetTheme returns the named theme, or nil if unknown.
func GetTheme(name string) *huh.Theme {
	if build, ok := themes[name]; ok {
		return build()
	}
	return nil
}

// currentTheme holds the configured prompt theme; nil means docvarsTheme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the docvars theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return docvarsTheme()
	}
	return currentTheme
}

// resetTheme restores the default theme. Used by tests.
func resetTheme() {
	currentTheme = nil
}

func docvarsTheme() *huh.Theme {
	return paletteTheme(docvarsPalette)
}

// paletteTheme applies p to the base theme: bordered focused group, bold
// titles, padded buttons, hidden border when blurred.
func paletteTheme(p palette) *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.primary)
	t.Focused.Title = t.Focused.Title.Foreground(p.primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(p.muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(p.err)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(p.err)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p.accent)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p.accent)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(p.muted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(p.buttonText).
		Background(p.primary).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(p.muted).
		Background(p.buttonBlurred).
		Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
