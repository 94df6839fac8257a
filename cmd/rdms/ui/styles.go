// Package ui provides the terminal form for rdms: themes, styles, the
// animation steppers, tooltips and the bubbletea model that drives them.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rdms/internal/config"
)

// Theme is an immutable color scheme. Toggling swaps the whole value;
// nothing mutates a Theme in place.
type Theme struct {
	Name       string
	Background string
	Foreground string
	EntryBg    string
	ButtonBg   string
	ButtonFg   string
	ButtonFx   string // hover/focus shade the button fades to
	ListBg     string
	ListFg     string
	TooltipBg  string
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Name:       config.ThemeLight,
		Background: "#F7F9FC",
		Foreground: "#333333",
		EntryBg:    "#FFFFFF",
		ButtonBg:   "#007BFF",
		ButtonFg:   "#FFFFFF",
		ButtonFx:   "#0056B3",
		ListBg:     "#FFFFFF",
		ListFg:     "#000000",
		TooltipBg:  "#FFFFE0",
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Name:       config.ThemeDark,
		Background: "#2E2E2E",
		Foreground: "#FFFFFF",
		EntryBg:    "#3C3F41",
		ButtonBg:   "#007BFF",
		ButtonFg:   "#FFFFFF",
		ButtonFx:   "#0056B3",
		ListBg:     "#3C3F41",
		ListFg:     "#FFFFFF",
		TooltipBg:  "#FFFFE0",
		IsDark:     true,
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t.IsDark {
		return LightTheme()
	}
	return DarkTheme()
}

// ThemeFor maps a configured theme name to a Theme. "auto" inspects
// COLORFGBG ("foreground;background"); background indexes 0-6 and 8 are dark.
func ThemeFor(name string) Theme {
	switch name {
	case config.ThemeDark:
		return DarkTheme()
	case config.ThemeAuto:
		parts := strings.Split(os.Getenv("COLORFGBG"), ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
				return DarkTheme()
			}
		}
		return LightTheme()
	default:
		return LightTheme()
	}
}

// Semantic colors (same in both modes)
var (
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#2E7D32")
	Warning     = lipgloss.Color("#F9A825")
)

// Styles holds all the styled components for one Theme.
type Styles struct {
	Theme Theme

	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	Label        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Button lipgloss.Style

	List       lipgloss.Style
	ListHeader lipgloss.Style
	ListRow    lipgloss.Style
	Muted      lipgloss.Style

	Tooltip lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	bg := lipgloss.Color(theme.Background)
	fg := lipgloss.Color(theme.Foreground)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(fg).
			Faint(true),

		Label: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true).
			Width(LabelWidth),

		Input: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.EntryBg)).
			Foreground(fg).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.EntryBg)).
			Foreground(fg).
			Padding(0, 1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(theme.ButtonBg)),

		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ButtonFg)).
			Padding(0, 2).
			MarginRight(ButtonGap),

		List: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.ListBg)).
			Foreground(lipgloss.Color(theme.ListFg)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(fg),

		ListHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ListFg)).
			Bold(true),

		ListRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ListFg)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.ListFg)).
			Faint(true),

		// Fixed pale yellow with dark text, as a tooltip reads in either mode.
		Tooltip: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.TooltipBg)).
			Foreground(lipgloss.Color("#000000")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#000000")).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),
	}
}

// DefaultStyles returns styles with the light theme
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}
