package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colours for the application.
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Selected  lipgloss.Color
	Highlight lipgloss.Color
	Disabled  lipgloss.Color
	Spacer    lipgloss.Color
	Indicator lipgloss.Color
	Ghost     lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

// DarkTheme returns the default dark theme (Catppuccin Mocha).
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),
		Accent:    lipgloss.Color("#f5c2e7"),

		Selected:  lipgloss.Color("#a6e3a1"),
		Highlight: lipgloss.Color("#45475a"),
		Disabled:  lipgloss.Color("#585b70"),
		Spacer:    lipgloss.Color("#313244"),
		Indicator: lipgloss.Color("#f9e2af"),
		Ghost:     lipgloss.Color("#cba6f7"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),
	}
}

// LightTheme returns the light variant (Catppuccin Latte).
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#eff1f5"),
		Surface:       lipgloss.Color("#e6e9ef"),
		SurfaceHover:  lipgloss.Color("#dce0e8"),
		Border:        lipgloss.Color("#bcc0cc"),
		BorderFocused: lipgloss.Color("#7287fd"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#8c8fa1"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary:   lipgloss.Color("#1e66f5"),
		Secondary: lipgloss.Color("#7287fd"),
		Accent:    lipgloss.Color("#ea76cb"),

		Selected:  lipgloss.Color("#40a02b"),
		Highlight: lipgloss.Color("#ccd0da"),
		Disabled:  lipgloss.Color("#9ca0b0"),
		Spacer:    lipgloss.Color("#dce0e8"),
		Indicator: lipgloss.Color("#df8e1d"),
		Ghost:     lipgloss.Color("#8839ef"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),
	}
}

// ThemeByName returns the named theme.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	TabBar    lipgloss.Style
	Content   lipgloss.Style
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style

	// Panels
	Panel        lipgloss.Style
	PanelFocused lipgloss.Style
	PanelTitle   lipgloss.Style

	// List rows
	Row                  lipgloss.Style
	RowHighlight         lipgloss.Style
	RowSelected          lipgloss.Style
	RowSelectedHighlight lipgloss.Style
	RowDisabled          lipgloss.Style
	RowHeader            lipgloss.Style
	Spacer               lipgloss.Style
	Indicator            lipgloss.Style
	Ghost                lipgloss.Style
	Overflow             lipgloss.Style

	// Pickers
	Trigger     lipgloss.Style
	TriggerOpen lipgloss.Style
	Placeholder lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	KeyBind  lipgloss.Style
	KeyDesc  lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.TabBar = lipgloss.NewStyle().Padding(0, 1).Background(t.Surface)
	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.HelpBar = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)

	s.Panel = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	s.PanelFocused = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderFocused).Padding(0, 1)
	s.PanelTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Padding(0, 1)

	s.Row = lipgloss.NewStyle().Foreground(t.Text)
	s.RowHighlight = lipgloss.NewStyle().Foreground(t.Text).Background(t.Highlight).Bold(true)
	s.RowSelected = lipgloss.NewStyle().Foreground(t.Selected)
	s.RowSelectedHighlight = lipgloss.NewStyle().Foreground(t.Selected).Background(t.Highlight).Bold(true)
	s.RowDisabled = lipgloss.NewStyle().Foreground(t.Disabled).Strikethrough(true)
	s.RowHeader = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	s.Spacer = lipgloss.NewStyle().Foreground(t.Border).Background(t.Spacer)
	s.Indicator = lipgloss.NewStyle().Foreground(t.Indicator).Bold(true)
	s.Ghost = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Ghost).Bold(true)
	s.Overflow = lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true)

	s.Trigger = lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface).Padding(0, 1)
	s.TriggerOpen = lipgloss.NewStyle().Foreground(t.Primary).Background(t.SurfaceHover).Bold(true).Padding(0, 1)
	s.Placeholder = lipgloss.NewStyle().Foreground(t.TextSubtle).Italic(true)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Subtitle = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	s.Body = lipgloss.NewStyle().Foreground(t.Text)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Bold = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
