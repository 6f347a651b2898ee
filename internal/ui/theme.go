package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/elysium/internal/config"
)

// Theme is the set of styles the dashboard components draw with.
type Theme struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color

	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Box is a rounded border without content styling. Components size it.
	Box      lipgloss.Style
	BoxTitle lipgloss.Style

	ColumnHeader lipgloss.Style
	Row          lipgloss.Style
	Selected     lipgloss.Style
	Marker       lipgloss.Style
	Scrollbar    lipgloss.Style
	ScrollThumb  lipgloss.Style

	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style
	Faint        lipgloss.Style
	Spinner      lipgloss.Style

	Label  lipgloss.Style
	Value  lipgloss.Style
	Notice lipgloss.Style

	BadgeNormal lipgloss.Style
	BadgeInput  lipgloss.Style
}

// NewTheme derives the dashboard styles from the configured colors.
func NewTheme(s config.Styles) Theme {
	accent := lipgloss.Color(s.Accent)
	muted := lipgloss.Color(s.Muted)
	title := lipgloss.Color(s.Title)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted)

	return Theme{
		Accent: accent,
		Muted:  muted,

		Title:       lipgloss.NewStyle().Foreground(title).Bold(true),
		TabActive:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		TabInactive: lipgloss.NewStyle().Foreground(TextColor),

		Box:      box,
		BoxTitle: lipgloss.NewStyle().Foreground(title).Bold(true),

		ColumnHeader: lipgloss.NewStyle().Foreground(TextColor).Bold(true).Underline(true),
		Row:          lipgloss.NewStyle().Foreground(TextColor),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(s.Highlight.FG)).
			Background(lipgloss.Color(s.Highlight.BG)).
			Bold(true),
		Marker:      lipgloss.NewStyle().Foreground(accent).Bold(true),
		Scrollbar:   lipgloss.NewStyle().Foreground(muted),
		ScrollThumb: lipgloss.NewStyle().Foreground(title),

		InputFocused: box.BorderForeground(accent),
		InputBlurred: box,
		Faint:        lipgloss.NewStyle().Faint(true),
		Spinner:      lipgloss.NewStyle().Foreground(WarningColor).Bold(true),

		Label:  lipgloss.NewStyle().Foreground(muted),
		Value:  lipgloss.NewStyle().Foreground(TextColor),
		Notice: lipgloss.NewStyle().Foreground(SuccessColor).Italic(true),

		BadgeNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(title).
			Padding(0, 1).
			Bold(true),
		BadgeInput: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(accent).
			Padding(0, 1).
			Bold(true),
	}
}

// DefaultTheme is NewTheme over the built-in styles.
func DefaultTheme() Theme {
	return NewTheme(config.Default().Styles)
}
