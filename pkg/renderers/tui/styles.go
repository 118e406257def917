package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorLavender lipgloss.Color = "#b4befe"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Styles holds the lipgloss styles used by the view.
type Styles struct {
	Title       lipgloss.Style
	Hint        lipgloss.Style
	Field       lipgloss.Style
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Caret       lipgloss.Style
	Cursor      lipgloss.Style
	Item        lipgloss.Style
	Complete    lipgloss.Style
	Partial     lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorPink),
		Hint:        lipgloss.NewStyle().Foreground(colorOverlay0),
		Field:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorLavender).Padding(0, 1),
		Text:        lipgloss.NewStyle().Foreground(colorText),
		Placeholder: lipgloss.NewStyle().Foreground(colorOverlay0),
		Selection:   lipgloss.NewStyle().Background(colorSurface1).Foreground(colorText),
		Caret:       lipgloss.NewStyle().Background(colorLavender).Foreground(colorBase),
		Cursor:      lipgloss.NewStyle().Bold(true).Foreground(colorLavender),
		Item:        lipgloss.NewStyle().Foreground(colorSubtext0),
		Complete:    lipgloss.NewStyle().Foreground(colorGreen),
		Partial:     lipgloss.NewStyle().Foreground(colorRed),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	}
}

// PlainStyles renders without colours or borders.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:       plain,
		Hint:        plain,
		Field:       plain,
		Text:        plain,
		Placeholder: plain,
		Selection:   plain,
		Caret:       plain,
		Cursor:      plain,
		Item:        plain,
		Complete:    plain,
		Partial:     plain,
		Error:       plain,
	}
}
