package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Text      lipgloss.Style
	Accepted  lipgloss.Style
	Current   lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Alert     lipgloss.Style
	Input     lipgloss.Style
	InputErr  lipgloss.Style
}

// Styles builds the render styles for t.
func (t Theme) Styles() Styles {
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Muted).
		Padding(0, 1)
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(t.Text),
		Accepted:  lipgloss.NewStyle().Foreground(t.Accent),
		Current:   lipgloss.NewStyle().Foreground(t.Secondary).Background(t.Surface),
		Correct:   lipgloss.NewStyle().Foreground(t.Correct).Background(t.Surface),
		Incorrect: lipgloss.NewStyle().Foreground(t.Incorrect).Background(t.Surface).Underline(true),
		Title:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Subtle:    lipgloss.NewStyle().Foreground(t.Muted),
		Alert:     lipgloss.NewStyle().Foreground(t.Incorrect).Bold(true),
		Input:     input,
		InputErr:  input.BorderForeground(t.Incorrect),
	}
}
