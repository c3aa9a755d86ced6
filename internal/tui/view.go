package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "TypeReader"

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenPicker:
		content = m.viewPicker()
	case screenPractice:
		content = m.viewPractice()
	default:
		content = m.viewDone()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewPicker() string {
	lines := []string{
		m.styles.Title.Render(appTitle),
		m.styles.Subtle.Render("Improve your typing while reading your favorite books"),
		"",
		m.styles.Text.Render("Choose a .txt file to start practicing"),
		m.styles.Subtle.Render(m.picker.CurrentDirectory),
		"",
		m.picker.View(),
	}
	if m.alert != "" {
		lines = append(lines, "", m.styles.Alert.Render(m.alert))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewPractice() string {
	width := m.contentWidth()
	header := m.styles.Title.Render(appTitle) + "  " + m.styles.Subtle.Render(m.book.Name())
	chunkLine := m.styles.Subtle.Render(fmt.Sprintf("Chunk %d of %d", m.book.Index()+1, m.book.Len()))

	text := wrapStyledRunes(buildStyledWords(m.session, m.styles), width)
	body := lipgloss.NewStyle().Width(width).Render(text)

	inputStyle := m.styles.Input
	if len(m.session.Mismatches()) > 0 {
		inputStyle = m.styles.InputErr
	}
	inputBox := inputStyle.Width(max(1, width-2)).Render(m.input.View())

	lines := []string{
		header,
		chunkLine,
		m.progress.ViewAs(m.book.Progress()),
		"",
		body,
		"",
		inputBox,
		m.renderStatus(width),
	}
	if m.alert != "" {
		lines = append(lines, m.styles.Alert.Render(m.alert))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) viewDone() string {
	lines := []string{
		m.styles.Title.Render(appTitle),
		"",
		m.styles.Text.Render(fmt.Sprintf("You finished %s.", m.book.Name())),
		m.styles.Subtle.Render(fmt.Sprintf("%d chunks typed.", m.book.Len())),
		m.progress.ViewAs(m.book.Progress()),
		"",
		m.styles.Subtle.Render("Press enter or esc to see your summary."),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderStatus(width int) string {
	marker := ""
	switch {
	case len(m.session.Mismatches()) > 0:
		marker = m.styles.Incorrect.Render("✗") + " "
	case m.session.Buffer() != "":
		marker = m.styles.Correct.Render("✓") + " "
	}
	left := marker + m.styles.Text.Render("Accuracy: ") + m.styles.Title.Render(m.session.AccuracyText()+"%")
	right := m.styles.Text.Render("Words: ") + m.styles.Title.Render(fmt.Sprintf("%d/%d", m.session.Completed(), m.session.WordCount()))
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
