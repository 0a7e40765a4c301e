package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user quits a component without choosing.
var ErrCancelled = errors.New("cancelled")

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
)

// Success renders a confirmation line.
func Success(format string, args ...any) string {
	return successStyle.Render("✓ " + fmt.Sprintf(format, args...))
}

// Failure renders an error line.
func Failure(err error) string {
	return errorStyle.Render(fmt.Sprintf("✗ Error: %v", err))
}

// Warning renders a warning line.
func Warning(format string, args ...any) string {
	return warnStyle.Render("! " + fmt.Sprintf(format, args...))
}

// Header renders a section title.
func Header(title string) string {
	return headerStyle.Render(title)
}

// Box renders a titled block of label/value lines.
func Box(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}

	body := headerStyle.Render(title) + "\n"
	for _, r := range rows {
		body += fmt.Sprintf("\n%-*s  %s", width+1, r[0]+":", r[1])
	}

	return boxStyle.Render(body)
}
