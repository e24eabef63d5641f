package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true)
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	issuerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(20)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(28)
	codeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).Width(10)

	countdownBaseStyle     = lipgloss.NewStyle().Width(8)
	countdownNormalStyle   = countdownBaseStyle.Foreground(lipgloss.Color("70"))
	countdownWarningStyle  = countdownBaseStyle.Foreground(lipgloss.Color("214"))
	countdownCriticalStyle = countdownBaseStyle.Foreground(lipgloss.Color("196")).Bold(true)
)

// countdownStyle colors the seconds left: green, amber at 10, red at 5.
func countdownStyle(remaining int) lipgloss.Style {
	switch {
	case remaining <= 5:
		return countdownCriticalStyle
	case remaining <= 10:
		return countdownWarningStyle
	default:
		return countdownNormalStyle
	}
}
