package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderPage(title, body, help string) string {
	parts := []string{titleStyle.Render(title), "", body}
	if help != "" {
		parts = append(parts, "", helpStyle.Render(help))
	}
	return appStyle.Render(strings.Join(parts, "\n"))
}

// fitText truncates s to max display cells, adding "…" when cut.
func fitText(s string, max int) string {
	if max <= 0 || lipgloss.Width(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}

	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > max-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func renderOverlay(base, box string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base + "\n\n" + box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
