package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/easy-otp/models"
)

// listModel holds the code table and its search filter.
type listModel struct {
	codes     []models.OTPCode
	idx       int
	filter    textinput.Model
	filtering bool
	loading   bool
}

func newListModel() listModel {
	f := textinput.New()
	f.Placeholder = "search name or issuer"
	f.Prompt = "/ "
	f.CharLimit = 64
	return listModel{filter: f, loading: true}
}

// visible returns the codes matching the filter, case-insensitively on
// name and issuer.
func (l listModel) visible() []models.OTPCode {
	q := strings.ToLower(strings.TrimSpace(l.filter.Value()))
	if q == "" {
		return l.codes
	}

	out := make([]models.OTPCode, 0, len(l.codes))
	for _, c := range l.codes {
		if strings.Contains(strings.ToLower(c.Item.Name), q) ||
			strings.Contains(strings.ToLower(c.Item.Issuer), q) {
			out = append(out, c)
		}
	}
	return out
}

func (l listModel) current() (models.OTPCode, bool) {
	v := l.visible()
	if l.idx < 0 || l.idx >= len(v) {
		return models.OTPCode{}, false
	}
	return v[l.idx], true
}

func (l *listModel) move(delta int) {
	l.idx += delta
	l.clamp()
}

func (l *listModel) clamp() {
	n := len(l.visible())
	if l.idx >= n {
		l.idx = n - 1
	}
	if l.idx < 0 {
		l.idx = 0
	}
}

func (l listModel) View() string {
	var b strings.Builder

	if l.filtering || l.filter.Value() != "" {
		b.WriteString(l.filter.View())
		b.WriteString("\n\n")
	}

	if l.loading {
		b.WriteString(helpStyle.Render("Loading..."))
		return b.String()
	}

	v := l.visible()
	if len(l.codes) == 0 {
		b.WriteString(helpStyle.Render("No items yet. Press a to paste an otpauth:// URI or n to add one by hand."))
		return b.String()
	}
	if len(v) == 0 {
		b.WriteString(helpStyle.Render("Nothing matches the search."))
		return b.String()
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		issuerStyle.Inherit(headerStyle).Render("ISSUER"),
		nameStyle.Inherit(headerStyle).Render("NAME"),
		codeStyle.Inherit(headerStyle).Render("CODE"),
		countdownBaseStyle.Inherit(headerStyle).Render("EXPIRES"),
	)
	b.WriteString(header)
	b.WriteString("\n")

	for i, c := range v {
		cursor := "  "
		if i == l.idx {
			cursor = cursorStyle.Render("> ")
		}

		issuer := c.Item.Issuer
		if issuer == "" {
			issuer = "-"
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			cursor,
			issuerStyle.Render(fitText(issuer, issuerStyle.GetWidth()-1)),
			nameStyle.Render(fitText(c.Item.Name, nameStyle.GetWidth()-1)),
			codeStyle.Render(formatCode(c.Code)),
			countdownStyle(c.Remaining).Render(fmt.Sprintf("%2ds", c.Remaining)),
		)
		b.WriteString(row)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatCode splits a 6-digit code into two groups of three for reading.
func formatCode(code string) string {
	if len(code) != 6 {
		return code
	}
	return code[:3] + " " + code[3:]
}
