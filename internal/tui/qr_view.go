package tui

import "strings"

func qrView(title, qr string) string {
	body := strings.Join([]string{
		warningStyle.Render("Anyone who sees this code can generate your one-time codes."),
		"",
		qr,
	}, "\n")
	return renderPage("QR for "+title, body, "s: save PNG • esc: back")
}
