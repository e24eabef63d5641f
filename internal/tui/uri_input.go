package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/easy-otp/internal/otpauth"
)

func newURIInput() textinput.Model {
	in := textinput.New()
	in.Prompt = "URI: "
	in.Placeholder = otpauth.Prefix + "Issuer:account?secret=...&issuer=Issuer"
	in.CharLimit = 2048
	in.Width = 60
	return in
}

func uriView(in textinput.Model) string {
	body := strings.Join([]string{
		"Paste the text of an authenticator QR code.",
		"",
		in.View(),
	}, "\n")
	return renderPage("Add from otpauth:// URI", body, "enter: add • esc: cancel")
}
