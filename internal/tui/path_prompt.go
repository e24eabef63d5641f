package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type pathAction int

const (
	pathExport pathAction = iota
	pathImport
	pathSaveQR
)

// pathPrompt asks for an export, import or QR image file.
type pathPrompt struct {
	action pathAction
	input  textinput.Model
}

func newPathPrompt(action pathAction) pathPrompt {
	in := textinput.New()
	in.Prompt = "File: "
	in.Placeholder = "~/easyotp-export.json (.yaml also works)"
	if action == pathSaveQR {
		in.Placeholder = "~/qr.png"
	}
	in.CharLimit = 1024
	in.Width = 60
	return pathPrompt{action: action, input: in}
}

// path returns the entered path with a leading "~" expanded to the home
// directory.
func (p pathPrompt) path() string {
	return expandHome(strings.TrimSpace(p.input.Value()))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func (p pathPrompt) View() string {
	var title, note string
	switch p.action {
	case pathExport:
		title = "Export items"
		note = warningStyle.Render("The exported file is NOT encrypted. Anyone who reads it can generate your codes.")
	case pathSaveQR:
		title = "Save QR as PNG"
		note = warningStyle.Render("The image holds the secret. Anyone who scans it can generate your codes.")
	default:
		title = "Import items"
		note = "Items whose name already exists are skipped."
	}

	body := strings.Join([]string{note, "", p.input.View()}, "\n")
	return renderPage(title, body, "enter: confirm • esc: cancel")
}
