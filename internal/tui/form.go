package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/easy-otp/models"
)

const (
	fieldName = iota
	fieldSecret
	fieldIssuer
	fieldCount
)

// formModel is the manual add and edit dialog.
type formModel struct {
	inputs  []textinput.Model
	focus   int
	editing bool
	oldName string
}

func newFormModel() formModel {
	inputs := make([]textinput.Model, fieldCount)

	inputs[fieldName] = textinput.New()
	inputs[fieldName].Prompt = "Name:   "
	inputs[fieldName].Placeholder = "alice@example.com"
	inputs[fieldName].CharLimit = 128

	inputs[fieldSecret] = textinput.New()
	inputs[fieldSecret].Prompt = "Secret: "
	inputs[fieldSecret].Placeholder = "JBSWY3DPEHPK3PXP"
	inputs[fieldSecret].CharLimit = 256
	inputs[fieldSecret].EchoMode = textinput.EchoPassword
	inputs[fieldSecret].EchoCharacter = '•'

	inputs[fieldIssuer] = textinput.New()
	inputs[fieldIssuer].Prompt = "Issuer: "
	inputs[fieldIssuer].Placeholder = "optional"
	inputs[fieldIssuer].CharLimit = 128

	return formModel{inputs: inputs}
}

// newEditFormModel prefills the form with item. Submitting updates the item
// stored under its current name.
func newEditFormModel(item models.OTPItem) formModel {
	f := newFormModel()
	f.inputs[fieldName].SetValue(item.Name)
	f.inputs[fieldSecret].SetValue(item.Secret)
	f.inputs[fieldIssuer].SetValue(item.Issuer)
	f.editing = true
	f.oldName = item.Name
	return f
}

func (f *formModel) focusFirst() tea.Cmd {
	f.focus = fieldName
	return f.applyFocus()
}

func (f *formModel) next() tea.Cmd {
	f.focus = (f.focus + 1) % fieldCount
	return f.applyFocus()
}

func (f *formModel) prev() tea.Cmd {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
	return f.applyFocus()
}

func (f *formModel) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
			continue
		}
		f.inputs[i].Blur()
	}
	return cmd
}

func (f *formModel) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f formModel) item() models.OTPItem {
	return models.OTPItem{
		Name:   strings.TrimSpace(f.inputs[fieldName].Value()),
		Secret: strings.TrimSpace(f.inputs[fieldSecret].Value()),
		Issuer: strings.TrimSpace(f.inputs[fieldIssuer].Value()),
	}
}

func (f formModel) View() string {
	title := "New item"
	if f.editing {
		title = "Edit " + f.oldName
	}

	lines := make([]string, 0, len(f.inputs))
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}

	return renderPage(title, strings.Join(lines, "\n"),
		"tab/shift+tab: move • enter: save • esc: cancel")
}
