package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type settingsMode int

const (
	settingsMenu settingsMode = iota
	settingsChangePassword
	settingsImportPath
)

const (
	settingsItemChangePassword = iota
	settingsItemBackupNow
	settingsItemRestoreLatest
	settingsItemExportJSON
	settingsItemExportCSV
	settingsItemImportJSON
	settingsItemImportCSV
	settingsItemCount
)

var settingsItems = [settingsItemCount]string{
	settingsItemChangePassword: "Change master password",
	settingsItemBackupNow:      "Back up vault now",
	settingsItemRestoreLatest:  "Restore latest backup",
	settingsItemExportJSON:     "Export entries to JSON (with passwords)",
	settingsItemExportCSV:      "Export entries to CSV (with passwords)",
	settingsItemImportJSON:     "Import entries from JSON",
	settingsItemImportCSV:      "Import entries from CSV",
}

// settingsModel is the settings menu plus the change-password and
// import-path forms.
type settingsModel struct {
	mode settingsMode
	idx  int

	inputs     []textinput.Model // current, new, repeat
	focus      int
	submitting bool
	status     string

	pathInput    textinput.Model
	importFormat string // "json" or "csv"
}

func newSettingsModel() settingsModel {
	placeholders := []string{"current password", "new password", "repeat new password"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.CharLimit = 256
		in.Width = 40
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}

	pathInput := textinput.New()
	pathInput.Placeholder = "/path/to/file"
	pathInput.CharLimit = 512
	pathInput.Width = 40

	return settingsModel{inputs: inputs, pathInput: pathInput}
}

func (m settingsModel) View() string {
	var b strings.Builder
	var help string

	switch m.mode {
	case settingsMenu:
		for i, item := range settingsItems {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor + item + "\n")
		}
		help = "enter: select │ esc: back"
	case settingsChangePassword:
		labels := []string{"Current ", "New     ", "Repeat  "}
		for i, label := range labels {
			b.WriteString(label)
			b.WriteString("  [")
			b.WriteString(m.inputs[i].View())
			b.WriteString("]\n")
		}
		if m.submitting {
			b.WriteString("\n[Changing...]\n")
		} else {
			b.WriteString("\n[Change]\n")
		}
		help = "tab: next field │ enter: change │ esc: cancel"
	case settingsImportPath:
		b.WriteString("Import from " + strings.ToUpper(m.importFormat) + "\n\n")
		b.WriteString("File  [" + m.pathInput.View() + "]\n")
		help = "enter: import │ esc: cancel"
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("Settings", strings.TrimRight(b.String(), "\n"), help)
}

func (m *settingsModel) resetPasswordForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.submitting = false
}
