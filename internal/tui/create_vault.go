package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// createVaultModel is the first-run screen: choose a master password
// and create the vault.
type createVaultModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newCreateVaultModel() createVaultModel {
	password := textinput.New()
	password.Placeholder = "master password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	confirm := textinput.New()
	confirm.Placeholder = "repeat master password"
	confirm.CharLimit = 256
	confirm.Width = 40
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '*'

	return createVaultModel{inputs: []textinput.Model{password, confirm}}
}

func (m createVaultModel) View() string {
	var b strings.Builder
	b.WriteString("No vault found. Pick a master password to create one.\n")
	b.WriteString("It cannot be recovered if forgotten.\n\n")
	b.WriteString("Password  [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat    [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Creating...]\n")
	} else {
		b.WriteString("\n[Create]\n")
	}

	return renderPage("AuraCrypt — New Vault", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: create")
}
