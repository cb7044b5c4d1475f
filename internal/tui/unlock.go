package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// unlockModel prompts for the master password of an existing vault.
type unlockModel struct {
	input      textinput.Model
	submitting bool
	locked     bool // true when shown after an auto-lock
}

func newUnlockModel() unlockModel {
	password := textinput.New()
	password.Placeholder = "master password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	return unlockModel{input: password}
}

func (m unlockModel) View() string {
	var b strings.Builder
	if m.locked {
		b.WriteString("Vault locked after inactivity.\n\n")
	}
	b.WriteString("Password  [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	return renderPage("AuraCrypt — Unlock", strings.TrimRight(b.String(), "\n"), "enter: unlock")
}
