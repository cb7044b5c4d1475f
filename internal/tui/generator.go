package tui

import (
	"fmt"
	"strings"

	"github.com/auracrypt/auracrypt/internal/generator"
)

// generatorModel is the password generator screen. When opened from
// the entry form it hands the result back to the form instead of the
// clipboard.
type generatorModel struct {
	opts     generator.Options
	password string
	issues   []string
	forForm  bool
	status   string
}

func newGeneratorModel(forForm bool) generatorModel {
	return generatorModel{opts: generator.DefaultOptions(), forForm: forForm}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m generatorModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Length:     %d\n", m.opts.Length))
	b.WriteString(fmt.Sprintf("Uppercase:  %s\n", onOff(m.opts.Uppercase)))
	b.WriteString(fmt.Sprintf("Lowercase:  %s\n", onOff(m.opts.Lowercase)))
	b.WriteString(fmt.Sprintf("Digits:     %s\n", onOff(m.opts.Digits)))
	b.WriteString(fmt.Sprintf("Symbols:    %s\n", onOff(m.opts.Symbols)))

	if m.password != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.password))
		b.WriteString("\n")
		if len(m.issues) > 0 {
			b.WriteString(helpStyle.Render("weak: " + strings.Join(m.issues, "; ")))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	accept := "c copy"
	if m.forForm {
		accept = "enter use in form"
	}
	help := fmt.Sprintf("g generate  +/- length  1..4 toggle classes  %s  esc back", accept)
	return renderPage("Password Generator", strings.TrimRight(b.String(), "\n"), help)
}
