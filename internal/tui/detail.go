package tui

import (
	"fmt"
	"strings"

	"github.com/auracrypt/auracrypt/models"
)

// detailModel shows one entry. The password stays masked until the
// user reveals it; leaving the screen masks it again.
type detailModel struct {
	item     models.Entry
	revealed bool
	status   string
}

func (m detailModel) View() string {
	password := "••••••••"
	if m.revealed {
		password = m.item.Password
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Service:   %s\n", m.item.Service))
	b.WriteString(fmt.Sprintf("Username:  %s\n", valueOrDash(m.item.Username)))
	b.WriteString(fmt.Sprintf("Password:  %s\n", password))
	b.WriteString(fmt.Sprintf("URL:       %s\n", valueOrDash(m.item.URL)))
	b.WriteString(fmt.Sprintf("Category:  %s\n", valueOrDash(m.item.Category)))
	b.WriteString(fmt.Sprintf("Notes:     %s\n", valueOrDash(m.item.Notes)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("created %s   updated %s", m.item.CreatedAt, m.item.UpdatedAt)))

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	help := "r reveal  c copy password  u copy username  e edit  d delete  esc back"
	return renderPage("Entry", strings.TrimRight(b.String(), "\n"), help)
}
