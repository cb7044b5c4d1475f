package tui

import (
	"strings"

	"github.com/auracrypt/auracrypt/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type categoriesMode int

const (
	categoriesBrowse categoriesMode = iota
	categoriesAdd
	categoriesRename
)

// categoriesModel manages category names. Deleting reassigns the
// category's entries to the default category.
type categoriesModel struct {
	items  []string
	idx    int
	mode   categoriesMode
	input  textinput.Model
	target string // category being renamed
	status string
}

func newCategoriesModel() categoriesModel {
	input := textinput.New()
	input.Placeholder = "category name"
	input.CharLimit = 50
	input.Width = 30

	return categoriesModel{input: input}
}

func (m categoriesModel) current() (string, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return "", false
	}
	return m.items[m.idx], true
}

func (m categoriesModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		name := item
		if item == models.DefaultCategory {
			name += helpStyle.Render("  (default)")
		}
		b.WriteString(cursor + name + "\n")
	}

	switch m.mode {
	case categoriesAdd:
		b.WriteString("\nNew name  [" + m.input.View() + "]\n")
	case categoriesRename:
		b.WriteString("\nRename \"" + m.target + "\" to  [" + m.input.View() + "]\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	help := "n new  e rename  d delete  esc back"
	if m.mode != categoriesBrowse {
		help = "enter: confirm │ esc: cancel"
	}
	return renderPage("Categories", strings.TrimRight(b.String(), "\n"), help)
}
