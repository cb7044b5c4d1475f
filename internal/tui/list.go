package tui

import (
	"fmt"
	"strings"

	"github.com/auracrypt/auracrypt/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// listModel is the main entry browser with incremental search and a
// category filter cycled with one key.
type listModel struct {
	items     []models.Entry
	idx       int
	loading   bool
	status    string
	searching bool
	search    textinput.Model

	categories []string
	catIdx     int // 0 means "all categories"
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 100
	search.Width = 30

	return listModel{search: search, loading: true}
}

func (m listModel) current() (models.Entry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Entry{}, false
	}
	return m.items[m.idx], true
}

// activeCategory returns the category filter, empty meaning all.
func (m listModel) activeCategory() string {
	if m.catIdx <= 0 || m.catIdx > len(m.categories) {
		return ""
	}
	return m.categories[m.catIdx-1]
}

func (m listModel) View() string {
	header := "AuraCrypt"
	if cat := m.activeCategory(); cat != "" {
		header += "  " + statusStyle.Render("["+cat+"]")
	}
	out := titleStyle.Render(header) + "\n\n"

	if m.searching || m.search.Value() != "" {
		out += "/" + m.search.View() + "\n\n"
	}

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No entries\n"
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%-30s %-20s %s", cursor, fitText(item.Service, 30), fitText(item.Username, 20), fitText(item.Category, 15))
			out += strings.TrimRight(line, " ") + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status) + "\n"
	}

	help := "n new  e edit  d delete  / search  f filter  g generator  t categories  s settings  L lock  q quit"
	out += "\n" + helpStyle.Render(help)
	return out
}
