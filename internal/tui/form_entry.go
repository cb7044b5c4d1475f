package tui

import (
	"strings"

	"github.com/auracrypt/auracrypt/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	formFieldService = iota
	formFieldUsername
	formFieldPassword
	formFieldURL
	formFieldNotes
	formFieldCategory
	formFieldCount
)

// entryFormModel is the add/edit form. The same screen serves both;
// editing keeps the entry ID so the service updates in place.
type entryFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	entryID    string
	createdAt  string
	submitting bool
}

func newEntryFormModel(item *models.Entry) entryFormModel {
	labels := [formFieldCount]struct {
		placeholder string
		masked      bool
	}{
		formFieldService:  {placeholder: "service", masked: false},
		formFieldUsername: {placeholder: "username", masked: false},
		formFieldPassword: {placeholder: "password", masked: true},
		formFieldURL:      {placeholder: "https://", masked: false},
		formFieldNotes:    {placeholder: "notes", masked: false},
		formFieldCategory: {placeholder: models.DefaultCategory, masked: false},
	}

	inputs := make([]textinput.Model, formFieldCount)
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.CharLimit = 256
		in.Width = 40
		if l.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}
	inputs[formFieldService].Focus()

	m := entryFormModel{inputs: inputs}
	if item != nil {
		m.editing = true
		m.entryID = item.ID
		m.createdAt = item.CreatedAt
		m.inputs[formFieldService].SetValue(item.Service)
		m.inputs[formFieldUsername].SetValue(item.Username)
		m.inputs[formFieldPassword].SetValue(item.Password)
		m.inputs[formFieldURL].SetValue(item.URL)
		m.inputs[formFieldNotes].SetValue(item.Notes)
		m.inputs[formFieldCategory].SetValue(item.Category)
	}
	return m
}

// toEntry assembles the entry for the service. Timestamps and IDs for
// new entries are the service's business.
func (m entryFormModel) toEntry() models.Entry {
	return models.Entry{
		ID:        m.entryID,
		Service:   m.inputs[formFieldService].Value(),
		Username:  m.inputs[formFieldUsername].Value(),
		Password:  m.inputs[formFieldPassword].Value(),
		URL:       strings.TrimSpace(m.inputs[formFieldURL].Value()),
		Notes:     m.inputs[formFieldNotes].Value(),
		Category:  m.inputs[formFieldCategory].Value(),
		CreatedAt: m.createdAt,
	}
}

// setPassword fills the password field, used by the generator overlay.
func (m *entryFormModel) setPassword(password string) {
	m.inputs[formFieldPassword].SetValue(password)
}

func (m entryFormModel) View() string {
	title := "New Entry"
	if m.editing {
		title = "Edit Entry"
	}

	rows := []struct {
		label string
		idx   int
	}{
		{"Service ", formFieldService},
		{"Username", formFieldUsername},
		{"Password", formFieldPassword},
		{"URL     ", formFieldURL},
		{"Notes   ", formFieldNotes},
		{"Category", formFieldCategory},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.label)
		b.WriteString("  [")
		b.WriteString(m.inputs[row.idx].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab: next field │ ctrl+g: generate password │ enter: save │ esc: cancel")
}
