package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/auracrypt/auracrypt/internal/backup"
	"github.com/auracrypt/auracrypt/internal/export"
	"github.com/auracrypt/auracrypt/internal/generator"
	"github.com/auracrypt/auracrypt/internal/service"
	"github.com/auracrypt/auracrypt/internal/vault"
	"github.com/auracrypt/auracrypt/models"
)

type screen int

const (
	screenCreateVault screen = iota
	screenUnlock
	screenList
	screenDetail
	screenForm
	screenCategories
	screenGenerator
	screenSettings
)

// autoLockPoll bounds how late after the deadline a lock can fire.
const autoLockPoll = 5 * time.Second

type appModel struct {
	services *service.VaultService
	backups  *backup.Manager
	opts     Options

	currentScreen screen

	createVault createVaultModel
	unlock      unlockModel
	list        listModel
	detail      detailModel
	form        entryFormModel
	categories  categoriesModel
	generator   generatorModel
	settings    settingsModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm     bool
	confirm         confirmModel
	pendingDelete   string // entry ID awaiting confirmation
	pendingCategory string // category name awaiting confirmation

	lastActivity   time.Time
	clipboardDirty bool
	copySeq        int

	err error
}

func newAppModel(services *service.VaultService, backups *backup.Manager, opts Options) appModel {
	start := screenCreateVault
	if services.VaultExists() {
		start = screenUnlock
	}

	return appModel{
		services:      services,
		backups:       backups,
		opts:          opts,
		currentScreen: start,
		createVault:   newCreateVaultModel(),
		unlock:        newUnlockModel(),
		list:          newListModel(),
		categories:    newCategoriesModel(),
		settings:      newSettingsModel(),
		lastActivity:  time.Now(),
	}
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.opts.AutoLockTimeout > 0 {
		cmds = append(cmds, cmdAutoLockTick())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.lastActivity = time.Now()

		if msg.String() == "ctrl+c" {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
				return m.afterErrorDismissed()
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}

	case autoLockTickMsg:
		return m.updateAutoLock()

	case clearClipboardMsg:
		if msg.seq == m.copySeq && m.clipboardDirty {
			clearClipboard()
			m.clipboardDirty = false
		}
		return m, nil

	case copiedMsg:
		m.clipboardDirty = true
		m.copySeq++
		cmds := []tea.Cmd{cmdClearStatus()}
		if m.opts.ClipboardClearDelay > 0 {
			m.setStatus("Copied! Clipboard clears in " + m.opts.ClipboardClearDelay.String())
			cmds = append(cmds, cmdScheduleClipboardClear(m.opts.ClipboardClearDelay, m.copySeq))
		} else {
			m.setStatus("Copied!")
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.setStatus("")
		return m, nil

	case vaultOpenedMsg:
		m.createVault.submitting = false
		m.unlock.submitting = false
		if msg.err != nil {
			m.showOpenError(msg.err)
			return m, nil
		}
		m.unlock.input.SetValue("")
		m.unlock.locked = false
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadEntries()

	case entriesLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.items = msg.items
		if m.list.idx >= len(m.list.items) {
			m.list.idx = len(m.list.items) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		m.refreshCategories()
		return m, nil

	case entrySavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdLoadEntries()

	case entryDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		return m, m.cmdLoadEntries()

	case categoriesChangedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.categories.mode = categoriesBrowse
		m.categories.input.SetValue("")
		m.refreshCategories()
		return m, m.cmdLoadEntries()

	case passwordChangedMsg:
		m.settings.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.settings.mode = settingsMenu
		m.settings.status = "Master password changed"
		return m, cmdClearStatus()

	case backupDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.settings.status = "Done: " + filepath.Base(msg.path)
		return m, cmdClearStatus()

	case restoreDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		// The vault file changed under the session; force a re-unlock.
		return m.lockNow()

	case generatedMsg:
		m.generator.password = msg.password
		m.generator.issues = msg.issues
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.settings.status = "Exported to " + msg.path
		return m, cmdClearStatus()

	case importDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.settings.mode = settingsMenu
		m.settings.status = fmt.Sprintf("Imported %d entries", msg.count)
		return m, tea.Batch(cmdClearStatus(), m.cmdLoadEntries())

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenCreateVault:
		return m.updateCreateVault(msg)
	case screenUnlock:
		return m.updateUnlock(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenCategories:
		return m.updateCategories(msg)
	case screenGenerator:
		return m.updateGenerator(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenCreateVault:
		body = m.createVault.View()
	case screenUnlock:
		body = m.unlock.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenCategories:
		body = m.categories.View()
	case screenGenerator:
		body = m.generator.View()
	case screenSettings:
		body = m.settings.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// showOpenError translates unlock failures into messages that do not
// pretend to know more than the crypto does.
func (m *appModel) showOpenError(err error) {
	var corrupt *vault.CorruptVaultError
	switch {
	case errors.Is(err, vault.ErrWrongPasswordOrCorrupt):
		m.showErrorf("Wrong master password, or the vault file is corrupted.")
	case errors.As(err, &corrupt):
		m.showErrorf("The vault file is damaged and was moved to:\n" + corrupt.QuarantinePath + "\nA new vault can be created.")
	default:
		m.showErrorf(err.Error())
	}
}

// afterErrorDismissed routes to the create screen when the vault file
// disappeared underneath us (e.g. quarantined as corrupt).
func (m appModel) afterErrorDismissed() (tea.Model, tea.Cmd) {
	if m.currentScreen == screenUnlock && !m.services.VaultExists() {
		m.currentScreen = screenCreateVault
	}
	return m, nil
}

func (m *appModel) setStatus(status string) {
	m.list.status = status
	m.detail.status = status
	m.generator.status = status
	if status == "" {
		m.settings.status = ""
		m.categories.status = ""
	}
}

func (m *appModel) refreshCategories() {
	cats, err := m.services.Categories()
	if err != nil {
		return
	}
	m.list.categories = cats
	if m.list.catIdx > len(cats) {
		m.list.catIdx = 0
	}
	m.categories.items = cats
	if m.categories.idx >= len(cats) {
		m.categories.idx = len(cats) - 1
	}
	if m.categories.idx < 0 {
		m.categories.idx = 0
	}
}

func (m appModel) updateAutoLock() (tea.Model, tea.Cmd) {
	if m.opts.AutoLockTimeout <= 0 {
		return m, nil
	}
	if !m.services.Unlocked() || time.Since(m.lastActivity) < m.opts.AutoLockTimeout {
		return m, cmdAutoLockTick()
	}

	m.services.Lock()
	if m.clipboardDirty {
		clearClipboard()
		m.clipboardDirty = false
	}
	m.unlock = newUnlockModel()
	m.unlock.locked = true
	m.currentScreen = screenUnlock
	m.showError = false
	m.showConfirm = false
	return m, cmdAutoLockTick()
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete != "" {
			return m, m.cmdDeleteEntry(m.pendingDelete)
		}
		if m.pendingCategory != "" {
			name := m.pendingCategory
			m.pendingCategory = ""
			return m, m.cmdDeleteCategory(name)
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
		m.pendingCategory = ""
	}
	return m, nil
}

func (m appModel) updateCreateVault(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.createVault.inputs = focusNext(m.createVault.inputs, &m.createVault.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.createVault.inputs = focusPrev(m.createVault.inputs, &m.createVault.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.createVault.submitting {
				return m, nil
			}
			m.createVault.submitting = true
			return m, m.cmdCreateVault(m.createVault.inputs[0].Value(), m.createVault.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.createVault.inputs[m.createVault.focus], cmd = m.createVault.inputs[m.createVault.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateUnlock(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && key.Matches(keyMsg, keys.enter) {
		if m.unlock.submitting {
			return m, nil
		}
		if m.unlock.input.Value() == "" {
			m.showErrorf("Master password is required")
			return m, nil
		}
		m.unlock.submitting = true
		return m, m.cmdUnlock(m.unlock.input.Value())
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.list.searching {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.search.Blur()
			if key.Matches(keyMsg, keys.esc) {
				m.list.search.SetValue("")
			}
			return m, m.cmdLoadEntries()
		default:
			var cmd tea.Cmd
			m.list.search, cmd = m.list.search.Update(msg)
			return m, tea.Batch(cmd, m.cmdLoadEntries())
		}
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{item: item}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newEntryFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newEntryFormModel(&item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		item, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = item.Service
		m.pendingDelete = item.ID
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
	case key.Matches(keyMsg, keys.filter):
		m.list.catIdx = (m.list.catIdx + 1) % (len(m.list.categories) + 1)
		return m, m.cmdLoadEntries()
	case key.Matches(keyMsg, keys.generate):
		m.generator = newGeneratorModel(false)
		m.currentScreen = screenGenerator
		return m, m.cmdGenerate()
	case key.Matches(keyMsg, keys.catMgmt):
		m.refreshCategories()
		m.currentScreen = screenCategories
	case key.Matches(keyMsg, keys.settings):
		m.settings = newSettingsModel()
		m.currentScreen = screenSettings
	case key.Matches(keyMsg, keys.lock):
		return m.lockNow()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) lockNow() (tea.Model, tea.Cmd) {
	m.services.Lock()
	if m.clipboardDirty {
		clearClipboard()
		m.clipboardDirty = false
	}
	m.unlock = newUnlockModel()
	m.unlock.locked = true
	m.currentScreen = screenUnlock
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail.revealed = false
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(keyMsg, keys.copy):
		if m.detail.item.Password == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.item.Password)
	case key.Matches(keyMsg, keys.copyUser):
		if m.detail.item.Username == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.item.Username)
	case key.Matches(keyMsg, keys.edit):
		item := m.detail.item
		m.form = newEntryFormModel(&item)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.item.Service
		m.pendingDelete = m.detail.item.ID
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.inputs = focusNext(m.form.inputs, &m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.inputs = focusPrev(m.form.inputs, &m.form.focus)
			return m, nil
		case keyMsg.String() == "ctrl+g":
			m.generator = newGeneratorModel(true)
			m.currentScreen = screenGenerator
			return m, m.cmdGenerate()
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.form.submitting = true
			return m, m.cmdSaveEntry(m.form.toEntry(), m.form.editing)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.categories.mode != categoriesBrowse {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.categories.mode = categoriesBrowse
			m.categories.input.SetValue("")
			m.categories.input.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := strings.TrimSpace(m.categories.input.Value())
			if m.categories.mode == categoriesAdd {
				return m, m.cmdAddCategory(name)
			}
			return m, m.cmdRenameCategory(m.categories.target, name)
		}

		var cmd tea.Cmd
		m.categories.input, cmd = m.categories.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.categories.idx > 0 {
			m.categories.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.categories.idx < len(m.categories.items)-1 {
			m.categories.idx++
		}
	case key.Matches(keyMsg, keys.newItem):
		m.categories.mode = categoriesAdd
		m.categories.input.SetValue("")
		m.categories.input.Focus()
	case key.Matches(keyMsg, keys.edit):
		name, ok := m.categories.current()
		if !ok || name == models.DefaultCategory {
			return m, nil
		}
		m.categories.mode = categoriesRename
		m.categories.target = name
		m.categories.input.SetValue(name)
		m.categories.input.Focus()
	case key.Matches(keyMsg, keys.delete):
		name, ok := m.categories.current()
		if !ok || name == models.DefaultCategory {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = name
		m.pendingCategory = name
	}

	return m, nil
}

func (m appModel) updateGenerator(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		if m.generator.forForm {
			m.currentScreen = screenForm
		} else {
			m.currentScreen = screenList
		}
		return m, nil
	case "g":
		return m, m.cmdGenerate()
	case "+":
		m.generator.opts.Length++
		return m, m.cmdGenerate()
	case "-":
		if m.generator.opts.Length > 1 {
			m.generator.opts.Length--
		}
		return m, m.cmdGenerate()
	case "1":
		m.generator.opts.Uppercase = !m.generator.opts.Uppercase
		return m, m.cmdGenerate()
	case "2":
		m.generator.opts.Lowercase = !m.generator.opts.Lowercase
		return m, m.cmdGenerate()
	case "3":
		m.generator.opts.Digits = !m.generator.opts.Digits
		return m, m.cmdGenerate()
	case "4":
		m.generator.opts.Symbols = !m.generator.opts.Symbols
		return m, m.cmdGenerate()
	case "c":
		if m.generator.forForm || m.generator.password == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.generator.password)
	case "enter":
		if !m.generator.forForm || m.generator.password == "" {
			return m, nil
		}
		m.form.setPassword(m.generator.password)
		m.currentScreen = screenForm
		return m, nil
	}

	return m, nil
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.settings.mode == settingsImportPath {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.settings.mode = settingsMenu
			m.settings.pathInput.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.settings.pathInput.Value())
			if path == "" {
				return m, nil
			}
			return m, m.cmdImport(m.settings.importFormat, path)
		}

		var cmd tea.Cmd
		m.settings.pathInput, cmd = m.settings.pathInput.Update(msg)
		return m, cmd
	}

	if m.settings.mode == settingsChangePassword {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.settings.mode = settingsMenu
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.settings.inputs = focusNext(m.settings.inputs, &m.settings.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.settings.inputs = focusPrev(m.settings.inputs, &m.settings.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.settings.submitting {
				return m, nil
			}
			m.settings.submitting = true
			return m, m.cmdChangePassword(
				m.settings.inputs[0].Value(),
				m.settings.inputs[1].Value(),
				m.settings.inputs[2].Value(),
			)
		}

		var cmd tea.Cmd
		m.settings.inputs[m.settings.focus], cmd = m.settings.inputs[m.settings.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.up):
		if m.settings.idx > 0 {
			m.settings.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.settings.idx < settingsItemCount-1 {
			m.settings.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.settings.idx {
		case settingsItemChangePassword:
			m.settings.mode = settingsChangePassword
			m.settings.resetPasswordForm()
		case settingsItemBackupNow:
			return m, m.cmdBackupNow()
		case settingsItemRestoreLatest:
			return m, m.cmdRestoreLatest()
		case settingsItemExportJSON:
			return m, m.cmdExport("json")
		case settingsItemExportCSV:
			return m, m.cmdExport("csv")
		case settingsItemImportJSON, settingsItemImportCSV:
			m.settings.mode = settingsImportPath
			m.settings.importFormat = "json"
			if m.settings.idx == settingsItemImportCSV {
				m.settings.importFormat = "csv"
			}
			m.settings.pathInput.SetValue("")
			m.settings.pathInput.Focus()
		}
	}

	return m, nil
}

func (m appModel) cmdCreateVault(password, confirm string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		return vaultOpenedMsg{err: svc.CreateVault(password, confirm)}
	}
}

func (m appModel) cmdUnlock(password string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		return vaultOpenedMsg{err: svc.Unlock(password)}
	}
}

func (m appModel) cmdLoadEntries() tea.Cmd {
	svc := m.services
	query := m.list.search.Value()
	category := m.list.activeCategory()
	return func() tea.Msg {
		items, err := svc.SearchEntries(query, category)
		return entriesLoadedMsg{items: items, err: err}
	}
}

func (m appModel) cmdSaveEntry(entry models.Entry, editing bool) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		var err error
		if editing {
			_, err = svc.UpdateEntry(entry)
		} else {
			_, err = svc.AddEntry(entry)
		}
		return entrySavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteEntry(id string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		_, err := svc.DeleteEntry(id)
		return entryDeletedMsg{err: err}
	}
}

func (m appModel) cmdAddCategory(name string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		return categoriesChangedMsg{err: svc.AddCategory(name)}
	}
}

func (m appModel) cmdRenameCategory(oldName, newName string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		return categoriesChangedMsg{err: svc.RenameCategory(oldName, newName)}
	}
}

func (m appModel) cmdDeleteCategory(name string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		return categoriesChangedMsg{err: svc.DeleteCategory(name)}
	}
}

func (m appModel) cmdChangePassword(current, next, confirm string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		return passwordChangedMsg{err: svc.ChangeMasterPassword(current, next, confirm)}
	}
}

func (m appModel) cmdGenerate() tea.Cmd {
	opts := m.generator.opts
	return func() tea.Msg {
		password, err := generator.Generate(opts)
		if err != nil {
			return entrySavedMsg{err: err}
		}
		_, issues := generator.CheckStrength(password)
		return generatedMsg{password: password, issues: issues}
	}
}

func (m appModel) cmdBackupNow() tea.Cmd {
	backups := m.backups
	return func() tea.Msg {
		path, err := backups.Create(backup.TypeManual)
		return backupDoneMsg{path: path, err: err}
	}
}

// cmdRestoreLatest swaps the vault file under a live session, so the
// session is locked first and the user unlocks the restored vault.
func (m appModel) cmdRestoreLatest() tea.Cmd {
	backups := m.backups
	return func() tea.Msg {
		return restoreDoneMsg{err: backups.RestoreLatest()}
	}
}

func (m appModel) cmdExport(format string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		data, err := svc.Data()
		if err != nil {
			return exportDoneMsg{err: err}
		}

		name := fmt.Sprintf("auracrypt_export_%s.%s", time.Now().UTC().Format("20060102_150405"), format)
		opts := export.Options{IncludePasswords: true}
		switch format {
		case "csv":
			err = export.WriteCSV(name, data, opts)
		default:
			err = export.WriteJSON(name, data, opts)
		}
		return exportDoneMsg{path: name, err: err}
	}
}

func (m appModel) cmdImport(format, path string) tea.Cmd {
	svc := m.services
	return func() tea.Msg {
		var (
			entries []models.Entry
			err     error
		)
		switch format {
		case "csv":
			entries, err = export.ReadCSV(path)
		default:
			entries, err = export.ReadJSON(path)
		}
		if err != nil {
			return importDoneMsg{err: err}
		}

		count, err := svc.ImportEntries(entries)
		return importDoneMsg{count: count, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return entrySavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdScheduleClipboardClear(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return clearClipboardMsg{seq: seq}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdAutoLockTick() tea.Cmd {
	return tea.Tick(autoLockPoll, func(time.Time) tea.Msg {
		return autoLockTickMsg{}
	})
}

func clearClipboard() {
	_ = clipboard.WriteAll("")
}

func focusNext(inputs []textinput.Model, focus *int) []textinput.Model {
	inputs[*focus].Blur()
	*focus = (*focus + 1) % len(inputs)
	inputs[*focus].Focus()
	return inputs
}

func focusPrev(inputs []textinput.Model, focus *int) []textinput.Model {
	inputs[*focus].Blur()
	*focus = (*focus - 1 + len(inputs)) % len(inputs)
	inputs[*focus].Focus()
	return inputs
}
