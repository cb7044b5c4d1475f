package tui

import "github.com/auracrypt/auracrypt/models"

type vaultOpenedMsg struct {
	err error
}

type entriesLoadedMsg struct {
	items []models.Entry
	err   error
}

type entrySavedMsg struct {
	err error
}

type entryDeletedMsg struct {
	err error
}

type categoriesChangedMsg struct {
	err error
}

type passwordChangedMsg struct {
	err error
}

type backupDoneMsg struct {
	path string
	err  error
}

type restoreDoneMsg struct {
	err error
}

type generatedMsg struct {
	password string
	issues   []string
}

type exportDoneMsg struct {
	path string
	err  error
}

type importDoneMsg struct {
	count int
	err   error
}

type copiedMsg struct{}

type clearClipboardMsg struct {
	// seq ties the scheduled clear to the copy that requested it, so a
	// newer copy is not wiped by an older timer.
	seq int
}

type clearStatusMsg struct{}

type autoLockTickMsg struct{}
