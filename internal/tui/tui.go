// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package tui implements the interactive terminal interface: vault
// creation and unlock, the entry browser, entry forms, category
// management, the password generator, and settings. It is a single
// Bubble Tea state machine over the vault service.
package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/auracrypt/auracrypt/internal/backup"
	"github.com/auracrypt/auracrypt/internal/logger"
	"github.com/auracrypt/auracrypt/internal/service"
)

// ErrUserQuit signals that the user left the program on purpose.
var ErrUserQuit = errors.New("user quit")

// Options carries the UI-relevant settings from the configuration.
type Options struct {
	// AutoLockTimeout locks the vault after this much keyboard
	// inactivity. Zero disables auto-lock.
	AutoLockTimeout time.Duration

	// ClipboardClearDelay wipes the clipboard this long after a copy.
	// Zero disables clearing.
	ClipboardClearDelay time.Duration
}

// TUI owns the terminal program for one application run.
type TUI struct {
	services *service.VaultService
	backups  *backup.Manager
	opts     Options
	log      *logger.Logger
}

// New constructs the TUI over an assembled vault service.
func New(services *service.VaultService, backups *backup.Manager, opts Options, log *logger.Logger) *TUI {
	return &TUI{services: services, backups: backups, opts: opts, log: log}
}

// Run drives the whole interactive session and blocks until the user
// quits. The vault is locked before returning, whatever the exit path.
func (t *TUI) Run() error {
	model := newAppModel(t.services, t.backups, t.opts)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()

	t.services.Lock()

	if runErr != nil {
		t.log.Error().Err(runErr).Msg("terminal program failed")
		return runErr
	}
	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.clipboardDirty {
		clearClipboard()
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}
