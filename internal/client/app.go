// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package client

import (
	"fmt"

	"github.com/auracrypt/auracrypt/internal/backup"
	"github.com/auracrypt/auracrypt/internal/config"
	"github.com/auracrypt/auracrypt/internal/crypto"
	"github.com/auracrypt/auracrypt/internal/logger"
	"github.com/auracrypt/auracrypt/internal/paths"
	"github.com/auracrypt/auracrypt/internal/service"
	"github.com/auracrypt/auracrypt/internal/tui"
	"github.com/auracrypt/auracrypt/internal/validators"
	"github.com/auracrypt/auracrypt/internal/vault"
	"github.com/auracrypt/auracrypt/internal/workers"
)

// App is the assembled application: the UI in the foreground, workers
// in the background.
type App struct {
	ui      *tui.TUI
	workers *workers.Workers
	log     *logger.Logger
}

// NewApp resolves paths and wires every component from the merged
// configuration.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	appPaths, err := resolvePaths(cfg)
	if err != nil {
		return nil, err
	}
	if err := appPaths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("prepare data directories: %w", err)
	}

	vaultPath := appPaths.VaultPath
	if cfg.Storage.VaultPath != "" {
		vaultPath = cfg.Storage.VaultPath
	}

	store := vault.NewStore(
		vaultPath,
		appPaths.LegacyVaultPath,
		crypto.NewKeyService(),
		vault.NewOSFileSystem(),
		log.GetChildLogger(),
	)

	services := service.NewVaultService(store, validators.NewEntryValidator(), log.GetChildLogger())

	backups := backup.NewManager(vaultPath, appPaths.BackupDir, backup.Policy{
		MaxCount:   cfg.Backup.MaxCount,
		MaxAgeDays: cfg.Backup.MaxAgeDays,
	}, log.GetChildLogger())

	ui := tui.New(services, backups, tui.Options{
		AutoLockTimeout:     cfg.App.AutoLockTimeout,
		ClipboardClearDelay: cfg.App.ClipboardClearDelay,
	}, log.GetChildLogger())

	var background []workers.Worker
	if cfg.Backup.Interval > 0 {
		background = append(background, workers.NewAutoBackupWorker(
			backups,
			services.VaultExists,
			cfg.Backup.Interval,
			log.GetChildLogger(),
		))
	}

	return &App{
		ui:      ui,
		workers: workers.NewWorkers(background...),
		log:     log,
	}, nil
}

// Run starts the background workers, hands the terminal to the UI, and
// tears the workers down when the UI exits.
func (a *App) Run() error {
	a.workers.Run()
	defer a.workers.Stop()

	return a.ui.Run()
}

// resolvePaths picks the configured data directory over the
// OS-conventional one. An explicit DataDir skips legacy migration:
// the user told us exactly where the vault lives.
func resolvePaths(cfg *config.StructuredConfig) (paths.AppPaths, error) {
	if cfg.Storage.DataDir != "" {
		return paths.ResolveIn(cfg.Storage.DataDir), nil
	}
	return paths.Resolve()
}
