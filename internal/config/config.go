// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package config assembles the application configuration from
// environment variables, command-line flags, and an optional JSON file,
// merged in that order of precedence on top of built-in defaults.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// auracrypt application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session-level security settings: auto-lock and
	// clipboard hygiene.
	App App `envPrefix:"APP_"`

	// Storage holds the on-disk locations of the vault and its data
	// directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Backup holds the backup rotation policy.
	Backup Backup `envPrefix:"BACKUP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session-level security configuration.
type App struct {
	// AutoLockTimeout is the idle period after which the unlocked vault
	// locks itself and the UI returns to the unlock screen.
	// Env: APP_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`

	// ClipboardClearDelay is how long a copied secret stays on the
	// clipboard before it is overwritten.
	// Env: APP_CLIPBOARD_CLEAR_DELAY
	ClipboardClearDelay time.Duration `env:"CLIPBOARD_CLEAR_DELAY"`
}

// Storage holds the on-disk location settings.
type Storage struct {
	// DataDir overrides the OS-conventional application data directory.
	// When set, the vault file, backups, and logs all live under it.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// VaultPath overrides the vault file location independently of
	// DataDir. Takes precedence over the DataDir-derived path.
	// Env: STORAGE_VAULT_PATH
	VaultPath string `env:"VAULT_PATH"`
}

// Backup holds the rotation policy for automatic vault backups.
type Backup struct {
	// Interval between automatic backups while the vault is unlocked.
	// Zero disables the auto-backup worker.
	// Env: BACKUP_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// MaxCount is the maximum number of backup files kept; older ones
	// are pruned.
	// Env: BACKUP_MAX_COUNT
	MaxCount int `env:"MAX_COUNT"`

	// MaxAgeDays prunes backups older than this many days.
	// Env: BACKUP_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS"`
}

// defaults returns the built-in configuration merged in last, so any
// value the user left unset falls back to these.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AutoLockTimeout:     15 * time.Minute,
			ClipboardClearDelay: 30 * time.Second,
		},
		Backup: Backup{
			Interval:   10 * time.Minute,
			MaxCount:   10,
			MaxAgeDays: 30,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies
// all application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AutoLockTimeout < 0 || cfg.App.ClipboardClearDelay < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Backup.Interval < 0 || cfg.Backup.MaxCount <= 0 || cfg.Backup.MaxAgeDays <= 0 {
		return ErrInvalidBackupConfigs
	}
	return nil
}

// GetConfig builds the application configuration: environment variables
// first, then command-line flags, then the JSON file named by either of
// the former, then built-in defaults for whatever is still unset.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
