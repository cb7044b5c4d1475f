// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package paths resolves the application's on-disk locations according
// to OS conventions. Paths are resolved exactly once at process start
// and injected into the components that need them; nothing in the
// application consults global path state afterwards.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName = "auracrypt"

	// VaultFileName is the name of the encrypted vault file.
	VaultFileName = "vault.dat"

	// BackupDirName is the directory holding rotated vault backups,
	// a sibling of the vault file.
	BackupDirName = "backups"

	logFileName = "auracrypt.log"

	// legacyDirName is the pre-1.0 dot-directory in the user's home
	// where the vault used to live. A vault found there is migrated to
	// the managed location on first access.
	legacyDirName = ".auracrypt"
)

// AppPaths holds every resolved filesystem location the application
// uses. Immutable after Resolve.
type AppPaths struct {
	// DataDir is the application data directory
	// (e.g. ~/.config/auracrypt on Linux,
	// ~/Library/Application Support/auracrypt on macOS,
	// %AppData%\auracrypt on Windows).
	DataDir string

	// VaultPath is the managed location of the encrypted vault file.
	VaultPath string

	// LegacyVaultPath is the pre-1.0 vault location checked for
	// migration.
	LegacyVaultPath string

	// BackupDir holds rotated vault backups.
	BackupDir string

	// LogPath is the application log file.
	LogPath string
}

// Resolve computes all application paths from the OS user directories.
// Returns an error when neither a user config dir nor a home dir can be
// determined.
func Resolve() (AppPaths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return AppPaths{}, fmt.Errorf("resolve user config dir: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppPaths{}, fmt.Errorf("resolve user home dir: %w", err)
	}

	dataDir := filepath.Join(configDir, appDirName)
	return AppPaths{
		DataDir:         dataDir,
		VaultPath:       filepath.Join(dataDir, VaultFileName),
		LegacyVaultPath: filepath.Join(home, legacyDirName, VaultFileName),
		BackupDir:       filepath.Join(dataDir, BackupDirName),
		LogPath:         filepath.Join(dataDir, logFileName),
	}, nil
}

// ResolveIn computes the same layout rooted at dataDir instead of the
// OS config dir. Used when the vault location is overridden by
// configuration and by tests.
func ResolveIn(dataDir string) AppPaths {
	return AppPaths{
		DataDir:         dataDir,
		VaultPath:       filepath.Join(dataDir, VaultFileName),
		LegacyVaultPath: "",
		BackupDir:       filepath.Join(dataDir, BackupDirName),
		LogPath:         filepath.Join(dataDir, logFileName),
	}
}

// EnsureDirs creates the data and backup directories if they are
// missing. Directories are owner-only: they hold the encrypted vault,
// its backups, and logs.
func (p AppPaths) EnsureDirs() error {
	for _, dir := range []string{p.DataDir, p.BackupDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
