// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package backup manages point-in-time copies of the encrypted vault
// file. Backups are byte-for-byte copies of the envelope, so they stay
// protected by the master password and never need re-encryption.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/auracrypt/auracrypt/internal/logger"
)

// Type labels why a backup was taken. It is embedded in the file name
// so a directory listing explains itself.
type Type string

const (
	// TypeManual marks a backup requested by the user.
	TypeManual Type = "manual"

	// TypeAuto marks a backup taken by the background worker.
	TypeAuto Type = "auto"

	// TypeSafety marks the automatic copy taken right before a restore
	// overwrites the live vault.
	TypeSafety Type = "safety"
)

const (
	backupPrefix = "vault_backup_"
	backupExt    = ".dat"

	// timestampLayout keeps file names sortable by creation time.
	timestampLayout = "20060102_150405"
)

// ErrNoBackups is returned by Restore helpers when the backup directory
// holds nothing to restore.
var ErrNoBackups = errors.New("no backups found")

// Policy bounds how many backups are retained. Zero values disable the
// corresponding limit.
type Policy struct {
	MaxCount   int
	MaxAgeDays int
}

// Info describes one backup file.
type Info struct {
	Path      string
	Type      Type
	CreatedAt time.Time
	Size      int64
}

// Manager creates, lists, restores, and prunes vault backups in a
// single directory next to the vault file.
type Manager struct {
	vaultPath string
	dir       string
	policy    Policy
	log       *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewManager constructs a Manager copying vaultPath into dir.
func NewManager(vaultPath, dir string, policy Policy, log *logger.Logger) *Manager {
	return &Manager{
		vaultPath: vaultPath,
		dir:       dir,
		policy:    policy,
		log:       log,
		now:       time.Now,
	}
}

// Create copies the current vault file into the backup directory and
// then applies the retention policy. It returns the new backup's path.
func (m *Manager) Create(t Type) (string, error) {
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("%s%s_%s%s", backupPrefix, t, m.now().UTC().Format(timestampLayout), backupExt)
	dst := filepath.Join(m.dir, name)
	if err := copyFile(m.vaultPath, dst); err != nil {
		return "", fmt.Errorf("copy vault to backup: %w", err)
	}

	m.log.Info().Str("backup", dst).Str("type", string(t)).Msg("backup created")

	if err := m.Cleanup(); err != nil {
		// A failed prune must not fail the backup that just succeeded.
		m.log.Warn().Err(err).Msg("backup cleanup failed")
	}
	return dst, nil
}

// Restore replaces the live vault file with the named backup. A safety
// backup of the current vault is taken first so a bad restore can be
// undone.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("stat backup: %w", err)
	}

	if _, err := os.Stat(m.vaultPath); err == nil {
		if _, err := m.Create(TypeSafety); err != nil {
			return fmt.Errorf("pre-restore safety backup: %w", err)
		}
	}

	if err := copyFile(backupPath, m.vaultPath); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}

	m.log.Info().Str("backup", backupPath).Msg("vault restored from backup")
	return nil
}

// RestoreLatest restores the newest backup of any type.
func (m *Manager) RestoreLatest() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return ErrNoBackups
	}
	return m.Restore(backups[0].Path)
}

// List returns all backups in the directory, newest first. Files that
// do not match the backup naming scheme are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	var out []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, ok := parseBackupName(entry.Name())
		if !ok {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		info.Path = filepath.Join(m.dir, entry.Name())
		info.Size = fi.Size()
		out = append(out, info)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Cleanup deletes backups beyond the policy's count limit and older
// than its age limit. Newest backups always survive.
func (m *Manager) Cleanup() error {
	backups, err := m.List()
	if err != nil {
		return err
	}

	var stale []Info
	if m.policy.MaxCount > 0 && len(backups) > m.policy.MaxCount {
		stale = append(stale, backups[m.policy.MaxCount:]...)
		backups = backups[:m.policy.MaxCount]
	}
	if m.policy.MaxAgeDays > 0 {
		cutoff := m.now().UTC().AddDate(0, 0, -m.policy.MaxAgeDays)
		for _, b := range backups {
			if b.CreatedAt.Before(cutoff) {
				stale = append(stale, b)
			}
		}
	}

	var errs []error
	for _, b := range stale {
		if err := os.Remove(b.Path); err != nil {
			errs = append(errs, err)
			continue
		}
		m.log.Debug().Str("backup", b.Path).Msg("stale backup removed")
	}
	return errors.Join(errs...)
}

// parseBackupName extracts the type and timestamp from a backup file
// name of the form vault_backup_<type>_<timestamp>.dat.
func parseBackupName(name string) (Info, bool) {
	if !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, backupExt) {
		return Info{}, false
	}

	core := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), backupExt)
	// The timestamp holds one underscore of its own, so the type ends at
	// the second-to-last underscore.
	idx := strings.LastIndexByte(core, '_')
	if idx <= 0 {
		return Info{}, false
	}
	idx = strings.LastIndexByte(core[:idx], '_')
	if idx <= 0 {
		return Info{}, false
	}

	createdAt, err := time.Parse(timestampLayout, core[idx+1:])
	if err != nil {
		return Info{}, false
	}
	return Info{Type: Type(core[:idx]), CreatedAt: createdAt.UTC()}, true
}

// copyFile copies src to dst with vault-file permissions. dst is
// truncated if it exists.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o600)
}
