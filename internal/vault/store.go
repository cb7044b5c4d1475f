// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package vault implements the encryption and persistence engine of the
// application: key derivation inputs, the plaintext codec, the on-disk
// envelope, and the store that orchestrates them. It is the only
// component that touches the vault file.
package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/auracrypt/auracrypt/internal/crypto"
	"github.com/auracrypt/auracrypt/internal/logger"
	"github.com/auracrypt/auracrypt/models"
)

// CorruptedSuffix is appended to the vault file name when the file is
// quarantined after a structural corruption.
const CorruptedSuffix = ".corrupted"

// vaultFileMode keeps the encrypted vault readable by the owner only.
const vaultFileMode os.FileMode = 0o600

// vaultStore is the private implementation of [Store]. One instance
// owns one vault file path for the process lifetime; the path is
// resolved once at startup and injected, never discovered globally.
type vaultStore struct {
	path       string
	legacyPath string

	keys crypto.KeyService
	fs   FileSystem
	log  *logger.Logger

	// mu serializes every operation against the vault file. Within the
	// lock, a save is one unit: encode, seal, pack, atomic write.
	mu sync.Mutex
}

// NewStore constructs a [Store] managing the vault file at path.
// legacyPath may be empty; when set, a vault found there is migrated to
// path on first access (pure file move, no crypto involved).
func NewStore(path, legacyPath string, keys crypto.KeyService, fs FileSystem, log *logger.Logger) Store {
	return &vaultStore{
		path:       path,
		legacyPath: legacyPath,
		keys:       keys,
		fs:         fs,
		log:        log,
	}
}

// Path implements [Store].
func (s *vaultStore) Path() string {
	return s.path
}

// Exists implements [Store].
func (s *vaultStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.existsLocked()
}

func (s *vaultStore) existsLocked() bool {
	if s.fs.Exists(s.path) {
		return true
	}
	return s.legacyPath != "" && s.fs.Exists(s.legacyPath)
}

// Create implements [Store].
func (s *vaultStore) Create(masterPassword string, data models.VaultData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(masterPassword, data)
}

// Save implements [Store]. A save is a full re-encryption: same code
// path as Create, fresh salt and nonce every time.
func (s *vaultStore) Save(masterPassword string, data models.VaultData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked(masterPassword, data)
}

func (s *vaultStore) createLocked(masterPassword string, data models.VaultData) error {
	salt, err := s.keys.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	nonce, err := s.keys.GenerateNonce()
	if err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	key := s.keys.DeriveKey(masterPassword, salt)
	defer s.keys.ZeroKey(key)

	plaintext, err := EncodeRecords(data)
	if err != nil {
		return err
	}

	blob, err := s.keys.Seal(key, nonce, plaintext)
	if err != nil {
		return fmt.Errorf("seal vault payload: %w", err)
	}

	env, err := Pack(salt, nonce, blob)
	if err != nil {
		return err
	}

	if err = s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create vault directory: %w", err)
	}
	if err = s.fs.WriteFileAtomic(s.path, env, vaultFileMode); err != nil {
		return fmt.Errorf("write vault file: %w", err)
	}

	s.log.Debug().Str("path", s.path).Int("entries", len(data.Entries)).Msg("vault written")
	return nil
}

// Load implements [Store].
func (s *vaultStore) Load(masterPassword string) (models.VaultData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.existsLocked() {
		return models.VaultData{}, ErrNotFound
	}

	path, err := s.activePathLocked()
	if err != nil {
		return models.VaultData{}, err
	}

	raw, err := s.fs.ReadFile(path)
	if err != nil {
		return models.VaultData{}, fmt.Errorf("read vault file: %w", err)
	}

	salt, nonce, blob, err := Unpack(raw)
	if err != nil {
		return models.VaultData{}, s.quarantineLocked(path, err)
	}

	key := s.keys.DeriveKey(masterPassword, salt)
	defer s.keys.ZeroKey(key)

	plaintext, err := s.keys.Open(key, nonce, blob)
	if err != nil {
		// A failed tag check usually means a wrong master password.
		// The file is left alone: it is probably fine.
		s.log.Debug().Str("path", path).Msg("vault authentication failed")
		return models.VaultData{}, ErrWrongPasswordOrCorrupt
	}

	data, err := DecodeRecords(plaintext)
	if err != nil {
		return models.VaultData{}, s.quarantineLocked(path, err)
	}

	return data, nil
}

// activePathLocked returns the path of the vault file to read,
// migrating a legacy-location vault to the managed path first. The
// legacy file is copied, not moved, so a failed migration loses
// nothing.
func (s *vaultStore) activePathLocked() (string, error) {
	if s.fs.Exists(s.path) {
		return s.path, nil
	}
	if s.legacyPath == "" || !s.fs.Exists(s.legacyPath) {
		return s.path, nil
	}

	data, err := s.fs.ReadFile(s.legacyPath)
	if err != nil {
		return "", fmt.Errorf("read legacy vault file: %w", err)
	}
	if err = s.fs.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return "", fmt.Errorf("create vault directory: %w", err)
	}
	if err = s.fs.WriteFileAtomic(s.path, data, vaultFileMode); err != nil {
		return "", fmt.Errorf("migrate legacy vault file: %w", err)
	}

	s.log.Info().Str("from", s.legacyPath).Str("to", s.path).Msg("migrated legacy vault file")
	return s.path, nil
}

// quarantineLocked renames a structurally corrupted vault file to its
// .corrupted sibling, replacing any quarantine file left by a previous
// corruption, and returns the *CorruptVaultError to surface. The rename
// is the only mutation the store performs outside a successful write.
func (s *vaultStore) quarantineLocked(path string, cause error) error {
	quarantine := path + CorruptedSuffix

	if s.fs.Exists(quarantine) {
		if err := s.fs.Remove(quarantine); err != nil {
			s.log.Error().Err(err).Str("path", quarantine).Msg("remove previous quarantine file")
		}
	}
	if err := s.fs.Rename(path, quarantine); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("quarantine vault file")
	} else {
		s.log.Warn().Str("path", path).Str("quarantine", quarantine).Msg("vault file quarantined")
	}

	return &CorruptVaultError{QuarantinePath: quarantine, Err: cause}
}
