// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package service implements the application logic between the UI and
// the encrypted vault store: the unlocked session, entry CRUD, category
// bookkeeping, and master password changes. Every mutation re-encrypts
// and persists the whole vault through the store.
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/auracrypt/auracrypt/internal/logger"
	"github.com/auracrypt/auracrypt/internal/validators"
	"github.com/auracrypt/auracrypt/internal/vault"
	"github.com/auracrypt/auracrypt/models"
	"github.com/google/uuid"
)

// VaultService owns the unlocked vault session. While unlocked it holds
// the plaintext record collection and the master password needed for
// re-encryption; Lock drops both.
//
// All methods are synchronous and safe to call from the UI event loop;
// the store below serializes file access.
type VaultService struct {
	store     vault.Store
	validator *validators.EntryValidator
	log       *logger.Logger

	unlocked       bool
	masterPassword string
	data           models.VaultData
}

// NewVaultService constructs a VaultService over the given store.
func NewVaultService(store vault.Store, validator *validators.EntryValidator, log *logger.Logger) *VaultService {
	return &VaultService{
		store:     store,
		validator: validator,
		log:       log,
	}
}

// VaultExists reports whether a vault file is present.
func (s *VaultService) VaultExists() bool {
	return s.store.Exists()
}

// VaultPath returns the managed vault file path, for display and for
// the backup manager.
func (s *VaultService) VaultPath() string {
	return s.store.Path()
}

// Unlocked reports whether a session is active.
func (s *VaultService) Unlocked() bool {
	return s.unlocked
}

// CreateVault creates a new vault protected by masterPassword, seeded
// with the default categories, and opens a session on it. Refuses to
// overwrite an existing vault.
func (s *VaultService) CreateVault(masterPassword, confirm string) error {
	if s.store.Exists() {
		return ErrVaultAlreadyExists
	}
	if err := s.validator.ValidateMasterPassword(masterPassword); err != nil {
		return err
	}
	if masterPassword != confirm {
		return validators.ErrPasswordsDoNotMatch
	}

	data := models.NewVaultData()
	data.Categories = append([]string(nil), models.DefaultCategories...)

	if err := s.store.Create(masterPassword, data); err != nil {
		return err
	}

	s.unlocked = true
	s.masterPassword = masterPassword
	s.data = data
	s.log.Info().Str("path", s.store.Path()).Msg("vault created")
	return nil
}

// Unlock loads and decrypts the vault, opening a session on success.
// Store errors (ErrWrongPasswordOrCorrupt, *CorruptVaultError, ...)
// pass through untouched so the UI can present the right message.
func (s *VaultService) Unlock(masterPassword string) error {
	data, err := s.store.Load(masterPassword)
	if err != nil {
		return err
	}

	s.unlocked = true
	s.masterPassword = masterPassword
	s.data = data
	s.log.Info().Int("entries", len(data.Entries)).Msg("vault unlocked")
	return nil
}

// Lock ends the session and drops the plaintext state.
func (s *VaultService) Lock() {
	s.unlocked = false
	s.masterPassword = ""
	s.data = models.VaultData{}
	s.log.Info().Msg("vault locked")
}

// Entries returns a copy of all entries, sorted by service name then
// username for stable presentation.
func (s *VaultService) Entries() ([]models.Entry, error) {
	if !s.unlocked {
		return nil, ErrVaultLocked
	}

	out := make([]models.Entry, len(s.data.Entries))
	copy(out, s.data.Entries)
	sort.Slice(out, func(i, j int) bool {
		si, sj := strings.ToLower(out[i].Service), strings.ToLower(out[j].Service)
		if si != sj {
			return si < sj
		}
		return strings.ToLower(out[i].Username) < strings.ToLower(out[j].Username)
	})
	return out, nil
}

// SearchEntries returns entries matching query (case-insensitive over
// service, username, url, and notes) within category. Empty query or
// category means "any".
func (s *VaultService) SearchEntries(query, category string) ([]models.Entry, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := entries[:0]
	for _, e := range entries {
		if category != "" && e.Category != category {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func matchesQuery(e models.Entry, query string) bool {
	for _, field := range []string{e.Service, e.Username, e.URL, e.Notes} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// GetEntry returns the entry with the given ID.
func (s *VaultService) GetEntry(id string) (models.Entry, error) {
	if !s.unlocked {
		return models.Entry{}, ErrVaultLocked
	}
	for _, e := range s.data.Entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Entry{}, ErrEntryNotFound
}

// AddEntry validates and stores a new entry, assigning its ID and
// timestamps, and persists the vault.
func (s *VaultService) AddEntry(entry models.Entry) (models.Entry, error) {
	if !s.unlocked {
		return models.Entry{}, ErrVaultLocked
	}
	if err := s.validator.ValidateEntry(entry); err != nil {
		return models.Entry{}, err
	}

	now := timestamp()
	entry.ID = uuid.NewString()
	entry.Service = strings.TrimSpace(entry.Service)
	entry.Category = normalizeCategory(entry.Category)
	entry.CreatedAt = now
	entry.UpdatedAt = now

	s.data.Entries = append(s.data.Entries, entry)
	if err := s.persist(); err != nil {
		// Roll the in-memory state back so a failed save is not
		// silently presented as committed.
		s.data.Entries = s.data.Entries[:len(s.data.Entries)-1]
		return models.Entry{}, err
	}

	s.log.Debug().Str("id", entry.ID).Msg("entry added")
	return entry, nil
}

// UpdateEntry validates and replaces the entry with the same ID,
// refreshing UpdatedAt, and persists the vault.
func (s *VaultService) UpdateEntry(entry models.Entry) (models.Entry, error) {
	if !s.unlocked {
		return models.Entry{}, ErrVaultLocked
	}
	if err := s.validator.ValidateEntry(entry); err != nil {
		return models.Entry{}, err
	}

	for i, existing := range s.data.Entries {
		if existing.ID != entry.ID {
			continue
		}

		entry.Service = strings.TrimSpace(entry.Service)
		entry.Category = normalizeCategory(entry.Category)
		entry.CreatedAt = existing.CreatedAt
		entry.UpdatedAt = timestamp()

		s.data.Entries[i] = entry
		if err := s.persist(); err != nil {
			s.data.Entries[i] = existing
			return models.Entry{}, err
		}

		s.log.Debug().Str("id", entry.ID).Msg("entry updated")
		return entry, nil
	}

	return models.Entry{}, ErrEntryNotFound
}

// DeleteEntry removes the entry with the given ID and persists the
// vault. It returns the removed entry so the UI can offer undo.
func (s *VaultService) DeleteEntry(id string) (models.Entry, error) {
	if !s.unlocked {
		return models.Entry{}, ErrVaultLocked
	}

	for i, existing := range s.data.Entries {
		if existing.ID != id {
			continue
		}

		s.data.Entries = append(s.data.Entries[:i], s.data.Entries[i+1:]...)
		if err := s.persist(); err != nil {
			s.data.Entries = append(s.data.Entries[:i], append([]models.Entry{existing}, s.data.Entries[i:]...)...)
			return models.Entry{}, err
		}

		s.log.Debug().Str("id", id).Msg("entry deleted")
		return existing, nil
	}

	return models.Entry{}, ErrEntryNotFound
}

// RestoreEntry puts back a previously deleted entry unchanged (undo).
func (s *VaultService) RestoreEntry(entry models.Entry) error {
	if !s.unlocked {
		return ErrVaultLocked
	}

	s.data.Entries = append(s.data.Entries, entry)
	if err := s.persist(); err != nil {
		s.data.Entries = s.data.Entries[:len(s.data.Entries)-1]
		return err
	}
	return nil
}

// ImportEntries validates and adds a batch of entries with fresh IDs,
// persisting once. Returns the number imported.
func (s *VaultService) ImportEntries(entries []models.Entry) (int, error) {
	if !s.unlocked {
		return 0, ErrVaultLocked
	}

	prev := len(s.data.Entries)
	now := timestamp()
	for _, entry := range entries {
		if err := s.validator.ValidateEntry(entry); err != nil {
			s.data.Entries = s.data.Entries[:prev]
			return 0, err
		}
		entry.ID = uuid.NewString()
		entry.Service = strings.TrimSpace(entry.Service)
		entry.Category = normalizeCategory(entry.Category)
		if entry.CreatedAt == "" {
			entry.CreatedAt = now
		}
		entry.UpdatedAt = now
		s.data.Entries = append(s.data.Entries, entry)
	}

	if err := s.persist(); err != nil {
		s.data.Entries = s.data.Entries[:prev]
		return 0, err
	}

	imported := len(s.data.Entries) - prev
	s.log.Info().Int("imported", imported).Msg("entries imported")
	return imported, nil
}

// Data returns a deep copy of the full vault payload, for export.
func (s *VaultService) Data() (models.VaultData, error) {
	if !s.unlocked {
		return models.VaultData{}, ErrVaultLocked
	}
	return s.data.Clone(), nil
}

// ChangeMasterPassword re-encrypts the vault under a new master
// password. The current password must match the session's; the new one
// must satisfy the master password rules.
func (s *VaultService) ChangeMasterPassword(current, next, confirm string) error {
	if !s.unlocked {
		return ErrVaultLocked
	}
	if current != s.masterPassword {
		return ErrWrongCurrentPassword
	}
	if err := s.validator.ValidateMasterPassword(next); err != nil {
		return err
	}
	if next != confirm {
		return validators.ErrPasswordsDoNotMatch
	}

	if err := s.store.Save(next, s.data); err != nil {
		return err
	}

	s.masterPassword = next
	s.log.Info().Msg("master password changed")
	return nil
}

// persist re-encrypts and writes the whole vault under the session
// password. Called after every mutation.
func (s *VaultService) persist() error {
	return s.store.Save(s.masterPassword, s.data)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.DefaultCategory
	}
	return category
}
