// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package service

import (
	"sort"
	"strings"

	"github.com/auracrypt/auracrypt/models"
)

// Categories returns the union of stored category names, categories in
// use by entries, and the default category, sorted case-insensitively
// with the default category first.
func (s *VaultService) Categories() ([]string, error) {
	if !s.unlocked {
		return nil, ErrVaultLocked
	}

	seen := map[string]struct{}{models.DefaultCategory: {}}
	for _, c := range s.data.Categories {
		seen[c] = struct{}{}
	}
	for _, e := range s.data.Entries {
		if e.Category != "" {
			seen[e.Category] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		if c != models.DefaultCategory {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return append([]string{models.DefaultCategory}, out...), nil
}

// AddCategory registers a new empty category and persists the vault.
// Matching is case-insensitive so "Work" and "work" cannot coexist.
func (s *VaultService) AddCategory(name string) error {
	if !s.unlocked {
		return ErrVaultLocked
	}

	name = strings.TrimSpace(name)
	if err := s.validator.ValidateCategory(name); err != nil {
		return err
	}
	if s.categoryExists(name) {
		return ErrCategoryExists
	}

	s.data.Categories = append(s.data.Categories, name)
	if err := s.persist(); err != nil {
		s.data.Categories = s.data.Categories[:len(s.data.Categories)-1]
		return err
	}

	s.log.Debug().Str("category", name).Msg("category added")
	return nil
}

// RenameCategory renames a category and moves its entries to the new
// name in the same persisted write. The default category cannot be
// renamed.
func (s *VaultService) RenameCategory(oldName, newName string) error {
	if !s.unlocked {
		return ErrVaultLocked
	}

	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == models.DefaultCategory {
		return ErrDefaultCategoryImmutable
	}
	if err := s.validator.ValidateCategory(newName); err != nil {
		return err
	}
	if !s.categoryExists(oldName) {
		return ErrCategoryNotFound
	}
	if !strings.EqualFold(oldName, newName) && s.categoryExists(newName) {
		return ErrCategoryExists
	}

	prev := s.data.Clone()
	for i := range s.data.Categories {
		if s.data.Categories[i] == oldName {
			s.data.Categories[i] = newName
		}
	}
	for i := range s.data.Entries {
		if s.data.Entries[i].Category == oldName {
			s.data.Entries[i].Category = newName
		}
	}

	if err := s.persist(); err != nil {
		s.data = prev
		return err
	}

	s.log.Debug().Str("from", oldName).Str("to", newName).Msg("category renamed")
	return nil
}

// DeleteCategory removes a category, reassigning its entries to the
// default category, and persists the vault. The default category cannot
// be deleted.
func (s *VaultService) DeleteCategory(name string) error {
	if !s.unlocked {
		return ErrVaultLocked
	}

	name = strings.TrimSpace(name)
	if name == models.DefaultCategory {
		return ErrDefaultCategoryImmutable
	}
	if !s.categoryExists(name) {
		return ErrCategoryNotFound
	}

	prev := s.data.Clone()
	kept := s.data.Categories[:0]
	for _, c := range s.data.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.data.Categories = kept
	for i := range s.data.Entries {
		if s.data.Entries[i].Category == name {
			s.data.Entries[i].Category = models.DefaultCategory
		}
	}

	if err := s.persist(); err != nil {
		s.data = prev
		return err
	}

	s.log.Debug().Str("category", name).Msg("category deleted")
	return nil
}

// categoryExists reports whether name matches a stored category or one
// in use by an entry, case-insensitively.
func (s *VaultService) categoryExists(name string) bool {
	if strings.EqualFold(name, models.DefaultCategory) {
		return true
	}
	for _, c := range s.data.Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	for _, e := range s.data.Entries {
		if strings.EqualFold(e.Category, name) {
			return true
		}
	}
	return false
}
