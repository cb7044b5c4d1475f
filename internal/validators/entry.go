// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package validators checks user-supplied vault data before it reaches
// the service layer. Rules live here and nowhere else: the crypto and
// persistence layers accept whatever they are given (an empty master
// password is rejected here, not inside key derivation).
package validators

import (
	"strings"

	"github.com/auracrypt/auracrypt/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to ValidateEntry to restrict validation to
// a subset of fields (field-level scoping).
const (
	// FieldService targets the service name of an entry.
	FieldService = "service"

	// FieldPassword targets the stored secret of an entry.
	FieldPassword = "password"

	// FieldURL targets the optional sign-in link of an entry.
	FieldURL = "url"

	// FieldCategory targets the category name of an entry.
	FieldCategory = "category"
)

// EntryValidator validates credential entries, category names, and the
// master password.
type EntryValidator struct {
}

// NewEntryValidator constructs a new EntryValidator.
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{}
}

// ValidateEntry checks an entry's user-supplied fields. With no field
// arguments every field is validated; otherwise only the named ones.
// The first violation found is returned.
func (v *EntryValidator) ValidateEntry(entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldService, FieldPassword, FieldURL, FieldCategory}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldService:
			err = v.ValidateService(entry.Service)
		case FieldPassword:
			err = v.ValidatePassword(entry.Password)
		case FieldURL:
			err = v.ValidateURL(entry.URL)
		case FieldCategory:
			if entry.Category != "" {
				err = v.ValidateCategory(entry.Category)
			}
		default:
			err = ErrUnsupportedType
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// ValidateService checks the service name: required, at most
// MaxServiceNameLength characters, no control characters.
func (v *EntryValidator) ValidateService(service string) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return ErrServiceRequired
	}
	if len(service) > MaxServiceNameLength {
		return ErrServiceTooLong
	}
	if containsControlChars(service) {
		return ErrServiceInvalidChars
	}
	return nil
}

// ValidatePassword checks that the stored secret is present. No
// strength rules apply to stored entry passwords: the user stores what
// the remote service gave them.
func (v *EntryValidator) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidateURL checks the optional sign-in link. An empty URL is valid.
func (v *EntryValidator) ValidateURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return ErrInvalidURL
	}
	return nil
}

// ValidateCategory checks a category name: non-empty after trimming, at
// most MaxCategoryLength characters, no control characters.
func (v *EntryValidator) ValidateCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return ErrCategoryEmpty
	}
	if len(category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}
	if containsControlChars(category) {
		return ErrCategoryInvalidChars
	}
	return nil
}

// ValidateMasterPassword enforces the minimum length for a NEW master
// password at vault creation or password change. Unlock attempts are
// not validated: any string may be tried against an existing vault.
func (v *EntryValidator) ValidateMasterPassword(password string) error {
	if len(password) < MinMasterPasswordLength {
		return ErrMasterPasswordTooShort
	}
	return nil
}

// containsControlChars reports whether s contains C0/C1 control
// characters or DEL.
func containsControlChars(s string) bool {
	for _, r := range s {
		if r < 0x20 || (r >= 0x7f && r <= 0x9f) {
			return true
		}
	}
	return false
}
