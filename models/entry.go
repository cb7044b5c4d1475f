// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package models

// Entry represents a single stored credential record.
// It is the primary unit of the vault's plaintext payload: every field
// is encrypted at rest as part of the vault blob, never individually.
type Entry struct {
	// ID is the unique identifier of the entry, a UUID string
	// generated at creation time and stable for the entry's lifetime.
	ID string `json:"id"`

	// Service is the human-readable name of the service the credential
	// belongs to (e.g. "github").
	Service string `json:"service"`

	// Username is the account name or e-mail used to sign in.
	Username string `json:"username"`

	// Password is the stored secret. It exists in plaintext only while
	// the vault is unlocked.
	Password string `json:"password"`

	// URL is an optional link to the service's sign-in page.
	URL string `json:"url,omitempty"`

	// Notes contains optional free-form user notes.
	Notes string `json:"notes,omitempty"`

	// Category is the logical group the entry belongs to. Empty is
	// normalized to DefaultCategory by the service layer.
	Category string `json:"category"`

	// CreatedAt is the RFC 3339 timestamp of entry creation.
	CreatedAt string `json:"created_at"`

	// UpdatedAt is the RFC 3339 timestamp of the last modification.
	UpdatedAt string `json:"updated_at"`
}
