// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package models

// DefaultCategory is the group assigned to entries without an explicit
// category and the target for entries whose category is deleted.
const DefaultCategory = "Uncategorized"

// DefaultCategories is the predefined category set offered to a freshly
// created vault.
var DefaultCategories = []string{
	"Personal",
	"Work",
	"Social",
	"Finance",
	"Shopping",
	"Entertainment",
}

// VaultData is the logical plaintext payload of the vault: the full
// entry list plus vault-level auxiliary data. It is what a successful
// decryption yields and what every encryption consumes.
type VaultData struct {
	// Entries holds all credential records. Never nil after decoding;
	// an empty vault has a zero-length slice.
	Entries []Entry `json:"entries"`

	// Categories holds user-managed category names that should survive
	// even when no entry currently references them.
	Categories []string `json:"categories,omitempty"`

	// Settings holds vault-level user preferences opaque to the
	// persistence layer.
	Settings map[string]any `json:"settings,omitempty"`
}

// NewVaultData returns an empty vault payload ready for first
// encryption.
func NewVaultData() VaultData {
	return VaultData{Entries: []Entry{}}
}

// Clone returns a deep copy of the vault data so callers can mutate the
// copy without aliasing the session state.
func (v VaultData) Clone() VaultData {
	out := VaultData{
		Entries:    make([]Entry, len(v.Entries)),
		Categories: append([]string(nil), v.Categories...),
	}
	copy(out.Entries, v.Entries)
	if v.Settings != nil {
		out.Settings = make(map[string]any, len(v.Settings))
		for k, val := range v.Settings {
			out.Settings[k] = val
		}
	}
	return out
}
