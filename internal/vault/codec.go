// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package vault

import (
	"encoding/json"
	"fmt"

	"github.com/auracrypt/auracrypt/models"
)

// vaultPayload mirrors models.VaultData with a pointer entry slice so
// decoding can tell "entries field absent" apart from "entries empty".
type vaultPayload struct {
	Entries    *[]models.Entry `json:"entries"`
	Categories []string        `json:"categories,omitempty"`
	Settings   map[string]any  `json:"settings,omitempty"`
}

// EncodeRecords serializes the vault payload to its canonical JSON
// form, the plaintext that gets sealed. EncodeRecords and
// DecodeRecords satisfy the round-trip law for any valid payload.
func EncodeRecords(data models.VaultData) ([]byte, error) {
	entries := data.Entries
	if entries == nil {
		entries = []models.Entry{}
	}
	payload := vaultPayload{
		Entries:    &entries,
		Categories: data.Categories,
		Settings:   data.Settings,
	}

	out, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode vault payload: %w", err)
	}
	return out, nil
}

// DecodeRecords parses a decrypted plaintext back into the vault
// payload. Malformed structure — invalid JSON, a missing entries field,
// or wrongly typed fields — is reported wrapping [ErrDecode], which the
// store treats as corruption distinct from a wrong password. A sound
// AEAD layer should never hand this function garbage, but the codec
// still defends against it.
func DecodeRecords(plaintext []byte) (models.VaultData, error) {
	var payload vaultPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return models.VaultData{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if payload.Entries == nil {
		return models.VaultData{}, fmt.Errorf("%w: missing entries field", ErrDecode)
	}

	return models.VaultData{
		Entries:    *payload.Entries,
		Categories: payload.Categories,
		Settings:   payload.Settings,
	}, nil
}
