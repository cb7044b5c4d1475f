// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package vault

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/auracrypt/auracrypt/internal/crypto"
)

// EnvelopeVersion is the current on-disk envelope format version.
// Files written before the version field existed carry no version and
// are read as version 1; an unrecognized version is malformed.
const EnvelopeVersion = 1

// envelope is the persisted on-disk structure binding the salt, nonce,
// and ciphertext together as one unit. Binary fields are Base64
// (standard encoding) strings so the envelope stays a plain-text JSON
// object. Pointer fields let Unpack distinguish an absent field from an
// empty one.
type envelope struct {
	Version    int     `json:"version,omitempty"`
	Salt       *string `json:"salt"`
	Nonce      *string `json:"nonce"`
	Ciphertext *string `json:"ciphertext"`
}

// Pack encodes salt, nonce, and ciphertext into envelope bytes ready to
// be written to disk. The output is indented JSON, matching what the
// vault file has always looked like on disk.
func Pack(salt, nonce, ciphertext []byte) ([]byte, error) {
	s := base64.StdEncoding.EncodeToString(salt)
	n := base64.StdEncoding.EncodeToString(nonce)
	c := base64.StdEncoding.EncodeToString(ciphertext)

	env := envelope{
		Version:    EnvelopeVersion,
		Salt:       &s,
		Nonce:      &n,
		Ciphertext: &c,
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("pack envelope: %w", err)
	}
	return out, nil
}

// Unpack parses envelope bytes and returns the recovered salt, nonce,
// and ciphertext. Every structural failure — unparsable JSON, a missing
// required field, invalid Base64, a wrong salt or nonce length, an
// unsupported version — is reported wrapping [ErrMalformedEnvelope].
// This is a lower-level failure than authentication: the file itself is
// not a valid envelope, independent of password correctness.
func Unpack(data []byte) (salt, nonce, ciphertext []byte, err error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	// Version 0 means the field is absent: a file written by an older
	// release. Its layout is identical to version 1.
	if env.Version != 0 && env.Version != EnvelopeVersion {
		return nil, nil, nil, fmt.Errorf("%w: unsupported version %d", ErrMalformedEnvelope, env.Version)
	}

	if env.Salt == nil || env.Nonce == nil || env.Ciphertext == nil {
		return nil, nil, nil, fmt.Errorf("%w: missing required field", ErrMalformedEnvelope)
	}

	salt, err = base64.StdEncoding.DecodeString(*env.Salt)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode salt: %v", ErrMalformedEnvelope, err)
	}
	nonce, err = base64.StdEncoding.DecodeString(*env.Nonce)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode nonce: %v", ErrMalformedEnvelope, err)
	}
	ciphertext, err = base64.StdEncoding.DecodeString(*env.Ciphertext)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode ciphertext: %v", ErrMalformedEnvelope, err)
	}

	if len(salt) != crypto.SaltSize {
		return nil, nil, nil, fmt.Errorf("%w: salt length %d", ErrMalformedEnvelope, len(salt))
	}
	if len(nonce) != crypto.NonceSize {
		return nil, nil, nil, fmt.Errorf("%w: nonce length %d", ErrMalformedEnvelope, len(nonce))
	}
	if len(ciphertext) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: empty ciphertext", ErrMalformedEnvelope)
	}

	return salt, nonce, ciphertext, nil
}
