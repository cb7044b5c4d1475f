// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Sizes of the cryptographic values used throughout the vault.
const (
	// SaltSize is the salt length in bytes. 16 bytes is the
	// recommended size for PBKDF2 salts.
	SaltSize = 16

	// KeySize is the derived key length in bytes: 32 bytes = AES-256.
	KeySize = 32

	// NonceSize is the AES-GCM nonce length in bytes. 12 bytes is the
	// standard GCM nonce size.
	NonceSize = 12

	// KDFIterations is the PBKDF2 iteration count, per OWASP guidance
	// for PBKDF2-HMAC-SHA256. Raising it slows brute-force guessing of
	// the master password; it must stay fixed for a given vault format
	// version so stored vaults remain decryptable.
	KDFIterations = 480_000
)

// ErrAuthenticationFailed is returned by [KeyService.Open] whenever a
// blob cannot be authenticated and decrypted. It deliberately covers
// both a wrong key (wrong master password) and tampered or corrupted
// ciphertext — the two are cryptographically indistinguishable at this
// layer, and collapsing them avoids leaking an oracle.
var ErrAuthenticationFailed = errors.New("authentication failed: wrong key or corrupted ciphertext")

// keyService is the private implementation of [KeyService].
type keyService struct {
	// PBKDF2 tuning. Stored in the struct so tests can lower the cost
	// without touching the production constant.
	iterations int
	keyLen     int
}

// NewKeyService constructs a [KeyService] with the production PBKDF2
// parameters (480,000 iterations of HMAC-SHA256, 32-byte keys).
func NewKeyService() KeyService {
	return &keyService{
		iterations: KDFIterations,
		keyLen:     KeySize,
	}
}

// NewKeyServiceWithIterations constructs a [KeyService] with a custom
// iteration count. Intended for tests, where the production cost would
// dominate the run time; production code should use [NewKeyService].
func NewKeyServiceWithIterations(iterations int) KeyService {
	return &keyService{
		iterations: iterations,
		keyLen:     KeySize,
	}
}

// GenerateSalt implements [KeyService]. It reads SaltSize random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateNonce implements [KeyService]. It reads NonceSize random
// bytes from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyService) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}

// DeriveKey implements [KeyService]. It derives a 256-bit key from
// masterPassword and salt using PBKDF2-HMAC-SHA256 with the iteration
// count stored in the receiver. The key exists only in memory for the
// duration of a seal or open call.
func (k *keyService) DeriveKey(masterPassword string, salt []byte) []byte {
	return pbkdf2.Key([]byte(masterPassword), salt, k.iterations, k.keyLen, sha256.New)
}

// Seal implements [KeyService]. It encrypts plaintext with AES-256-GCM
// under key and nonce, with no associated data. The returned blob is
// ciphertext ‖ tag. Returns an error if the key or nonce has the wrong
// length.
func (k *keyService) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("invalid nonce length: %d", len(nonce))
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open implements [KeyService]. It decrypts and authenticates a Seal
// blob. Every failure mode after parameter validation — truncated blob,
// flipped ciphertext bit, wrong key, wrong nonce — collapses into
// ErrAuthenticationFailed so the caller sees a single uniform signal.
func (k *keyService) Open(key, nonce, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("invalid nonce length: %d", len(nonce))
	}

	plaintext, err := gcm.Open(nil, nonce, blob, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// ZeroKey implements [KeyService]. It overwrites the key bytes so
// derived keys do not linger in memory after the operation that needed
// them. Best effort: Go strings holding the master password itself
// cannot be wiped deterministically.
func (k *keyService) ZeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
