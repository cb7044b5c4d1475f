package vault

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the vault store and its sub-components.
// Callers should use [errors.Is] to match against these values; nothing
// below the store boundary (crypto, JSON, I/O internals) leaks through
// unwrapped.
var (
	// ErrNotFound is returned by Load when no vault file exists at the
	// managed path. Recoverable by calling Create.
	ErrNotFound = errors.New("vault file not found")

	// ErrWrongPasswordOrCorrupt is returned when AEAD authentication
	// fails during Load. The wrong-password and tampered-data causes
	// are deliberately merged: they are cryptographically
	// indistinguishable, and separating them would leak an oracle.
	// The vault file is NOT quarantined — it is most likely intact and
	// a retry with the correct password should succeed.
	ErrWrongPasswordOrCorrupt = errors.New("decryption failed: master password may be incorrect or data is corrupt")

	// ErrMalformedEnvelope is returned when the vault file cannot be
	// parsed as a salt/nonce/ciphertext envelope: invalid JSON, a
	// missing required field, a field that fails base64 decoding, or an
	// unsupported format version. Detected before any decryption, so
	// password correctness is not in question.
	ErrMalformedEnvelope = errors.New("vault file is not a valid envelope")

	// ErrDecode is returned when a successfully decrypted payload has
	// invalid structure. The encryption layer was sound, so the file
	// either predates a format change or was written corrupted.
	ErrDecode = errors.New("vault payload has invalid structure")
)

// CorruptVaultError reports structural corruption of the vault file.
// It is returned by Load after the file has been quarantined and names
// the quarantine path so the user can attempt manual recovery. It wraps
// either [ErrMalformedEnvelope] or [ErrDecode].
type CorruptVaultError struct {
	// QuarantinePath is where the corrupted file was moved.
	QuarantinePath string

	// Err is the underlying structural failure.
	Err error
}

func (e *CorruptVaultError) Error() string {
	return fmt.Sprintf("vault file is corrupt and has been renamed to %q: %v", e.QuarantinePath, e.Err)
}

func (e *CorruptVaultError) Unwrap() error {
	return e.Err
}
