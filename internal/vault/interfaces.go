package vault

import (
	"os"

	"github.com/auracrypt/auracrypt/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Store is the persistence engine of the vault: it owns the vault file
// path and every read or write against it. All methods are safe for
// concurrent use; access to the file is serialized by a single mutex so
// two racing saves cannot interleave or lose an update.
type Store interface {
	// Exists reports whether a vault file is present at the managed
	// path or at the legacy path.
	Exists() bool

	// Create encrypts data under masterPassword and writes the vault
	// file, unconditionally overwriting any existing one. Callers that
	// must not overwrite should check Exists first. Every call uses a
	// fresh salt and nonce.
	Create(masterPassword string, data models.VaultData) error

	// Load reads, authenticates, and decrypts the vault file.
	//
	// Failure modes:
	//   - ErrNotFound: no vault file exists.
	//   - *CorruptVaultError wrapping ErrMalformedEnvelope: the file is
	//     not a valid envelope; it has been quarantined.
	//   - ErrWrongPasswordOrCorrupt: AEAD verification failed; the file
	//     is left in place.
	//   - *CorruptVaultError wrapping ErrDecode: decryption succeeded
	//     but the payload is structurally invalid; quarantined.
	//   - anything else: a wrapped I/O error.
	Load(masterPassword string) (models.VaultData, error)

	// Save re-encrypts the full payload with a fresh salt and nonce and
	// atomically replaces the vault file. Equivalent to Create: the
	// vault is never patched in place, which rules out nonce reuse by
	// construction at the cost of O(vault) work per save.
	Save(masterPassword string, data models.VaultData) error

	// Path returns the managed vault file path.
	Path() string
}

// FileSystem is the file-system collaborator consumed by the store. It
// is the only route through which the store touches the disk, which
// keeps failure paths testable.
type FileSystem interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to path so that a crash mid-write
	// leaves either the old file or the new one, never a byte-level
	// mix (write-to-temp-then-rename).
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// Rename moves a file, replacing the destination if it exists.
	Rename(oldPath, newPath string) error

	// Remove deletes the file at path.
	Remove(path string) error

	// Exists reports whether a regular file exists at path.
	Exists(path string) bool

	// MkdirAll creates the directory at path along with any missing
	// parents.
	MkdirAll(path string, perm os.FileMode) error
}
