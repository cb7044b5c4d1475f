package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_service_mock.go -package=mock

// KeyService owns the cryptographic primitives of the vault: random
// material generation, password-based key derivation, and authenticated
// encryption. It knows nothing about files, envelopes, or the record
// format — those belong to the vault store.
//
// Encryption pipeline:
//
//	salt  = GenerateSalt()                 (fresh per seal)
//	key   = DeriveKey(password, salt)
//	nonce = GenerateNonce()                (fresh per seal)
//	blob  = Seal(key, nonce, plaintext)
//
// Decryption reverses it with the salt and nonce recovered from the
// stored envelope. Nonce uniqueness per key is the caller's
// responsibility; the vault store guarantees it by deriving a fresh
// salt+key pair and a fresh nonce for every seal.
type KeyService interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG.
	// The salt is not secret; it is persisted next to the ciphertext.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns 12 random bytes from the OS CSPRNG.
	// A nonce must never be reused under the same key.
	GenerateNonce() ([]byte, error)

	// DeriveKey stretches the master password into a 256-bit key with
	// PBKDF2-HMAC-SHA256. Deterministic: the same password and salt
	// always produce the same key. An empty password is accepted here;
	// rejecting it is the validators' job.
	DeriveKey(masterPassword string, salt []byte) []byte

	// Seal encrypts plaintext with AES-256-GCM under key and nonce and
	// returns ciphertext with the authentication tag appended.
	Seal(key, nonce, plaintext []byte) ([]byte, error)

	// Open decrypts a Seal blob. Any tag-verification or decoding
	// failure is reported as ErrAuthenticationFailed and nothing else:
	// callers cannot tell a wrong key from corrupted ciphertext, and no
	// partial plaintext is ever returned.
	Open(key, nonce, blob []byte) ([]byte, error)

	// ZeroKey wipes key material in place once it is no longer needed.
	ZeroKey(key []byte)
}
