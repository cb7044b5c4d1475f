package vault_test

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/auracrypt/auracrypt/internal/crypto"
	"github.com/auracrypt/auracrypt/internal/logger"
	"github.com/auracrypt/auracrypt/internal/vault"
	"github.com/auracrypt/auracrypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Store tests run against the real filesystem in t.TempDir with a
// reduced PBKDF2 cost; the orchestration under test is identical.
const testIterations = 1_000

func newTestStore(t *testing.T) (vault.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.dat")
	store := vault.NewStore(path, "", crypto.NewKeyServiceWithIterations(testIterations), vault.NewOSFileSystem(), logger.Nop())
	return store, path
}

func sampleData() models.VaultData {
	return models.VaultData{
		Entries: []models.Entry{
			{
				ID:        "5f0c4b4e-9d9e-4f3c-8a41-1a2b3c4d5e6f",
				Service:   "github",
				Username:  "alice",
				Password:  "hunter2",
				Category:  "Work",
				CreatedAt: "2026-08-01T10:00:00Z",
				UpdatedAt: "2026-08-01T10:00:00Z",
			},
		},
	}
}

func TestStore_CreateLoad_RoundTrip(t *testing.T) {
	store, path := newTestStore(t)

	require.False(t, store.Exists())
	require.NoError(t, store.Create("Tr0ub4dor&3", sampleData()))
	require.True(t, store.Exists())
	require.FileExists(t, path)

	got, err := store.Load("Tr0ub4dor&3")
	require.NoError(t, err)
	assert.Equal(t, sampleData(), got)
}

func TestStore_Load_WrongPasswordFailsClosed(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Create("Tr0ub4dor&3", sampleData()))

	got, err := store.Load("wrongpass")
	require.ErrorIs(t, err, vault.ErrWrongPasswordOrCorrupt)
	assert.Empty(t, got.Entries)

	// A wrong password is not corruption: the file stays put.
	require.FileExists(t, path)
	assert.NoFileExists(t, path+vault.CorruptedSuffix)
	require.True(t, store.Exists())
}

func TestStore_Load_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load("whatever")
	require.ErrorIs(t, err, vault.ErrNotFound)
}

func TestStore_Save_FreshSaltNonceAndCiphertext(t *testing.T) {
	store, path := newTestStore(t)
	data := sampleData()

	require.NoError(t, store.Create("pw", data))
	salt1, nonce1, ct1 := readEnvelope(t, path)

	require.NoError(t, store.Save("pw", data))
	salt2, nonce2, ct2 := readEnvelope(t, path)

	// Identical plaintext and password, yet every cryptographic value
	// on disk must differ between two saves.
	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, nonce1, nonce2)
	assert.NotEqual(t, ct1, ct2)

	got, err := store.Load("pw")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStore_Create_OverwritesUnconditionally(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Create("first", sampleData()))
	require.NoError(t, store.Create("second", models.NewVaultData()))

	_, err := store.Load("first")
	require.ErrorIs(t, err, vault.ErrWrongPasswordOrCorrupt)

	got, err := store.Load("second")
	require.NoError(t, err)
	assert.Empty(t, got.Entries)
}

func TestStore_Load_TamperDetection(t *testing.T) {
	fields := []string{"salt", "nonce", "ciphertext"}

	for _, field := range fields {
		t.Run("flip byte in "+field, func(t *testing.T) {
			store, path := newTestStore(t)
			require.NoError(t, store.Create("pw", sampleData()))

			salt, nonce, ct := readEnvelope(t, path)
			switch field {
			case "salt":
				salt[0] ^= 0x01
			case "nonce":
				nonce[0] ^= 0x01
			case "ciphertext":
				ct[len(ct)/2] ^= 0x01
			}
			env, err := vault.Pack(salt, nonce, ct)
			require.NoError(t, err)
			require.NoError(t, os.WriteFile(path, env, 0o600))

			_, err = store.Load("pw")
			require.ErrorIs(t, err, vault.ErrWrongPasswordOrCorrupt)
			assert.NoFileExists(t, path+vault.CorruptedSuffix)
		})
	}
}

func TestStore_Load_MalformedEnvelopeQuarantines(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(t *testing.T, path string)
	}{
		{
			name: "truncated to invalid json",
			corrupt: func(t *testing.T, path string) {
				raw, err := os.ReadFile(path)
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(path, raw[:len(raw)/3], 0o600))
			},
		},
		{
			name: "required field deleted",
			corrupt: func(t *testing.T, path string) {
				raw, err := os.ReadFile(path)
				require.NoError(t, err)
				var env map[string]any
				require.NoError(t, json.Unmarshal(raw, &env))
				delete(env, "nonce")
				out, err := json.Marshal(env)
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(path, out, 0o600))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, path := newTestStore(t)
			require.NoError(t, store.Create("pw", sampleData()))
			tc.corrupt(t, path)

			_, err := store.Load("pw")
			require.ErrorIs(t, err, vault.ErrMalformedEnvelope)

			var corrupt *vault.CorruptVaultError
			require.ErrorAs(t, err, &corrupt)
			assert.Equal(t, path+vault.CorruptedSuffix, corrupt.QuarantinePath)

			// The bad file was moved aside and the managed path freed.
			assert.NoFileExists(t, path)
			require.FileExists(t, corrupt.QuarantinePath)
			assert.False(t, store.Exists())
		})
	}
}

func TestStore_Load_DecodeErrorQuarantines(t *testing.T) {
	store, path := newTestStore(t)

	// Forge a vault whose decryption succeeds but whose plaintext is
	// not a valid record collection.
	keys := crypto.NewKeyServiceWithIterations(testIterations)
	salt, err := keys.GenerateSalt()
	require.NoError(t, err)
	nonce, err := keys.GenerateNonce()
	require.NoError(t, err)

	key := keys.DeriveKey("pw", salt)
	blob, err := keys.Seal(key, nonce, []byte(`{"categories":["no entries field"]}`))
	require.NoError(t, err)

	env, err := vault.Pack(salt, nonce, blob)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, env, 0o600))

	_, err = store.Load("pw")
	require.ErrorIs(t, err, vault.ErrDecode)

	var corrupt *vault.CorruptVaultError
	require.ErrorAs(t, err, &corrupt)
	assert.NoFileExists(t, path)
	require.FileExists(t, corrupt.QuarantinePath)
}

func TestStore_Quarantine_Idempotent(t *testing.T) {
	store, path := newTestStore(t)

	corruptOnce := func() {
		require.NoError(t, store.Create("pw", sampleData()))
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))
		_, err := store.Load("pw")
		require.ErrorIs(t, err, vault.ErrMalformedEnvelope)
	}

	// The second corruption must replace the quarantine file left by
	// the first, not fail on it.
	corruptOnce()
	require.FileExists(t, path+vault.CorruptedSuffix)
	corruptOnce()
	require.FileExists(t, path+vault.CorruptedSuffix)
	assert.NoFileExists(t, path)
}

func TestStore_LegacyPathMigration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config", "vault.dat")
	legacyPath := filepath.Join(dir, "legacy", "vault.dat")
	keys := crypto.NewKeyServiceWithIterations(testIterations)

	// Write a vault at the legacy location only.
	legacyStore := vault.NewStore(legacyPath, "", keys, vault.NewOSFileSystem(), logger.Nop())
	require.NoError(t, legacyStore.Create("pw", sampleData()))

	store := vault.NewStore(path, legacyPath, keys, vault.NewOSFileSystem(), logger.Nop())
	require.True(t, store.Exists())

	got, err := store.Load("pw")
	require.NoError(t, err)
	assert.Equal(t, sampleData(), got)

	// Migration copies the file to the managed path.
	require.FileExists(t, path)
	require.FileExists(t, legacyPath)
}

func TestStore_AtomicWrite_LeavesNoTempFiles(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Create("pw", sampleData()))
	require.NoError(t, store.Save("pw", sampleData()))

	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Base(path), files[0].Name())
}

func TestStore_LargePayloadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	data := models.NewVaultData()
	for i := 0; i < 2000; i++ {
		data.Entries = append(data.Entries, models.Entry{
			ID:        fmt.Sprintf("id-%04d", i),
			Service:   fmt.Sprintf("service-%04d", i),
			Username:  "user",
			Password:  "pass",
			Category:  "Work",
			CreatedAt: "2026-08-01T10:00:00Z",
			UpdatedAt: "2026-08-01T10:00:00Z",
		})
	}

	require.NoError(t, store.Create("pw", data))
	got, err := store.Load("pw")
	require.NoError(t, err)
	require.Len(t, got.Entries, 2000)
	assert.Equal(t, data.Entries[1999], got.Entries[1999])
}

// readEnvelope returns the decoded salt, nonce, and ciphertext of the
// vault file on disk.
func readEnvelope(t *testing.T, path string) (salt, nonce, ciphertext []byte) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	salt, nonce, ciphertext, err = vault.Unpack(raw)
	require.NoError(t, err)
	return salt, nonce, ciphertext
}
