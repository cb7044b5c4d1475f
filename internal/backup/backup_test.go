package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auracrypt/auracrypt/internal/logger"
)

func newTestManager(t *testing.T, policy Policy) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	vaultPath := filepath.Join(dir, "vault.dat")
	require.NoError(t, os.WriteFile(vaultPath, []byte(`{"ciphertext":"abc"}`), 0o600))

	m := NewManager(vaultPath, filepath.Join(dir, "backups"), policy, logger.Nop())
	return m, vaultPath
}

func TestCreateAndList(t *testing.T) {
	m, _ := newTestManager(t, Policy{})

	path, err := m.Create(TypeManual)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Contains(t, filepath.Base(path), "vault_backup_manual_")

	backups, err := m.List()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, TypeManual, backups[0].Type)
	assert.Equal(t, path, backups[0].Path)
	assert.NotZero(t, backups[0].Size)
}

func TestList_EmptyAndForeignFiles(t *testing.T) {
	m, _ := newTestManager(t, Policy{})

	backups, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, backups, "missing dir lists as empty")

	require.NoError(t, os.MkdirAll(m.dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "vault_backup_bad.dat"), []byte("x"), 0o600))

	backups, err = m.List()
	require.NoError(t, err)
	assert.Empty(t, backups, "foreign files are ignored")
}

func TestList_NewestFirst(t *testing.T) {
	m, _ := newTestManager(t, Policy{})

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		i := i
		m.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		_, err := m.Create(TypeAuto)
		require.NoError(t, err)
	}

	backups, err := m.List()
	require.NoError(t, err)
	require.Len(t, backups, 3)
	assert.True(t, backups[0].CreatedAt.After(backups[1].CreatedAt))
	assert.True(t, backups[1].CreatedAt.After(backups[2].CreatedAt))
}

func TestRestore_TakesSafetyBackup(t *testing.T) {
	m, vaultPath := newTestManager(t, Policy{})

	backupPath, err := m.Create(TypeManual)
	require.NoError(t, err)

	// Change the live vault after the backup, then restore.
	require.NoError(t, os.WriteFile(vaultPath, []byte("newer state"), 0o600))
	require.NoError(t, m.Restore(backupPath))

	restored, err := os.ReadFile(vaultPath)
	require.NoError(t, err)
	assert.Equal(t, `{"ciphertext":"abc"}`, string(restored))

	backups, err := m.List()
	require.NoError(t, err)
	var safety []Info
	for _, b := range backups {
		if b.Type == TypeSafety {
			safety = append(safety, b)
		}
	}
	require.Len(t, safety, 1, "restore must snapshot the pre-restore vault")

	snapshot, err := os.ReadFile(safety[0].Path)
	require.NoError(t, err)
	assert.Equal(t, "newer state", string(snapshot))
}

func TestRestoreLatest(t *testing.T) {
	m, vaultPath := newTestManager(t, Policy{})

	assert.ErrorIs(t, m.RestoreLatest(), ErrNoBackups)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }
	_, err := m.Create(TypeAuto)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(vaultPath, []byte("second"), 0o600))
	m.now = func() time.Time { return base.Add(time.Hour) }
	_, err = m.Create(TypeAuto)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(vaultPath, []byte("live"), 0o600))
	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	require.NoError(t, m.RestoreLatest())

	got, err := os.ReadFile(vaultPath)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestCleanup_MaxCount(t *testing.T) {
	m, _ := newTestManager(t, Policy{MaxCount: 2})

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		i := i
		m.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		_, err := m.Create(TypeAuto)
		require.NoError(t, err)
	}

	backups, err := m.List()
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, base.Add(3*time.Hour), backups[0].CreatedAt)
	assert.Equal(t, base.Add(2*time.Hour), backups[1].CreatedAt)
}

func TestCleanup_MaxAge(t *testing.T) {
	m, _ := newTestManager(t, Policy{MaxAgeDays: 30})

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base.AddDate(0, 0, -40) }
	_, err := m.Create(TypeAuto)
	require.NoError(t, err)

	m.now = func() time.Time { return base }
	_, err = m.Create(TypeAuto)
	require.NoError(t, err)

	backups, err := m.List()
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, base, backups[0].CreatedAt)
}

func TestCreate_MissingVaultFails(t *testing.T) {
	m, vaultPath := newTestManager(t, Policy{})
	require.NoError(t, os.Remove(vaultPath))

	_, err := m.Create(TypeManual)
	assert.Error(t, err)
}

func TestParseBackupName(t *testing.T) {
	info, ok := parseBackupName("vault_backup_safety_20260801_120000.dat")
	require.True(t, ok)
	assert.Equal(t, TypeSafety, info.Type)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), info.CreatedAt)

	for _, name := range []string{
		"vault.dat",
		"vault_backup_.dat",
		"vault_backup_manual_garbage.dat",
		"vault_backup_manual_20260801.dat",
	} {
		_, ok := parseBackupName(name)
		assert.False(t, ok, name)
	}
}
