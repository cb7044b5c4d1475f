package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveIn_Layout(t *testing.T) {
	p := ResolveIn("/data/auracrypt")

	assert.Equal(t, "/data/auracrypt", p.DataDir)
	assert.Equal(t, filepath.Join("/data/auracrypt", VaultFileName), p.VaultPath)
	assert.Equal(t, filepath.Join("/data/auracrypt", BackupDirName), p.BackupDir)
	assert.Empty(t, p.LegacyVaultPath)
}

func TestResolve_UsesUserConfigDir(t *testing.T) {
	p, err := Resolve()
	require.NoError(t, err)

	configDir, err := os.UserConfigDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configDir, appDirName), p.DataDir)
	assert.Equal(t, filepath.Join(p.DataDir, VaultFileName), p.VaultPath)
	assert.NotEmpty(t, p.LegacyVaultPath)
}

func TestEnsureDirs_CreatesOwnerOnlyDirs(t *testing.T) {
	p := ResolveIn(filepath.Join(t.TempDir(), "nested", "auracrypt"))
	require.NoError(t, p.EnsureDirs())

	for _, dir := range []string{p.DataDir, p.BackupDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	}

	// Idempotent.
	require.NoError(t, p.EnsureDirs())
}
