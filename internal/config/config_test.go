package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-data-dir", "/data/auracrypt",
		"-vault", "/data/auracrypt/vault.dat",
		"-auto-lock", "5m",
		"-clipboard-clear", "10s",
		"-backup-interval", "1h",
		"-backup-max-count", "5",
		"-backup-max-age-days", "7",
		"-config", "/etc/auracrypt.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "/data/auracrypt", cfg.Storage.DataDir)
	assert.Equal(t, "/data/auracrypt/vault.dat", cfg.Storage.VaultPath)
	assert.Equal(t, 5*time.Minute, cfg.App.AutoLockTimeout)
	assert.Equal(t, 10*time.Second, cfg.App.ClipboardClearDelay)
	assert.Equal(t, time.Hour, cfg.Backup.Interval)
	assert.Equal(t, 5, cfg.Backup.MaxCount)
	assert.Equal(t, 7, cfg.Backup.MaxAgeDays)
	assert.Equal(t, "/etc/auracrypt.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-auto-lock", "soon"})
	require.Error(t, err)
}

func TestParseEnv_MapsPrefixedVariables(t *testing.T) {
	t.Setenv("APP_AUTO_LOCK_TIMEOUT", "2m")
	t.Setenv("STORAGE_VAULT_PATH", "/tmp/vault.dat")
	t.Setenv("BACKUP_MAX_COUNT", "3")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, 2*time.Minute, cfg.App.AutoLockTimeout)
	assert.Equal(t, "/tmp/vault.dat", cfg.Storage.VaultPath)
	assert.Equal(t, 3, cfg.Backup.MaxCount)
}

func TestParseJSON_StringDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"app": {"auto_lock_timeout": "20m", "clipboard_clear_delay": "45s"},
		"storage": {"data_dir": "/srv/auracrypt"},
		"backup": {"interval": "30m", "max_count": 4, "max_age_days": 14}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 20*time.Minute, cfg.App.AutoLockTimeout)
	assert.Equal(t, 45*time.Second, cfg.App.ClipboardClearDelay)
	assert.Equal(t, "/srv/auracrypt", cfg.Storage.DataDir)
	assert.Equal(t, 30*time.Minute, cfg.Backup.Interval)
	assert.Equal(t, 4, cfg.Backup.MaxCount)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestBuilder_EnvWinsOverDefaults(t *testing.T) {
	t.Setenv("APP_AUTO_LOCK_TIMEOUT", "1m")

	cfg, err := newConfigBuilder().withEnv().withDefaults().build()
	require.NoError(t, err)

	// Env value kept, unset fields filled from defaults.
	assert.Equal(t, time.Minute, cfg.App.AutoLockTimeout)
	assert.Equal(t, 30*time.Second, cfg.App.ClipboardClearDelay)
	assert.Equal(t, 10, cfg.Backup.MaxCount)
}

func TestBuilder_DefaultsAloneValidate(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.App.AutoLockTimeout)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	bad := defaults()
	bad.Backup.MaxCount = 0
	require.ErrorIs(t, bad.validate(), ErrInvalidBackupConfigs)

	bad = defaults()
	bad.App.AutoLockTimeout = -time.Second
	require.ErrorIs(t, bad.validate(), ErrInvalidAppConfigs)
}
