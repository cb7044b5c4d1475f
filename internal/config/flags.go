package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-data-dir application data directory override
//	-vault vault file path override
//	-c/-config json file path with configs
//	-auto-lock idle period before the vault locks (e.g., "15m")
//	-clipboard-clear delay before a copied secret is wiped (e.g., "30s")
//	-backup-interval automatic backup period, 0 disables
//	-backup-max-count maximum number of rotated backups
//	-backup-max-age-days prune backups older than this many days
//
// A dedicated FlagSet keeps parsing re-entrant for tests.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("auracrypt", flag.ContinueOnError)

	var dataDir string
	var vaultPath string
	var jsonConfigPath string
	var autoLockTimeout time.Duration
	var clipboardClearDelay time.Duration
	var backupInterval time.Duration
	var backupMaxCount int
	var backupMaxAgeDays int

	fs.StringVar(&dataDir, "data-dir", "", "Application data directory")
	fs.StringVar(&vaultPath, "vault", "", "Vault file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&autoLockTimeout, "auto-lock", 0, "Auto-lock timeout (e.g., 15m)")
	fs.DurationVar(&clipboardClearDelay, "clipboard-clear", 0, "Clipboard clear delay (e.g., 30s)")
	fs.DurationVar(&backupInterval, "backup-interval", 0, "Automatic backup interval (e.g., 10m)")
	fs.IntVar(&backupMaxCount, "backup-max-count", 0, "Maximum number of rotated backups")
	fs.IntVar(&backupMaxAgeDays, "backup-max-age-days", 0, "Prune backups older than this many days")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AutoLockTimeout:     autoLockTimeout,
			ClipboardClearDelay: clipboardClearDelay,
		},
		Storage: Storage{
			DataDir:   dataDir,
			VaultPath: vaultPath,
		},
		Backup: Backup{
			Interval:   backupInterval,
			MaxCount:   backupMaxCount,
			MaxAgeDays: backupMaxAgeDays,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
