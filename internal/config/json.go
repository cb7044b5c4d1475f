package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type, so a config file can say "15m" instead
// of nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		AutoLockTimeout     Duration `json:"auto_lock_timeout"`
		ClipboardClearDelay Duration `json:"clipboard_clear_delay"`
	} `json:"app,omitempty"`

	Storage struct {
		DataDir   string `json:"data_dir"`
		VaultPath string `json:"vault_path"`
	} `json:"storage,omitempty"`

	Backup struct {
		Interval   Duration `json:"interval"`
		MaxCount   int      `json:"max_count"`
		MaxAgeDays int      `json:"max_age_days"`
	} `json:"backup,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AutoLockTimeout:     time.Duration(jsonCfg.App.AutoLockTimeout),
			ClipboardClearDelay: time.Duration(jsonCfg.App.ClipboardClearDelay),
		},
		Storage: Storage{
			DataDir:   jsonCfg.Storage.DataDir,
			VaultPath: jsonCfg.Storage.VaultPath,
		},
		Backup: Backup{
			Interval:   time.Duration(jsonCfg.Backup.Interval),
			MaxCount:   jsonCfg.Backup.MaxCount,
			MaxAgeDays: jsonCfg.Backup.MaxAgeDays,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
