package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when the session security
	// settings are out of range (negative timeouts).
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidBackupConfigs is returned when the backup rotation
	// policy is unusable (negative interval, non-positive limits).
	ErrInvalidBackupConfigs = errors.New("invalid backup configs")
)
