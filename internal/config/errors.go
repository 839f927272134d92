package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown environment name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address or non-positive timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSecurityConfigs indicates invalid security settings
	// (for example, missing token sign key outside development).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidNotifierConfigs indicates invalid webhook notifier settings.
	ErrInvalidNotifierConfigs = errors.New("invalid notifier configuration")
)
