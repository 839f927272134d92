package config

import "fmt"

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping one of the sentinel validation errors otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	if cfg.Storage.Driver != DriverPostgres && cfg.Storage.Driver != DriverSQLite {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	// Development tolerates an empty sign key so the service can boot with
	// zero configuration; everywhere else it is required.
	if cfg.Security.TokenSignKey == "" && cfg.App.Environment != EnvDevelopment {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidSecurityConfigs)
	}
	if cfg.Security.AccessTokenTTL <= 0 || cfg.Security.RefreshTokenTTL <= 0 {
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidSecurityConfigs)
	}
	if cfg.Security.PasswordMinLength < 1 {
		return fmt.Errorf("%w: password min length must be positive", ErrInvalidSecurityConfigs)
	}

	if cfg.Notifier.Enabled && cfg.Notifier.WebhookURL == "" {
		return fmt.Errorf("%w: notifier enabled without webhook URL", ErrInvalidNotifierConfigs)
	}
	if t := cfg.Notifier.UtilizationThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("%w: utilization threshold must be in (0, 1]", ErrInvalidNotifierConfigs)
	}

	return nil
}
