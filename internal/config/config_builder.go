package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the lowest-priority configuration layer. mergo only
// fills fields still zero after env, flags and JSON have been merged.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			Environment: EnvDevelopment,
			Version:     "0.0.0",
		},
		Security: Security{
			TokenIssuer:       "finance-api",
			AccessTokenTTL:    30 * time.Minute,
			RefreshTokenTTL:   7 * 24 * time.Hour,
			PasswordMinLength: 8,
		},
		Storage: Storage{
			Driver:       DriverPostgres,
			MaxOpenConns: 10,
			MaxIdleConns: 4,
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
		Notifier: Notifier{
			Timeout:              10 * time.Second,
			UtilizationThreshold: 0.9,
		},
	})
	return b
}
