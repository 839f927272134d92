package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly types so
// a configuration file can spell durations as "30m" strings.
type StructuredJSONConfig struct {
	App struct {
		Environment string `json:"environment"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Security struct {
		TokenSignKey      string   `json:"token_sign_key"`
		TokenIssuer       string   `json:"token_issuer"`
		AccessTokenTTL    Duration `json:"access_token_ttl"`
		RefreshTokenTTL   Duration `json:"refresh_token_ttl"`
		BcryptCost        int      `json:"bcrypt_cost"`
		PasswordMinLength int      `json:"password_min_length"`
	} `json:"security,omitempty"`

	Storage struct {
		Driver       string `json:"driver"`
		DSN          string `json:"dsn"`
		MaxOpenConns int    `json:"max_open_conns"`
		MaxIdleConns int    `json:"max_idle_conns"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Notifier struct {
		Enabled              bool     `json:"enabled"`
		WebhookURL           string   `json:"webhook_url"`
		Timeout              Duration `json:"timeout"`
		UtilizationThreshold float64  `json:"utilization_threshold"`
	} `json:"notifier,omitempty"`
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
			Environment: Environment(jsonCfg.App.Environment),
			Version:     jsonCfg.App.Version,
		},
		Security: Security{
			TokenSignKey:      jsonCfg.Security.TokenSignKey,
			TokenIssuer:       jsonCfg.Security.TokenIssuer,
			AccessTokenTTL:    time.Duration(jsonCfg.Security.AccessTokenTTL),
			RefreshTokenTTL:   time.Duration(jsonCfg.Security.RefreshTokenTTL),
			BcryptCost:        jsonCfg.Security.BcryptCost,
			PasswordMinLength: jsonCfg.Security.PasswordMinLength,
		},
		Storage: Storage{
			Driver:       jsonCfg.Storage.Driver,
			DSN:          jsonCfg.Storage.DSN,
			MaxOpenConns: jsonCfg.Storage.MaxOpenConns,
			MaxIdleConns: jsonCfg.Storage.MaxIdleConns,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Notifier: Notifier{
			Enabled:              jsonCfg.Notifier.Enabled,
			WebhookURL:           jsonCfg.Notifier.WebhookURL,
			Timeout:              time.Duration(jsonCfg.Notifier.Timeout),
			UtilizationThreshold: jsonCfg.Notifier.UtilizationThreshold,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
