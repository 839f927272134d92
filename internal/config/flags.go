package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (postgres or sqlite)
//	-c/-config json file path with configs
//	-env runtime environment (development, testing, production)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-access-token-ttl access token lifetime (e.g., "30m")
//	-refresh-token-ttl refresh token lifetime (e.g., "168h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-webhook-url budget notification webhook URL
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var environment string
	var tokenSignKey string
	var tokenIssuer string
	var accessTokenTTL time.Duration
	var refreshTokenTTL time.Duration
	var requestTimeout time.Duration
	var webhookURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (postgres|sqlite)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&environment, "env", "", "Runtime environment (development|testing|production)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&accessTokenTTL, "access-token-ttl", 0, "Access token lifetime (e.g., 30m)")
	flag.DurationVar(&refreshTokenTTL, "refresh-token-ttl", 0, "Refresh token lifetime (e.g., 168h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&webhookURL, "webhook-url", "", "Budget notification webhook URL")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment: Environment(environment),
		},
		Security: Security{
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			AccessTokenTTL:  accessTokenTTL,
			RefreshTokenTTL: refreshTokenTTL,
		},
		Storage: Storage{
			Driver: databaseDriver,
			DSN:    databaseDSN,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Notifier: Notifier{
			WebhookURL: webhookURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
