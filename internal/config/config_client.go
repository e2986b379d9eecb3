package config

import (
	"fmt"
	"time"
)

// ClientConfig holds the settings used by the photoctl command-line client.
type ClientConfig struct {
	// ServerAddress is the base address of the phototeka server,
	// e.g. "http://localhost:8080".
	// Env: PHOTOCTL_ADDRESS
	ServerAddress string `env:"PHOTOCTL_ADDRESS"`

	// Token is an access token to use for authenticated requests. Usually
	// obtained via `photoctl login` and passed through the environment.
	// Env: PHOTOCTL_TOKEN
	Token string `env:"PHOTOCTL_TOKEN"`

	// RequestTimeout bounds every request issued by the client.
	// Env: PHOTOCTL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"PHOTOCTL_REQUEST_TIMEOUT"`
}

// GetClientConfig loads the photoctl configuration from environment
// variables and applies defaults for unset optional fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	if cfg.ServerAddress == "" {
		cfg.ServerAddress = "http://localhost:8080"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}

	return cfg, cfg.validate()
}
