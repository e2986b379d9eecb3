// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Volkhin

package config

import "time"

// defaultConfig returns the built-in fallback values merged in last, so any
// field left unset by env, flags, and the JSON file still ends up usable for
// local development.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "phototeka",
			AccessTokenDuration:  15 * time.Minute,
			RefreshTokenDuration: 7 * 24 * time.Hour,
			Version:              "dev",
		},
		Storage: Storage{
			Files: Files{
				MediaDir: "media",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validate checks the client configuration used by photoctl.
func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
