package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesEarlierSourcesOverLater(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "from-env"},
			Storage: Storage{DB: DB{DSN: "postgres://env/db"}},
		},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// non-zero fields of the earlier source win
	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DB.DSN)

	// zero fields are filled from defaults
	assert.Equal(t, "phototeka", cfg.App.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.App.AccessTokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestBuild_ValidationFailsWithoutDSN(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "key"}},
		defaultConfig(),
	)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_ValidationFailsWithoutSignKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "gallery.db"}}},
		defaultConfig(),
	)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	assert.Error(t, err)
}
