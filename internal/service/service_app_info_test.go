package service

import (
	"context"
	"testing"

	"github.com/avolkhin/phototeka/internal/config"
	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestAppInfoService_MissingVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())
	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
