package logger

import (
	"daily-journal-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}
	internalConfig := &config.InternalConfig{App: config.App{Env: "development"}}

	log := NewZapLogger(driverConfig, internalConfig)

	assert.False(t, log.Core().Enabled(zap.InfoLevel), "info should be filtered at warn level")
	assert.True(t, log.Core().Enabled(zap.WarnLevel))
}
