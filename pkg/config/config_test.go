package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "epi-console", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 480, cfg.JWT.Expiration)
	assert.True(t, cfg.UsingDevSecret(), "sin JWT_SECRET en desarrollo se usa el secreto de desarrollo")
	assert.Equal(t, 2*time.Second, cfg.Simulation.BiometricScan)
	assert.Equal(t, 1500*time.Millisecond, cfg.Simulation.CAValidation)
	assert.Equal(t, time.Second, cfg.Simulation.ReportDownload)
	assert.Equal(t, 10*time.Second, cfg.Notification.TTL)
	assert.Equal(t, 15*time.Minute, cfg.Workflow.ConfirmationTTL)
	assert.True(t, cfg.Seed)
}

func TestFromViper_Sobrescrituras(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "staging")
	v.Set("HTTP_PORT", "9090")
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("SIM_BIOMETRIC_SCAN_MS", "0")
	v.Set("SIM_REPORT_DOWNLOAD_MS", "-5")
	v.Set("SEED_MOCK_DATA", "false")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
	assert.False(t, cfg.UsingDevSecret())
	assert.Equal(t, time.Duration(0), cfg.Simulation.BiometricScan)
	assert.Equal(t, time.Duration(0), cfg.Simulation.ReportDownload, "los retardos negativos se normalizan a cero")
	assert.False(t, cfg.Seed)
}

func TestFromViper_ProduccionSinSecreto(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}
