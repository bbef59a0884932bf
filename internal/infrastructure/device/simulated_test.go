package device_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/infrastructure/device"
)

func TestBiometricReader_ExitoPorDefecto(t *testing.T) {
	r := device.NewBiometricReader(0, 0, nil)
	assert.NoError(t, r.Scan(context.Background(), "1"))
	assert.NoError(t, r.Enroll(context.Background(), "1"))
}

func TestBiometricReader_FallaConfigurada(t *testing.T) {
	r := device.NewBiometricReader(0, 0, nil)
	r.FailScansFor("2", true)
	assert.ErrorIs(t, r.Scan(context.Background(), "2"), domain.ErrScanFailed)
	assert.NoError(t, r.Scan(context.Background(), "1"))

	r.FailScansFor("2", false)
	assert.NoError(t, r.Scan(context.Background(), "2"))
}

func TestBiometricReader_RespetaCancelacion(t *testing.T) {
	r := device.NewBiometricReader(time.Hour, time.Hour, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := r.Scan(ctx, "1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestCAValidator(t *testing.T) {
	fixed := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)
	v := device.NewCAValidator(0, func() time.Time { return fixed }, nil)

	res, err := v.Validate(context.Background(), " 12345 ")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "12345", res.CA)
	assert.Equal(t, fixed, res.CheckedAt)

	res, err = v.Validate(context.Background(), "12A45")
	require.NoError(t, err)
	assert.False(t, res.Valid)

	_, err = v.Validate(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
