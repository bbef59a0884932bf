// Package device contiene los adaptadores simulados de los periféricos de la consola
// (lector biométrico y consulta de CA). Solo esperan el retardo configurado.
package device

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/pkg/logger"
)

var (
	_ ports.BiometricReader = (*BiometricReader)(nil)
	_ ports.CAValidator     = (*CAValidator)(nil)
)

// wait espera d o hasta que ctx se cancele.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BiometricReader lector simulado. Por defecto toda lectura es exitosa.
type BiometricReader struct {
	scanDelay    time.Duration
	captureDelay time.Duration
	log          *logger.Logger

	mu      sync.Mutex
	failing map[string]bool
}

// NewBiometricReader construye el lector simulado con los retardos de lectura y captura.
func NewBiometricReader(scanDelay, captureDelay time.Duration, log *logger.Logger) *BiometricReader {
	if log == nil {
		log = logger.Nop()
	}
	return &BiometricReader{
		scanDelay:    scanDelay,
		captureDelay: captureDelay,
		log:          log.Named("biometric"),
		failing:      make(map[string]bool),
	}
}

// FailScansFor hace que las lecturas del colaborador fallen (fail=true) o vuelvan a pasar.
func (r *BiometricReader) FailScansFor(employeeID string, fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fail {
		r.failing[employeeID] = true
		return
	}
	delete(r.failing, employeeID)
}

func (r *BiometricReader) Scan(ctx context.Context, employeeID string) error {
	r.log.Debug().Str("employee_id", employeeID).Dur("delay", r.scanDelay).Msg("leyendo huella")
	if err := wait(ctx, r.scanDelay); err != nil {
		return err
	}
	r.mu.Lock()
	fail := r.failing[employeeID]
	r.mu.Unlock()
	if fail {
		return fmt.Errorf("colaborador %s: %w", employeeID, domain.ErrScanFailed)
	}
	return nil
}

func (r *BiometricReader) Enroll(ctx context.Context, employeeID string) error {
	r.log.Debug().Str("employee_id", employeeID).Dur("delay", r.captureDelay).Msg("capturando huella")
	return wait(ctx, r.captureDelay)
}

// CAValidator consulta simulada: un CA es válido si solo tiene dígitos.
type CAValidator struct {
	delay time.Duration
	now   func() time.Time
	log   *logger.Logger
}

// NewCAValidator construye el validador simulado.
func NewCAValidator(delay time.Duration, now func() time.Time, log *logger.Logger) *CAValidator {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CAValidator{delay: delay, now: now, log: log.Named("ca_validator")}
}

func (v *CAValidator) Validate(ctx context.Context, ca string) (*ports.CAResult, error) {
	ca = strings.TrimSpace(ca)
	if ca == "" {
		return nil, fmt.Errorf("%w: CA vacío", domain.ErrInvalidInput)
	}
	v.log.Debug().Str("ca", ca).Dur("delay", v.delay).Msg("consultando CA")
	if err := wait(ctx, v.delay); err != nil {
		return nil, err
	}
	res := &ports.CAResult{CA: ca, Valid: true, Message: "CA válido", CheckedAt: v.now()}
	for _, r := range ca {
		if !unicode.IsDigit(r) {
			res.Valid = false
			res.Message = "CA inválido"
			break
		}
	}
	return res, nil
}
