// Package confirmation modela la confirmación biométrica de un proceso:
//
//	idle ──Open──▶ awaiting_biometric ──Verified──▶ verified ──Finalize──▶ completed
//	  ▲                    │                            │
//	  └────────Cancel──────┴────────────Cancel──────────┘
//
// La verificación no depende de tiempos: el estado solo cambia con el resultado del lector.
package confirmation

import (
	"fmt"
	"time"

	"github.com/jhoicas/epi-console/internal/domain"
)

// State estado de la confirmación de un proceso.
type State string

const (
	StateIdle              State = "idle"
	StateAwaitingBiometric State = "awaiting_biometric"
	StateVerified          State = "verified"
	StateCompleted         State = "completed"
)

// Confirmation confirmación abierta para un proceso.
type Confirmation struct {
	ProcessID  string
	EmployeeID string
	State      State
	OpenedAt   time.Time
	VerifiedAt *time.Time
}

// Open inicia la confirmación en awaiting_biometric.
func Open(processID, employeeID string, at time.Time) *Confirmation {
	return &Confirmation{
		ProcessID:  processID,
		EmployeeID: employeeID,
		State:      StateAwaitingBiometric,
		OpenedAt:   at,
	}
}

// MarkVerified registra la lectura biométrica exitosa. Solo desde awaiting_biometric.
func (c *Confirmation) MarkVerified(at time.Time) error {
	if c.State != StateAwaitingBiometric {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.State, StateVerified)
	}
	c.State = StateVerified
	c.VerifiedAt = &at
	return nil
}

// CanFinalize informa si la confirmación admite finalizar el proceso.
func (c *Confirmation) CanFinalize() bool {
	return c != nil && c.State == StateVerified
}

// MarkCompleted cierra la confirmación tras finalizar el proceso. Solo desde verified.
func (c *Confirmation) MarkCompleted() error {
	if !c.CanFinalize() {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.State, StateCompleted)
	}
	c.State = StateCompleted
	return nil
}
