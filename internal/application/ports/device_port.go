package ports

import (
	"context"
	"time"
)

// BiometricReader puerto del lector de huellas. Las implementaciones deben respetar
// la cancelación del contexto: una lectura cancelada no cambia ningún estado.
type BiometricReader interface {
	// Scan lee la huella del colaborador y la compara con la registrada.
	// Un fallo de lectura se informa envolviendo domain.ErrScanFailed.
	Scan(ctx context.Context, employeeID string) error
	// Enroll captura y registra la huella del colaborador.
	Enroll(ctx context.Context, employeeID string) error
}

// CAResult resultado de la consulta de un Certificado de Aprovação.
type CAResult struct {
	CA        string
	Valid     bool
	Message   string
	CheckedAt time.Time
}

// CAValidator puerto de consulta del CA de un EPI.
type CAValidator interface {
	Validate(ctx context.Context, ca string) (*CAResult, error)
}

// Notifier publica avisos en el feed de un usuario.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, description string) error
}
