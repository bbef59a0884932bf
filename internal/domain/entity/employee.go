package entity

import "time"

// Employee colaborador de una empresa cliente que recibe o devuelve EPIs.
type Employee struct {
	ID            string
	CompanyID     string
	Name          string
	CPF           string
	Status        string // active, inactive
	HasBiometrics bool   // solo pasa de false a true vía captura
	BiometricsAt  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToggleStatus alterna el estado del colaborador.
func (e *Employee) ToggleStatus(at time.Time) {
	e.Status = ToggledStatus(e.Status)
	e.UpdatedAt = at
}

// EnrollBiometrics marca la biometría como registrada. No existe la operación inversa.
// Una segunda captura es idempotente y conserva la fecha original.
func (e *Employee) EnrollBiometrics(at time.Time) {
	if e.HasBiometrics {
		return
	}
	e.HasBiometrics = true
	e.BiometricsAt = &at
	e.UpdatedAt = at
}
