package dto

import "time"

// CreateEmployeeRequest entrada para registrar un colaborador.
type CreateEmployeeRequest struct {
	Name string `json:"name" validate:"required,notblank,max=200"`
	CPF  string `json:"cpf" validate:"required,cpf"`
}

// EmployeeResponse salida de un colaborador.
type EmployeeResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	CPF           string     `json:"cpf"`
	Status        string     `json:"status"`
	HasBiometrics bool       `json:"has_biometrics"`
	BiometricsAt  *time.Time `json:"biometrics_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
