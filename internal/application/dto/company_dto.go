package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa cliente.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,email"`
	CNPJ    string `json:"cnpj" validate:"required,cnpj"`
	Contact string `json:"contact" validate:"omitempty,max=40"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CNPJ      string    `json:"cnpj"`
	Contact   string    `json:"contact"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
