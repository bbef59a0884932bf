package entity

import "time"

// Estados de registro comunes a Company y Employee.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ToggledStatus devuelve el estado opuesto (active <-> inactive).
func ToggledStatus(status string) string {
	if status == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Company representa una empresa cliente atendida por la consola (ámbito del admin).
type Company struct {
	ID        string
	Name      string
	Email     string
	CNPJ      string // CNPJ con máscara 00.000.000/0000-00
	Contact   string // teléfono de contacto
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToggleStatus alterna el estado; las empresas nunca se eliminan.
func (c *Company) ToggleStatus(at time.Time) {
	c.Status = ToggledStatus(c.Status)
	c.UpdatedAt = at
}
