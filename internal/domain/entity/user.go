package entity

import "unicode"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User representa una cuenta de la lista de acceso.
// Los gestores (manager) pertenecen a una empresa cliente; el admin opera sobre todas.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt
	Role         string // admin, manager
	CompanyID    string // vacío para admin
	CompanyName  string
}

// Initial devuelve la inicial en mayúscula del nombre, o "U" si está vacío (menú de cuenta).
func Initial(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return "U"
}
