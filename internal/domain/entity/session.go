package entity

import "time"

// Capability permiso de navegación/operación que se resuelve una vez al crear la sesión.
type Capability string

// Capacidades conocidas por el router y la navegación.
const (
	CapCompaniesManage  Capability = "companies:manage"
	CapDashboardView    Capability = "dashboard:view"
	CapEmployeesManage  Capability = "employees:manage"
	CapEPIsManage       Capability = "epis:manage"
	CapProcessesManage  Capability = "processes:manage"
	CapProcessesConfirm Capability = "processes:confirm"
	CapReportsView      Capability = "reports:view"
)

var roleCapabilities = map[string][]Capability{
	RoleAdmin: {CapCompaniesManage},
	RoleManager: {
		CapDashboardView,
		CapEmployeesManage,
		CapEPIsManage,
		CapProcessesManage,
		CapProcessesConfirm,
		CapReportsView,
	},
}

// CapabilitiesForRole devuelve una copia del conjunto de capacidades del rol (vacío si el rol no existe).
func CapabilitiesForRole(role string) []Capability {
	caps := roleCapabilities[role]
	out := make([]Capability, len(caps))
	copy(out, caps)
	return out
}

// LandingPath ruta inicial tras el login según el rol.
func LandingPath(role string) string {
	if role == RoleAdmin {
		return "/admin/companies"
	}
	return "/dashboard"
}

// Session contexto explícito del usuario autenticado. Se crea en el login y se
// reconstruye en cada petición a partir del token; nunca es un singleton global.
type Session struct {
	TokenID      string
	UserID       string
	Name         string
	Email        string
	Role         string
	CompanyID    string
	CompanyName  string
	Capabilities []Capability
	ExpiresAt    time.Time
}

// Can informa si la sesión tiene la capacidad indicada.
func (s *Session) Can(c Capability) bool {
	if s == nil {
		return false
	}
	for _, have := range s.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}
