// Package filter concentra los predicados de búsqueda de cada listado. Son funciones puras:
// los casos de uso y los tests los usan sin pasar por HTTP.
package filter

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// Valores comodín de los filtros.
const (
	All        = "all"
	DateRecent = "recent"
	DateCustom = "custom"
)

// RecentWindow ventana del filtro de fecha "recent".
const RecentWindow = 30 * 24 * time.Hour

// ContainsFold informa si needle aparece en haystack sin distinguir mayúsculas (plegado Unicode).
// Un needle vacío coincide siempre.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	// cases.Caser no es seguro entre goroutines: uno por llamada.
	folder := cases.Fold()
	return strings.Contains(folder.String(haystack), folder.String(needle))
}

func anyItemMatches(items []entity.ProcessItem, search string) bool {
	for _, it := range items {
		if ContainsFold(it.EPIName, search) {
			return true
		}
	}
	return false
}

func typeMatches(want, got string) bool {
	return want == "" || want == All || want == got
}

// ActiveProcess filtro de la lista de procesos activos.
type ActiveProcess struct {
	Type   string // all, delivery, return
	Search string // nombre del colaborador o de algún EPI
}

// Match solo acepta procesos scheduled del tipo pedido cuyo colaborador o algún EPI contenga Search.
func (f ActiveProcess) Match(p *entity.Process) bool {
	if p.Status != entity.ProcessScheduled {
		return false
	}
	if !typeMatches(f.Type, p.Type) {
		return false
	}
	return ContainsFold(p.EmployeeName, f.Search) || anyItemMatches(p.Items, f.Search)
}

// Report filtro de comprobantes. Todas las condiciones se combinan con AND.
type Report struct {
	Type       string // all, delivery, return
	DateFilter string // all, recent, custom
	Start      *time.Time
	End        *time.Time // inclusivo
	EmployeeID string     // all o ID
	Search     string
	Now        time.Time // referencia para "recent"
}

// Match aplica tipo, ventana de fecha, colaborador y texto libre.
func (f Report) Match(r *entity.Report) bool {
	if !typeMatches(f.Type, r.Type) {
		return false
	}
	day := entity.DateOf(r.CompletedDate)
	switch f.DateFilter {
	case DateRecent:
		cutoff := entity.DateOf(f.Now).Add(-RecentWindow)
		if day.Before(cutoff) {
			return false
		}
	case DateCustom:
		if f.Start != nil && day.Before(entity.DateOf(*f.Start)) {
			return false
		}
		if f.End != nil && day.After(entity.DateOf(*f.End)) {
			return false
		}
	}
	if f.EmployeeID != "" && f.EmployeeID != All && r.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Search != "" && !ContainsFold(r.EmployeeName, f.Search) && !anyItemMatches(r.Items, f.Search) {
		return false
	}
	return true
}

// Employee coincide por nombre o CPF.
func Employee(e *entity.Employee, search string) bool {
	return ContainsFold(e.Name, search) || ContainsFold(e.CPF, search)
}

// EPI coincide por nombre, categoría o CA.
func EPI(e *entity.EPI, search string) bool {
	return ContainsFold(e.Name, search) || ContainsFold(e.Category, search) || ContainsFold(e.CA, search)
}

// Company coincide por nombre, email o CNPJ.
func Company(c *entity.Company, search string) bool {
	return ContainsFold(c.Name, search) || ContainsFold(c.Email, search) || ContainsFold(c.CNPJ, search)
}
