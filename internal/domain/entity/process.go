package entity

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/epi-console/internal/domain"
)

// Tipos de proceso.
const (
	ProcessDelivery = "delivery"
	ProcessReturn   = "return"
)

// Estados de proceso. La única transición existente es scheduled -> completed;
// cancelled se conserva en el modelo pero ninguna operación lo asigna.
const (
	ProcessScheduled = "scheduled"
	ProcessCompleted = "completed"
	ProcessCancelled = "cancelled"
)

// ValidProcessType informa si t es delivery o return.
func ValidProcessType(t string) bool {
	return t == ProcessDelivery || t == ProcessReturn
}

// ProcessItem línea de un proceso: un EPI y su cantidad.
type ProcessItem struct {
	EPIID    string
	EPIName  string
	Quantity int
}

// Process entrega o devolución agendada de uno o más EPIs a un colaborador.
type Process struct {
	ID            string
	CompanyID     string
	Type          string // delivery, return
	EmployeeID    string
	EmployeeName  string
	ScheduledDate time.Time
	Status        string // scheduled, completed, cancelled
	Items         []ProcessItem
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AddItem agrega un EPI al proceso. Si el EPI ya está en la lista suma la cantidad
// en la línea existente: nunca hay dos líneas con el mismo EPIID.
func (p *Process) AddItem(item ProcessItem) error {
	if item.EPIID == "" {
		return fmt.Errorf("%w: EPI no seleccionado", domain.ErrInvalidInput)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	for i := range p.Items {
		if p.Items[i].EPIID == item.EPIID {
			if p.Items[i].Quantity > math.MaxInt-item.Quantity {
				return fmt.Errorf("%w: cantidad del EPI %s fuera de rango", domain.ErrInvalidInput, item.EPIID)
			}
			p.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	p.Items = append(p.Items, item)
	return nil
}

// RemoveItem quita la línea del EPI indicado. Devuelve false si no existía.
func (p *Process) RemoveItem(epiID string) bool {
	for i := range p.Items {
		if p.Items[i].EPIID == epiID {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Complete marca el proceso como concluido. Solo desde scheduled y con al menos un EPI.
func (p *Process) Complete(at time.Time) error {
	if p.Status != ProcessScheduled {
		return fmt.Errorf("%w: proceso en estado %s", domain.ErrInvalidTransition, p.Status)
	}
	if len(p.Items) == 0 {
		return domain.ErrEmptyProcess
	}
	p.Status = ProcessCompleted
	p.CompletedAt = &at
	p.UpdatedAt = at
	return nil
}

// Clone copia profunda (los repositorios en memoria nunca comparten slices con el llamador).
func (p *Process) Clone() *Process {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Items = append([]ProcessItem(nil), p.Items...)
	if p.CompletedAt != nil {
		at := *p.CompletedAt
		cp.CompletedAt = &at
	}
	return &cp
}
