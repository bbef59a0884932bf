// Package process agenda entregas y devoluciones de EPIs y conduce su confirmación biométrica
// hasta la conclusión, que genera el comprobante.
package process

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/domain/confirmation"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/filter"
	"github.com/jhoicas/epi-console/internal/domain/repository"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// LowStockSource fuente de la alerta de estoque bajo de la lista de procesos activos.
type LowStockSource interface {
	LowStock(ctx context.Context, companyID string) ([]dto.LowStockAlert, error)
}

// Deps dependencias del caso de uso.
type Deps struct {
	Processes repository.ProcessRepository
	Employees repository.EmployeeRepository
	EPIs      repository.EPIRepository
	Reports   repository.ReportRepository
	Reader    ports.BiometricReader
	Notifier  ports.Notifier
	LowStock  LowStockSource
	Log       *logger.Logger
	Now       func() time.Time

	// ConfirmationTTL tiempo tras el cual una confirmación abierta y abandonada deja de bloquear la empresa.
	// Cero usa DefaultConfirmationTTL.
	ConfirmationTTL time.Duration
}

// DefaultConfirmationTTL vigencia de una confirmación abierta.
const DefaultConfirmationTTL = 15 * time.Minute

// UseCase procesos de la empresa de la sesión. mu serializa las escrituras de procesos y
// la tabla de confirmaciones: hay como máximo una confirmación abierta por empresa.
type UseCase struct {
	processes repository.ProcessRepository
	employees repository.EmployeeRepository
	epis      repository.EPIRepository
	reports   repository.ReportRepository
	reader    ports.BiometricReader
	notifier  ports.Notifier
	lowStock  LowStockSource
	log       *logger.Logger
	now       func() time.Time
	ttl       time.Duration

	mu   sync.Mutex
	open map[string]*confirmation.Confirmation // por CompanyID
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.ConfirmationTTL <= 0 {
		d.ConfirmationTTL = DefaultConfirmationTTL
	}
	return &UseCase{
		processes: d.Processes,
		employees: d.Employees,
		epis:      d.EPIs,
		reports:   d.Reports,
		reader:    d.Reader,
		notifier:  d.Notifier,
		lowStock:  d.LowStock,
		log:       d.Log.Named("processes"),
		now:       d.Now,
		ttl:       d.ConfirmationTTL,
		open:      make(map[string]*confirmation.Confirmation),
	}
}

// Create agenda un proceso. Los EPIs repetidos se agrupan sumando cantidades.
func (uc *UseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateProcessRequest) (*dto.ProcessResponse, error) {
	if !entity.ValidProcessType(in.Type) {
		return nil, fmt.Errorf("%w: tipo de proceso %q", domain.ErrInvalidInput, in.Type)
	}
	if strings.TrimSpace(in.EmployeeID) == "" {
		return nil, fmt.Errorf("%w: colaborador não selecionado", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ScheduledDate) == "" {
		return nil, fmt.Errorf("%w: data não selecionada", domain.ErrInvalidInput)
	}
	scheduled, err := entity.ParseDate(in.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: nenhum EPI selecionado", domain.ErrInvalidInput)
	}
	employee, err := uc.employees.GetByID(ctx, sess.CompanyID, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("colaborador %s: %w", in.EmployeeID, domain.ErrNotFound)
	}

	now := uc.now()
	p := &entity.Process{
		ID:            uuid.New().String(),
		CompanyID:     sess.CompanyID,
		Type:          in.Type,
		EmployeeID:    employee.ID,
		EmployeeName:  employee.Name,
		ScheduledDate: scheduled,
		Status:        entity.ProcessScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, it := range in.Items {
		item, err := uc.item(ctx, sess.CompanyID, it.EPIID, it.Quantity)
		if err != nil {
			return nil, err
		}
		if err := p.AddItem(item); err != nil {
			return nil, err
		}
	}

	uc.mu.Lock()
	err = uc.processes.Create(ctx, p)
	uc.mu.Unlock()
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("process_id", p.ID).Str("type", p.Type).Str("employee_id", p.EmployeeID).
		Int("items", len(p.Items)).Msg("proceso agendado")
	notifyDesc := fmt.Sprintf("O processo de %s foi agendado com sucesso.", typeLabel(p.Type))
	usecase.Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess, "Processo criado", notifyDesc)
	return ToProcessResponse(p), nil
}

// AddItem agrega un EPI a un proceso agendado sin confirmación abierta.
func (uc *UseCase) AddItem(ctx context.Context, sess *entity.Session, processID string, in dto.ProcessItemRequest) (*dto.ProcessResponse, error) {
	item, err := uc.item(ctx, sess.CompanyID, in.EPIID, in.Quantity)
	if err != nil {
		return nil, err
	}
	return uc.editItems(ctx, sess, processID, func(p *entity.Process) error {
		return p.AddItem(item)
	})
}

// RemoveItem quita un EPI de un proceso agendado sin confirmación abierta.
func (uc *UseCase) RemoveItem(ctx context.Context, sess *entity.Session, processID, epiID string) (*dto.ProcessResponse, error) {
	return uc.editItems(ctx, sess, processID, func(p *entity.Process) error {
		if !p.RemoveItem(epiID) {
			return fmt.Errorf("EPI %s en el proceso %s: %w", epiID, processID, domain.ErrNotFound)
		}
		return nil
	})
}

func (uc *UseCase) editItems(ctx context.Context, sess *entity.Session, processID string, edit func(*entity.Process) error) (*dto.ProcessResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if c := uc.activeLocked(sess.CompanyID); c != nil && c.ProcessID == processID {
		return nil, fmt.Errorf("proceso %s: %w", processID, domain.ErrConfirmationActive)
	}
	p, err := uc.get(ctx, sess.CompanyID, processID)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.ProcessScheduled {
		return nil, fmt.Errorf("%w: proceso en estado %s", domain.ErrInvalidTransition, p.Status)
	}
	if err := edit(p); err != nil {
		return nil, err
	}
	p.UpdatedAt = uc.now()
	if err := uc.processes.Update(ctx, p); err != nil {
		return nil, err
	}
	return ToProcessResponse(p), nil
}

// List todos los procesos de la empresa en orden de inserción.
func (uc *UseCase) List(ctx context.Context, sess *entity.Session) ([]dto.ProcessResponse, error) {
	list, err := uc.processes.ListByCompany(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProcessResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *ToProcessResponse(p))
	}
	return out, nil
}

// ListActive procesos agendados que cumplen el filtro, con la alerta de estoque bajo actual.
func (uc *UseCase) ListActive(ctx context.Context, sess *entity.Session, in dto.ActiveProcessFilter) (*dto.ActiveProcessListResponse, error) {
	list, err := uc.processes.ListByCompany(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	f := filter.ActiveProcess{Type: in.Type, Search: in.Search}
	items := make([]dto.ProcessResponse, 0, len(list))
	for _, p := range list {
		if f.Match(p) {
			items = append(items, *ToProcessResponse(p))
		}
	}
	out := &dto.ActiveProcessListResponse{Items: items, Total: len(items), LowStockAlert: []dto.LowStockAlert{}}
	if uc.lowStock != nil {
		alerts, err := uc.lowStock.LowStock(ctx, sess.CompanyID)
		if err != nil {
			return nil, err
		}
		out.LowStockAlert = alerts
	}
	return out, nil
}

func (uc *UseCase) item(ctx context.Context, companyID, epiID string, qty int) (entity.ProcessItem, error) {
	if strings.TrimSpace(epiID) == "" {
		return entity.ProcessItem{}, fmt.Errorf("%w: EPI não selecionado", domain.ErrInvalidInput)
	}
	if qty <= 0 {
		return entity.ProcessItem{}, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	epi, err := uc.epis.GetByID(ctx, companyID, epiID)
	if err != nil {
		return entity.ProcessItem{}, err
	}
	if epi == nil {
		return entity.ProcessItem{}, fmt.Errorf("EPI %s: %w", epiID, domain.ErrNotFound)
	}
	return entity.ProcessItem{EPIID: epi.ID, EPIName: epi.Name, Quantity: qty}, nil
}

func (uc *UseCase) get(ctx context.Context, companyID, id string) (*entity.Process, error) {
	p, err := uc.processes.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("proceso %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func typeLabel(t string) string {
	if t == entity.ProcessReturn {
		return "devolução"
	}
	return "entrega"
}

// ToProcessResponse convierte el proceso al DTO de salida.
func ToProcessResponse(p *entity.Process) *dto.ProcessResponse {
	items := make([]dto.ProcessItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.ProcessItemResponse{EPIID: it.EPIID, EPIName: it.EPIName, Quantity: it.Quantity})
	}
	return &dto.ProcessResponse{
		ID:            p.ID,
		Type:          p.Type,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		ScheduledDate: entity.FormatDate(p.ScheduledDate),
		Status:        p.Status,
		Items:         items,
		CompletedAt:   p.CompletedAt,
	}
}
