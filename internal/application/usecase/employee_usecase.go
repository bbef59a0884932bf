package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/filter"
	"github.com/jhoicas/epi-console/internal/domain/repository"
	"github.com/jhoicas/epi-console/pkg/docbr"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// EmployeeUseCase registro de colaboradores de la empresa de la sesión.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	reader   ports.BiometricReader
	notifier ports.Notifier
	log      *logger.Logger
	now      func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, reader ports.BiometricReader, notifier ports.Notifier, log *logger.Logger, now func() time.Time) *EmployeeUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EmployeeUseCase{repo: repo, reader: reader, notifier: notifier, log: log.Named("employees"), now: now}
}

// Create registra un colaborador activo y sin biometría. El CPF es único dentro de la empresa.
func (uc *EmployeeUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nome do colaborador vazio", domain.ErrInvalidInput)
	}
	if err := docbr.ValidateCPF(in.CPF); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	cpf := docbr.FormatCPF(in.CPF)
	existing, err := uc.repo.GetByCPF(ctx, sess.CompanyID, cpf)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: CPF %s ya registrado", domain.ErrDuplicate, cpf)
	}
	now := uc.now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		CompanyID: sess.CompanyID,
		Name:      strings.TrimSpace(in.Name),
		CPF:       cpf,
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess,
		"Colaborador adicionado", fmt.Sprintf("O colaborador %s foi adicionado com sucesso.", employee.Name))
	return toEmployeeResponse(employee), nil
}

// List lista los colaboradores filtrados por nombre o CPF.
func (uc *EmployeeUseCase) List(ctx context.Context, sess *entity.Session, search string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		if filter.Employee(e, search) {
			items = append(items, *toEmployeeResponse(e))
		}
	}
	return items, nil
}

// ToggleStatus alterna active/inactive.
func (uc *EmployeeUseCase) ToggleStatus(ctx context.Context, sess *entity.Session, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	employee.ToggleStatus(uc.now())
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	label := "ativo"
	if employee.Status == entity.StatusInactive {
		label = "inativo"
	}
	Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationInfo,
		"Status atualizado", fmt.Sprintf("O colaborador agora está %s.", label))
	return toEmployeeResponse(employee), nil
}

// CaptureBiometrics registra la huella con el lector. Repetir la captura no cambia nada.
func (uc *EmployeeUseCase) CaptureBiometrics(ctx context.Context, sess *entity.Session, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if employee.HasBiometrics {
		return toEmployeeResponse(employee), nil
	}
	if employee.Status != entity.StatusActive {
		return nil, fmt.Errorf("colaborador %s: %w", id, domain.ErrInactive)
	}
	Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationInfo,
		"Capturando biometria", "Por favor, mantenha o dedo no leitor...")
	if err := uc.reader.Enroll(ctx, id); err != nil {
		return nil, fmt.Errorf("captura biométrica: %w", err)
	}

	// Se relee: el registro pudo cambiar mientras el lector capturaba.
	employee, err = uc.get(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	employee.EnrollBiometrics(uc.now())
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	uc.log.Info().Str("employee_id", id).Msg("biometría registrada")
	Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess,
		"Biometria capturada", "Biometria capturada com sucesso!")
	return toEmployeeResponse(employee), nil
}

func (uc *EmployeeUseCase) get(ctx context.Context, sess *entity.Session, id string) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(ctx, sess.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("colaborador %s: %w", id, domain.ErrNotFound)
	}
	return employee, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:            e.ID,
		Name:          e.Name,
		CPF:           e.CPF,
		Status:        e.Status,
		HasBiometrics: e.HasBiometrics,
		BiometricsAt:  e.BiometricsAt,
		CreatedAt:     e.CreatedAt,
	}
}
