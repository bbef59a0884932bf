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

// CompanyUseCase aplica reglas de negocio para empresas cliente (ámbito del admin).
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	notifier ports.Notifier
	log      *logger.Logger
	now      func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, notifier ports.Notifier, log *logger.Logger, now func() time.Time) *CompanyUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CompanyUseCase{repo: repo, notifier: notifier, log: log.Named("companies"), now: now}
}

// Create crea una nueva empresa activa. Devuelve domain.ErrDuplicate si el CNPJ ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nome da empresa vazio", domain.ErrInvalidInput)
	}
	if err := docbr.ValidateCNPJ(in.CNPJ); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	cnpj := docbr.FormatCNPJ(in.CNPJ)
	existing, err := uc.repo.GetByCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: CNPJ %s ya registrado", domain.ErrDuplicate, cnpj)
	}
	now := uc.now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		CNPJ:      cnpj,
		Contact:   strings.TrimSpace(in.Contact),
		Status:    entity.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	uc.log.Info().Str("company_id", company.ID).Str("cnpj", cnpj).Msg("empresa creada")
	Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess,
		"Empresa adicionada", fmt.Sprintf("A empresa %s foi adicionada com sucesso.", company.Name))
	return toCompanyResponse(company), nil
}

// List lista las empresas en orden de inserción, filtradas por nombre, email o CNPJ.
func (uc *CompanyUseCase) List(ctx context.Context, search string) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		if filter.Company(c, search) {
			items = append(items, *toCompanyResponse(c))
		}
	}
	return items, nil
}

// ToggleStatus alterna active/inactive.
func (uc *CompanyUseCase) ToggleStatus(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	company.ToggleStatus(uc.now())
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CNPJ:      c.CNPJ,
		Contact:   c.Contact,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
