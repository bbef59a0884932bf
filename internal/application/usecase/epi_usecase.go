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
	"github.com/jhoicas/epi-console/pkg/logger"
)

// EPIUseCase inventario de EPIs de la empresa de la sesión.
type EPIUseCase struct {
	repo      repository.EPIRepository
	validator ports.CAValidator
	notifier  ports.Notifier
	log       *logger.Logger
	now       func() time.Time
}

// NewEPIUseCase construye el caso de uso.
func NewEPIUseCase(repo repository.EPIRepository, validator ports.CAValidator, notifier ports.Notifier, log *logger.Logger, now func() time.Time) *EPIUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &EPIUseCase{repo: repo, validator: validator, notifier: notifier, log: log.Named("epis"), now: now}
}

// Create cadastra un EPI. Sin fecha de vencimiento se asume compra + 12 meses.
func (uc *EPIUseCase) Create(ctx context.Context, sess *entity.Session, in dto.CreateEPIRequest) (*dto.EPIResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nome do EPI vazio", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 || in.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: cantidades negativas", domain.ErrInvalidInput)
	}
	if in.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: costo unitario negativo", domain.ErrInvalidInput)
	}
	purchase, err := entity.ParseDate(in.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	expiration := entity.DefaultExpiration(purchase)
	if in.ExpirationDate != "" {
		if expiration, err = entity.ParseDate(in.ExpirationDate); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}
	now := uc.now()
	epi := &entity.EPI{
		ID:             uuid.New().String(),
		CompanyID:      sess.CompanyID,
		Name:           strings.TrimSpace(in.Name),
		Category:       strings.ToLower(strings.TrimSpace(in.Category)),
		Lifespan:       strings.TrimSpace(in.Lifespan),
		Quantity:       in.Quantity,
		MinQuantity:    in.MinQuantity,
		UnitCost:       in.UnitCost,
		PurchaseDate:   purchase,
		CA:             strings.TrimSpace(in.CA),
		ExpirationDate: expiration,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, epi); err != nil {
		return nil, err
	}
	Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess,
		"EPI adicionado", fmt.Sprintf("O EPI %s foi adicionado com sucesso.", epi.Name))
	return ToEPIResponse(epi), nil
}

// List lista los EPIs filtrados por nombre, categoría o CA.
func (uc *EPIUseCase) List(ctx context.Context, sess *entity.Session, search string) ([]dto.EPIResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EPIResponse, 0, len(list))
	for _, e := range list {
		if filter.EPI(e, search) {
			items = append(items, *ToEPIResponse(e))
		}
	}
	return items, nil
}

// LowStock EPIs con cantidad en o por debajo del mínimo, calculados sobre el inventario actual.
func (uc *EPIUseCase) LowStock(ctx context.Context, companyID string) ([]dto.LowStockAlert, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.LowStockAlert, 0)
	for _, e := range list {
		if e.IsLowStock() {
			alerts = append(alerts, dto.LowStockAlert{
				EPIID:       e.ID,
				Name:        e.Name,
				Quantity:    e.Quantity,
				MinQuantity: e.MinQuantity,
			})
		}
	}
	return alerts, nil
}

// ValidateCA consulta el CA con el validador y avisa el resultado.
func (uc *EPIUseCase) ValidateCA(ctx context.Context, sess *entity.Session, ca string) (*dto.CAValidationResponse, error) {
	if strings.TrimSpace(ca) == "" {
		Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationError,
			"CA não informado", "Por favor, informe o número do CA.")
		return nil, fmt.Errorf("%w: CA vacío", domain.ErrInvalidInput)
	}
	res, err := uc.validator.Validate(ctx, ca)
	if err != nil {
		return nil, fmt.Errorf("consulta de CA: %w", err)
	}
	if res.Valid {
		Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess,
			"CA validado", "O CA informado é válido até 12 meses após a data de compra.")
	} else {
		Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationError, "CA inválido", res.Message)
	}
	return &dto.CAValidationResponse{CA: res.CA, Valid: res.Valid, Message: res.Message, CheckedAt: res.CheckedAt}, nil
}

// ToEPIResponse convierte la entidad al DTO de salida.
func ToEPIResponse(e *entity.EPI) *dto.EPIResponse {
	return &dto.EPIResponse{
		ID:             e.ID,
		Name:           e.Name,
		Category:       e.Category,
		Lifespan:       e.Lifespan,
		Quantity:       e.Quantity,
		MinQuantity:    e.MinQuantity,
		LowStock:       e.IsLowStock(),
		UnitCost:       e.UnitCost,
		PurchaseDate:   entity.FormatDate(e.PurchaseDate),
		CA:             e.CA,
		ExpirationDate: entity.FormatDate(e.ExpirationDate),
		CreatedAt:      e.CreatedAt,
	}
}
