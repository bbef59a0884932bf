package repository

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// EPIRepository define el puerto de persistencia para el inventario de EPIs.
type EPIRepository interface {
	Create(ctx context.Context, epi *entity.EPI) error
	GetByID(ctx context.Context, companyID, id string) (*entity.EPI, error)
	Update(ctx context.Context, epi *entity.EPI) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.EPI, error)
}
