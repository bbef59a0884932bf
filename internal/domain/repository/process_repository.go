package repository

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// ProcessRepository define el puerto de persistencia para los procesos de entrega/devolución.
type ProcessRepository interface {
	Create(ctx context.Context, process *entity.Process) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Process, error)
	Update(ctx context.Context, process *entity.Process) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Process, error)
}

// ReportRepository define el puerto de persistencia para los comprobantes.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Report, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Report, error)
}
