package repository

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// List devuelve las empresas en orden de inserción.
	List(ctx context.Context) ([]*entity.Company, error)
}
