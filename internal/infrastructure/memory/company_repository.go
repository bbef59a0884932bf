package memory

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación en memoria del puerto CompanyRepository.
type CompanyRepo struct {
	t *table[entity.Company]
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository() *CompanyRepo {
	return &CompanyRepo{t: newTable("company",
		func(c *entity.Company) string { return c.ID },
		func(c *entity.Company) *entity.Company { cp := *c; return &cp },
	)}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	return r.t.insert(company)
}

// GetByID obtiene una empresa por ID; (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return r.t.get(id), nil
}

// GetByCNPJ obtiene una empresa por CNPJ; (nil, nil) si no existe.
func (r *CompanyRepo) GetByCNPJ(_ context.Context, cnpj string) (*entity.Company, error) {
	return r.t.find(func(c *entity.Company) bool { return c.CNPJ == cnpj }), nil
}

// Update reemplaza una empresa existente.
func (r *CompanyRepo) Update(_ context.Context, company *entity.Company) error {
	return r.t.replace(company)
}

// List devuelve todas las empresas en orden de inserción.
func (r *CompanyRepo) List(_ context.Context) ([]*entity.Company, error) {
	return r.t.list(nil), nil
}
