package memory

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

var _ repository.EPIRepository = (*EPIRepo)(nil)

// EPIRepo implementación en memoria del inventario de EPIs.
type EPIRepo struct {
	t *table[entity.EPI]
}

// NewEPIRepository construye el adaptador.
func NewEPIRepository() *EPIRepo {
	return &EPIRepo{t: newTable("epi",
		func(e *entity.EPI) string { return e.ID },
		func(e *entity.EPI) *entity.EPI { cp := *e; return &cp },
	)}
}

func (r *EPIRepo) Create(_ context.Context, epi *entity.EPI) error {
	return r.t.insert(epi)
}

// GetByID devuelve (nil, nil) si no existe o pertenece a otra empresa.
func (r *EPIRepo) GetByID(_ context.Context, companyID, id string) (*entity.EPI, error) {
	e := r.t.get(id)
	if e == nil || e.CompanyID != companyID {
		return nil, nil
	}
	return e, nil
}

func (r *EPIRepo) Update(_ context.Context, epi *entity.EPI) error {
	return r.t.replace(epi)
}

func (r *EPIRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.EPI, error) {
	return r.t.list(func(e *entity.EPI) bool { return e.CompanyID == companyID }), nil
}
