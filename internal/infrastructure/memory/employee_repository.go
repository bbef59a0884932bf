package memory

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación en memoria del puerto EmployeeRepository.
type EmployeeRepo struct {
	t *table[entity.Employee]
}

// NewEmployeeRepository construye el adaptador para colaboradores.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{t: newTable("employee",
		func(e *entity.Employee) string { return e.ID },
		cloneEmployee,
	)}
}

func cloneEmployee(e *entity.Employee) *entity.Employee {
	cp := *e
	if e.BiometricsAt != nil {
		at := *e.BiometricsAt
		cp.BiometricsAt = &at
	}
	return &cp
}

func (r *EmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	return r.t.insert(employee)
}

// GetByID devuelve (nil, nil) si no existe o pertenece a otra empresa.
func (r *EmployeeRepo) GetByID(_ context.Context, companyID, id string) (*entity.Employee, error) {
	e := r.t.get(id)
	if e == nil || e.CompanyID != companyID {
		return nil, nil
	}
	return e, nil
}

func (r *EmployeeRepo) GetByCPF(_ context.Context, companyID, cpf string) (*entity.Employee, error) {
	return r.t.find(func(e *entity.Employee) bool {
		return e.CompanyID == companyID && e.CPF == cpf
	}), nil
}

func (r *EmployeeRepo) Update(_ context.Context, employee *entity.Employee) error {
	return r.t.replace(employee)
}

func (r *EmployeeRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Employee, error) {
	return r.t.list(func(e *entity.Employee) bool { return e.CompanyID == companyID }), nil
}
