package repository

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
// Todas las consultas están acotadas a una empresa.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Employee, error)
	GetByCPF(ctx context.Context, companyID, cpf string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error)
}
