package repository

import (
	"context"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// DashboardRepository fuente read-only de las series del dashboard de una empresa.
type DashboardRepository interface {
	MonthlyDeliveries(ctx context.Context, companyID string) ([]entity.MonthlyCount, error)
	TopEPIs(ctx context.Context, companyID string) ([]entity.EPIUsage, error)
	ExpiringEPIs(ctx context.Context, companyID string) ([]entity.ExpiringEPI, error)
	UsageByMonth(ctx context.Context, companyID string) ([]entity.MonthlyEPIUsage, error)
	StockLevels(ctx context.Context, companyID string) ([]entity.StockLevel, error)
	CostByCategory(ctx context.Context, companyID string) ([]entity.CategoryCost, error)
}
