package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardSeries series de demostración de una empresa.
type DashboardSeries struct {
	Monthly      []entity.MonthlyCount
	TopEPIs      []entity.EPIUsage
	Expiring     []entity.ExpiringEPI
	UsageByMonth []entity.MonthlyEPIUsage
	StockLevels  []entity.StockLevel
	Costs        []entity.CategoryCost
}

// DashboardRepo fuente read-only; una empresa sin series devuelve listas vacías.
type DashboardRepo struct {
	mu        sync.RWMutex
	byCompany map[string]DashboardSeries
}

// NewDashboardRepository construye la fuente vacía.
func NewDashboardRepository() *DashboardRepo {
	return &DashboardRepo{byCompany: make(map[string]DashboardSeries)}
}

// Load reemplaza las series de la empresa.
func (r *DashboardRepo) Load(companyID string, s DashboardSeries) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCompany[companyID] = s
}

func (r *DashboardRepo) series(companyID string) DashboardSeries {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byCompany[companyID]
}

func (r *DashboardRepo) MonthlyDeliveries(_ context.Context, companyID string) ([]entity.MonthlyCount, error) {
	return append([]entity.MonthlyCount{}, r.series(companyID).Monthly...), nil
}

func (r *DashboardRepo) TopEPIs(_ context.Context, companyID string) ([]entity.EPIUsage, error) {
	return append([]entity.EPIUsage{}, r.series(companyID).TopEPIs...), nil
}

func (r *DashboardRepo) ExpiringEPIs(_ context.Context, companyID string) ([]entity.ExpiringEPI, error) {
	return append([]entity.ExpiringEPI{}, r.series(companyID).Expiring...), nil
}

func (r *DashboardRepo) UsageByMonth(_ context.Context, companyID string) ([]entity.MonthlyEPIUsage, error) {
	src := r.series(companyID).UsageByMonth
	out := make([]entity.MonthlyEPIUsage, 0, len(src))
	for _, m := range src {
		counts := make(map[string]int, len(m.Counts))
		for k, v := range m.Counts {
			counts[k] = v
		}
		out = append(out, entity.MonthlyEPIUsage{Month: m.Month, Counts: counts})
	}
	return out, nil
}

func (r *DashboardRepo) StockLevels(_ context.Context, companyID string) ([]entity.StockLevel, error) {
	return append([]entity.StockLevel{}, r.series(companyID).StockLevels...), nil
}

func (r *DashboardRepo) CostByCategory(_ context.Context, companyID string) ([]entity.CategoryCost, error) {
	return append([]entity.CategoryCost{}, r.series(companyID).Costs...), nil
}
