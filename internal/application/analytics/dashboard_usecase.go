// Package analytics arma el dashboard de la empresa a partir de las series de DashboardRepository.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

// Umbrales de color de los widgets.
const (
	expiringCriticalDays = 5
	expiringWarningDays  = 10
)

const (
	levelCritical = "critical"
	levelWarning  = "warning"
	levelNormal   = "normal"
	levelStockOK  = "ok"
)

var (
	hundred       = decimal.NewFromInt(100)
	stockCritical = decimal.NewFromInt(30)
	stockWarning  = decimal.NewFromInt(70)
)

// DashboardUseCase genera el dashboard de la empresa de la sesión.
//
// Fuente de datos: DashboardRepository (consultas read-only).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

type result[T any] struct {
	val []T
	err error
}

func fetch[T any](ctx context.Context, companyID string, q func(context.Context, string) ([]T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := q(ctx, companyID)
		ch <- result[T]{v, err}
	}()
	return ch
}

// GetDashboard consulta las seis series en paralelo y calcula niveles y porcentajes.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, companyID string) (*dto.DashboardDTO, error) {
	monthlyCh := fetch(ctx, companyID, uc.repo.MonthlyDeliveries)
	topCh := fetch(ctx, companyID, uc.repo.TopEPIs)
	expiringCh := fetch(ctx, companyID, uc.repo.ExpiringEPIs)
	usageCh := fetch(ctx, companyID, uc.repo.UsageByMonth)
	stockCh := fetch(ctx, companyID, uc.repo.StockLevels)
	costCh := fetch(ctx, companyID, uc.repo.CostByCategory)

	monthly, top, expiring := <-monthlyCh, <-topCh, <-expiringCh
	usage, stock, cost := <-usageCh, <-stockCh, <-costCh

	checks := []struct {
		name string
		err  error
	}{
		{"entregas por mes", monthly.err},
		{"EPIs más usados", top.err},
		{"EPIs por vencer", expiring.err},
		{"uso por mes", usage.err},
		{"niveles de stock", stock.err},
		{"costo por categoría", cost.err},
	}
	for _, c := range checks {
		if c.err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", c.name, c.err)
		}
	}

	out := &dto.DashboardDTO{
		MonthlyDeliveries: make([]dto.MonthlyCountDTO, 0, len(monthly.val)),
		TopEPIs:           make([]dto.EPIUsageDTO, 0, len(top.val)),
		ExpiringEPIs:      make([]dto.ExpiringEPIDTO, 0, len(expiring.val)),
		UsageByMonth:      make([]dto.MonthlyEPIUsageDTO, 0, len(usage.val)),
		StockLevels:       make([]dto.StockLevelDTO, 0, len(stock.val)),
		CostByCategory:    make([]dto.CategoryCostDTO, 0, len(cost.val)),
		TotalCost:         decimal.Zero,
	}
	for _, m := range monthly.val {
		out.MonthlyDeliveries = append(out.MonthlyDeliveries, dto.MonthlyCountDTO{Month: m.Month, Quantity: m.Quantity})
	}
	for _, e := range top.val {
		out.TopEPIs = append(out.TopEPIs, dto.EPIUsageDTO{Name: e.Name, Quantity: e.Quantity})
	}
	for _, e := range expiring.val {
		out.ExpiringEPIs = append(out.ExpiringEPIs, dto.ExpiringEPIDTO{Name: e.Name, Days: e.Days, Level: ExpiringLevel(e.Days)})
	}
	for _, u := range usage.val {
		out.UsageByMonth = append(out.UsageByMonth, dto.MonthlyEPIUsageDTO{Month: u.Month, Counts: u.Counts})
	}
	for _, s := range stock.val {
		pct := StockPercentage(s)
		out.StockLevels = append(out.StockLevels, dto.StockLevelDTO{
			Name: s.Name, Current: s.Current, Min: s.Min, Percentage: pct, Level: StockLevel(pct),
		})
	}
	for _, c := range cost.val {
		out.TotalCost = out.TotalCost.Add(c.Total)
	}
	for _, c := range cost.val {
		share := decimal.Zero
		if out.TotalCost.IsPositive() {
			share = c.Total.Div(out.TotalCost).Mul(hundred).Round(2)
		}
		out.CostByCategory = append(out.CostByCategory, dto.CategoryCostDTO{Category: c.Category, Total: c.Total.Round(2), Share: share})
	}
	out.TotalCost = out.TotalCost.Round(2)
	return out, nil
}

// StockPercentage ancho de la barra: current / (min*2) * 100, redondeado a 2 decimales y limitado a 100.
// Con mínimo cero la barra está llena.
func StockPercentage(s entity.StockLevel) decimal.Decimal {
	if s.Min <= 0 {
		return hundred
	}
	pct := decimal.NewFromInt(int64(s.Current)).
		Div(decimal.NewFromInt(int64(s.Min * 2))).
		Mul(hundred).
		Round(2)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// StockLevel color de la barra: critical hasta 30%, warning hasta 70%.
func StockLevel(pct decimal.Decimal) string {
	switch {
	case pct.LessThanOrEqual(stockCritical):
		return levelCritical
	case pct.LessThanOrEqual(stockWarning):
		return levelWarning
	default:
		return levelStockOK
	}
}

// ExpiringLevel color del aviso de vencimiento: critical hasta 5 días, warning hasta 10.
func ExpiringLevel(days int) string {
	switch {
	case days <= expiringCriticalDays:
		return levelCritical
	case days <= expiringWarningDays:
		return levelWarning
	default:
		return levelNormal
	}
}
