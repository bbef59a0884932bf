package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epi-console/internal/application/analytics"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/infrastructure/memory"
)

func TestStockPercentage(t *testing.T) {
	tests := []struct {
		current, min int
		want         string
		level        string
	}{
		{8, 5, "80", "ok"},
		{12, 10, "60", "warning"},
		{6, 5, "60", "warning"},
		{3, 5, "30", "critical"},
		{1, 3, "16.67", "critical"},
		{50, 5, "100", "ok"},
		{4, 0, "100", "ok"},
	}
	for _, tt := range tests {
		pct := analytics.StockPercentage(entity.StockLevel{Current: tt.current, Min: tt.min})
		assert.True(t, decimal.RequireFromString(tt.want).Equal(pct), "%d/%d: got %s", tt.current, tt.min, pct)
		assert.Equal(t, tt.level, analytics.StockLevel(pct))
	}
}

func TestExpiringLevel(t *testing.T) {
	assert.Equal(t, "critical", analytics.ExpiringLevel(3))
	assert.Equal(t, "critical", analytics.ExpiringLevel(5))
	assert.Equal(t, "warning", analytics.ExpiringLevel(7))
	assert.Equal(t, "warning", analytics.ExpiringLevel(10))
	assert.Equal(t, "normal", analytics.ExpiringLevel(15))
}

func TestGetDashboard_SeriesSembradas(t *testing.T) {
	s := memory.NewStore(nil)
	require.NoError(t, memory.Seed(context.Background(), s, time.Now()))
	uc := analytics.NewDashboardUseCase(s.Dashboard)

	out, err := uc.GetDashboard(context.Background(), memory.SeedCompanyID)
	require.NoError(t, err)
	require.Len(t, out.MonthlyDeliveries, 5)
	assert.Equal(t, "Mai", out.MonthlyDeliveries[4].Month)
	assert.Equal(t, 18, out.MonthlyDeliveries[4].Quantity)
	assert.Len(t, out.TopEPIs, 5)
	assert.Equal(t, "critical", out.ExpiringEPIs[4].Level)
	assert.Equal(t, 14, out.UsageByMonth[4].Counts["luvas"])
	require.Len(t, out.StockLevels, 3)
	assert.Equal(t, "ok", out.StockLevels[0].Level)
	assert.True(t, decimal.RequireFromString("2431").Equal(out.TotalCost), "total %s", out.TotalCost)

	share := decimal.Zero
	for _, c := range out.CostByCategory {
		share = share.Add(c.Share)
	}
	assert.True(t, share.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(decimal.RequireFromString("0.02")))

	empty, err := uc.GetDashboard(context.Background(), "2")
	require.NoError(t, err)
	assert.Empty(t, empty.MonthlyDeliveries)
	assert.True(t, empty.TotalCost.IsZero())
}

type failingRepo struct{ *memory.DashboardRepo }

func (failingRepo) StockLevels(context.Context, string) ([]entity.StockLevel, error) {
	return nil, errors.New("sin conexión")
}

func TestGetDashboard_PropagaErrores(t *testing.T) {
	uc := analytics.NewDashboardUseCase(failingRepo{memory.NewDashboardRepository()})
	_, err := uc.GetDashboard(context.Background(), "1")
	assert.ErrorContains(t, err, "niveles de stock")
}
