package dto

import "github.com/shopspring/decimal"

// DashboardDTO respuesta de GET /api/dashboard.
type DashboardDTO struct {
	MonthlyDeliveries []MonthlyCountDTO    `json:"monthly_deliveries"`
	TopEPIs           []EPIUsageDTO        `json:"top_epis"`
	ExpiringEPIs      []ExpiringEPIDTO     `json:"expiring_epis"`
	UsageByMonth      []MonthlyEPIUsageDTO `json:"usage_by_month"`
	StockLevels       []StockLevelDTO      `json:"stock_levels"`
	CostByCategory    []CategoryCostDTO    `json:"cost_by_category"`
	TotalCost         decimal.Decimal      `json:"total_cost"`
}

// MonthlyCountDTO entregas de un mes.
type MonthlyCountDTO struct {
	Month    string `json:"month"`
	Quantity int    `json:"quantity"`
}

// EPIUsageDTO uso acumulado de un EPI.
type EPIUsageDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ExpiringEPIDTO EPI próximo a vencer; Level: critical (<=5 días), warning (<=10), normal.
type ExpiringEPIDTO struct {
	Name  string `json:"name"`
	Days  int    `json:"days"`
	Level string `json:"level"`
}

// MonthlyEPIUsageDTO uso por categoría dentro de un mes.
type MonthlyEPIUsageDTO struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}

// StockLevelDTO barra de estoque: Percentage = current / (min*2) * 100, limitado a 100.
type StockLevelDTO struct {
	Name       string          `json:"name"`
	Current    int             `json:"current"`
	Min        int             `json:"min"`
	Percentage decimal.Decimal `json:"percentage"`
	Level      string          `json:"level"` // critical (<=30), warning (<=70), ok
}

// CategoryCostDTO costo total por categoría y su participación en el total.
type CategoryCostDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Share    decimal.Decimal `json:"share"` // porcentaje del costo total
}
