package entity

import "github.com/shopspring/decimal"

// Series fijas del dashboard (datos de demostración, no derivados de los registros).

// MonthlyCount cantidad de entregas de un mes.
type MonthlyCount struct {
	Month    string
	Quantity int
}

// EPIUsage uso acumulado de un EPI.
type EPIUsage struct {
	Name     string
	Quantity int
}

// ExpiringEPI EPI próximo a vencer.
type ExpiringEPI struct {
	Name string
	Days int
}

// MonthlyEPIUsage uso por EPI dentro de un mes; Counts está indexado por categoría.
type MonthlyEPIUsage struct {
	Month  string
	Counts map[string]int
}

// StockLevel existencia actual frente al mínimo.
type StockLevel struct {
	Name    string
	Current int
	Min     int
}

// CategoryCost costo total por categoría de EPI.
type CategoryCost struct {
	Category string
	Total    decimal.Decimal
}
