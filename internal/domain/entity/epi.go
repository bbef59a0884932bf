package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultValidityMonths meses de validez que se asumen cuando no se informa fecha de vencimiento.
const DefaultValidityMonths = 12

// EPI equipo de protección individual en el inventario de una empresa cliente.
type EPI struct {
	ID             string
	CompanyID      string
	Name           string
	Category       string // capacete, luvas, oculos... usado en los totales de costo
	Lifespan       string // vida útil declarada, texto libre ("12 meses")
	Quantity       int
	MinQuantity    int
	UnitCost       decimal.Decimal
	PurchaseDate   time.Time
	CA             string // Certificado de Aprovação
	ExpirationDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DefaultExpiration fecha de compra + 12 meses.
func DefaultExpiration(purchase time.Time) time.Time {
	return purchase.AddDate(0, DefaultValidityMonths, 0)
}

// IsLowStock informa si la cantidad está en o por debajo del mínimo.
func (e *EPI) IsLowStock() bool {
	return e.Quantity <= e.MinQuantity
}

// DaysToExpire días completos desde today hasta el vencimiento (negativo si ya venció).
func (e *EPI) DaysToExpire(today time.Time) int {
	return int(DateOf(e.ExpirationDate).Sub(DateOf(today)).Hours() / 24)
}
