package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEPIRequest entrada para cadastrar un EPI. ExpirationDate vacío = compra + 12 meses.
type CreateEPIRequest struct {
	Name           string          `json:"name" validate:"required,notblank,max=200"`
	Category       string          `json:"category" validate:"omitempty,max=60"`
	Lifespan       string          `json:"lifespan" validate:"omitempty,max=60"`
	Quantity       int             `json:"quantity" validate:"min=0"`
	MinQuantity    int             `json:"min_quantity" validate:"min=0"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	PurchaseDate   string          `json:"purchase_date" validate:"required,datetime=2006-01-02"`
	CA             string          `json:"ca" validate:"required,max=20"`
	ExpirationDate string          `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
}

// EPIResponse salida de un EPI.
type EPIResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Lifespan       string          `json:"lifespan"`
	Quantity       int             `json:"quantity"`
	MinQuantity    int             `json:"min_quantity"`
	LowStock       bool            `json:"low_stock"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	PurchaseDate   string          `json:"purchase_date"`
	CA             string          `json:"ca"`
	ExpirationDate string          `json:"expiration_date"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ValidateCARequest entrada para consultar un CA.
type ValidateCARequest struct {
	CA string `json:"ca" validate:"omitempty,max=20"`
}

// CAValidationResponse resultado de la consulta de CA.
type CAValidationResponse struct {
	CA        string    `json:"ca"`
	Valid     bool      `json:"valid"`
	Message   string    `json:"message"`
	CheckedAt time.Time `json:"checked_at"`
}

// LowStockAlert EPI en o por debajo del mínimo.
type LowStockAlert struct {
	EPIID       string `json:"epi_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
}
