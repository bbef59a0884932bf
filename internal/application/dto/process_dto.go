package dto

import "time"

// ProcessItemRequest línea de EPI a agregar a un proceso.
type ProcessItemRequest struct {
	EPIID    string `json:"epi_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=10000"`
}

// CreateProcessRequest entrada para agendar una entrega o devolución.
type CreateProcessRequest struct {
	Type          string               `json:"type" validate:"required,oneof=delivery return"`
	EmployeeID    string               `json:"employee_id" validate:"required"`
	ScheduledDate string               `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Items         []ProcessItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ProcessItemResponse línea de un proceso.
type ProcessItemResponse struct {
	EPIID    string `json:"epi_id"`
	EPIName  string `json:"epi_name"`
	Quantity int    `json:"quantity"`
}

// ProcessResponse salida de un proceso.
type ProcessResponse struct {
	ID            string                `json:"id"`
	Type          string                `json:"type"`
	EmployeeID    string                `json:"employee_id"`
	EmployeeName  string                `json:"employee_name"`
	ScheduledDate string                `json:"scheduled_date"`
	Status        string                `json:"status"`
	Items         []ProcessItemResponse `json:"items"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
}

// ActiveProcessFilter parámetros de la lista de procesos activos.
type ActiveProcessFilter struct {
	Type   string `query:"type" validate:"omitempty,oneof=all delivery return"`
	Search string `query:"search" validate:"omitempty,max=200"`
}

// ActiveProcessListResponse procesos agendados más la alerta de estoque bajo.
type ActiveProcessListResponse struct {
	Items         []ProcessResponse `json:"items"`
	Total         int               `json:"total"`
	LowStockAlert []LowStockAlert   `json:"low_stock_alert"`
}

// ConfirmationResponse estado de la confirmación biométrica de un proceso.
type ConfirmationResponse struct {
	ProcessID   string     `json:"process_id"`
	State       string     `json:"state"`
	CanFinalize bool       `json:"can_finalize"`
	OpenedAt    *time.Time `json:"opened_at,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
}

// FinalizeResponse resultado de concluir un proceso.
type FinalizeResponse struct {
	Process         ProcessResponse `json:"process"`
	Report          ReportResponse  `json:"report"`
	Redirect        string          `json:"redirect"`
	RedirectAfterMs int             `json:"redirect_after_ms"`
}
