package dto

import "time"

// ReportFilter parámetros de la lista de comprobantes.
type ReportFilter struct {
	Type       string `query:"type" validate:"omitempty,oneof=all delivery return"`
	DateFilter string `query:"date_filter" validate:"omitempty,oneof=all recent custom"`
	Start      string `query:"start" validate:"omitempty,datetime=2006-01-02"`
	End        string `query:"end" validate:"omitempty,datetime=2006-01-02"`
	EmployeeID string `query:"employee_id" validate:"omitempty,max=64"`
	Search     string `query:"search" validate:"omitempty,max=200"`
}

// ReportResponse salida de un comprobante.
type ReportResponse struct {
	ID            string                `json:"id"`
	ProcessID     string                `json:"process_id,omitempty"`
	Type          string                `json:"type"`
	EmployeeID    string                `json:"employee_id"`
	EmployeeName  string                `json:"employee_name"`
	CompletedDate string                `json:"completed_date"`
	FileName      string                `json:"file_name"`
	Items         []ProcessItemResponse `json:"items"`
}

// DownloadResponse resultado de la descarga simulada.
type DownloadResponse struct {
	FileName    string    `json:"file_name"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// NotificationResponse aviso del feed del usuario.
type NotificationResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
