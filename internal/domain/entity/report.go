package entity

import (
	"fmt"
	"time"
)

// Report comprobante de un proceso concluido. FileName es solo una etiqueta de presentación:
// no existe un archivo detrás.
type Report struct {
	ID            string
	CompanyID     string
	ProcessID     string // vacío en los comprobantes sembrados
	Type          string // delivery, return
	EmployeeID    string
	EmployeeName  string
	CompletedDate time.Time
	FileName      string
	Items         []ProcessItem
	CreatedAt     time.Time
}

// ReportFileName nombre de archivo mostrado para el comprobante: entrega_epi_NNNNNN.pdf o devolucao_epi_NNNNNN.pdf.
func ReportFileName(processType string, at time.Time) string {
	prefix := "entrega"
	if processType == ProcessReturn {
		prefix = "devolucao"
	}
	return fmt.Sprintf("%s_epi_%06d.pdf", prefix, at.UnixMilli()%1_000_000)
}

// NewReportFromProcess construye el comprobante de un proceso ya concluido.
func NewReportFromProcess(id string, p *Process) (*Report, error) {
	if p.Status != ProcessCompleted || p.CompletedAt == nil {
		return nil, fmt.Errorf("comprobante: el proceso %s no está concluido", p.ID)
	}
	at := *p.CompletedAt
	return &Report{
		ID:            id,
		CompanyID:     p.CompanyID,
		ProcessID:     p.ID,
		Type:          p.Type,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		CompletedDate: DateOf(at),
		FileName:      ReportFileName(p.Type, at),
		Items:         append([]ProcessItem(nil), p.Items...),
		CreatedAt:     at,
	}, nil
}
