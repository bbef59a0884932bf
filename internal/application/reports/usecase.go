// Package reports lista los comprobantes de procesos concluidos y simula su descarga.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/filter"
	"github.com/jhoicas/epi-console/internal/domain/repository"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// ReportUseCase comprobantes de la empresa de la sesión.
type ReportUseCase struct {
	repo          repository.ReportRepository
	notifier      ports.Notifier
	downloadDelay time.Duration
	log           *logger.Logger
	now           func() time.Time
}

// NewReportUseCase construye el caso de uso. downloadDelay es la duración de la descarga simulada.
func NewReportUseCase(repo repository.ReportRepository, notifier ports.Notifier, downloadDelay time.Duration, log *logger.Logger, now func() time.Time) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{repo: repo, notifier: notifier, downloadDelay: downloadDelay, log: log.Named("reports"), now: now}
}

// List aplica el filtro combinado (tipo, fecha, colaborador y texto) en orden de inserción.
func (uc *ReportUseCase) List(ctx context.Context, sess *entity.Session, in dto.ReportFilter) ([]dto.ReportResponse, error) {
	f, err := uc.toFilter(in)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCompany(ctx, sess.CompanyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportResponse, 0, len(list))
	for _, r := range list {
		if f.Match(r) {
			items = append(items, ToReportResponse(r))
		}
	}
	return items, nil
}

func (uc *ReportUseCase) toFilter(in dto.ReportFilter) (filter.Report, error) {
	f := filter.Report{
		Type:       in.Type,
		DateFilter: in.DateFilter,
		EmployeeID: in.EmployeeID,
		Search:     in.Search,
		Now:        uc.now(),
	}
	if in.Start != "" {
		start, err := entity.ParseDate(in.Start)
		if err != nil {
			return f, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		f.Start = &start
	}
	if in.End != "" {
		end, err := entity.ParseDate(in.End)
		if err != nil {
			return f, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		f.End = &end
	}
	if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
		return f, fmt.Errorf("%w: la fecha final es anterior a la inicial", domain.ErrInvalidInput)
	}
	return f, nil
}

// Download simula la descarga del comprobante: avisa el inicio, espera y avisa el fin.
// No se generan bytes; FileName es solo la etiqueta del comprobante.
func (uc *ReportUseCase) Download(ctx context.Context, sess *entity.Session, id string) (*dto.DownloadResponse, error) {
	report, err := uc.repo.GetByID(ctx, sess.CompanyID, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, fmt.Errorf("comprobante %s: %w", id, domain.ErrNotFound)
	}
	started := uc.now()
	usecase.Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationInfo,
		"Baixando relatório", fmt.Sprintf("O relatório %s está sendo baixado.", report.FileName))

	if uc.downloadDelay > 0 {
		timer := time.NewTimer(uc.downloadDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("descarga de %s: %w", report.FileName, ctx.Err())
		}
	}

	completed := uc.now()
	usecase.Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess,
		"Download concluído", fmt.Sprintf("O relatório %s foi baixado com sucesso.", report.FileName))
	uc.log.Info().Str("report_id", id).Str("file_name", report.FileName).Msg("comprobante descargado")
	return &dto.DownloadResponse{FileName: report.FileName, StartedAt: started, CompletedAt: completed}, nil
}

// ToReportResponse convierte el comprobante al DTO de salida.
func ToReportResponse(r *entity.Report) dto.ReportResponse {
	items := make([]dto.ProcessItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.ProcessItemResponse{EPIID: it.EPIID, EPIName: it.EPIName, Quantity: it.Quantity})
	}
	return dto.ReportResponse{
		ID:            r.ID,
		ProcessID:     r.ProcessID,
		Type:          r.Type,
		EmployeeID:    r.EmployeeID,
		EmployeeName:  r.EmployeeName,
		CompletedDate: entity.FormatDate(r.CompletedDate),
		FileName:      r.FileName,
		Items:         items,
	}
}
