package process

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/reports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/domain/confirmation"
	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// Destino del cliente tras concluir un proceso.
const (
	FinalizeRedirect        = "/reports"
	FinalizeRedirectAfterMs = 1000
)

// OpenConfirmation abre la confirmación biométrica del proceso. Reabrir el mismo proceso la reinicia;
// si otro proceso de la empresa tiene una confirmación abierta devuelve domain.ErrConfirmationActive.
func (uc *UseCase) OpenConfirmation(ctx context.Context, sess *entity.Session, processID string) (*dto.ConfirmationResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if c := uc.activeLocked(sess.CompanyID); c != nil && c.ProcessID != processID {
		return nil, fmt.Errorf("proceso %s: %w", c.ProcessID, domain.ErrConfirmationActive)
	}
	p, err := uc.get(ctx, sess.CompanyID, processID)
	if err != nil {
		return nil, err
	}
	if p.Status != entity.ProcessScheduled {
		return nil, fmt.Errorf("%w: proceso en estado %s", domain.ErrInvalidTransition, p.Status)
	}
	if len(p.Items) == 0 {
		return nil, domain.ErrEmptyProcess
	}
	c := confirmation.Open(p.ID, p.EmployeeID, uc.now())
	uc.open[sess.CompanyID] = c
	uc.log.Info().Str("process_id", p.ID).Msg("confirmación abierta")
	return toConfirmationResponse(processID, c), nil
}

// Verify lee la huella del colaborador. El lector se consulta sin retener el candado; si la
// confirmación se cancela o reabre durante la lectura, el resultado se descarta.
func (uc *UseCase) Verify(ctx context.Context, sess *entity.Session, processID string) (*dto.ConfirmationResponse, error) {
	uc.mu.Lock()
	c := uc.activeLocked(sess.CompanyID)
	if c == nil || c.ProcessID != processID {
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: el proceso %s no tiene confirmación abierta", domain.ErrInvalidTransition, processID)
	}
	if c.State != confirmation.StateAwaitingBiometric {
		state := c.State
		uc.mu.Unlock()
		return nil, fmt.Errorf("%w: confirmación en estado %s", domain.ErrInvalidTransition, state)
	}
	employeeID := c.EmployeeID
	uc.mu.Unlock()

	usecase.Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationInfo,
		"Verificando biometria", "Por favor, aguarde...")
	scanErr := uc.reader.Scan(ctx, employeeID)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.open[sess.CompanyID] != c {
		return nil, fmt.Errorf("%w: la confirmación del proceso %s ya no está abierta", domain.ErrInvalidTransition, processID)
	}
	if scanErr != nil {
		uc.log.Warn().Err(scanErr).Str("process_id", processID).Msg("lectura biométrica fallida")
		return nil, fmt.Errorf("verificación del proceso %s: %w", processID, scanErr)
	}
	if err := c.MarkVerified(uc.now()); err != nil {
		return nil, err
	}
	usecase.Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess,
		"Biometria verificada", "A identidade do colaborador foi confirmada.")
	return toConfirmationResponse(processID, c), nil
}

// Finalize concluye el proceso verificado, genera el comprobante y cierra la confirmación.
// Sin verificación previa devuelve domain.ErrInvalidTransition y el proceso queda intacto.
func (uc *UseCase) Finalize(ctx context.Context, sess *entity.Session, processID string) (*dto.FinalizeResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	c := uc.activeLocked(sess.CompanyID)
	if c == nil || c.ProcessID != processID || !c.CanFinalize() {
		state := confirmation.StateIdle
		if c != nil && c.ProcessID == processID {
			state = c.State
		}
		return nil, fmt.Errorf("%w: confirmación en estado %s", domain.ErrInvalidTransition, state)
	}
	p, err := uc.get(ctx, sess.CompanyID, processID)
	if err != nil {
		return nil, err
	}
	if err := p.Complete(uc.now()); err != nil {
		return nil, err
	}
	report, err := entity.NewReportFromProcess(uuid.New().String(), p)
	if err != nil {
		return nil, err
	}
	// El comprobante va primero: si falla, el proceso sigue agendado y la confirmación verificada.
	if err := uc.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("comprobante del proceso %s: %w", p.ID, err)
	}
	if err := uc.processes.Update(ctx, p); err != nil {
		delete(uc.open, sess.CompanyID)
		uc.log.Error().Err(err).Str("process_id", p.ID).Str("report_id", report.ID).Msg("comprobante sin proceso concluido")
		return nil, err
	}
	if err := c.MarkCompleted(); err != nil {
		return nil, err
	}
	delete(uc.open, sess.CompanyID)

	uc.log.Info().Str("process_id", p.ID).Str("report_id", report.ID).Str("file_name", report.FileName).Msg("proceso concluido")
	usecase.Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationSuccess, "Processo concluído",
		fmt.Sprintf("O processo de %s foi concluído com sucesso. O PDF foi gerado.", typeLabel(p.Type)))
	return &dto.FinalizeResponse{
		Process:         *ToProcessResponse(p),
		Report:          reports.ToReportResponse(report),
		Redirect:        FinalizeRedirect,
		RedirectAfterMs: FinalizeRedirectAfterMs,
	}, nil
}

// CancelConfirmation cierra la confirmación del proceso sin tocarlo. Sin confirmación abierta no hace nada.
func (uc *UseCase) CancelConfirmation(ctx context.Context, sess *entity.Session, processID string) (*dto.ConfirmationResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.get(ctx, sess.CompanyID, processID); err != nil {
		return nil, err
	}
	if c := uc.activeLocked(sess.CompanyID); c != nil && c.ProcessID == processID {
		delete(uc.open, sess.CompanyID)
		uc.log.Info().Str("process_id", processID).Str("state", string(c.State)).Msg("confirmación cancelada")
	}
	return toConfirmationResponse(processID, nil), nil
}

// ConfirmationState estado de la confirmación del proceso (idle si no está abierta).
func (uc *UseCase) ConfirmationState(ctx context.Context, sess *entity.Session, processID string) (*dto.ConfirmationResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.get(ctx, sess.CompanyID, processID); err != nil {
		return nil, err
	}
	c := uc.activeLocked(sess.CompanyID)
	if c == nil || c.ProcessID != processID {
		c = nil
	}
	return toConfirmationResponse(processID, c), nil
}

// activeLocked confirmación abierta de la empresa; las que superan el TTL se descartan. Requiere uc.mu.
func (uc *UseCase) activeLocked(companyID string) *confirmation.Confirmation {
	c := uc.open[companyID]
	if c == nil {
		return nil
	}
	if uc.now().Sub(c.OpenedAt) >= uc.ttl {
		delete(uc.open, companyID)
		uc.log.Info().Str("process_id", c.ProcessID).Str("state", string(c.State)).Msg("confirmación vencida descartada")
		return nil
	}
	return c
}

func toConfirmationResponse(processID string, c *confirmation.Confirmation) *dto.ConfirmationResponse {
	if c == nil {
		return &dto.ConfirmationResponse{ProcessID: processID, State: string(confirmation.StateIdle)}
	}
	opened := c.OpenedAt
	return &dto.ConfirmationResponse{
		ProcessID:   processID,
		State:       string(c.State),
		CanFinalize: c.CanFinalize(),
		OpenedAt:    &opened,
		VerifiedAt:  c.VerifiedAt,
	}
}
