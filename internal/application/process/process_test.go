package process_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/internal/application/process"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/infrastructure/device"
	"github.com/jhoicas/epi-console/internal/infrastructure/memory"
)

var fixedNow = time.Date(2025, 5, 25, 14, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fixture struct {
	uc       *process.UseCase
	store    *memory.Store
	reader   *device.BiometricReader
	notifier *usecase.NotificationUseCase
	sess     *entity.Session
}

func newFixture(t *testing.T, reader ports.BiometricReader) *fixture {
	return newFixtureWith(t, reader, nil)
}

// newFixtureWith permite reemplazar dependencias antes de construir el caso de uso.
func newFixtureWith(t *testing.T, reader ports.BiometricReader, override func(*process.Deps)) *fixture {
	t.Helper()
	s := memory.NewStore(clock)
	require.NoError(t, memory.Seed(context.Background(), s, fixedNow))
	n := usecase.NewNotificationUseCase(s.Notifications, time.Minute, clock)
	sim := device.NewBiometricReader(0, 0, nil)
	if reader == nil {
		reader = sim
	}
	epis := usecase.NewEPIUseCase(s.EPIs, device.NewCAValidator(0, clock, nil), n, nil, clock)
	deps := process.Deps{
		Processes: s.Processes,
		Employees: s.Employees,
		EPIs:      s.EPIs,
		Reports:   s.Reports,
		Reader:    reader,
		Notifier:  n,
		LowStock:  epis,
		Now:       clock,
	}
	if override != nil {
		override(&deps)
	}
	return &fixture{
		uc:       process.NewUseCase(deps),
		store:    s,
		reader:   sim,
		notifier: n,
		sess:     &entity.Session{UserID: "2", Role: entity.RoleManager, CompanyID: memory.SeedCompanyID},
	}
}

func TestCreate_AgrupaEPIsRepetidos(t *testing.T) {
	f := newFixture(t, nil)
	out, err := f.uc.Create(context.Background(), f.sess, dto.CreateProcessRequest{
		Type: entity.ProcessReturn, EmployeeID: "2", ScheduledDate: "2025-06-01",
		Items: []dto.ProcessItemRequest{{EPIID: "1", Quantity: 1}, {EPIID: "2", Quantity: 2}, {EPIID: "1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProcessScheduled, out.Status)
	assert.Equal(t, "Maria Oliveira", out.EmployeeName)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "Capacete de Segurança", out.Items[0].EPIName)
	assert.Equal(t, 4, out.Items[0].Quantity)
	assert.Equal(t, 2, out.Items[1].Quantity)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	base := dto.CreateProcessRequest{Type: entity.ProcessDelivery, EmployeeID: "1", ScheduledDate: "2025-06-01",
		Items: []dto.ProcessItemRequest{{EPIID: "1", Quantity: 1}}}

	noEmployee := base
	noEmployee.EmployeeID = ""
	_, err := f.uc.Create(ctx, f.sess, noEmployee)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	noDate := base
	noDate.ScheduledDate = ""
	_, err = f.uc.Create(ctx, f.sess, noDate)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	noItems := base
	noItems.Items = nil
	_, err = f.uc.Create(ctx, f.sess, noItems)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badEPI := base
	badEPI.Items = []dto.ProcessItemRequest{{EPIID: "99", Quantity: 1}}
	_, err = f.uc.Create(ctx, f.sess, badEPI)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	unknown := base
	unknown.EmployeeID = "99"
	_, err = f.uc.Create(ctx, f.sess, unknown)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CantidadAcumuladaFueraDeRango(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, f.sess, dto.CreateProcessRequest{
		Type: entity.ProcessDelivery, EmployeeID: "1", ScheduledDate: "2025-06-01",
		Items: []dto.ProcessItemRequest{{EPIID: "1", Quantity: math.MaxInt}, {EPIID: "1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := f.uc.List(ctx, f.sess)
	require.NoError(t, err)
	assert.Len(t, list, 2, "no se agenda nada")
}

func TestListActive_FiltroYAlerta(t *testing.T) {
	f := newFixture(t, nil)
	out, err := f.uc.ListActive(context.Background(), f.sess, dto.ActiveProcessFilter{Type: "delivery", Search: "óculos"})
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "2", out.Items[0].ID)
	require.Len(t, out.LowStockAlert, 1)
	assert.Equal(t, "Protetor Auricular", out.LowStockAlert[0].Name)
}

func TestConfirmation_FlujoCompletoGeneraComprobante(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	st, err := f.uc.ConfirmationState(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "idle", st.State)

	st, err = f.uc.OpenConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_biometric", st.State)
	assert.False(t, st.CanFinalize)

	_, err = f.uc.Finalize(ctx, f.sess, "1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "no se concluye sin verificación")
	p, _ := f.store.Processes.GetByID(ctx, f.sess.CompanyID, "1")
	assert.Equal(t, entity.ProcessScheduled, p.Status)

	st, err = f.uc.Verify(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "verified", st.State)
	assert.True(t, st.CanFinalize)

	out, err := f.uc.Finalize(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProcessCompleted, out.Process.Status)
	assert.Equal(t, "/reports", out.Redirect)
	assert.Equal(t, 1000, out.RedirectAfterMs)
	assert.Equal(t, "2025-05-25", out.Report.CompletedDate)
	assert.Equal(t, "João Silva", out.Report.EmployeeName)
	assert.Regexp(t, `^entrega_epi_\d{6}\.pdf$`, out.Report.FileName)
	assert.Len(t, out.Report.Items, 2)

	reports, _ := f.store.Reports.ListByCompany(ctx, f.sess.CompanyID)
	assert.Len(t, reports, 3)

	active, err := f.uc.ListActive(ctx, f.sess, dto.ActiveProcessFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, active.Total, "el proceso concluido sale de la lista activa")

	st, err = f.uc.ConfirmationState(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "idle", st.State)

	_, err = f.uc.OpenConfirmation(ctx, f.sess, "1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "un proceso concluido no se reabre")
}

func TestConfirmation_UnaPorEmpresa(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.uc.OpenConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	_, err = f.uc.OpenConfirmation(ctx, f.sess, "2")
	assert.ErrorIs(t, err, domain.ErrConfirmationActive)

	_, err = f.uc.AddItem(ctx, f.sess, "1", dto.ProcessItemRequest{EPIID: "3", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrConfirmationActive, "no se editan los EPIs con la confirmación abierta")

	_, err = f.uc.Verify(ctx, f.sess, "1")
	require.NoError(t, err)
	st, err := f.uc.OpenConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_biometric", st.State, "reabrir reinicia la confirmación")

	st, err = f.uc.CancelConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "idle", st.State)
	p, _ := f.store.Processes.GetByID(ctx, f.sess.CompanyID, "1")
	assert.Equal(t, entity.ProcessScheduled, p.Status, "cancelar no toca el proceso")

	_, err = f.uc.OpenConfirmation(ctx, f.sess, "2")
	assert.NoError(t, err)

	other := &entity.Session{UserID: "x", CompanyID: "2"}
	_, err = f.uc.ConfirmationState(ctx, other, "1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfirmation_LecturaFallidaQuedaEsperando(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.reader.FailScansFor("1", true)

	_, err := f.uc.OpenConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	_, err = f.uc.Verify(ctx, f.sess, "1")
	assert.ErrorIs(t, err, domain.ErrScanFailed)

	st, err := f.uc.ConfirmationState(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_biometric", st.State)

	f.reader.FailScansFor("1", false)
	st, err = f.uc.Verify(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "verified", st.State)
}

// blockingReader retiene Scan hasta que se cierre release.
type blockingReader struct {
	started chan struct{}
	release chan struct{}
}

func (r *blockingReader) Scan(ctx context.Context, _ string) error {
	close(r.started)
	select {
	case <-r.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *blockingReader) Enroll(context.Context, string) error { return nil }

func TestConfirmation_CancelarDuranteLaLectura(t *testing.T) {
	reader := &blockingReader{started: make(chan struct{}), release: make(chan struct{})}
	f := newFixture(t, reader)
	ctx := context.Background()

	_, err := f.uc.OpenConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := f.uc.Verify(ctx, f.sess, "1")
		done <- err
	}()
	<-reader.started

	// El candado no se retiene durante la lectura: cancelar no se bloquea.
	_, err = f.uc.CancelConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	close(reader.release)

	assert.ErrorIs(t, <-done, domain.ErrInvalidTransition)
	st, err := f.uc.ConfirmationState(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "idle", st.State)
}

func TestItems_AgregarYQuitar(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	out, err := f.uc.AddItem(ctx, f.sess, "2", dto.ProcessItemRequest{EPIID: "3", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 3, out.Items[0].Quantity)

	out, err = f.uc.AddItem(ctx, f.sess, "2", dto.ProcessItemRequest{EPIID: "1", Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	out, err = f.uc.RemoveItem(ctx, f.sess, "2", "3")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "1", out.Items[0].EPIID)

	_, err = f.uc.RemoveItem(ctx, f.sess, "2", "3")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.AddItem(ctx, f.sess, "2", dto.ProcessItemRequest{EPIID: "1", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfirmation_VencidaNoBloqueaLaEmpresa(t *testing.T) {
	now := fixedNow
	f := newFixtureWith(t, nil, func(d *process.Deps) {
		d.Now = func() time.Time { return now }
		d.ConfirmationTTL = 10 * time.Minute
	})
	ctx := context.Background()
	other := &entity.Session{UserID: "3", Role: entity.RoleManager, CompanyID: memory.SeedCompanyID}

	_, err := f.uc.OpenConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	now = now.Add(9 * time.Minute)
	_, err = f.uc.OpenConfirmation(ctx, other, "2")
	assert.ErrorIs(t, err, domain.ErrConfirmationActive)

	now = now.Add(time.Minute)
	st, err := f.uc.ConfirmationState(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "idle", st.State, "la confirmación abandonada vence")

	st, err = f.uc.OpenConfirmation(ctx, other, "2")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_biometric", st.State)

	_, err = f.uc.Verify(ctx, f.sess, "1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// flakyReports falla al crear comprobantes mientras fail sea true.
type flakyReports struct {
	*memory.ReportRepo
	fail bool
}

func (r *flakyReports) Create(ctx context.Context, report *entity.Report) error {
	if r.fail {
		return errors.New("almacenamiento no disponible")
	}
	return r.ReportRepo.Create(ctx, report)
}

func TestFinalize_FalloDelComprobanteNoConcluyeElProceso(t *testing.T) {
	reports := &flakyReports{fail: true}
	f := newFixtureWith(t, nil, func(d *process.Deps) {
		reports.ReportRepo = d.Reports.(*memory.ReportRepo)
		d.Reports = reports
	})
	ctx := context.Background()

	_, err := f.uc.OpenConfirmation(ctx, f.sess, "1")
	require.NoError(t, err)
	_, err = f.uc.Verify(ctx, f.sess, "1")
	require.NoError(t, err)

	_, err = f.uc.Finalize(ctx, f.sess, "1")
	require.Error(t, err)
	p, err := f.store.Processes.GetByID(ctx, f.sess.CompanyID, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProcessScheduled, p.Status, "sin comprobante el proceso sigue agendado")
	st, err := f.uc.ConfirmationState(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, "verified", st.State)

	reports.fail = false
	out, err := f.uc.Finalize(ctx, f.sess, "1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProcessCompleted, out.Process.Status)
	list, err := f.store.Reports.ListByCompany(ctx, f.sess.CompanyID)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
