package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/epi-console/internal/application/analytics"
	"github.com/jhoicas/epi-console/internal/application/auth"
	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/navigation"
	"github.com/jhoicas/epi-console/internal/application/process"
	"github.com/jhoicas/epi-console/internal/application/reports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/infrastructure/device"
	"github.com/jhoicas/epi-console/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/epi-console/internal/interfaces/http"
)

var fixedNow = time.Date(2025, 5, 25, 14, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

// newServer arma la API completa sobre el store en memoria con dispositivos sin retardo.
func newServer(t *testing.T) *fiber.App {
	t.Helper()
	s := memory.NewStore(clock)
	require.NoError(t, memory.Seed(context.Background(), s, fixedNow))

	notifications := usecase.NewNotificationUseCase(s.Notifications, time.Minute, clock)
	reader := device.NewBiometricReader(0, 0, nil)
	epiUC := usecase.NewEPIUseCase(s.EPIs, device.NewCAValidator(0, clock, nil), notifications, nil, clock)
	// Tokens firmados con el reloj real: golang-jwt valida exp contra time.Now.
	authUC := auth.NewAuthUseCase(s.Users, s.RevokedTokens, notifications, auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "epi-console-test",
	}, nil)

	app := apphttp.NewApp("epi-console-test", nil)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      authUC,
		Navigator:   navigation.NewNavigator(epiUC, nil),
		CompanyUC:   usecase.NewCompanyUseCase(s.Companies, notifications, nil, clock),
		EmployeeUC:  usecase.NewEmployeeUseCase(s.Employees, reader, notifications, nil, clock),
		EPIUC:       epiUC,
		ReportUC:    reports.NewReportUseCase(s.Reports, notifications, 0, nil, clock),
		DashboardUC: appanalytics.NewDashboardUseCase(s.Dashboard),
		ProcessUC: process.NewUseCase(process.Deps{
			Processes: s.Processes,
			Employees: s.Employees,
			EPIs:      s.EPIs,
			Reports:   s.Reports,
			Reader:    reader,
			Notifier:  notifications,
			LowStock:  epiUC,
			Now:       clock,
		}),
		NotificationUC: notifications,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e
}

func login(t *testing.T, app *fiber.App, email, password string) dto.LoginResponse {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	return out
}

func TestLogin_CredencialesInvalidasMensajeGenerico(t *testing.T) {
	app := newServer(t)
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: memory.SeedAdminEmail, Password: "errada"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Credenciais inválidas", decodeError(t, resp).Message)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "no-es-email"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Fields, "password")
}

func TestConfirmacion_FlujoHTTP(t *testing.T) {
	app := newServer(t)
	token := login(t, app, memory.SeedManagerEmail, memory.SeedManagerPassword).Token

	resp := call(t, app, http.MethodGet, "/api/active-processes?type=delivery&search=jo%C3%A3o", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var active dto.ActiveProcessListResponse
	decode(t, resp, &active)
	require.Equal(t, 1, active.Total)
	assert.Equal(t, "1", active.Items[0].ID)
	require.Len(t, active.LowStockAlert, 1)
	assert.Equal(t, "Protetor Auricular", active.LowStockAlert[0].Name)

	resp = call(t, app, http.MethodPost, "/api/active-processes/1/confirmation", token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var conf dto.ConfirmationResponse
	decode(t, resp, &conf)
	assert.Equal(t, "awaiting_biometric", conf.State)
	assert.False(t, conf.CanFinalize)

	// Sin verificación no se puede concluir.
	resp = call(t, app, http.MethodPost, "/api/active-processes/1/confirmation/finalize", token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", decodeError(t, resp).Code)

	// Otro proceso de la misma empresa no puede abrir confirmación.
	resp = call(t, app, http.MethodPost, "/api/active-processes/2/confirmation", token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFIRMATION_ACTIVE", decodeError(t, resp).Code)

	resp = call(t, app, http.MethodPost, "/api/active-processes/1/confirmation/verify", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &conf)
	assert.Equal(t, "verified", conf.State)
	assert.True(t, conf.CanFinalize)

	resp = call(t, app, http.MethodPost, "/api/active-processes/1/confirmation/finalize", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var fin dto.FinalizeResponse
	decode(t, resp, &fin)
	assert.Equal(t, "completed", fin.Process.Status)
	assert.Equal(t, "/reports", fin.Redirect)
	assert.Equal(t, 1000, fin.RedirectAfterMs)

	resp = call(t, app, http.MethodGet, "/api/reports?type=delivery&employee_id=1", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.ListResponse[dto.ReportResponse]
	decode(t, resp, &list)
	assert.Equal(t, 2, list.Total)

	resp = call(t, app, http.MethodGet, "/api/active-processes", token, nil)
	decode(t, resp, &active)
	assert.Equal(t, 1, active.Total, "el proceso concluido sale de la lista")

	resp = call(t, app, http.MethodGet, "/api/notifications", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var feed dto.ListResponse[dto.NotificationResponse]
	decode(t, resp, &feed)
	require.NotEmpty(t, feed.Items)
	assert.Equal(t, "Processo concluído", feed.Items[0].Title)
}

func TestRouter_CapacidadesPorRol(t *testing.T) {
	app := newServer(t)
	admin := login(t, app, memory.SeedAdminEmail, memory.SeedAdminPassword).Token
	manager := login(t, app, memory.SeedManagerEmail, memory.SeedManagerPassword).Token

	assert.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/admin/companies", admin, nil).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, call(t, app, http.MethodGet, "/api/reports", admin, nil).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, call(t, app, http.MethodGet, "/api/admin/companies", manager, nil).StatusCode)
	assert.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/dashboard", manager, nil).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, http.MethodGet, "/api/epis", "", nil).StatusCode)

	resp := call(t, app, http.MethodGet, "/api/inexistente", manager, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestResolve_SinSesionPideLogin(t *testing.T) {
	app := newServer(t)

	resp := call(t, app, http.MethodGet, "/api/navigation/resolve?path=/reports", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ResolveResponse
	decode(t, resp, &out)
	assert.Equal(t, navigation.StatusLoginRequired, out.Status)
	assert.Equal(t, "/login", out.Redirect)
}

func TestLogout_RevocaElToken(t *testing.T) {
	app := newServer(t)
	token := login(t, app, memory.SeedManagerEmail, memory.SeedManagerPassword).Token

	assert.Equal(t, fiber.StatusOK, call(t, app, http.MethodGet, "/api/auth/me", token, nil).StatusCode)
	assert.Equal(t, fiber.StatusOK, call(t, app, http.MethodPost, "/api/auth/logout", token, nil).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, http.MethodGet, "/api/auth/me", token, nil).StatusCode)
}

func TestEmployees_CPFInvalido(t *testing.T) {
	app := newServer(t)
	token := login(t, app, memory.SeedManagerEmail, memory.SeedManagerPassword).Token

	resp := call(t, app, http.MethodPost, "/api/employees", token, map[string]string{"name": "Ana", "cpf": "111.111.111-11"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Fields, "cpf")
}

func TestValidacion_NombreEnBlancoYCantidadMaxima(t *testing.T) {
	app := newServer(t)
	token := login(t, app, memory.SeedManagerEmail, memory.SeedManagerPassword).Token

	resp := call(t, app, http.MethodPost, "/api/epis", token, map[string]any{
		"name": "   ", "quantity": 1, "min_quantity": 1, "purchase_date": "2025-01-10", "ca": "123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Fields, "name")

	resp = call(t, app, http.MethodPost, "/api/processes", token, map[string]any{
		"type": "delivery", "employee_id": "1", "scheduled_date": "2025-06-01",
		"items": []map[string]any{{"epi_id": "1", "quantity": 20000}},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}
