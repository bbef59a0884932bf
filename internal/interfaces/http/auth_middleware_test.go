package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	apphttp "github.com/jhoicas/epi-console/internal/interfaces/http"
)

// fakeAuthenticator acepta un único token fijo.
type fakeAuthenticator struct {
	token string
	sess  *entity.Session
}

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*entity.Session, error) {
	if token != f.token {
		return nil, errors.New("token desconocido")
	}
	return f.sess, nil
}

// buildTestApp aplicación mínima: AuthMiddleware + RequireCapability + handler dummy.
func buildTestApp(sess *entity.Session, capability entity.Capability) *fiber.App {
	app := fiber.New()
	authn := fakeAuthenticator{token: "valido", sess: sess}
	app.Get("/protected",
		apphttp.AuthMiddleware(authn),
		apphttp.RequireCapability(capability),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.SessionFrom(c).UserID})
		},
	)
	app.Get("/optional", apphttp.OptionalAuth(authn), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"logged": apphttp.SessionFrom(c) != nil})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func managerSession() *entity.Session {
	return &entity.Session{
		UserID:       "2",
		Role:         entity.RoleManager,
		CompanyID:    "1",
		Capabilities: entity.CapabilitiesForRole(entity.RoleManager),
	}
}

func TestRequireCapability_ConPermisoPasa(t *testing.T) {
	app := buildTestApp(managerSession(), entity.CapReportsView)
	resp := doGet(t, app, "/protected", "Bearer valido")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireCapability_SinPermiso403(t *testing.T) {
	app := buildTestApp(managerSession(), entity.CapCompaniesManage)
	resp := doGet(t, app, "/protected", "Bearer valido")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Code)
}

func TestAuthMiddleware_TokenAusenteOMalFormado(t *testing.T) {
	app := buildTestApp(managerSession(), entity.CapReportsView)

	resp := doGet(t, app, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code)

	resp = doGet(t, app, "/protected", "Token valido")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)

	resp = doGet(t, app, "/protected", "Bearer otro")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestOptionalAuth_SigueSinSesion(t *testing.T) {
	app := buildTestApp(managerSession(), entity.CapReportsView)

	var body struct {
		Logged bool `json:"logged"`
	}
	decode(t, doGet(t, app, "/optional", "Bearer otro"), &body)
	assert.False(t, body.Logged)

	decode(t, doGet(t, app, "/optional", "bearer valido"), &body)
	assert.True(t, body.Logged)
}
