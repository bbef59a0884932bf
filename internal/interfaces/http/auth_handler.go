package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/auth"
	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// AuthHandler maneja login, logout y la sesión actual.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	rv  *RequestValidator
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, rv *RequestValidator, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, rv: rv, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token)
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.LogoutResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	out, err := h.uc.Logout(c.Context(), SessionFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Me devuelve la sesión del token.
// GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(auth.ToSessionResponse(SessionFrom(c)))
}
