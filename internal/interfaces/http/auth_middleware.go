package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// LocalSession clave de c.Locals donde vive la sesión autenticada.
const LocalSession = "session"

// Authenticator reconstruye la sesión a partir del token. Lo implementa *auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return tokenString, nil
}

// AuthMiddleware valida el Bearer Token y deja la sesión en c.Locals.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		sess, err := authn.Authenticate(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSession, sess)
		return c.Next()
	}
}

// OptionalAuth carga la sesión si hay un token válido y sigue sin sesión en cualquier otro caso.
func OptionalAuth(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, errResp := bearerToken(c); errResp == nil {
			if sess, err := authn.Authenticate(c.Context(), token); err == nil {
				c.Locals(LocalSession, sess)
			}
		}
		return c.Next()
	}
}

// RequireCapability responde 403 si la sesión no tiene la capacidad. Va después de AuthMiddleware.
func RequireCapability(capability entity.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFrom(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !sess.Can(capability) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la sesión no tiene permiso " + string(capability),
			})
		}
		return c.Next()
	}
}

// SessionFrom devuelve la sesión del contexto (nil si no hay).
func SessionFrom(c *fiber.Ctx) *entity.Session {
	sess, _ := c.Locals(LocalSession).(*entity.Session)
	return sess
}
