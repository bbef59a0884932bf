package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// errorMapping traduce un error de dominio a status y código HTTP.
type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrConfirmationActive, fiber.StatusConflict, "CONFIRMATION_ACTIVE"},
	{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
	{domain.ErrEmptyProcess, fiber.StatusUnprocessableEntity, "EMPTY_PROCESS"},
	{domain.ErrInactive, fiber.StatusUnprocessableEntity, "INACTIVE"},
	{domain.ErrScanFailed, fiber.StatusUnprocessableEntity, "SCAN_FAILED"},
	{context.DeadlineExceeded, fiber.StatusGatewayTimeout, "TIMEOUT"},
	{context.Canceled, fiber.StatusRequestTimeout, "CANCELLED"},
}

// writeError responde dto.ErrorResponse según el tipo de error. Los errores no clasificados
// se registran y se responden como INTERNAL sin exponer el detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message, Fields: verr.Fields})
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Credenciais inválidas"})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	if log != nil {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

// parseBody decodifica el cuerpo JSON y lo valida.
func parseBody(c *fiber.Ctx, rv *RequestValidator, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &ValidationError{Message: "cuerpo inválido"}
	}
	return rv.Validate(out)
}

// parseQuery decodifica los parámetros de consulta y los valida.
func parseQuery(c *fiber.Ctx, rv *RequestValidator, out any) error {
	if err := c.QueryParser(out); err != nil {
		return &ValidationError{Message: "parámetros inválidos"}
	}
	return rv.Validate(out)
}
