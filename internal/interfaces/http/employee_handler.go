package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// EmployeeHandler maneja el registro de colaboradores.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	rv  *RequestValidator
	log *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, rv *RequestValidator, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, rv: rv, log: log}
}

// Create godoc
// @Summary      Registrar colaborador
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "name, cpf"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := parseBody(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.Context(), SessionFrom(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/employees?search=
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), SessionFrom(c), c.Query("search"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// ToggleStatus PATCH /api/employees/:id/status
func (h *EmployeeHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CaptureBiometrics POST /api/employees/:id/biometrics
// Bloquea hasta que el lector termina la captura.
func (h *EmployeeHandler) CaptureBiometrics(c *fiber.Ctx) error {
	out, err := h.uc.CaptureBiometrics(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
