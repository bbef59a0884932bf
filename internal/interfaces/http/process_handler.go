package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/process"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// ProcessHandler maneja la agenda de procesos y su confirmación biométrica.
type ProcessHandler struct {
	uc  *process.UseCase
	rv  *RequestValidator
	log *logger.Logger
}

// NewProcessHandler construye el handler.
func NewProcessHandler(uc *process.UseCase, rv *RequestValidator, log *logger.Logger) *ProcessHandler {
	return &ProcessHandler{uc: uc, rv: rv, log: log}
}

// Create godoc
// @Summary      Agendar entrega o devolución
// @Tags         processes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcessRequest  true  "type, employee_id, scheduled_date, items"
// @Success      201   {object}  dto.ProcessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/processes [post]
func (h *ProcessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProcessRequest
	if err := parseBody(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.Context(), SessionFrom(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/processes
func (h *ProcessHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), SessionFrom(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// AddItem POST /api/processes/:id/items
func (h *ProcessHandler) AddItem(c *fiber.Ctx) error {
	var in dto.ProcessItemRequest
	if err := parseBody(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.AddItem(c.Context(), SessionFrom(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// RemoveItem DELETE /api/processes/:id/items/:epiId
func (h *ProcessHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Context(), SessionFrom(c), c.Params("id"), c.Params("epiId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListActive GET /api/active-processes?type=all|delivery|return&search=
func (h *ProcessHandler) ListActive(c *fiber.Ctx) error {
	var in dto.ActiveProcessFilter
	if err := parseQuery(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.ListActive(c.Context(), SessionFrom(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// OpenConfirmation POST /api/active-processes/:id/confirmation
func (h *ProcessHandler) OpenConfirmation(c *fiber.Ctx) error {
	out, err := h.uc.OpenConfirmation(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ConfirmationState GET /api/active-processes/:id/confirmation
func (h *ProcessHandler) ConfirmationState(c *fiber.Ctx) error {
	out, err := h.uc.ConfirmationState(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CancelConfirmation DELETE /api/active-processes/:id/confirmation
func (h *ProcessHandler) CancelConfirmation(c *fiber.Ctx) error {
	out, err := h.uc.CancelConfirmation(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Verify POST /api/active-processes/:id/confirmation/verify
// Bloquea hasta que el lector responde.
func (h *ProcessHandler) Verify(c *fiber.Ctx) error {
	out, err := h.uc.Verify(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Concluir proceso verificado
// @Tags         processes
// @Produce      json
// @Param        id   path  string  true  "ID del proceso"
// @Success      200  {object}  dto.FinalizeResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/active-processes/{id}/confirmation/finalize [post]
func (h *ProcessHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
