package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// EPIHandler maneja el inventario de EPIs.
type EPIHandler struct {
	uc  *usecase.EPIUseCase
	rv  *RequestValidator
	log *logger.Logger
}

// NewEPIHandler construye el handler.
func NewEPIHandler(uc *usecase.EPIUseCase, rv *RequestValidator, log *logger.Logger) *EPIHandler {
	return &EPIHandler{uc: uc, rv: rv, log: log}
}

// Create godoc
// @Summary      Cadastrar EPI
// @Tags         epis
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEPIRequest  true  "datos del EPI"
// @Success      201   {object}  dto.EPIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/epis [post]
func (h *EPIHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEPIRequest
	if err := parseBody(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.Context(), SessionFrom(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/epis?search=
func (h *EPIHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), SessionFrom(c), c.Query("search"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// LowStock GET /api/epis/low-stock
func (h *EPIHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context(), SessionFrom(c).CompanyID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// ValidateCA POST /api/epis/validate-ca
func (h *EPIHandler) ValidateCA(c *fiber.Ctx) error {
	var in dto.ValidateCARequest
	if err := parseBody(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.ValidateCA(c.Context(), SessionFrom(c), in.CA)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
