package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// CompanyHandler maneja el registro de empresas cliente (admin).
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	rv  *RequestValidator
	log *logger.Logger
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, rv *RequestValidator, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, rv: rv, log: log}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "name, email, cnpj, contact"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := parseBody(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.Context(), SessionFrom(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/admin/companies?search=
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("search"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// ToggleStatus PATCH /api/admin/companies/:id/status
func (h *CompanyHandler) ToggleStatus(c *fiber.Ctx) error {
	out, err := h.uc.ToggleStatus(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
