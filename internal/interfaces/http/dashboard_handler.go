package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/epi-console/internal/application/analytics"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Get devuelve las series del dashboard de la empresa de la sesión.
// GET /api/dashboard
//
// Respuesta: DashboardDTO (monthly_deliveries, top_epis, expiring_epis,
// usage_by_month, stock_levels, cost_by_category, total_cost).
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), SessionFrom(c).CompanyID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
