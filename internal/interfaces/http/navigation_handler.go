package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/navigation"
)

// NavigationHandler menú y resolución de rutas de la consola.
type NavigationHandler struct {
	nav *navigation.Navigator
}

// NewNavigationHandler construye el handler.
func NewNavigationHandler(nav *navigation.Navigator) *NavigationHandler {
	return &NavigationHandler{nav: nav}
}

// Menu GET /api/navigation/menu
func (h *NavigationHandler) Menu(c *fiber.Ctx) error {
	return c.JSON(h.nav.Menu(c.Context(), SessionFrom(c)))
}

// Resolve GET /api/navigation/resolve?path=/reports
// El token es opcional: sin sesión las rutas protegidas resuelven login_required.
func (h *NavigationHandler) Resolve(c *fiber.Ctx) error {
	return c.JSON(navigation.Resolve(c.Query("path", "/"), SessionFrom(c)))
}
