package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/reports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// ReportHandler comprobantes y descarga simulada.
type ReportHandler struct {
	uc  *reports.ReportUseCase
	rv  *RequestValidator
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase, rv *RequestValidator, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, rv: rv, log: log}
}

// List GET /api/reports?type=&date_filter=&start=&end=&employee_id=&search=
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var in dto.ReportFilter
	if err := parseQuery(c, h.rv, &in); err != nil {
		return writeError(c, h.log, err)
	}
	items, err := h.uc.List(c.Context(), SessionFrom(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}

// Download POST /api/reports/:id/download
func (h *ReportHandler) Download(c *fiber.Ctx) error {
	out, err := h.uc.Download(c.Context(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// NotificationHandler feed de avisos del usuario.
type NotificationHandler struct {
	uc  *usecase.NotificationUseCase
	log *logger.Logger
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, log: log}
}

// List GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), SessionFrom(c).UserID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.NewList(items))
}
