package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/ports"
)

type DashboardHandler struct {
	service ports.KPIService
	log     *zap.Logger
}

func NewDashboardHandler(service ports.KPIService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log,
	}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)

	stats, err := h.service.DashboardStats(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}
