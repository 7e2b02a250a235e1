package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/ports"
)

type AlertHandler struct {
	service ports.AlertService
	log     *zap.Logger
}

func NewAlertHandler(service ports.AlertService, log *zap.Logger) *AlertHandler {
	return &AlertHandler{
		service: service,
		log:     log,
	}
}

func (h *AlertHandler) List(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)

	alerts, err := h.service.List(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(alerts)
}

func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)
	actor := c.Locals("user_id").(string)

	alert, err := h.service.Acknowledge(c.Context(), companyID, c.Params("id"), actor)
	if err != nil {
		if err.Error() == "alert not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(alert)
}

func (h *AlertHandler) Close(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)
	actor := c.Locals("user_id").(string)

	alert, err := h.service.Close(c.Context(), companyID, c.Params("id"), actor)
	if err != nil {
		if err.Error() == "alert not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(alert)
}
