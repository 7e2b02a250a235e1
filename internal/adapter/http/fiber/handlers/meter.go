package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/ports"
)

type MeterHandler struct {
	service ports.MeterService
	log     *zap.Logger
}

func NewMeterHandler(service ports.MeterService, log *zap.Logger) *MeterHandler {
	return &MeterHandler{
		service: service,
		log:     log,
	}
}

type RegisterMeterRequest struct {
	MeterID  string `json:"meter_id"`
	LoadType string `json:"load_type"`
	Location string `json:"location"`
	Unit     string `json:"unit"`
}

func (h *MeterHandler) Register(c *fiber.Ctx) error {
	var req RegisterMeterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	companyID := c.Locals("company_id").(string)

	meter, err := h.service.Register(c.Context(), companyID, &domain.Meter{
		MeterID:  req.MeterID,
		LoadType: req.LoadType,
		Location: req.Location,
		Unit:     req.Unit,
	})
	if err != nil {
		if err.Error() == "meter already registered" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		if err.Error() == "meter id is required" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(meter)
}

func (h *MeterHandler) List(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)

	meters, err := h.service.List(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(meters)
}
