package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/ports"
)

const exportFileName = "meter_readings.xlsx"

type ExportHandler struct {
	service ports.ExportService
	log     *zap.Logger
}

func NewExportHandler(service ports.ExportService, log *zap.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		log:     log,
	}
}

func (h *ExportHandler) Readings(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)

	data, err := h.service.ReadingsWorkbook(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFileName+`"`)
	return c.Send(data)
}
