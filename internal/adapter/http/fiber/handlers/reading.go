package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/ports"
)

type ReadingHandler struct {
	service ports.ReadingService
	log     *zap.Logger
}

func NewReadingHandler(service ports.ReadingService, log *zap.Logger) *ReadingHandler {
	return &ReadingHandler{
		service: service,
		log:     log,
	}
}

// Record accepts a multipart form so the reading can carry an optional
// photo of the meter display alongside the numeric values.
func (h *ReadingHandler) Record(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)

	meterID := c.FormValue("meter_id")
	if meterID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Meter id is required"})
	}

	opening, err := strconv.ParseFloat(c.FormValue("opening"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid opening value"})
	}

	closing, err := strconv.ParseFloat(c.FormValue("closing"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid closing value"})
	}

	input := ports.RecordReadingInput{
		MeterID:    meterID,
		Opening:    opening,
		Closing:    closing,
		EnteredBy:  c.FormValue("entered_by"),
		EmployeeID: c.FormValue("employee_id"),
	}

	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unable to read uploaded image"})
		}
		defer file.Close()
		input.Image = file
		input.ImageName = fileHeader.Filename
	}

	reading, err := h.service.Record(c.Context(), companyID, input)
	if err != nil {
		if err.Error() == "meter not found" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(reading)
}

func (h *ReadingHandler) List(c *fiber.Ctx) error {
	companyID := c.Locals("company_id").(string)

	readings, err := h.service.List(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(readings)
}
