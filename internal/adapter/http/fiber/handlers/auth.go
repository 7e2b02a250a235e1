package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/powerdash/powerdash/internal/domain"
	"github.com/powerdash/powerdash/internal/observability/telemetry"
	"github.com/powerdash/powerdash/internal/ports"
)

type AuthHandler struct {
	service ports.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service ports.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

type LoginRequest struct {
	CompanyCode string `json:"company_code"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.CompanyCode == "" || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Company code, username and password are required"})
	}

	token, refreshToken, err := h.service.Login(c.Context(), req.CompanyCode, req.Username, req.Password)
	if err != nil {
		telemetry.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		h.log.Warn("Login failed", zap.String("company_code", req.CompanyCode), zap.String("username", req.Username), zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	telemetry.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{
		"tokens": fiber.Map{
			"accessToken":  token,
			"refreshToken": refreshToken,
		},
	})
}

type RegisterRequest struct {
	CompanyCode string `json:"company_code"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.CompanyCode == "" || req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Company code, username and password are required"})
	}

	user := domain.User{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	}

	if err := h.service.Register(c.Context(), req.CompanyCode, &user); err != nil {
		if err.Error() == "username already registered" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user})
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	token, err := h.service.RefreshToken(c.Context(), req.RefreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"accessToken":  token,
		"refreshToken": req.RefreshToken,
	})
}
