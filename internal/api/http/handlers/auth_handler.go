package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/atm-service/internal/api/dto"
	"github.com/spec-kit/atm-service/internal/domain"
	"github.com/spec-kit/atm-service/internal/service"
)

// AuthHandler exposes login and user provisioning endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Login == "" || req.PIN == "" {
		return fiber.NewError(http.StatusBadRequest, "login and pin required")
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Login, req.PIN)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": fiber.Map{
				"id":    user.ID,
				"login": user.Login,
				"role":  user.Role,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Provision handles POST /users (administrators only).
func (h *AuthHandler) Provision(c *fiber.Ctx) error {
	var req dto.ProvisionUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	role := domain.Role(strings.ToUpper(strings.TrimSpace(req.Role)))
	if role == "" {
		role = domain.RoleCustomer
	}

	user, err := h.auth.ProvisionUser(c.UserContext(), req.Login, req.PIN, role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"id":    user.ID,
			"login": user.Login,
			"role":  user.Role,
		},
	})
}
