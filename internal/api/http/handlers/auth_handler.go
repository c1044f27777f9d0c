package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/api/dto"
	"github.com/spec-kit/support-desk/internal/service"
	apperrors "github.com/spec-kit/support-desk/pkg/util/errorutil"
)

// AuthHandler exposes login, logout and session queries.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login. A successful login commits the identity
// to the session and issues a bearer token for subsequent calls.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, err := h.auth.Login(req.Username, req.Password).Wait(c.UserContext())
	if err != nil {
		return err
	}
	h.auth.SetCurrentUser(user)

	token, exp, err := h.auth.TokenManager().GenerateToken(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": user,
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.auth.Logout()
	return c.SendStatus(http.StatusNoContent)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := h.auth.CurrentUser()
	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			User:     user,
			LoggedIn: user != nil,
			IsAdmin:  user != nil && user.IsAdmin(),
			IsAgent:  user != nil && user.IsAgent(),
		},
	})
}

// Assignees handles GET /auth/assignees.
func (h *AuthHandler) Assignees(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.auth.AvailableAssignees()})
}
