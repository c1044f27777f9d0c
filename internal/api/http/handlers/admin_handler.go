package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/service"
)

// AdminHandler exposes maintenance endpoints.
type AdminHandler struct {
	reset *service.ResetService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(resetService *service.ResetService) *AdminHandler {
	return &AdminHandler{reset: resetService}
}

// Reset handles POST /admin/reset: re-seeds every store, the same routine
// that runs at startup.
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	h.reset.ResetAllData()
	return c.SendStatus(http.StatusNoContent)
}
