package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-desk/internal/observability"
)

// HealthHandler exposes liveness, readiness and counter snapshots.
type HealthHandler struct {
	metrics *observability.Metrics
}

// NewHealthHandler constructs handler.
func NewHealthHandler(metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{metrics: metrics}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready. The stores are seeded before the server
// listens, so readiness follows liveness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Metrics handles GET /health/metrics.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	requests, errors, operations := h.metrics.Snapshot()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"requests":   requests,
		"errors":     errors,
		"operations": operations,
	})
}
