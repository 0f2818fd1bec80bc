package handlers

import (
	"lendshare/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	backend string
}

// NewHealthHandler creates a new health handler for the selected backend
func NewHealthHandler(backend string) *HealthHandler {
	return &HealthHandler{backend: backend}
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and storage health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := "ok"
	if err := config.HealthCheck(); err != nil {
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":  status,
		"storage": h.backend,
	})
}
