package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/signup/api/http/presenter"
	"github.com/artem13815/signup/pkg/health"
)

const defaultReadyTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	timeout time.Duration
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc, timeout: defaultReadyTimeout}
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

// Ready: readiness check over every configured dependency.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, fiber.StatusServiceUnavailable, fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return presenter.JSON(c, fiber.StatusOK, fiber.Map{"status": "ready"})
}
