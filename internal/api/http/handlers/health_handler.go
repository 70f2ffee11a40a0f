package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/voyago/admin-panel/internal/observability"
)

// Pinger is implemented by token stores with a reachable backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	tokenStore  Pinger
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance. tokenStore may be nil
// when the panel runs on in-memory token storage.
func NewHealthHandler(serviceName, version string, tokenStore Pinger, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, tokenStore: tokenStore, metrics: metrics}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true

	if h.tokenStore == nil {
		depStatus["token_store"] = "in-memory"
	} else if err := h.tokenStore.Ping(ctx); err != nil {
		depStatus["token_store"] = err.Error()
		ready = false
	} else {
		depStatus["token_store"] = "ok"
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}

// Metrics reports the in-memory request counters.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	requests, errors := h.metrics.Snapshot()
	return c.JSON(fiber.Map{
		"requests": requests,
		"errors":   errors,
	})
}
