package handler

import (
	"context"
	"time"

	"skilltrack/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{"database": "up", "cache": "up"}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			status["database"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, "database unreachable", status)
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			// cache is optional; report but stay healthy
			status["cache"] = "down"
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
