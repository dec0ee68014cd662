package handler

import (
	"time"

	"skilltrack/internal/delivery/http/dto"
	"skilltrack/internal/pkg/response"
	"skilltrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.SessionUsecase
}

type sessionRequest struct {
	Date            *time.Time `json:"date"`
	DurationMinutes int        `json:"duration_minutes"`
	Notes           string     `json:"notes"`
}

func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Log)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *SessionHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSessions(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSessionListResponse(items))
}

func (h *SessionHandler) Log(c fiber.Ctx) error {
	var req sessionRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	in := usecase.SessionInput{Duration: req.DurationMinutes, Notes: req.Notes}
	if req.Date != nil {
		in.Date = *req.Date
	}

	logged, err := h.uc.LogSession(c.Context(), in)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Session logged successfully", dto.NewSessionResponse(logged))
}

func (h *SessionHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req sessionRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	in := usecase.SessionInput{Duration: req.DurationMinutes, Notes: req.Notes}
	if req.Date != nil {
		in.Date = *req.Date
	}

	updated, err := h.uc.UpdateSession(c.Context(), id, in)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Session updated successfully", dto.NewSessionResponse(updated))
}

func (h *SessionHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSession(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Session deleted successfully", nil)
}
