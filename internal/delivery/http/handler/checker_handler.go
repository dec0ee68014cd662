package handler

import (
	"skilltrack/internal/delivery/http/dto"
	"skilltrack/internal/pkg/response"
	"skilltrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CheckerHandler struct {
	uc usecase.CheckerUsecase
}

type checkerNameRequest struct {
	Name string `json:"name"`
}

func NewCheckerHandler(uc usecase.CheckerUsecase) *CheckerHandler {
	return &CheckerHandler{uc: uc}
}

// RegisterSkillRoutes mounts the routes scoped to a skill.
func (h *CheckerHandler) RegisterSkillRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/checkers", h.List)
	r.Post("/:id/checkers", h.Add)
	r.Put("/:id/checkers/reorder", h.Reorder)
}

// RegisterRoutes mounts the routes addressing a checker directly.
func (h *CheckerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:id/toggle", h.Toggle)
	r.Put("/:id", h.Rename)
	r.Delete("/:id", h.Delete)
}

func (h *CheckerHandler) List(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListCheckers(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCheckerListResponse(items))
}

func (h *CheckerHandler) Add(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req checkerNameRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	added, err := h.uc.AddChecker(c.Context(), id, req.Name)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Checker created successfully", dto.NewCheckerResponse(added))
}

func (h *CheckerHandler) Toggle(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	toggled, err := h.uc.ToggleChecker(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCheckerResponse(toggled))
}

func (h *CheckerHandler) Rename(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req checkerNameRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	renamed, err := h.uc.RenameChecker(c.Context(), id, req.Name)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCheckerResponse(renamed))
}

func (h *CheckerHandler) Reorder(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req reorderRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.ReorderCheckers(c.Context(), id, req.IDs); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CheckerHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteChecker(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Checker deleted successfully", nil)
}
