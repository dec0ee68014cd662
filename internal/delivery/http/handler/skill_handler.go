package handler

import (
	"time"

	"skilltrack/internal/delivery/http/dto"
	"skilltrack/internal/domain/skill"
	"skilltrack/internal/pkg/response"
	"skilltrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type createSkillRequest struct {
	Name     string     `json:"name"`
	ParentID *uuid.UUID `json:"parent_id"`
	Category string     `json:"category"`
	Notes    string     `json:"notes"`
}

type updateSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Notes    string `json:"notes"`
}

type reorderRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/archived", h.ListArchived)
	r.Post("/", h.Create)
	r.Put("/reorder", h.Reorder)
	r.Get("/:id", h.Detail)
	r.Put("/:id", h.Update)
	r.Post("/:id/archive", h.Archive)
	r.Delete("/:id", h.Delete)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(items))
}

func (h *SkillHandler) ListArchived(c fiber.Ctx) error {
	items, err := h.uc.ListArchived(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillListResponse(items))
}

func (h *SkillHandler) Detail(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.uc.Detail(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillDetailResponse(detail))
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req createSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	in := usecase.CreateSkillInput{
		Name:     req.Name,
		Category: skill.Category(req.Category),
		Notes:    req.Notes,
	}
	if req.ParentID != nil {
		in.ParentID = *req.ParentID
	}

	created, err := h.uc.CreateSkill(c.Context(), in)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Skill created successfully", createdSkillResponse(created))
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req updateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), id, usecase.UpdateSkillInput{
		Name:     req.Name,
		Category: skill.Category(req.Category),
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skill updated successfully", createdSkillResponse(updated))
}

func (h *SkillHandler) Reorder(c fiber.Ctx) error {
	var req reorderRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	if err := h.uc.ReorderSkills(c.Context(), req.IDs); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *SkillHandler) Archive(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.ArchiveSkill(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skill archived successfully", nil)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skill deleted successfully", nil)
}

type skillCreatedResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func createdSkillResponse(s skill.Skill) skillCreatedResponse {
	res := skillCreatedResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  string(s.Category),
		Status:    string(s.Status),
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if pid, ok := s.Lineage.ParentID(); ok {
		res.ParentID = &pid
	}
	return res
}

func parseID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, usecase.ErrInvalidInput
	}
	return id, nil
}
