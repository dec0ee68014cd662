package handler

import (
	"time"

	"skilltrack/internal/delivery/http/dto"
	"skilltrack/internal/pkg/response"
	"skilltrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RatingHandler struct {
	uc usecase.RatingUsecase
}

type saveRatingRequest struct {
	Score int        `json:"score"`
	Date  *time.Time `json:"date"`
	Notes string     `json:"notes"`
}

func NewRatingHandler(uc usecase.RatingUsecase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

func (h *RatingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/ratings", h.List)
	r.Post("/:id/ratings", h.Save)
	r.Delete("/:id/ratings/:ratingID", h.Delete)
}

func (h *RatingHandler) List(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.ListRatings(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRatingListResponse(items))
}

func (h *RatingHandler) Save(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req saveRatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	in := usecase.SaveRatingInput{Score: req.Score, Notes: req.Notes}
	if req.Date != nil {
		in.Date = *req.Date
	}

	saved, err := h.uc.SaveRating(c.Context(), id, in)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, "Rating saved successfully", dto.NewRatingResponse(saved))
}

func (h *RatingHandler) Delete(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ratingID, err := parseID(c, "ratingID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteRating(c.Context(), id, ratingID); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Rating deleted successfully", nil)
}
