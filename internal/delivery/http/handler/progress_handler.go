package handler

import (
	"skilltrack/internal/delivery/http/dto"
	"skilltrack/internal/pkg/response"
	"skilltrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProgressHandler struct {
	uc usecase.ProgressUsecase
}

type progressResponse struct {
	Rating      int                      `json:"rating"`
	Delta       *int                     `json:"delta,omitempty"`
	WeeklyDelta *int                     `json:"weekly_delta,omitempty"`
	Series      []dto.TrendPointResponse `json:"series"`
}

func NewProgressHandler(uc usecase.ProgressUsecase) *ProgressHandler {
	return &ProgressHandler{uc: uc}
}

func (h *ProgressHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id/trend", h.Trend)
}

// Trend bundles the derived numbers a chart screen needs in one call. A skill
// without data yields zero rating and absent deltas rather than an error.
func (h *ProgressHandler) Trend(c fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	rating, err := h.uc.EffectiveRating(c.Context(), id)
	if err != nil {
		return err
	}
	res := progressResponse{Rating: rating}

	if delta, ok, err := h.uc.RatingDelta(c.Context(), id); err != nil {
		return err
	} else if ok {
		res.Delta = &delta
	}

	if weekly, ok, err := h.uc.WeeklyDelta(c.Context(), id); err != nil {
		return err
	} else if ok {
		res.WeeklyDelta = &weekly
	}

	series, err := h.uc.TrendSeries(c.Context(), id)
	if err != nil {
		return err
	}
	res.Series = dto.NewTrendSeriesResponse(series)

	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
