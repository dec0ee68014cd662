package dto

import (
	"time"

	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
)

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	SkillID   uuid.UUID `json:"skill_id"`
	Score     int       `json:"score"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRatingResponse(r skill.Rating) RatingResponse {
	return RatingResponse{
		ID:        r.ID,
		SkillID:   r.SkillID,
		Score:     r.Score,
		Date:      r.Date,
		Notes:     r.Notes,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewRatingListResponse(items []skill.Rating) []RatingResponse {
	out := make([]RatingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewRatingResponse(it))
	}
	return out
}
