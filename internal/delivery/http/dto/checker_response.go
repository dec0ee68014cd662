package dto

import (
	"time"

	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
)

type CheckerResponse struct {
	ID           uuid.UUID  `json:"id"`
	SkillID      uuid.UUID  `json:"skill_id"`
	Name         string     `json:"name"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	DisplayOrder int        `json:"display_order"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewCheckerResponse(c skill.Checker) CheckerResponse {
	return CheckerResponse{
		ID:           c.ID,
		SkillID:      c.SkillID,
		Name:         c.Name,
		Completed:    c.Completed,
		CompletedAt:  c.CompletedAt,
		DisplayOrder: c.DisplayOrder,
		UpdatedAt:    c.UpdatedAt,
	}
}

func NewCheckerListResponse(items []skill.Checker) []CheckerResponse {
	out := make([]CheckerResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewCheckerResponse(it))
	}
	return out
}
