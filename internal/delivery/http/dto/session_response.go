package dto

import (
	"time"

	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewSessionResponse(s skill.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		Date:            s.Date,
		DurationMinutes: s.Duration,
		Notes:           s.Notes,
		UpdatedAt:       s.UpdatedAt,
	}
}

func NewSessionListResponse(items []skill.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSessionResponse(it))
	}
	return out
}
