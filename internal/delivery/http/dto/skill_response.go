package dto

import (
	"time"

	"skilltrack/internal/domain/progress"
	"skilltrack/internal/usecase"

	"github.com/google/uuid"
)

type SkillSummaryResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	Level         int        `json:"level"`
	Category      string     `json:"category"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes,omitempty"`
	DisplayOrder  int        `json:"display_order"`
	SubskillCount int        `json:"subskill_count"`
	Rating        int        `json:"rating"`
	Tier          string     `json:"tier"`
	Delta         *int       `json:"delta,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type SkillDetailResponse struct {
	SkillSummaryResponse
	ArchivedAt  *time.Time             `json:"archived_at,omitempty"`
	WeeklyDelta *int                   `json:"weekly_delta,omitempty"`
	Subskills   []SkillSummaryResponse `json:"subskills"`
	Series      []TrendPointResponse   `json:"series"`
}

type TrendPointResponse struct {
	Day    string `json:"day"`
	Rating int    `json:"rating"`
}

func NewSkillSummaryResponse(s usecase.SkillSummary) SkillSummaryResponse {
	res := SkillSummaryResponse{
		ID:            s.ID,
		Name:          s.Name,
		Level:         s.Level,
		Category:      string(s.Category),
		Status:        string(s.Status),
		Notes:         s.Notes,
		DisplayOrder:  s.DisplayOrder,
		SubskillCount: s.SubskillCount,
		Rating:        s.Rating,
		Tier:          s.Tier,
		UpdatedAt:     s.UpdatedAt,
	}
	if s.ParentID != uuid.Nil {
		pid := s.ParentID
		res.ParentID = &pid
	}
	if s.HasDelta {
		d := s.Delta
		res.Delta = &d
	}
	return res
}

func NewSkillListResponse(items []usecase.SkillSummary) []SkillSummaryResponse {
	out := make([]SkillSummaryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewSkillSummaryResponse(it))
	}
	return out
}

func NewSkillDetailResponse(d usecase.SkillDetail) SkillDetailResponse {
	res := SkillDetailResponse{
		SkillSummaryResponse: NewSkillSummaryResponse(d.SkillSummary),
		ArchivedAt:           d.ArchivedAt,
		Subskills:            NewSkillListResponse(d.Subskills),
		Series:               NewTrendSeriesResponse(d.Series),
	}
	if d.HasWeeklyDelta {
		w := d.WeeklyDelta
		res.WeeklyDelta = &w
	}
	return res
}

func NewTrendSeriesResponse(series []progress.Point) []TrendPointResponse {
	out := make([]TrendPointResponse, 0, len(series))
	for _, p := range series {
		out = append(out, TrendPointResponse{Day: p.Day.Format("2006-01-02"), Rating: p.Rating})
	}
	return out
}
