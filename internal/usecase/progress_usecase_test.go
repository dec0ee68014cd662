package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
}

func TestProgress_EffectiveRating_UnknownSkillIsZero(t *testing.T) {
	uc := NewProgressUsecase(&mockSkillRepo{}, &mockRatingRepo{})

	got, err := uc.EffectiveRating(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for unknown skill, got %d", got)
	}
}

func TestProgress_RatingDelta_UnknownSkillIsAbsent(t *testing.T) {
	uc := NewProgressUsecase(&mockSkillRepo{}, &mockRatingRepo{})

	_, ok, err := uc.RatingDelta(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if ok {
		t.Fatalf("expected absent delta for unknown skill")
	}
}

func TestProgress_EffectiveRating_LeafUsesLatest(t *testing.T) {
	leaf := rootSkill("third shot drop")
	skills := &mockSkillRepo{skills: []skill.Skill{leaf}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		leaf.ID: {
			ratingAt(leaf.ID, 50, day(1)),
			ratingAt(leaf.ID, 70, day(3)),
		},
	}}
	uc := NewProgressUsecase(skills, ratings)

	got, err := uc.EffectiveRating(context.Background(), leaf.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}

	delta, ok, err := uc.RatingDelta(context.Background(), leaf.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok || delta != 20 {
		t.Fatalf("expected delta +20, got %d ok=%v", delta, ok)
	}
}

func TestProgress_EffectiveRating_ParentSkipsUnratedChildren(t *testing.T) {
	parent := rootSkill("dinking")
	a := childSkill("crosscourt", parent.ID)
	b := childSkill("speedup defense", parent.ID)
	c := childSkill("around the post", parent.ID)

	skills := &mockSkillRepo{skills: []skill.Skill{parent, a, b, c}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		a.ID: {ratingAt(a.ID, 80, day(1))},
		b.ID: {ratingAt(b.ID, 60, day(1))},
	}}
	uc := NewProgressUsecase(skills, ratings)

	got, err := uc.EffectiveRating(context.Background(), parent.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != 70 {
		t.Fatalf("expected 70 (unrated child excluded), got %d", got)
	}
}

func TestProgress_EffectiveRating_Idempotent(t *testing.T) {
	leaf := rootSkill("serve depth")
	skills := &mockSkillRepo{skills: []skill.Skill{leaf}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		leaf.ID: {ratingAt(leaf.ID, 42, day(2))},
	}}
	uc := NewProgressUsecase(skills, ratings)

	first, err := uc.EffectiveRating(context.Background(), leaf.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.EffectiveRating(context.Background(), leaf.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first != second {
		t.Fatalf("same store state gave %d then %d", first, second)
	}
}

func TestProgress_WeeklyDelta_TrailingWindow(t *testing.T) {
	leaf := rootSkill("backhand roll")
	skills := &mockSkillRepo{skills: []skill.Skill{leaf}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		leaf.ID: {
			ratingAt(leaf.ID, 30, day(1)),
			ratingAt(leaf.ID, 55, day(10)),
			ratingAt(leaf.ID, 65, day(14)),
		},
	}}
	uc := NewProgressUsecase(skills, ratings)
	uc.now = func() time.Time { return day(15) }

	delta, ok, err := uc.WeeklyDelta(context.Background(), leaf.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !ok || delta != 10 {
		t.Fatalf("expected weekly delta +10 from the 7-day window, got %d ok=%v", delta, ok)
	}
}

func TestProgress_TrendSeries_ParentCarryForward(t *testing.T) {
	parent := rootSkill("drives")
	a := childSkill("forehand", parent.ID)
	b := childSkill("backhand", parent.ID)

	skills := &mockSkillRepo{skills: []skill.Skill{parent, a, b}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		a.ID: {ratingAt(a.ID, 60, day(1))},
		b.ID: {ratingAt(b.ID, 80, day(5))},
	}}
	uc := NewProgressUsecase(skills, ratings)

	series, err := uc.TrendSeries(context.Background(), parent.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 points (one per rated day), got %d", len(series))
	}
	if series[0].Rating != 60 {
		t.Fatalf("day 1: expected 60, got %d", series[0].Rating)
	}
	if series[1].Rating != 70 {
		t.Fatalf("day 5: expected carry-forward mean 70, got %d", series[1].Rating)
	}
}

func TestProgress_StoreFailureIsInternal(t *testing.T) {
	boom := errors.New("connection refused")
	uc := NewProgressUsecase(&mockSkillRepo{err: boom}, &mockRatingRepo{})

	_, err := uc.EffectiveRating(context.Background(), uuid.New())
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
