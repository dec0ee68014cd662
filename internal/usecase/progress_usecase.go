package usecase

import (
	"context"
	"errors"
	"time"

	"skilltrack/internal/domain/progress"
	"skilltrack/internal/repository"

	"github.com/google/uuid"
)

// ProgressUsecase is the read-side scoring surface. Every operation fetches a
// fresh snapshot and recomputes; nothing is memoized, so results can never go
// stale after a write. A skill id with no backing record is "no data" (zero
// rating, absent delta), never an error.
type ProgressUsecase interface {
	EffectiveRating(ctx context.Context, skillID uuid.UUID) (int, error)
	RatingDelta(ctx context.Context, skillID uuid.UUID) (int, bool, error)
	WeeklyDelta(ctx context.Context, skillID uuid.UUID) (int, bool, error)
	TrendSeries(ctx context.Context, skillID uuid.UUID) ([]progress.Point, error)
}

type Progress struct {
	skills  repository.SkillRepository
	ratings repository.RatingRepository
	now     func() time.Time
}

func NewProgressUsecase(skills repository.SkillRepository, ratings repository.RatingRepository) *Progress {
	return &Progress{skills: skills, ratings: ratings, now: time.Now}
}

// snapshot is one consistent read of a skill's rating data. Children arrive
// as ready histories, so downstream computation is pure and non-recursive.
type snapshot struct {
	found    bool
	own      progress.History
	children []progress.History
}

func (u *Progress) load(ctx context.Context, skillID uuid.UUID) (snapshot, error) {
	if skillID == uuid.Nil {
		return snapshot{}, ErrInvalidInput
	}

	if _, err := u.skills.FindByID(ctx, skillID); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return snapshot{}, nil
		}
		return snapshot{}, ErrInternal
	}

	children, err := u.skills.FindChildren(ctx, skillID)
	if err != nil {
		return snapshot{}, ErrInternal
	}

	if len(children) == 0 {
		entries, err := u.ratings.FindBySkillID(ctx, skillID)
		if err != nil {
			return snapshot{}, ErrInternal
		}
		return snapshot{found: true, own: progress.NewHistory(entries)}, nil
	}

	histories := make([]progress.History, 0, len(children))
	for _, child := range children {
		entries, err := u.ratings.FindBySkillID(ctx, child.ID)
		if err != nil {
			return snapshot{}, ErrInternal
		}
		histories = append(histories, progress.NewHistory(entries))
	}
	return snapshot{found: true, children: histories}, nil
}

func (u *Progress) EffectiveRating(ctx context.Context, skillID uuid.UUID) (int, error) {
	snap, err := u.load(ctx, skillID)
	if err != nil {
		return 0, err
	}
	if !snap.found {
		return 0, nil
	}
	return progress.EffectiveRating(snap.own, snap.children), nil
}

func (u *Progress) RatingDelta(ctx context.Context, skillID uuid.UUID) (int, bool, error) {
	snap, err := u.load(ctx, skillID)
	if err != nil {
		return 0, false, err
	}
	if !snap.found {
		return 0, false, nil
	}
	if len(snap.children) > 0 {
		delta, ok := progress.ParentDelta(snap.children)
		return delta, ok, nil
	}
	delta, ok := progress.LeafDelta(snap.own)
	return delta, ok, nil
}

func (u *Progress) WeeklyDelta(ctx context.Context, skillID uuid.UUID) (int, bool, error) {
	snap, err := u.load(ctx, skillID)
	if err != nil {
		return 0, false, err
	}
	if !snap.found {
		return 0, false, nil
	}
	delta, ok := progress.WeeklyDelta(chartSeries(snap), u.now())
	return delta, ok, nil
}

func (u *Progress) TrendSeries(ctx context.Context, skillID uuid.UUID) ([]progress.Point, error) {
	snap, err := u.load(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if !snap.found {
		return nil, nil
	}
	return chartSeries(snap), nil
}

// chartSeries is the day-bucketed series a chart draws: a parent's synthetic
// rollup, or a leaf's own history collapsed to one point per day.
func chartSeries(snap snapshot) []progress.Point {
	if len(snap.children) > 0 {
		return progress.TrendSeries(snap.children)
	}
	return progress.DailySeries(snap.own)
}
