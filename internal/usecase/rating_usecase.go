package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skilltrack/internal/domain/skill"
	"skilltrack/internal/repository"

	"github.com/google/uuid"
)

type SaveRatingInput struct {
	Score int
	Date  time.Time
	Notes string
}

type RatingUsecase interface {
	ListRatings(ctx context.Context, skillID uuid.UUID) ([]skill.Rating, error)
	SaveRating(ctx context.Context, skillID uuid.UUID, in SaveRatingInput) (skill.Rating, error)
	DeleteRating(ctx context.Context, skillID, ratingID uuid.UUID) error
}

type Rating struct {
	skills  repository.SkillRepository
	ratings repository.RatingRepository
	cache   SummaryCache
	now     func() time.Time
}

func NewRatingUsecase(skills repository.SkillRepository, ratings repository.RatingRepository, c SummaryCache) *Rating {
	return &Rating{skills: skills, ratings: ratings, cache: c, now: time.Now}
}

func (u *Rating) ListRatings(ctx context.Context, skillID uuid.UUID) ([]skill.Rating, error) {
	if skillID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if _, err := u.loadSkill(ctx, skillID); err != nil {
		return nil, err
	}

	entries, err := u.ratings.FindBySkillID(ctx, skillID)
	if err != nil {
		return nil, ErrInternal
	}
	return entries, nil
}

// SaveRating appends a new history entry. History is append-only: re-rating a
// day adds a row rather than editing one, and the newest entry wins by
// (date, updated_at).
func (u *Rating) SaveRating(ctx context.Context, skillID uuid.UUID, in SaveRatingInput) (skill.Rating, error) {
	if skillID == uuid.Nil {
		return skill.Rating{}, ErrInvalidInput
	}

	s, err := u.loadSkill(ctx, skillID)
	if err != nil {
		return skill.Rating{}, err
	}

	date := in.Date
	if date.IsZero() {
		date = u.now().UTC()
	}

	entry := skill.NewRating(skillID, in.Score, date, strings.TrimSpace(in.Notes))
	if err := u.ratings.Create(ctx, entry); err != nil {
		return skill.Rating{}, ErrInternal
	}

	u.invalidate(ctx, s)
	return entry, nil
}

func (u *Rating) DeleteRating(ctx context.Context, skillID, ratingID uuid.UUID) error {
	if skillID == uuid.Nil || ratingID == uuid.Nil {
		return ErrInvalidInput
	}

	s, err := u.loadSkill(ctx, skillID)
	if err != nil {
		return err
	}

	if err := u.ratings.Delete(ctx, ratingID); err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return ErrRatingNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx, s)
	return nil
}

func (u *Rating) loadSkill(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, err := u.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, ErrInternal
	}
	return s, nil
}

func (u *Rating) invalidate(ctx context.Context, s skill.Skill) {
	if u.cache == nil {
		return
	}
	parentID, _ := s.Lineage.ParentID()
	_ = u.cache.InvalidateSkill(ctx, s.ID, parentID)
}
