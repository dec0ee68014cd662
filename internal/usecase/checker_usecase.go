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

type CheckerUsecase interface {
	ListCheckers(ctx context.Context, skillID uuid.UUID) ([]skill.Checker, error)
	AddChecker(ctx context.Context, skillID uuid.UUID, name string) (skill.Checker, error)
	ToggleChecker(ctx context.Context, id uuid.UUID) (skill.Checker, error)
	RenameChecker(ctx context.Context, id uuid.UUID, name string) (skill.Checker, error)
	ReorderCheckers(ctx context.Context, skillID uuid.UUID, ids []uuid.UUID) error
	DeleteChecker(ctx context.Context, id uuid.UUID) error
}

type Checker struct {
	skills   repository.SkillRepository
	checkers repository.CheckerRepository
	now      func() time.Time
}

func NewCheckerUsecase(skills repository.SkillRepository, checkers repository.CheckerRepository) *Checker {
	return &Checker{skills: skills, checkers: checkers, now: time.Now}
}

func (u *Checker) ListCheckers(ctx context.Context, skillID uuid.UUID) ([]skill.Checker, error) {
	if skillID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if err := u.ensureSkill(ctx, skillID); err != nil {
		return nil, err
	}

	out, err := u.checkers.FindBySkillID(ctx, skillID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Checker) AddChecker(ctx context.Context, skillID uuid.UUID, name string) (skill.Checker, error) {
	name = strings.TrimSpace(name)
	if skillID == uuid.Nil || name == "" {
		return skill.Checker{}, ErrInvalidInput
	}
	if err := u.ensureSkill(ctx, skillID); err != nil {
		return skill.Checker{}, err
	}

	existing, err := u.checkers.FindBySkillID(ctx, skillID)
	if err != nil {
		return skill.Checker{}, ErrInternal
	}

	c := skill.Checker{
		ID:           uuid.New(),
		SkillID:      skillID,
		Name:         name,
		DisplayOrder: len(existing),
		UpdatedAt:    u.now().UTC(),
	}
	if err := u.checkers.Create(ctx, c); err != nil {
		return skill.Checker{}, ErrInternal
	}
	return c, nil
}

func (u *Checker) ToggleChecker(ctx context.Context, id uuid.UUID) (skill.Checker, error) {
	if id == uuid.Nil {
		return skill.Checker{}, ErrInvalidInput
	}

	c, err := u.checkers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCheckerNotFound) {
			return skill.Checker{}, ErrCheckerNotFound
		}
		return skill.Checker{}, ErrInternal
	}

	c.Toggle(u.now().UTC())
	if err := u.checkers.Update(ctx, c); err != nil {
		return skill.Checker{}, ErrInternal
	}
	return c, nil
}

func (u *Checker) RenameChecker(ctx context.Context, id uuid.UUID, name string) (skill.Checker, error) {
	name = strings.TrimSpace(name)
	if id == uuid.Nil || name == "" {
		return skill.Checker{}, ErrInvalidInput
	}

	c, err := u.checkers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCheckerNotFound) {
			return skill.Checker{}, ErrCheckerNotFound
		}
		return skill.Checker{}, ErrInternal
	}

	c.Name = name
	c.UpdatedAt = u.now().UTC()
	if err := u.checkers.Update(ctx, c); err != nil {
		return skill.Checker{}, ErrInternal
	}
	return c, nil
}

func (u *Checker) ReorderCheckers(ctx context.Context, skillID uuid.UUID, ids []uuid.UUID) error {
	if skillID == uuid.Nil || len(ids) == 0 {
		return ErrInvalidInput
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return ErrInvalidInput
		}
	}
	if err := u.ensureSkill(ctx, skillID); err != nil {
		return err
	}
	if err := u.checkers.Reorder(ctx, ids); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Checker) DeleteChecker(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.checkers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCheckerNotFound) {
			return ErrCheckerNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Checker) ensureSkill(ctx context.Context, id uuid.UUID) error {
	if _, err := u.skills.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	return nil
}
