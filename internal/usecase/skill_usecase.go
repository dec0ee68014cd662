package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skilltrack/internal/domain/progress"
	"skilltrack/internal/domain/skill"
	"skilltrack/internal/infrastructure/cache"
	"skilltrack/internal/repository"

	"github.com/google/uuid"
)

// SummaryCache is the optional read-model cache. Implementations must treat
// invalidation as whole-key: a write drops every aggregate it can touch.
type SummaryCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateSkill(ctx context.Context, skillID uuid.UUID, parentID uuid.UUID) error
}

type SkillSummary struct {
	ID            uuid.UUID
	Name          string
	ParentID      uuid.UUID
	Level         int
	Category      skill.Category
	Status        skill.Status
	Notes         string
	DisplayOrder  int
	SubskillCount int
	Rating        int
	Tier          string
	Delta         int
	HasDelta      bool
	UpdatedAt     time.Time
}

type SkillDetail struct {
	SkillSummary
	ArchivedAt     *time.Time
	WeeklyDelta    int
	HasWeeklyDelta bool
	Subskills      []SkillSummary
	Series         []progress.Point
}

type CreateSkillInput struct {
	Name     string
	ParentID uuid.UUID
	Category skill.Category
	Notes    string
}

type UpdateSkillInput struct {
	Name     string
	Category skill.Category
	Notes    string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillSummary, error)
	ListArchived(ctx context.Context) ([]SkillSummary, error)
	Detail(ctx context.Context, id uuid.UUID) (SkillDetail, error)
	CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error)
	UpdateSkill(ctx context.Context, id uuid.UUID, in UpdateSkillInput) (skill.Skill, error)
	ReorderSkills(ctx context.Context, ids []uuid.UUID) error
	ArchiveSkill(ctx context.Context, id uuid.UUID) error
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

type Skill struct {
	skills  repository.SkillRepository
	ratings repository.RatingRepository
	cache   SummaryCache
	now     func() time.Time
}

func NewSkillUsecase(skills repository.SkillRepository, ratings repository.RatingRepository, c SummaryCache) *Skill {
	return &Skill{skills: skills, ratings: ratings, cache: c, now: time.Now}
}

// ListSkills returns the active top-level skills with their rollup scores.
// Everything is recomputed from the fetched snapshot; the cache only shortcuts
// the recompute and is fully dropped on any write.
func (u *Skill) ListSkills(ctx context.Context) ([]SkillSummary, error) {
	if u.cache != nil {
		var cached []SkillSummary
		if hit, err := u.cache.GetJSON(ctx, cache.KeySkillList, &cached); err == nil && hit {
			return cached, nil
		}
	}

	all, err := u.skills.FindActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out, err := u.summarize(ctx, all)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cache.KeySkillList, out, 0)
	}
	return out, nil
}

// ListArchived mirrors ListSkills over the archived set. Not cached; the
// archive screen is rarely visited.
func (u *Skill) ListArchived(ctx context.Context) ([]SkillSummary, error) {
	all, err := u.skills.FindArchived(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return u.summarize(ctx, all)
}

// summarize builds root summaries from one fetched snapshot: children are
// grouped by parent in memory so a root and its rollup always agree.
func (u *Skill) summarize(ctx context.Context, all []skill.Skill) ([]SkillSummary, error) {
	byParent := make(map[uuid.UUID][]skill.Skill)
	for _, s := range all {
		if pid, ok := s.Lineage.ParentID(); ok {
			byParent[pid] = append(byParent[pid], s)
		}
	}

	out := make([]SkillSummary, 0, len(all))
	for _, s := range all {
		if !s.Lineage.IsRoot() {
			continue
		}

		children := byParent[s.ID]
		sum := newSummary(s)
		sum.SubskillCount = len(children)

		if len(children) == 0 {
			entries, err := u.ratings.FindBySkillID(ctx, s.ID)
			if err != nil {
				return nil, ErrInternal
			}
			hist := progress.NewHistory(entries)
			sum.Rating = progress.EffectiveRating(hist, nil)
			sum.Delta, sum.HasDelta = progress.LeafDelta(hist)
		} else {
			histories := make([]progress.History, 0, len(children))
			for _, child := range children {
				entries, err := u.ratings.FindBySkillID(ctx, child.ID)
				if err != nil {
					return nil, ErrInternal
				}
				histories = append(histories, progress.NewHistory(entries))
			}
			sum.Rating = progress.EffectiveRating(progress.NewHistory(nil), histories)
			sum.Delta, sum.HasDelta = progress.ParentDelta(histories)
		}

		sum.Tier = progress.TierFor(sum.Rating).String()
		out = append(out, sum)
	}
	return out, nil
}

// Detail loads a skill with its subskills, scores, deltas, and chart series.
// Subskills are fetched without a status filter so archived children still
// count toward a parent's history, matching the rollup rules.
func (u *Skill) Detail(ctx context.Context, id uuid.UUID) (SkillDetail, error) {
	if id == uuid.Nil {
		return SkillDetail{}, ErrInvalidInput
	}

	if u.cache != nil {
		var cached SkillDetail
		if hit, err := u.cache.GetJSON(ctx, cache.KeySkillDetail(id), &cached); err == nil && hit {
			return cached, nil
		}
	}

	s, err := u.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return SkillDetail{}, ErrSkillNotFound
		}
		return SkillDetail{}, ErrInternal
	}

	children, err := u.skills.FindChildren(ctx, id)
	if err != nil {
		return SkillDetail{}, ErrInternal
	}

	detail := SkillDetail{SkillSummary: newSummary(s), ArchivedAt: s.ArchivedAt}
	detail.SubskillCount = len(children)

	if len(children) == 0 {
		entries, err := u.ratings.FindBySkillID(ctx, id)
		if err != nil {
			return SkillDetail{}, ErrInternal
		}
		hist := progress.NewHistory(entries)
		detail.Rating = progress.EffectiveRating(hist, nil)
		detail.Delta, detail.HasDelta = progress.LeafDelta(hist)
		detail.Series = progress.DailySeries(hist)
	} else {
		histories := make([]progress.History, 0, len(children))
		subskills := make([]SkillSummary, 0, len(children))
		for _, child := range children {
			entries, err := u.ratings.FindBySkillID(ctx, child.ID)
			if err != nil {
				return SkillDetail{}, ErrInternal
			}
			hist := progress.NewHistory(entries)
			histories = append(histories, hist)

			sub := newSummary(child)
			sub.Rating = progress.EffectiveRating(hist, nil)
			sub.Tier = progress.TierFor(sub.Rating).String()
			sub.Delta, sub.HasDelta = progress.LeafDelta(hist)
			subskills = append(subskills, sub)
		}
		detail.Subskills = subskills
		detail.Rating = progress.EffectiveRating(progress.NewHistory(nil), histories)
		detail.Delta, detail.HasDelta = progress.ParentDelta(histories)
		detail.Series = progress.TrendSeries(histories)
	}

	detail.Tier = progress.TierFor(detail.Rating).String()
	detail.WeeklyDelta, detail.HasWeeklyDelta = progress.WeeklyDelta(detail.Series, u.now())

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cache.KeySkillDetail(id), detail, 0)
	}
	return detail, nil
}

func (u *Skill) CreateSkill(ctx context.Context, in CreateSkillInput) (skill.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = skill.CategoryDinking
	}
	if !category.Valid() {
		return skill.Skill{}, ErrInvalidCategory
	}

	lineage := skill.RootLineage()
	if in.ParentID != uuid.Nil {
		parent, err := u.skills.FindByID(ctx, in.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrSkillNotFound) {
				return skill.Skill{}, ErrSkillNotFound
			}
			return skill.Skill{}, ErrInternal
		}
		// a subskill may only hang off a root: the tree is two levels deep
		if !parent.Lineage.IsRoot() {
			return skill.Skill{}, ErrInvalidParent
		}
		lineage = skill.ChildOf(parent.ID)
	}

	now := u.now().UTC()
	s := skill.Skill{
		ID:        uuid.New(),
		Name:      name,
		Lineage:   lineage,
		Category:  category,
		Notes:     strings.TrimSpace(in.Notes),
		Status:    skill.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.skills.Save(ctx, s); err != nil {
		return skill.Skill{}, ErrInternal
	}

	u.invalidate(ctx, s)
	return s, nil
}

func (u *Skill) UpdateSkill(ctx context.Context, id uuid.UUID, in UpdateSkillInput) (skill.Skill, error) {
	if id == uuid.Nil {
		return skill.Skill{}, ErrInvalidInput
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return skill.Skill{}, ErrInvalidInput
	}
	if in.Category != "" && !in.Category.Valid() {
		return skill.Skill{}, ErrInvalidCategory
	}

	s, err := u.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, ErrInternal
	}

	s.Name = name
	if in.Category != "" {
		s.Category = in.Category
	}
	s.Notes = strings.TrimSpace(in.Notes)
	s.UpdatedAt = u.now().UTC()

	if err := u.skills.Save(ctx, s); err != nil {
		return skill.Skill{}, ErrInternal
	}

	u.invalidate(ctx, s)
	return s, nil
}

func (u *Skill) ReorderSkills(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrInvalidInput
	}
	for _, id := range ids {
		if id == uuid.Nil {
			return ErrInvalidInput
		}
	}
	if err := u.skills.Reorder(ctx, ids); err != nil {
		return ErrInternal
	}
	if u.cache != nil {
		_ = u.cache.InvalidateSkill(ctx, uuid.Nil, uuid.Nil)
	}
	return nil
}

// ArchiveSkill soft-deletes a skill and cascades to its subskills; rows and
// rating history stay behind.
func (u *Skill) ArchiveSkill(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}

	s, err := u.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}

	children, err := u.skills.FindChildren(ctx, id)
	if err != nil {
		return ErrInternal
	}

	at := u.now().UTC()
	if err := u.skills.Archive(ctx, id, at); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}
	for _, child := range children {
		if err := u.skills.Archive(ctx, child.ID, at); err != nil {
			return ErrInternal
		}
	}

	u.invalidate(ctx, s)
	return nil
}

// DeleteSkill hard-deletes a skill; subskills and their ratings and checkers
// go with it in one transaction.
func (u *Skill) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}

	s, err := u.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}

	if err := u.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx, s)
	return nil
}

func (u *Skill) invalidate(ctx context.Context, s skill.Skill) {
	if u.cache == nil {
		return
	}
	parentID, _ := s.Lineage.ParentID()
	_ = u.cache.InvalidateSkill(ctx, s.ID, parentID)
}

func newSummary(s skill.Skill) SkillSummary {
	parentID, _ := s.Lineage.ParentID()
	return SkillSummary{
		ID:           s.ID,
		Name:         s.Name,
		ParentID:     parentID,
		Level:        s.Lineage.Level(),
		Category:     s.Category,
		Status:       s.Status,
		Notes:        s.Notes,
		DisplayOrder: s.DisplayOrder,
		UpdatedAt:    s.UpdatedAt,
	}
}
