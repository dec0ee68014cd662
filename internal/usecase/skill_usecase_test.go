package usecase

import (
	"context"
	"errors"
	"testing"

	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
)

func TestSkill_ListSkills_RollupExcludesUnrated(t *testing.T) {
	parent := rootSkill("dinking")
	a := childSkill("crosscourt", parent.ID)
	b := childSkill("speedup defense", parent.ID)
	c := childSkill("resets", parent.ID)

	skills := &mockSkillRepo{skills: []skill.Skill{parent, a, b, c}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		a.ID: {ratingAt(a.ID, 80, day(1))},
		b.ID: {ratingAt(b.ID, 60, day(2))},
	}}
	uc := NewSkillUsecase(skills, ratings, nil)

	out, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected only the root in the list, got %d rows", len(out))
	}
	if out[0].Rating != 70 {
		t.Fatalf("expected rollup 70, got %d", out[0].Rating)
	}
	if out[0].SubskillCount != 3 {
		t.Fatalf("expected 3 subskills, got %d", out[0].SubskillCount)
	}
	if out[0].Tier != "advanced" {
		t.Fatalf("expected tier advanced for 70, got %q", out[0].Tier)
	}
}

func TestSkill_ListSkills_LeafDelta(t *testing.T) {
	leaf := rootSkill("serve depth")
	skills := &mockSkillRepo{skills: []skill.Skill{leaf}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		leaf.ID: {
			ratingAt(leaf.ID, 50, day(1)),
			ratingAt(leaf.ID, 70, day(3)),
		},
	}}
	uc := NewSkillUsecase(skills, ratings, nil)

	out, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if !out[0].HasDelta || out[0].Delta != 20 {
		t.Fatalf("expected delta +20, got %d has=%v", out[0].Delta, out[0].HasDelta)
	}
}

func TestSkill_Detail_NotFound(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, &mockRatingRepo{}, nil)

	_, err := uc.Detail(context.Background(), uuid.New())
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}

func TestSkill_Detail_ParentHasSubskillSummaries(t *testing.T) {
	parent := rootSkill("drops")
	a := childSkill("third shot", parent.ID)
	b := childSkill("reset drop", parent.ID)

	skills := &mockSkillRepo{skills: []skill.Skill{parent, a, b}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		a.ID: {ratingAt(a.ID, 75, day(1))},
		b.ID: {ratingAt(b.ID, 60, day(1))},
	}}
	uc := NewSkillUsecase(skills, ratings, nil)

	detail, err := uc.Detail(context.Background(), parent.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if detail.Rating != 67 {
		t.Fatalf("expected truncated mean 67, got %d", detail.Rating)
	}
	if len(detail.Subskills) != 2 {
		t.Fatalf("expected 2 subskill summaries, got %d", len(detail.Subskills))
	}
	if detail.Subskills[0].Rating != 75 {
		t.Fatalf("expected first subskill rating 75, got %d", detail.Subskills[0].Rating)
	}
	if len(detail.Series) != 1 {
		t.Fatalf("expected 1 trend point, got %d", len(detail.Series))
	}
}

func TestSkill_CreateSkill_RejectsNestedSubskill(t *testing.T) {
	parent := rootSkill("offense")
	sub := childSkill("putaways", parent.ID)
	skills := &mockSkillRepo{skills: []skill.Skill{parent, sub}}
	uc := NewSkillUsecase(skills, &mockRatingRepo{}, nil)

	_, err := uc.CreateSkill(context.Background(), CreateSkillInput{
		Name:     "deep nested",
		ParentID: sub.ID,
	})
	if !errors.Is(err, ErrInvalidParent) {
		t.Fatalf("expected ErrInvalidParent for subskill parent, got %v", err)
	}
}

func TestSkill_CreateSkill_BlankNameRejected(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, &mockRatingRepo{}, nil)

	_, err := uc.CreateSkill(context.Background(), CreateSkillInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSkill_CreateSkill_InvalidatesCache(t *testing.T) {
	parent := rootSkill("strategy")
	skills := &mockSkillRepo{skills: []skill.Skill{parent}}
	c := &mockCache{}
	uc := NewSkillUsecase(skills, &mockRatingRepo{}, c)

	created, err := uc.CreateSkill(context.Background(), CreateSkillInput{
		Name:     "stacking",
		ParentID: parent.ID,
		Category: skill.CategoryStrategy,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(c.invalidations) != 1 {
		t.Fatalf("expected one cache invalidation, got %d", len(c.invalidations))
	}
	if c.invalidations[0][0] != created.ID || c.invalidations[0][1] != parent.ID {
		t.Fatalf("invalidation should cover the skill and its parent")
	}
}

func TestSkill_ArchiveSkill_CascadesToChildren(t *testing.T) {
	parent := rootSkill("defense")
	a := childSkill("blocks", parent.ID)
	b := childSkill("resets", parent.ID)
	skills := &mockSkillRepo{skills: []skill.Skill{parent, a, b}}
	uc := NewSkillUsecase(skills, &mockRatingRepo{}, nil)

	if err := uc.ArchiveSkill(context.Background(), parent.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(skills.archived) != 3 {
		t.Fatalf("expected parent and both children archived, got %d", len(skills.archived))
	}
}

func TestSkill_ArchiveThenList_HistorySurvives(t *testing.T) {
	leaf := rootSkill("lobs")
	skills := &mockSkillRepo{skills: []skill.Skill{leaf}}
	ratings := &mockRatingRepo{bySkill: map[uuid.UUID][]skill.Rating{
		leaf.ID: {ratingAt(leaf.ID, 45, day(1))},
	}}
	uc := NewSkillUsecase(skills, ratings, nil)

	if err := uc.ArchiveSkill(context.Background(), leaf.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	active, err := uc.ListSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("archived skill should leave the active list")
	}

	archived, err := uc.ListArchived(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(archived) != 1 || archived[0].Rating != 45 {
		t.Fatalf("archived skill should keep its rating, got %+v", archived)
	}
}

func TestSkill_DeleteSkill_NotFound(t *testing.T) {
	uc := NewSkillUsecase(&mockSkillRepo{}, &mockRatingRepo{}, nil)

	err := uc.DeleteSkill(context.Background(), uuid.New())
	if !errors.Is(err, ErrSkillNotFound) {
		t.Fatalf("expected ErrSkillNotFound, got %v", err)
	}
}
