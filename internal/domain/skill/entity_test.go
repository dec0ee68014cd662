package skill

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewRating_ClampsScore(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	if got := NewRating(id, 150, now, "").Score; got != 100 {
		t.Fatalf("expected 150 clamped to 100, got %d", got)
	}
	if got := NewRating(id, -5, now, "").Score; got != 0 {
		t.Fatalf("expected -5 clamped to 0, got %d", got)
	}
	if got := NewRating(id, 73, now, "").Score; got != 73 {
		t.Fatalf("expected 73 unchanged, got %d", got)
	}
}

func TestLineage_Levels(t *testing.T) {
	root := RootLineage()
	if !root.IsRoot() || root.Level() != 0 {
		t.Fatalf("root lineage should be level 0")
	}
	if _, ok := root.ParentID(); ok {
		t.Fatalf("root lineage should have no parent")
	}

	parent := uuid.New()
	sub := ChildOf(parent)
	if sub.IsRoot() || sub.Level() != 1 {
		t.Fatalf("subskill lineage should be level 1")
	}
	got, ok := sub.ParentID()
	if !ok || got != parent {
		t.Fatalf("expected parent %s, got %s ok=%v", parent, got, ok)
	}
}

func TestChecker_Toggle(t *testing.T) {
	c := Checker{ID: uuid.New(), SkillID: uuid.New(), Name: "third shot drop drill"}
	now := time.Now()

	c.Toggle(now)
	if !c.Completed || c.CompletedAt == nil {
		t.Fatalf("toggle on should set Completed and CompletedAt together")
	}
	if !c.CompletedAt.Equal(now) {
		t.Fatalf("expected CompletedAt %v, got %v", now, c.CompletedAt)
	}

	c.Toggle(now.Add(time.Hour))
	if c.Completed || c.CompletedAt != nil {
		t.Fatalf("toggle off should clear Completed and CompletedAt together")
	}
}
