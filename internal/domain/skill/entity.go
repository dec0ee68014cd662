package skill

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

type Category string

const (
	CategoryDinking  Category = "dinking"
	CategoryDrops    Category = "drops"
	CategoryDrives   Category = "drives"
	CategoryDefense  Category = "defense"
	CategoryOffense  Category = "offense"
	CategoryStrategy Category = "strategy"
	CategoryServes   Category = "serves"
)

func Categories() []Category {
	return []Category{
		CategoryDinking,
		CategoryDrops,
		CategoryDrives,
		CategoryDefense,
		CategoryOffense,
		CategoryStrategy,
		CategoryServes,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryDinking, CategoryDrops, CategoryDrives, CategoryDefense,
		CategoryOffense, CategoryStrategy, CategoryServes:
		return true
	}
	return false
}

// Lineage places a skill in the two-level tree. A skill is either a root or a
// direct child of a root; deeper nesting is not representable.
type Lineage struct {
	parentID uuid.UUID
}

func RootLineage() Lineage {
	return Lineage{}
}

func ChildOf(parentID uuid.UUID) Lineage {
	return Lineage{parentID: parentID}
}

func (l Lineage) IsRoot() bool {
	return l.parentID == uuid.Nil
}

func (l Lineage) ParentID() (uuid.UUID, bool) {
	if l.parentID == uuid.Nil {
		return uuid.Nil, false
	}
	return l.parentID, true
}

// Level is 0 for roots and 1 for subskills.
func (l Lineage) Level() int {
	if l.IsRoot() {
		return 0
	}
	return 1
}

type Skill struct {
	ID           uuid.UUID
	Name         string
	Lineage      Lineage
	Category     Category
	Notes        string
	Status       Status
	ArchivedAt   *time.Time
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Skill) IsArchived() bool {
	return s.Status == StatusArchived
}

// Rating is an immutable history entry. New scores are appended, never edited
// in place; the score is clamped to [0,100] here so an out-of-range value can
// never reach an aggregate.
type Rating struct {
	ID        uuid.UUID
	SkillID   uuid.UUID
	Score     int
	Date      time.Time
	Notes     string
	UpdatedAt time.Time
}

func NewRating(skillID uuid.UUID, score int, date time.Time, notes string) Rating {
	return Rating{
		ID:        uuid.New(),
		SkillID:   skillID,
		Score:     ClampScore(score),
		Date:      date,
		Notes:     notes,
		UpdatedAt: time.Now().UTC(),
	}
}

func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Checker is a named checklist item under a skill.
type Checker struct {
	ID           uuid.UUID
	SkillID      uuid.UUID
	Name         string
	Completed    bool
	CompletedAt  *time.Time
	DisplayOrder int
	UpdatedAt    time.Time
}

// Toggle flips completion. Completed and CompletedAt are always set or cleared
// together.
func (c *Checker) Toggle(now time.Time) {
	if c.Completed {
		c.Completed = false
		c.CompletedAt = nil
	} else {
		c.Completed = true
		at := now
		c.CompletedAt = &at
	}
	c.UpdatedAt = now
}

// Session is a practice log entry, independent of any single skill.
type Session struct {
	ID        uuid.UUID
	Date      time.Time
	Duration  int
	Notes     string
	UpdatedAt time.Time
}
