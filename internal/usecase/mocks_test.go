package usecase

import (
	"context"
	"time"

	"skilltrack/internal/domain/skill"
	"skilltrack/internal/repository"

	"github.com/google/uuid"
)

type mockSkillRepo struct {
	skills []skill.Skill
	err    error

	saved    []skill.Skill
	archived []uuid.UUID
	deleted  []uuid.UUID
}

func (m *mockSkillRepo) FindAll(context.Context) ([]skill.Skill, error) {
	return m.skills, m.err
}

func (m *mockSkillRepo) FindActive(context.Context) ([]skill.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.Skill, 0)
	for _, s := range m.skills {
		if s.Status == skill.StatusActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSkillRepo) FindArchived(context.Context) ([]skill.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.Skill, 0)
	for _, s := range m.skills {
		if s.Status == skill.StatusArchived {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSkillRepo) FindByID(_ context.Context, id uuid.UUID) (skill.Skill, error) {
	if m.err != nil {
		return skill.Skill{}, m.err
	}
	for _, s := range m.skills {
		if s.ID == id {
			return s, nil
		}
	}
	return skill.Skill{}, repository.ErrSkillNotFound
}

func (m *mockSkillRepo) FindChildren(_ context.Context, parentID uuid.UUID) ([]skill.Skill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.Skill, 0)
	for _, s := range m.skills {
		if pid, ok := s.Lineage.ParentID(); ok && pid == parentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSkillRepo) Save(_ context.Context, s skill.Skill) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, s)
	for i, existing := range m.skills {
		if existing.ID == s.ID {
			m.skills[i] = s
			return nil
		}
	}
	m.skills = append(m.skills, s)
	return nil
}

func (m *mockSkillRepo) Archive(_ context.Context, id uuid.UUID, at time.Time) error {
	if m.err != nil {
		return m.err
	}
	for i, s := range m.skills {
		if s.ID == id {
			archivedAt := at
			m.skills[i].Status = skill.StatusArchived
			m.skills[i].ArchivedAt = &archivedAt
			m.archived = append(m.archived, id)
			return nil
		}
	}
	return repository.ErrSkillNotFound
}

func (m *mockSkillRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockSkillRepo) Reorder(context.Context, []uuid.UUID) error {
	return m.err
}

type mockRatingRepo struct {
	bySkill map[uuid.UUID][]skill.Rating
	err     error

	created []skill.Rating
	deleted []uuid.UUID
}

func (m *mockRatingRepo) FindBySkillID(_ context.Context, skillID uuid.UUID) ([]skill.Rating, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.bySkill[skillID], nil
}

func (m *mockRatingRepo) FindLatest(_ context.Context, skillID uuid.UUID) (skill.Rating, error) {
	if m.err != nil {
		return skill.Rating{}, m.err
	}
	entries := m.bySkill[skillID]
	if len(entries) == 0 {
		return skill.Rating{}, repository.ErrRatingNotFound
	}
	return entries[len(entries)-1], nil
}

func (m *mockRatingRepo) Create(_ context.Context, r skill.Rating) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, r)
	if m.bySkill == nil {
		m.bySkill = make(map[uuid.UUID][]skill.Rating)
	}
	m.bySkill[r.SkillID] = append(m.bySkill[r.SkillID], r)
	return nil
}

func (m *mockRatingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for skillID, entries := range m.bySkill {
		for i, e := range entries {
			if e.ID == id {
				m.bySkill[skillID] = append(entries[:i:i], entries[i+1:]...)
				m.deleted = append(m.deleted, id)
				return nil
			}
		}
	}
	return repository.ErrRatingNotFound
}

type mockCheckerRepo struct {
	checkers []skill.Checker
	err      error

	created []skill.Checker
	updated []skill.Checker
}

func (m *mockCheckerRepo) FindBySkillID(_ context.Context, skillID uuid.UUID) ([]skill.Checker, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]skill.Checker, 0)
	for _, c := range m.checkers {
		if c.SkillID == skillID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCheckerRepo) FindByID(_ context.Context, id uuid.UUID) (skill.Checker, error) {
	if m.err != nil {
		return skill.Checker{}, m.err
	}
	for _, c := range m.checkers {
		if c.ID == id {
			return c, nil
		}
	}
	return skill.Checker{}, repository.ErrCheckerNotFound
}

func (m *mockCheckerRepo) Create(_ context.Context, c skill.Checker) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, c)
	m.checkers = append(m.checkers, c)
	return nil
}

func (m *mockCheckerRepo) Update(_ context.Context, c skill.Checker) error {
	if m.err != nil {
		return m.err
	}
	for i, existing := range m.checkers {
		if existing.ID == c.ID {
			m.checkers[i] = c
			m.updated = append(m.updated, c)
			return nil
		}
	}
	return repository.ErrCheckerNotFound
}

func (m *mockCheckerRepo) Reorder(context.Context, []uuid.UUID) error {
	return m.err
}

func (m *mockCheckerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, c := range m.checkers {
		if c.ID == id {
			m.checkers = append(m.checkers[:i:i], m.checkers[i+1:]...)
			return nil
		}
	}
	return repository.ErrCheckerNotFound
}

type mockSessionRepo struct {
	sessions []skill.Session
	err      error

	created []skill.Session
}

func (m *mockSessionRepo) FindAll(context.Context) ([]skill.Session, error) {
	return m.sessions, m.err
}

func (m *mockSessionRepo) FindByID(_ context.Context, id uuid.UUID) (skill.Session, error) {
	if m.err != nil {
		return skill.Session{}, m.err
	}
	for _, s := range m.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return skill.Session{}, repository.ErrSessionNotFound
}

func (m *mockSessionRepo) Create(_ context.Context, s skill.Session) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, s)
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *mockSessionRepo) Update(_ context.Context, s skill.Session) error {
	if m.err != nil {
		return m.err
	}
	for i, existing := range m.sessions {
		if existing.ID == s.ID {
			m.sessions[i] = s
			return nil
		}
	}
	return repository.ErrSessionNotFound
}

func (m *mockSessionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, s := range m.sessions {
		if s.ID == id {
			m.sessions = append(m.sessions[:i:i], m.sessions[i+1:]...)
			return nil
		}
	}
	return repository.ErrSessionNotFound
}

// mockCache records invalidations; reads always miss so callers exercise the
// recompute path.
type mockCache struct {
	invalidations [][2]uuid.UUID
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (m *mockCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (m *mockCache) InvalidateSkill(_ context.Context, skillID, parentID uuid.UUID) error {
	m.invalidations = append(m.invalidations, [2]uuid.UUID{skillID, parentID})
	return nil
}

func rootSkill(name string) skill.Skill {
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	return skill.Skill{
		ID:        uuid.New(),
		Name:      name,
		Lineage:   skill.RootLineage(),
		Category:  skill.CategoryDinking,
		Status:    skill.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func childSkill(name string, parentID uuid.UUID) skill.Skill {
	s := rootSkill(name)
	s.Lineage = skill.ChildOf(parentID)
	return s
}

func ratingAt(skillID uuid.UUID, score int, date time.Time) skill.Rating {
	return skill.Rating{
		ID:        uuid.New(),
		SkillID:   skillID,
		Score:     score,
		Date:      date,
		UpdatedAt: date,
	}
}
