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

type SessionInput struct {
	Date     time.Time
	Duration int
	Notes    string
}

type SessionUsecase interface {
	ListSessions(ctx context.Context) ([]skill.Session, error)
	LogSession(ctx context.Context, in SessionInput) (skill.Session, error)
	UpdateSession(ctx context.Context, id uuid.UUID, in SessionInput) (skill.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

type Session struct {
	sessions repository.SessionRepository
	now      func() time.Time
}

func NewSessionUsecase(sessions repository.SessionRepository) *Session {
	return &Session{sessions: sessions, now: time.Now}
}

func (u *Session) ListSessions(ctx context.Context) ([]skill.Session, error) {
	out, err := u.sessions.FindAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Session) LogSession(ctx context.Context, in SessionInput) (skill.Session, error) {
	if in.Duration < 0 {
		return skill.Session{}, ErrInvalidInput
	}

	date := in.Date
	if date.IsZero() {
		date = u.now().UTC()
	}

	s := skill.Session{
		ID:        uuid.New(),
		Date:      date,
		Duration:  in.Duration,
		Notes:     strings.TrimSpace(in.Notes),
		UpdatedAt: u.now().UTC(),
	}
	if err := u.sessions.Create(ctx, s); err != nil {
		return skill.Session{}, ErrInternal
	}
	return s, nil
}

func (u *Session) UpdateSession(ctx context.Context, id uuid.UUID, in SessionInput) (skill.Session, error) {
	if id == uuid.Nil || in.Duration < 0 {
		return skill.Session{}, ErrInvalidInput
	}

	s, err := u.sessions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return skill.Session{}, ErrSessionNotFound
		}
		return skill.Session{}, ErrInternal
	}

	if !in.Date.IsZero() {
		s.Date = in.Date
	}
	s.Duration = in.Duration
	s.Notes = strings.TrimSpace(in.Notes)
	s.UpdatedAt = u.now().UTC()

	if err := u.sessions.Update(ctx, s); err != nil {
		return skill.Session{}, ErrInternal
	}
	return s, nil
}

func (u *Session) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return ErrInternal
	}
	return nil
}
