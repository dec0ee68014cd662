package repository

import (
	"context"
	"database/sql"
	"errors"

	"skilltrack/internal/database"
	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	FindAll(ctx context.Context) ([]skill.Session, error)
	FindByID(ctx context.Context, id uuid.UUID) (skill.Session, error)
	Create(ctx context.Context, s skill.Session) error
	Update(ctx context.Context, s skill.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSessionRepository struct {
	db database.DB
}

func NewPostgresSessionRepository(db database.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) FindAll(ctx context.Context) ([]skill.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, session_date, duration_minutes, notes, updated_at
		 FROM sessions
		 ORDER BY session_date DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Session, 0)
	for rows.Next() {
		var s skill.Session
		if err := rows.Scan(&s.ID, &s.Date, &s.Duration, &s.Notes, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (skill.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, session_date, duration_minutes, notes, updated_at FROM sessions WHERE id = $1`,
		id,
	)

	var s skill.Session
	if err := row.Scan(&s.ID, &s.Date, &s.Duration, &s.Notes, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Session{}, ErrSessionNotFound
		}
		return skill.Session{}, err
	}
	return s, nil
}

func (r *PostgresSessionRepository) Create(ctx context.Context, s skill.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, session_date, duration_minutes, notes, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Date, s.Duration, s.Notes, s.UpdatedAt,
	)
	return err
}

func (r *PostgresSessionRepository) Update(ctx context.Context, s skill.Session) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE sessions
		 SET session_date = $1, duration_minutes = $2, notes = $3, updated_at = $4
		 WHERE id = $5`,
		s.Date, s.Duration, s.Notes, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
