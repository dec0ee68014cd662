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

var ErrRatingNotFound = errors.New("rating not found")

type RatingRepository interface {
	FindBySkillID(ctx context.Context, skillID uuid.UUID) ([]skill.Rating, error)
	FindLatest(ctx context.Context, skillID uuid.UUID) (skill.Rating, error)
	Create(ctx context.Context, r skill.Rating) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresRatingRepository struct {
	db database.DB
}

func NewPostgresRatingRepository(db database.DB) *PostgresRatingRepository {
	return &PostgresRatingRepository{db: db}
}

func (r *PostgresRatingRepository) FindBySkillID(ctx context.Context, skillID uuid.UUID) ([]skill.Rating, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, skill_id, score, rated_at, notes, updated_at
		 FROM skill_ratings
		 WHERE skill_id = $1
		 ORDER BY rated_at ASC, updated_at ASC`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Rating, 0)
	for rows.Next() {
		var rt skill.Rating
		if err := rows.Scan(&rt.ID, &rt.SkillID, &rt.Score, &rt.Date, &rt.Notes, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindLatest returns the newest rating by date; same-date entries fall back to
// updated_at so the answer is deterministic.
func (r *PostgresRatingRepository) FindLatest(ctx context.Context, skillID uuid.UUID) (skill.Rating, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, skill_id, score, rated_at, notes, updated_at
		 FROM skill_ratings
		 WHERE skill_id = $1
		 ORDER BY rated_at DESC, updated_at DESC
		 LIMIT 1`,
		skillID,
	)

	var rt skill.Rating
	if err := row.Scan(&rt.ID, &rt.SkillID, &rt.Score, &rt.Date, &rt.Notes, &rt.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Rating{}, ErrRatingNotFound
		}
		return skill.Rating{}, err
	}
	return rt, nil
}

func (r *PostgresRatingRepository) Create(ctx context.Context, rt skill.Rating) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_ratings (id, skill_id, score, rated_at, notes, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rt.ID, rt.SkillID, rt.Score, rt.Date, rt.Notes, rt.UpdatedAt,
	)
	return err
}

func (r *PostgresRatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skill_ratings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRatingNotFound
	}
	return nil
}
