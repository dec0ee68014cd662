package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"skilltrack/internal/database"
	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCheckerNotFound = errors.New("checker not found")

type CheckerRepository interface {
	FindBySkillID(ctx context.Context, skillID uuid.UUID) ([]skill.Checker, error)
	FindByID(ctx context.Context, id uuid.UUID) (skill.Checker, error)
	Create(ctx context.Context, c skill.Checker) error
	Update(ctx context.Context, c skill.Checker) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresCheckerRepository struct {
	db database.DB
}

func NewPostgresCheckerRepository(db database.DB) *PostgresCheckerRepository {
	return &PostgresCheckerRepository{db: db}
}

func (r *PostgresCheckerRepository) FindBySkillID(ctx context.Context, skillID uuid.UUID) ([]skill.Checker, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, skill_id, name, is_completed, completed_at, display_order, updated_at
		 FROM progress_checkers
		 WHERE skill_id = $1
		 ORDER BY display_order ASC`,
		skillID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Checker, 0)
	for rows.Next() {
		var c skill.Checker
		if err := rows.Scan(&c.ID, &c.SkillID, &c.Name, &c.Completed, &c.CompletedAt, &c.DisplayOrder, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCheckerRepository) FindByID(ctx context.Context, id uuid.UUID) (skill.Checker, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, skill_id, name, is_completed, completed_at, display_order, updated_at
		 FROM progress_checkers
		 WHERE id = $1`,
		id,
	)

	var c skill.Checker
	if err := row.Scan(&c.ID, &c.SkillID, &c.Name, &c.Completed, &c.CompletedAt, &c.DisplayOrder, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Checker{}, ErrCheckerNotFound
		}
		return skill.Checker{}, err
	}
	return c, nil
}

func (r *PostgresCheckerRepository) Create(ctx context.Context, c skill.Checker) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO progress_checkers (id, skill_id, name, is_completed, completed_at, display_order, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.SkillID, c.Name, c.Completed, c.CompletedAt, c.DisplayOrder, c.UpdatedAt,
	)
	return err
}

func (r *PostgresCheckerRepository) Update(ctx context.Context, c skill.Checker) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE progress_checkers
		 SET name = $1, is_completed = $2, completed_at = $3, display_order = $4, updated_at = $5
		 WHERE id = $6`,
		c.Name, c.Completed, c.CompletedAt, c.DisplayOrder, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCheckerNotFound
	}
	return nil
}

func (r *PostgresCheckerRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, id := range ids {
		if _, err := tx.Exec(ctx,
			`UPDATE progress_checkers SET display_order = $1, updated_at = now() WHERE id = $2`,
			i, id,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PostgresCheckerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM progress_checkers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCheckerNotFound
	}
	return nil
}
