package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"skilltrack/internal/database"
	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSkillNotFound = errors.New("skill not found")

const skillColumns = `id, name, parent_id, category, notes, status, archived_at, display_order, created_at, updated_at`

type SkillRepository interface {
	FindAll(ctx context.Context) ([]skill.Skill, error)
	FindActive(ctx context.Context) ([]skill.Skill, error)
	FindArchived(ctx context.Context) ([]skill.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]skill.Skill, error)
	Save(ctx context.Context, s skill.Skill) error
	Archive(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindAll(ctx context.Context) ([]skill.Skill, error) {
	return r.query(ctx,
		`SELECT `+skillColumns+` FROM skills ORDER BY display_order ASC, created_at ASC`)
}

func (r *PostgresSkillRepository) FindActive(ctx context.Context) ([]skill.Skill, error) {
	return r.query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE status = $1 ORDER BY display_order ASC, created_at ASC`,
		skill.StatusActive)
}

func (r *PostgresSkillRepository) FindArchived(ctx context.Context) ([]skill.Skill, error) {
	return r.query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE status = $1 ORDER BY archived_at DESC`,
		skill.StatusArchived)
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	s, err := scanSkill(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]skill.Skill, error) {
	return r.query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE parent_id = $1 ORDER BY display_order ASC, created_at ASC`,
		parentID)
}

func (r *PostgresSkillRepository) Save(ctx context.Context, s skill.Skill) error {
	var parentID *uuid.UUID
	if pid, ok := s.Lineage.ParentID(); ok {
		parentID = &pid
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, name, parent_id, category, notes, status, archived_at, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			notes = EXCLUDED.notes,
			status = EXCLUDED.status,
			archived_at = EXCLUDED.archived_at,
			display_order = EXCLUDED.display_order,
			updated_at = EXCLUDED.updated_at`,
		s.ID, s.Name, parentID, s.Category, s.Notes, s.Status, s.ArchivedAt, s.DisplayOrder, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *PostgresSkillRepository) Archive(ctx context.Context, id uuid.UUID, at time.Time) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE skills SET status = $1, archived_at = $2, updated_at = $2 WHERE id = $3`,
		skill.StatusArchived, at, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

// Delete removes the skill, its subskills, and all dependent rating and
// checker rows in one transaction. Rating and checker rows go with their
// skill via FK cascade.
func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM skills WHERE parent_id = $1`, id); err != nil {
		return err
	}

	affected, err := tx.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PostgresSkillRepository) Reorder(ctx context.Context, ids []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for i, id := range ids {
		if _, err := tx.Exec(ctx,
			`UPDATE skills SET display_order = $1, updated_at = now() WHERE id = $2`,
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

func (r *PostgresSkillRepository) query(ctx context.Context, q string, args ...any) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var (
		s        skill.Skill
		parentID *uuid.UUID
	)
	if err := row.Scan(
		&s.ID, &s.Name, &parentID, &s.Category, &s.Notes, &s.Status,
		&s.ArchivedAt, &s.DisplayOrder, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return skill.Skill{}, err
	}
	if parentID != nil {
		s.Lineage = skill.ChildOf(*parentID)
	} else {
		s.Lineage = skill.RootLineage()
	}
	return s, nil
}
