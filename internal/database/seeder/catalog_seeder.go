package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"skilltrack/internal/database"
	"skilltrack/internal/domain/skill"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// CatalogSeeder inserts a starter skill tree on first boot. The catalog comes
// from a YAML file when one is configured, otherwise from the built-in
// defaults. It refuses to touch a store that already holds any skill.
type CatalogSeeder struct {
	CatalogPath string
}

func (CatalogSeeder) Name() string { return "starter_catalog" }

type catalogFile struct {
	Skills []catalogSkill `yaml:"skills"`
}

type catalogSkill struct {
	Name      string         `yaml:"name"`
	Category  string         `yaml:"category"`
	Notes     string         `yaml:"notes"`
	Subskills []catalogSkill `yaml:"subskills"`
}

func (s CatalogSeeder) Run(ctx context.Context, db database.DB) error {
	row := db.QueryRow(ctx, `SELECT count(*) FROM skills`)
	var count int64
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog, err := s.loadCatalog()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for order, root := range catalog.Skills {
		rootID, err := insertSkill(ctx, db, root, nil, order, now)
		if err != nil {
			return err
		}
		for childOrder, sub := range root.Subskills {
			if _, err := insertSkill(ctx, db, sub, &rootID, childOrder, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s CatalogSeeder) loadCatalog() (catalogFile, error) {
	if strings.TrimSpace(s.CatalogPath) == "" {
		return defaultCatalog(), nil
	}

	raw, err := os.ReadFile(s.CatalogPath)
	if err != nil {
		return catalogFile{}, fmt.Errorf("read seed catalog: %w", err)
	}

	var catalog catalogFile
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return catalogFile{}, fmt.Errorf("parse seed catalog: %w", err)
	}
	if len(catalog.Skills) == 0 {
		return catalogFile{}, fmt.Errorf("seed catalog %s lists no skills", s.CatalogPath)
	}
	return catalog, nil
}

func insertSkill(ctx context.Context, db database.DB, c catalogSkill, parentID *uuid.UUID, order int, now time.Time) (uuid.UUID, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return uuid.Nil, fmt.Errorf("seed catalog entry with empty name")
	}

	category := skill.Category(strings.TrimSpace(c.Category))
	if category == "" && parentID != nil {
		category = skill.CategoryDinking
	}
	if !category.Valid() {
		return uuid.Nil, fmt.Errorf("seed catalog entry %q: unknown category %q", name, c.Category)
	}

	id := uuid.New()
	_, err := db.Exec(ctx,
		`INSERT INTO skills (id, name, parent_id, category, notes, status, display_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		id, name, parentID, category, strings.TrimSpace(c.Notes), skill.StatusActive, order, now,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seed skill %q: %w", name, err)
	}
	return id, nil
}

// defaultCatalog mirrors the starter tree a new player begins with.
func defaultCatalog() catalogFile {
	leaf := func(name, category string) catalogSkill {
		return catalogSkill{Name: name, Category: category}
	}
	return catalogFile{Skills: []catalogSkill{
		{Name: "Dinking", Category: "dinking", Subskills: []catalogSkill{
			leaf("Crosscourt dinks", "dinking"),
			leaf("Dink resets", "dinking"),
			leaf("Speedup defense", "dinking"),
		}},
		{Name: "Drops", Category: "drops", Subskills: []catalogSkill{
			leaf("Third shot drop", "drops"),
			leaf("Reset drop", "drops"),
		}},
		{Name: "Drives", Category: "drives", Subskills: []catalogSkill{
			leaf("Forehand drive", "drives"),
			leaf("Backhand drive", "drives"),
		}},
		{Name: "Serves", Category: "serves", Subskills: []catalogSkill{
			leaf("Deep serve", "serves"),
			leaf("Spin serve", "serves"),
		}},
		{Name: "Strategy", Category: "strategy"},
		{Name: "Defense", Category: "defense"},
	}}
}
