package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

// AboutRepository persists the singleton about record. The fixed row id plus
// ON CONFLICT keeps the at-most-one invariant in the storage layer instead
// of a read-then-branch in application code.
type AboutRepository struct {
	db *sqlx.DB
}

// NewAboutRepository constructs the repository.
func NewAboutRepository(db *sqlx.DB) *AboutRepository {
	return &AboutRepository{db: db}
}

// Get returns the singleton row, or sql.ErrNoRows when none exists yet.
func (r *AboutRepository) Get(ctx context.Context) (*models.About, error) {
	const query = `SELECT id, name, title, location, image_url, narrative_title, narrative_content, core_values, interests, created_at, updated_at
FROM about WHERE id = $1 LIMIT 1`
	var item models.About
	if err := r.db.GetContext(ctx, &item, query, models.AboutSingletonID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get about: %w", err)
	}
	return &item, nil
}

// Upsert atomically inserts or updates the singleton row in one statement.
func (r *AboutRepository) Upsert(ctx context.Context, item *models.About) error {
	now := time.Now().UTC()
	item.ID = models.AboutSingletonID
	item.UpdatedAt = now
	const query = `INSERT INTO about (id, name, title, location, image_url, narrative_title, narrative_content, core_values, interests, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
ON CONFLICT (id)
DO UPDATE SET name = EXCLUDED.name, title = EXCLUDED.title, location = EXCLUDED.location,
              image_url = EXCLUDED.image_url, narrative_title = EXCLUDED.narrative_title,
              narrative_content = EXCLUDED.narrative_content, core_values = EXCLUDED.core_values,
              interests = EXCLUDED.interests, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Title, item.Location, item.ImageURL,
		item.NarrativeTitle, item.NarrativeContent, item.CoreValues, item.Interests, now); err != nil {
		return fmt.Errorf("upsert about: %w", err)
	}
	return nil
}
