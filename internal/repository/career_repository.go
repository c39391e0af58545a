package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

// CareerRepository persists career-timeline entries.
type CareerRepository struct {
	db *sqlx.DB
}

// NewCareerRepository constructs the repository.
func NewCareerRepository(db *sqlx.DB) *CareerRepository {
	return &CareerRepository{db: db}
}

// List returns all entries newest-first.
func (r *CareerRepository) List(ctx context.Context) ([]models.Career, error) {
	const query = `SELECT id, year, title, subtitle, description, icon, color, highlights, created_at, updated_at
FROM career ORDER BY created_at DESC`
	var items []models.Career
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	return items, nil
}

// Create inserts an entry and fills in its generated identity.
func (r *CareerRepository) Create(ctx context.Context, item *models.Career) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	const query = `INSERT INTO career (year, title, subtitle, description, icon, color, highlights, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.GetContext(ctx, &item.ID, query,
		item.Year, item.Title, item.Subtitle, item.Description, item.Icon, item.Color, item.Highlights, item.CreatedAt, item.UpdatedAt); err != nil {
		return fmt.Errorf("create career: %w", err)
	}
	return nil
}

// Update rewrites the validated field set. Returns sql.ErrNoRows when the id
// does not exist.
func (r *CareerRepository) Update(ctx context.Context, item *models.Career) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE career SET year = $2, title = $3, subtitle = $4, description = $5, icon = $6, color = $7, highlights = $8, updated_at = $9
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Year, item.Title, item.Subtitle, item.Description, item.Icon, item.Color, item.Highlights, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update career: %w", err)
	}
	return requireRow(res)
}

// Delete removes an entry. Returns sql.ErrNoRows when the id does not exist.
func (r *CareerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM career WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete career: %w", err)
	}
	return requireRow(res)
}

// Count returns the number of entries.
func (r *CareerRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM career`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count careers: %w", err)
	}
	return total, nil
}
