package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

// TechStackRepository persists technology badges.
type TechStackRepository struct {
	db *sqlx.DB
}

// NewTechStackRepository constructs the repository.
func NewTechStackRepository(db *sqlx.DB) *TechStackRepository {
	return &TechStackRepository{db: db}
}

// List returns all badges newest-first.
func (r *TechStackRepository) List(ctx context.Context) ([]models.TechStack, error) {
	const query = `SELECT id, title, description, icon_name, icon_color, bg_color, created_at, updated_at
FROM tech_stack ORDER BY created_at DESC`
	var items []models.TechStack
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list tech stack: %w", err)
	}
	return items, nil
}

// Create inserts a badge and fills in its generated identity.
func (r *TechStackRepository) Create(ctx context.Context, item *models.TechStack) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	const query = `INSERT INTO tech_stack (title, description, icon_name, icon_color, bg_color, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	if err := r.db.GetContext(ctx, &item.ID, query,
		item.Title, item.Description, item.IconName, item.IconColor, item.BgColor, item.CreatedAt, item.UpdatedAt); err != nil {
		return fmt.Errorf("create tech stack: %w", err)
	}
	return nil
}

// Update rewrites the validated field set. Returns sql.ErrNoRows when the id
// does not exist.
func (r *TechStackRepository) Update(ctx context.Context, item *models.TechStack) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE tech_stack SET title = $2, description = $3, icon_name = $4, icon_color = $5, bg_color = $6, updated_at = $7
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Title, item.Description, item.IconName, item.IconColor, item.BgColor, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update tech stack: %w", err)
	}
	return requireRow(res)
}

// Delete removes a badge. Returns sql.ErrNoRows when the id does not exist.
func (r *TechStackRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tech_stack WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete tech stack: %w", err)
	}
	return requireRow(res)
}

// Count returns the number of badges.
func (r *TechStackRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM tech_stack`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count tech stack: %w", err)
	}
	return total, nil
}

// requireRow converts a zero-row mutation into sql.ErrNoRows so services can
// surface NotFound instead of silently no-opping.
func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
