package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

// SettingRepository persists key-value settings. Names carry a unique index;
// UpsertByName leans on it for atomic create-or-update.
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository constructs the repository.
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// List returns all settings newest-first.
func (r *SettingRepository) List(ctx context.Context) ([]models.Setting, error) {
	const query = `SELECT id, name, value, created_at, updated_at FROM setting ORDER BY created_at DESC`
	var items []models.Setting
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return items, nil
}

// GetByName fetches a single setting by its unique name.
func (r *SettingRepository) GetByName(ctx context.Context, name string) (*models.Setting, error) {
	const query = `SELECT id, name, value, created_at, updated_at FROM setting WHERE name = $1 LIMIT 1`
	var item models.Setting
	if err := r.db.GetContext(ctx, &item, query, name); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("get setting by name: %w", err)
	}
	return &item, nil
}

// Create inserts a setting and fills in its generated identity.
func (r *SettingRepository) Create(ctx context.Context, item *models.Setting) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	const query = `INSERT INTO setting (name, value, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &item.ID, query, item.Name, item.Value, item.CreatedAt, item.UpdatedAt); err != nil {
		return fmt.Errorf("create setting: %w", err)
	}
	return nil
}

// Update rewrites the validated field set. Returns sql.ErrNoRows when the id
// does not exist.
func (r *SettingRepository) Update(ctx context.Context, item *models.Setting) error {
	item.UpdatedAt = time.Now().UTC()
	const query = `UPDATE setting SET name = $2, value = $3, updated_at = $4 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.Value, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	return requireRow(res)
}

// Delete removes a setting. Returns sql.ErrNoRows when the id does not exist.
func (r *SettingRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM setting WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return requireRow(res)
}

// UpsertByName atomically creates or updates a setting keyed by name. A
// single statement, so two concurrent upserts cannot both insert.
func (r *SettingRepository) UpsertByName(ctx context.Context, name, value string) error {
	now := time.Now().UTC()
	const query = `INSERT INTO setting (name, value, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (name)
DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, name, value, now); err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}

// Count returns the number of settings.
func (r *SettingRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM setting`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count settings: %w", err)
	}
	return total, nil
}
