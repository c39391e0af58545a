package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

// ContactRepository persists contact-form messages.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository constructs the repository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// List returns all messages newest-first.
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	const query = `SELECT id, name, email, message, status, created_at, updated_at
FROM contact ORDER BY created_at DESC`
	var items []models.Contact
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return items, nil
}

// Create inserts a message and fills in its generated identity.
func (r *ContactRepository) Create(ctx context.Context, item *models.Contact) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	const query = `INSERT INTO contact (name, email, message, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.GetContext(ctx, &item.ID, query,
		item.Name, item.Email, item.Message, item.Status, item.CreatedAt, item.UpdatedAt); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// UpdateStatus transitions a message between new and read. Returns
// sql.ErrNoRows when the id does not exist.
func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	const query = `UPDATE contact SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	return requireRow(res)
}

// Delete removes a message. Returns sql.ErrNoRows when the id does not exist.
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM contact WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return requireRow(res)
}

// Count returns the number of messages.
func (r *ContactRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM contact`
	var total int
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return total, nil
}

// CountByStatus returns the number of messages with the given status.
func (r *ContactRepository) CountByStatus(ctx context.Context, status models.ContactStatus) (int, error) {
	const query = `SELECT COUNT(*) FROM contact WHERE status = $1`
	var total int
	if err := r.db.GetContext(ctx, &total, query, status); err != nil {
		return 0, fmt.Errorf("count contacts by status: %w", err)
	}
	return total, nil
}
