package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

func TestContactRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectQuery("INSERT INTO contact").
		WithArgs("Jane", "jane@example.com", "Hello, I would like to talk.", models.ContactStatusNew, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	item := &models.Contact{Name: "Jane", Email: "jane@example.com", Message: "Hello, I would like to talk.", Status: models.ContactStatusNew}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.Equal(t, int64(11), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contact SET status = $2, updated_at = $3 WHERE id = $1")).
		WithArgs(int64(5), models.ContactStatusRead, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 5, models.ContactStatusRead))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE contact SET status = $2, updated_at = $3 WHERE id = $1")).
		WithArgs(int64(6), models.ContactStatusRead, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 6, models.ContactStatusRead), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepositoryCounts(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM contact WHERE status = $1")).
		WithArgs(models.ContactStatusNew).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	unread, err := repo.CountByStatus(context.Background(), models.ContactStatusNew)
	require.NoError(t, err)
	assert.Equal(t, 3, unread)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepositoryListNewestFirst(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewContactRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "message", "status", "created_at", "updated_at"}).
		AddRow(2, "B", "b@example.com", "second message here", "new", time.Now(), time.Now()).
		AddRow(1, "A", "a@example.com", "first message here", "read", time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, name, email, message, status, created_at, updated_at\nFROM contact ORDER BY created_at DESC").
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.ContactStatusNew, items[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
