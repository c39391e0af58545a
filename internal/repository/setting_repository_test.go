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

func TestSettingRepositoryGetByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSettingRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "value", "created_at", "updated_at"}).
		AddRow(1, models.SettingAvailableForHire, "true", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, value, created_at, updated_at FROM setting WHERE name = $1 LIMIT 1")).
		WithArgs(models.SettingAvailableForHire).
		WillReturnRows(rows)

	item, err := repo.GetByName(context.Background(), models.SettingAvailableForHire)
	require.NoError(t, err)
	assert.Equal(t, "true", item.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepositoryGetByNameMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSettingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, value, created_at, updated_at FROM setting WHERE name = $1 LIMIT 1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByName(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepositoryUpsertByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSettingRepository(db)

	mock.ExpectExec("INSERT INTO setting (.|\n)*ON CONFLICT \\(name\\)").
		WithArgs(models.SettingAvailableForHire, "true", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertByName(context.Background(), models.SettingAvailableForHire, "true"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewSettingRepository(db)

	mock.ExpectExec("UPDATE setting SET").
		WithArgs(int64(42), "contact_email", "me@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Setting{ID: 42, Name: "contact_email", Value: "me@example.com"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
