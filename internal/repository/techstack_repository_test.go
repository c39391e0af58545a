package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTechStackRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTechStackRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "description", "icon_name", "icon_color", "bg_color", "created_at", "updated_at"}).
		AddRow(2, "Go", "Backend services", "SiGo", "text-cyan-400", "bg-cyan-500/10", time.Now(), time.Now()).
		AddRow(1, "PostgreSQL", "Primary datastore", "SiPostgresql", "text-sky-400", "bg-sky-500/10", time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, title, description, icon_name, icon_color, bg_color, created_at, updated_at\nFROM tech_stack ORDER BY created_at DESC").
		WillReturnRows(rows)

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTechStackRepositoryCreateFillsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTechStackRepository(db)

	mock.ExpectQuery("INSERT INTO tech_stack").
		WithArgs("Go", "Backend services", "SiGo", "text-cyan-400", "bg-cyan-500/10", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	item := &models.TechStack{Title: "Go", Description: "Backend services", IconName: "SiGo", IconColor: "text-cyan-400", BgColor: "bg-cyan-500/10"}
	require.NoError(t, repo.Create(context.Background(), item))
	assert.Equal(t, int64(7), item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTechStackRepositoryUpdateMissingRow(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTechStackRepository(db)

	mock.ExpectExec("UPDATE tech_stack SET").
		WithArgs(int64(99), "Go", "Backend services", "SiGo", "text-cyan-400", "bg-cyan-500/10", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	item := &models.TechStack{ID: 99, Title: "Go", Description: "Backend services", IconName: "SiGo", IconColor: "text-cyan-400", BgColor: "bg-cyan-500/10"}
	err := repo.Update(context.Background(), item)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTechStackRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTechStackRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tech_stack WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tech_stack WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTechStackRepositoryCount(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTechStackRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM tech_stack")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
