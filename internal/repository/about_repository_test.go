package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

func TestAboutRepositoryGetMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAboutRepository(db)

	mock.ExpectQuery("SELECT id, name, title, location, image_url").
		WithArgs(models.AboutSingletonID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAboutRepositoryGetDecodesJSONColumns(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAboutRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "title", "location", "image_url", "narrative_title", "narrative_content", "core_values", "interests", "created_at", "updated_at"}).
		AddRow(1, "Fendi", "Engineer", "Jakarta", "/me.png", "My journey", "Some story",
			[]byte(`[{"icon":"heart","title":"Care","description":"Ship with care"}]`),
			[]byte(`["climbing","chess"]`), time.Now(), time.Now())
	mock.ExpectQuery("SELECT id, name, title, location, image_url").
		WithArgs(models.AboutSingletonID).
		WillReturnRows(rows)

	item, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Len(t, item.CoreValues, 1)
	assert.Equal(t, "Care", item.CoreValues[0].Title)
	assert.Equal(t, models.StringList{"climbing", "chess"}, item.Interests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAboutRepositoryUpsertForcesSingletonID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAboutRepository(db)

	mock.ExpectExec("INSERT INTO about (.|\n)*ON CONFLICT \\(id\\)").
		WithArgs(models.AboutSingletonID, "Fendi", "Engineer", "Jakarta", "/me.png", "My journey", "Some story", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	item := &models.About{
		ID:               42, // overwritten by the repository
		Name:             "Fendi",
		Title:            "Engineer",
		Location:         "Jakarta",
		ImageURL:         "/me.png",
		NarrativeTitle:   "My journey",
		NarrativeContent: "Some story",
	}
	require.NoError(t, repo.Upsert(context.Background(), item))
	assert.Equal(t, models.AboutSingletonID, item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
