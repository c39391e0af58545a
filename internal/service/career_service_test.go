package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
)

type mockCareerRepo struct {
	items   []models.Career
	listErr error
	created []*models.Career
	updated []*models.Career
	deleted []int64
	mutErr  error
}

func (m *mockCareerRepo) List(ctx context.Context) ([]models.Career, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockCareerRepo) Create(ctx context.Context, item *models.Career) error {
	if m.mutErr != nil {
		return m.mutErr
	}
	item.ID = int64(len(m.created) + 1)
	m.created = append(m.created, item)
	return nil
}

func (m *mockCareerRepo) Update(ctx context.Context, item *models.Career) error {
	if m.mutErr != nil {
		return m.mutErr
	}
	m.updated = append(m.updated, item)
	return nil
}

func (m *mockCareerRepo) Delete(ctx context.Context, id int64) error {
	if m.mutErr != nil {
		return m.mutErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func disabledCache() *CacheService {
	return NewCacheService(nil, 0, nil, false)
}

func validCareerRequest() dto.CareerRequest {
	return dto.CareerRequest{
		Year:        "2023 - Present",
		Title:       "Backend Engineer",
		Subtitle:    "Acme Corp",
		Description: "Owns the service layer.",
		Icon:        "briefcase",
		Color:       "cyan",
	}
}

func TestCareerServiceCreateInfersHighlightKind(t *testing.T) {
	repo := &mockCareerRepo{}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	req := validCareerRequest()
	req.TechStack = []string{"Go", "PostgreSQL"}
	req.BulletPoints = []string{"shipped the rewrite"}

	item, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	// tech stack wins over bullet points when no explicit kind is given
	assert.Equal(t, models.HighlightTechPills, item.Highlights.Kind)
	assert.Equal(t, models.StringList{"Go", "PostgreSQL"}, item.Highlights.Items)
	require.Len(t, repo.created, 1)
}

func TestCareerServiceCreateExplicitKindWins(t *testing.T) {
	repo := &mockCareerRepo{}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	req := validCareerRequest()
	req.HighlightKind = "bulleted"
	req.TechStack = []string{"Go"}
	req.BulletPoints = []string{"led the migration", "mentored two juniors"}

	item, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.HighlightBulleted, item.Highlights.Kind)
	assert.Equal(t, models.StringList{"led the migration", "mentored two juniors"}, item.Highlights.Items)
}

func TestCareerServiceCreateLabeledList(t *testing.T) {
	repo := &mockCareerRepo{}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	req := validCareerRequest()
	req.ProjectList = []models.ProjectRef{{Name: "Billing", Type: "internal"}}

	item, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.HighlightLabeledList, item.Highlights.Kind)
	require.Len(t, item.Highlights.Projects, 1)
	assert.Equal(t, "Billing", item.Highlights.Projects[0].Name)
	assert.Empty(t, item.Highlights.Items)
}

func TestCareerServiceCreateSingleEmptyEntryMeansNone(t *testing.T) {
	repo := &mockCareerRepo{}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	req := validCareerRequest()
	req.TechStack = []string{""}

	item, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.HighlightNone, item.Highlights.Kind)
	assert.Empty(t, item.Highlights.Items)
}

func TestCareerServiceCreateValidationBlocksWrite(t *testing.T) {
	repo := &mockCareerRepo{}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	req := validCareerRequest()
	req.Color = "magenta"
	req.Title = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "color")
	assert.Contains(t, appErr.Fields, "title")
	assert.Empty(t, repo.created)
}

func TestCareerServiceUpdateNotFound(t *testing.T) {
	repo := &mockCareerRepo{mutErr: sql.ErrNoRows}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	_, err := svc.Update(context.Background(), 99, validCareerRequest())
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestCareerServiceListPublicDegradesToEmpty(t *testing.T) {
	repo := &mockCareerRepo{listErr: errors.New("connection refused")}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	items := svc.ListPublic(context.Background())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCareerServiceListSurfacesErrorToAdmin(t *testing.T) {
	repo := &mockCareerRepo{listErr: errors.New("connection refused")}
	svc := NewCareerService(repo, nil, disabledCache(), nil)

	_, err := svc.List(context.Background())
	require.Error(t, err)
}
