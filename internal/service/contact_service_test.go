package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
)

type mockContactRepo struct {
	items    []models.Contact
	listErr  error
	created  []*models.Contact
	statuses map[int64]models.ContactStatus
	mutErr   error
}

func (m *mockContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.items, nil
}

func (m *mockContactRepo) Create(ctx context.Context, item *models.Contact) error {
	if m.mutErr != nil {
		return m.mutErr
	}
	item.ID = int64(len(m.created) + 1)
	m.created = append(m.created, item)
	return nil
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus) error {
	if m.mutErr != nil {
		return m.mutErr
	}
	if m.statuses == nil {
		m.statuses = make(map[int64]models.ContactStatus)
	}
	m.statuses[id] = status
	return nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id int64) error {
	return m.mutErr
}

func TestContactServiceSubmitForcesNewStatus(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, nil, nil)

	item, err := svc.Submit(context.Background(), dto.CreateContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "I have a project for you.",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, item.Status)
	require.Len(t, repo.created, 1)
}

func TestContactServiceSubmitRejectsShortMessage(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, nil, nil)

	_, err := svc.Submit(context.Background(), dto.CreateContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "hi",
	})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "message")
	assert.Empty(t, repo.created)
}

func TestContactServiceUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, nil, nil)

	err := svc.UpdateStatus(context.Background(), 1, dto.UpdateContactStatusRequest{Status: "archived"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Empty(t, repo.statuses)
}

func TestContactServiceUpdateStatusNotFound(t *testing.T) {
	repo := &mockContactRepo{mutErr: sql.ErrNoRows}
	svc := NewContactService(repo, nil, nil)

	err := svc.UpdateStatus(context.Background(), 404, dto.UpdateContactStatusRequest{Status: "read"})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestContactServiceExportCSV(t *testing.T) {
	repo := &mockContactRepo{items: []models.Contact{
		{ID: 1, Name: "Jane", Email: "jane@example.com", Message: "Hello there, builders", Status: models.ContactStatusNew, CreatedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
	}}
	svc := NewContactService(repo, nil, nil)

	payload, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	text := string(payload)
	assert.True(t, strings.HasPrefix(text, "Date,Name,Email,Status,Message"))
	assert.Contains(t, text, "jane@example.com")
	assert.Contains(t, text, "2026-03-01 09:30")
}

func TestContactServiceExportPDFProducesDocument(t *testing.T) {
	repo := &mockContactRepo{items: []models.Contact{
		{ID: 1, Name: "Jane", Email: "jane@example.com", Message: "Hello there, builders", Status: models.ContactStatusRead, CreatedAt: time.Now()},
	}}
	svc := NewContactService(repo, nil, nil)

	payload, err := svc.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}
