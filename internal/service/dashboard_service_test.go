package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fendiRahmans/portofolio-api/internal/models"
)

type stubCounter struct {
	total int
	err   error
}

func (s stubCounter) Count(ctx context.Context) (int, error) {
	return s.total, s.err
}

type stubContactCounter struct {
	stubCounter
	unread int
}

func (s stubContactCounter) CountByStatus(ctx context.Context, status models.ContactStatus) (int, error) {
	return s.unread, s.err
}

func TestDashboardServiceStats(t *testing.T) {
	settingSvc := NewSettingService(&mockSettingRepo{items: map[string]*models.Setting{
		models.SettingAvailableForHire: {Name: models.SettingAvailableForHire, Value: "true"},
	}}, nil, disabledCache(), nil)

	svc := NewDashboardService(
		stubCounter{total: 8},
		stubCounter{total: 4},
		stubContactCounter{stubCounter: stubCounter{total: 12}, unread: 3},
		stubCounter{total: 5},
		settingSvc,
		nil,
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.TechStacks)
	assert.Equal(t, 4, stats.Careers)
	assert.Equal(t, 12, stats.Contacts)
	assert.Equal(t, 3, stats.UnreadContacts)
	assert.Equal(t, 5, stats.Settings)
	assert.True(t, stats.AvailableForHire)
}

func TestDashboardServiceStatsSurfacesCountError(t *testing.T) {
	settingSvc := NewSettingService(&mockSettingRepo{}, nil, disabledCache(), nil)

	svc := NewDashboardService(
		stubCounter{err: errors.New("connection refused")},
		stubCounter{},
		stubContactCounter{},
		stubCounter{},
		settingSvc,
		nil,
	)

	_, err := svc.Stats(context.Background())
	require.Error(t, err)
}
