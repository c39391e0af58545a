package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
)

type resourceCounter interface {
	Count(ctx context.Context) (int, error)
}

type contactCounter interface {
	resourceCounter
	CountByStatus(ctx context.Context, status models.ContactStatus) (int, error)
}

// DashboardService aggregates the counts behind the admin dashboard cards.
type DashboardService struct {
	techStacks resourceCounter
	careers    resourceCounter
	contacts   contactCounter
	settings   resourceCounter
	settingSvc *SettingService
	logger     *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(techStacks, careers resourceCounter, contacts contactCounter, settings resourceCounter, settingSvc *SettingService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		techStacks: techStacks,
		careers:    careers,
		contacts:   contacts,
		settings:   settings,
		settingSvc: settingSvc,
		logger:     logger,
	}
}

// Stats gathers the resource counts and the availability flag.
func (s *DashboardService) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	var err error
	if stats.TechStacks, err = s.techStacks.Count(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count tech stacks")
	}
	if stats.Careers, err = s.careers.Count(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count careers")
	}
	if stats.Contacts, err = s.contacts.Count(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count contacts")
	}
	if stats.UnreadContacts, err = s.contacts.CountByStatus(ctx, models.ContactStatusNew); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count unread contacts")
	}
	if stats.Settings, err = s.settings.Count(ctx); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count settings")
	}

	stats.AvailableForHire = s.settingSvc.AvailableForHire(ctx)
	return stats, nil
}
