package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/validation"
)

type careerRepository interface {
	List(ctx context.Context) ([]models.Career, error)
	Create(ctx context.Context, item *models.Career) error
	Update(ctx context.Context, item *models.Career) error
	Delete(ctx context.Context, id int64) error
}

// CareerService implements the validated CRUD contract for timeline entries.
type CareerService struct {
	repo      careerRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewCareerService constructs the service.
func NewCareerService(repo careerRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *CareerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	return &CareerService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns all entries newest-first. Admin callers see the error.
func (s *CareerService) List(ctx context.Context) ([]models.Career, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch careers")
	}
	if items == nil {
		items = []models.Career{}
	}
	return items, nil
}

// ListPublic serves the public timeline: cached, degrading to empty on
// persistence failure.
func (s *CareerService) ListPublic(ctx context.Context) []models.Career {
	var cached []models.Career
	if s.cache.Get(ctx, CacheKeyCareers, &cached) {
		return cached
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("public career read failed", zap.Error(err))
		return []models.Career{}
	}
	if items == nil {
		items = []models.Career{}
	}
	s.cache.Set(ctx, CacheKeyCareers, items)
	return items
}

// Create validates and inserts an entry.
func (s *CareerService) Create(ctx context.Context, req dto.CareerRequest) (*models.Career, error) {
	item, verr := s.buildEntry(req)
	if verr != nil {
		return nil, verr
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create career")
	}

	s.invalidate(ctx)
	return item, nil
}

// Update validates and rewrites an existing entry.
func (s *CareerService) Update(ctx context.Context, id int64, req dto.CareerRequest) (*models.Career, error) {
	item, verr := s.buildEntry(req)
	if verr != nil {
		return nil, verr
	}
	item.ID = id
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "career not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update career")
	}

	s.invalidate(ctx)
	return item, nil
}

// Delete removes an entry.
func (s *CareerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "career not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete career")
	}

	s.invalidate(ctx)
	return nil
}

func (s *CareerService) buildEntry(req dto.CareerRequest) (*models.Career, *appErrors.Error) {
	req.Normalize()
	if verr := validation.Check(s.validator, req); verr != nil {
		return nil, verr
	}
	return &models.Career{
		Year:        req.Year,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       models.CareerColor(req.Color),
		Highlights:  resolveHighlights(req),
	}, nil
}

// resolveHighlights maps the submitted list fields onto the stored tagged
// variant. An explicit kind wins; otherwise the first populated list decides,
// in the order tech-pills, plain-list, labeled-list, bulleted.
func resolveHighlights(req dto.CareerRequest) models.Highlights {
	h := models.Highlights{Kind: models.HighlightNone, Items: models.StringList{}, Projects: models.ProjectRefList{}}

	switch models.HighlightKind(req.HighlightKind) {
	case models.HighlightTechPills:
		h.Kind = models.HighlightTechPills
		h.Items = req.TechStack
	case models.HighlightPlainList:
		h.Kind = models.HighlightPlainList
		h.Items = req.KeyProjects
	case models.HighlightLabeledList:
		h.Kind = models.HighlightLabeledList
		h.Projects = req.ProjectList
	case models.HighlightBulleted:
		h.Kind = models.HighlightBulleted
		h.Items = req.BulletPoints
	case models.HighlightNone:
		return h
	default:
		switch {
		case len(req.TechStack) > 0:
			h.Kind = models.HighlightTechPills
			h.Items = req.TechStack
		case len(req.KeyProjects) > 0:
			h.Kind = models.HighlightPlainList
			h.Items = req.KeyProjects
		case len(req.ProjectList) > 0:
			h.Kind = models.HighlightLabeledList
			h.Projects = req.ProjectList
		case len(req.BulletPoints) > 0:
			h.Kind = models.HighlightBulleted
			h.Items = req.BulletPoints
		}
	}

	if h.Items == nil {
		h.Items = models.StringList{}
	}
	if h.Projects == nil {
		h.Projects = models.ProjectRefList{}
	}
	return h
}

func (s *CareerService) invalidate(ctx context.Context) {
	// The site summary derives its year range from career entries.
	s.cache.Invalidate(ctx, CacheKeyCareers, CacheKeySite)
}
