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

type aboutRepository interface {
	Get(ctx context.Context) (*models.About, error)
	Upsert(ctx context.Context, item *models.About) error
}

// AboutService manages the singleton about record. The only mutation is the
// upsert; there is no create or delete surface.
type AboutService struct {
	repo      aboutRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewAboutService constructs the service.
func NewAboutService(repo aboutRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *AboutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	return &AboutService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// Get returns the singleton record, or nil when none has been written yet.
// Admin callers see persistence errors.
func (s *AboutService) Get(ctx context.Context) (*models.About, error) {
	item, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch about")
	}
	return item, nil
}

// GetPublic serves the public page: cached, nil on any failure.
func (s *AboutService) GetPublic(ctx context.Context) *models.About {
	var cached models.About
	if s.cache.Get(ctx, CacheKeyAbout, &cached) {
		return &cached
	}

	item, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("public about read failed", zap.Error(err))
		}
		return nil
	}
	s.cache.Set(ctx, CacheKeyAbout, item)
	return item
}

// Upsert validates and writes the singleton record in place.
func (s *AboutService) Upsert(ctx context.Context, req dto.AboutRequest) (*models.About, error) {
	req.Normalize()
	if verr := validation.Check(s.validator, req); verr != nil {
		return nil, verr
	}

	item := &models.About{
		Name:             req.Name,
		Title:            req.Title,
		Location:         req.Location,
		ImageURL:         req.ImageURL,
		NarrativeTitle:   req.NarrativeTitle,
		NarrativeContent: req.NarrativeContent,
		CoreValues:       req.CoreValues,
		Interests:        req.Interests,
	}
	if item.CoreValues == nil {
		item.CoreValues = models.CoreValueList{}
	}
	if item.Interests == nil {
		item.Interests = models.StringList{}
	}

	if err := s.repo.Upsert(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save about")
	}

	s.cache.Invalidate(ctx, CacheKeyAbout)
	return item, nil
}
