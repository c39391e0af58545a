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

type techStackRepository interface {
	List(ctx context.Context) ([]models.TechStack, error)
	Create(ctx context.Context, item *models.TechStack) error
	Update(ctx context.Context, item *models.TechStack) error
	Delete(ctx context.Context, id int64) error
}

// TechStackService implements the validated CRUD contract for badges.
type TechStackService struct {
	repo      techStackRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewTechStackService constructs the service.
func NewTechStackService(repo techStackRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *TechStackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	return &TechStackService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns all badges newest-first. Admin callers see the error.
func (s *TechStackService) List(ctx context.Context) ([]models.TechStack, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch tech stacks")
	}
	if items == nil {
		items = []models.TechStack{}
	}
	return items, nil
}

// ListPublic serves the public page: cached, and degrading to an empty list
// on persistence failure so the page still renders.
func (s *TechStackService) ListPublic(ctx context.Context) []models.TechStack {
	var cached []models.TechStack
	if s.cache.Get(ctx, CacheKeyTechStacks, &cached) {
		return cached
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("public tech stack read failed", zap.Error(err))
		return []models.TechStack{}
	}
	if items == nil {
		items = []models.TechStack{}
	}
	s.cache.Set(ctx, CacheKeyTechStacks, items)
	return items
}

// Create validates and inserts a badge.
func (s *TechStackService) Create(ctx context.Context, req dto.TechStackRequest) (*models.TechStack, error) {
	if verr := validation.Check(s.validator, req); verr != nil {
		return nil, verr
	}

	item := &models.TechStack{
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		IconColor:   req.IconColor,
		BgColor:     req.BgColor,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create tech stack")
	}

	s.cache.Invalidate(ctx, CacheKeyTechStacks)
	return item, nil
}

// Update validates and rewrites an existing badge.
func (s *TechStackService) Update(ctx context.Context, id int64, req dto.TechStackRequest) (*models.TechStack, error) {
	if verr := validation.Check(s.validator, req); verr != nil {
		return nil, verr
	}

	item := &models.TechStack{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		IconName:    req.IconName,
		IconColor:   req.IconColor,
		BgColor:     req.BgColor,
	}
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "tech stack not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update tech stack")
	}

	s.cache.Invalidate(ctx, CacheKeyTechStacks)
	return item, nil
}

// Delete removes a badge.
func (s *TechStackService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "tech stack not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete tech stack")
	}

	s.cache.Invalidate(ctx, CacheKeyTechStacks)
	return nil
}
