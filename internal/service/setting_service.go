package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/validation"
)

const pgUniqueViolation = "23505"

type settingRepository interface {
	List(ctx context.Context) ([]models.Setting, error)
	GetByName(ctx context.Context, name string) (*models.Setting, error)
	Create(ctx context.Context, item *models.Setting) error
	Update(ctx context.Context, item *models.Setting) error
	Delete(ctx context.Context, id int64) error
	UpsertByName(ctx context.Context, name, value string) error
}

// SettingService implements the validated CRUD contract for key-value
// settings plus the by-name read path the public site uses.
type SettingService struct {
	repo      settingRepository
	validator *validator.Validate
	cache     *CacheService
	logger    *zap.Logger
}

// NewSettingService constructs the service.
func NewSettingService(repo settingRepository, validate *validator.Validate, cache *CacheService, logger *zap.Logger) *SettingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validation.New()
	}
	return &SettingService{repo: repo, validator: validate, cache: cache, logger: logger}
}

// List returns all settings newest-first.
func (s *SettingService) List(ctx context.Context) ([]models.Setting, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch settings")
	}
	if items == nil {
		items = []models.Setting{}
	}
	return items, nil
}

// Create validates and inserts a setting. Duplicate names surface as a
// field-level conflict rather than a bare 500.
func (s *SettingService) Create(ctx context.Context, req dto.SettingRequest) (*models.Setting, error) {
	if verr := validation.Check(s.validator, req); verr != nil {
		return nil, verr
	}

	item := &models.Setting{Name: req.Name, Value: req.Value}
	if err := s.repo.Create(ctx, item); err != nil {
		if isUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "a setting with this name already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create setting")
	}

	s.cache.Invalidate(ctx, CacheKeySite)
	return item, nil
}

// Update validates and rewrites an existing setting.
func (s *SettingService) Update(ctx context.Context, id int64, req dto.SettingRequest) (*models.Setting, error) {
	if verr := validation.Check(s.validator, req); verr != nil {
		return nil, verr
	}

	item := &models.Setting{ID: id, Name: req.Name, Value: req.Value}
	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "setting not found")
		}
		if isUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "a setting with this name already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update setting")
	}

	s.cache.Invalidate(ctx, CacheKeySite)
	return item, nil
}

// Delete removes a setting.
func (s *SettingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "setting not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete setting")
	}

	s.cache.Invalidate(ctx, CacheKeySite)
	return nil
}

// GetByName fetches a single setting by its unique name.
func (s *SettingService) GetByName(ctx context.Context, name string) (*models.Setting, error) {
	item, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "setting not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch setting")
	}
	return item, nil
}

// GetValue resolves a setting by name, returning the fallback when the key
// is absent or the store is unreachable.
func (s *SettingService) GetValue(ctx context.Context, name, fallback string) string {
	item, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("setting lookup failed", zap.String("name", name), zap.Error(err))
		}
		return fallback
	}
	return item.Value
}

// AvailableForHire reads the availability flag; absent means false.
func (s *SettingService) AvailableForHire(ctx context.Context) bool {
	value, err := strconv.ParseBool(s.GetValue(ctx, models.SettingAvailableForHire, "false"))
	if err != nil {
		return false
	}
	return value
}

// ToggleAvailableForHire writes the availability flag atomically.
func (s *SettingService) ToggleAvailableForHire(ctx context.Context, available bool) error {
	if err := s.repo.UpsertByName(ctx, models.SettingAvailableForHire, strconv.FormatBool(available)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update availability")
	}
	s.cache.Invalidate(ctx, CacheKeySite)
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
