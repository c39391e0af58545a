package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// SiteService derives the public shell payload: the career year range, the
// experience subtitle (setting override first, derived fallback second), the
// availability flag, and the contact links.
type SiteService struct {
	careers  *CareerService
	settings *SettingService
	cache    *CacheService
	logger   *zap.Logger
	now      func() time.Time
}

// NewSiteService constructs the service.
func NewSiteService(careers *CareerService, settings *SettingService, cache *CacheService, logger *zap.Logger) *SiteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteService{careers: careers, settings: settings, cache: cache, logger: logger, now: time.Now}
}

// Summary assembles the derived public payload.
func (s *SiteService) Summary(ctx context.Context) dto.SiteSummary {
	var cached dto.SiteSummary
	if s.cache.Get(ctx, CacheKeySite, &cached) {
		return cached
	}

	entries := s.careers.ListPublic(ctx)
	yearRange, ongoing := deriveYearRange(entries, s.now().Year())

	summary := dto.SiteSummary{
		YearRange:        yearRange,
		Subtitle:         s.settings.GetValue(ctx, models.SettingExperienceSubtitle, defaultSubtitle(yearRange, ongoing)),
		AvailableForHire: s.settings.AvailableForHire(ctx),
		Contact: dto.ContactLinks{
			Email:    s.settings.GetValue(ctx, models.SettingContactEmail, ""),
			LinkedIn: s.settings.GetValue(ctx, models.SettingContactLinkedIn, ""),
			GitHub:   s.settings.GetValue(ctx, models.SettingContactGitHub, ""),
		},
	}

	s.cache.Set(ctx, CacheKeySite, summary)
	return summary
}

// deriveYearRange extracts every 4-digit number from the free-text year
// labels and spans min to max. A label containing "present" or "now" forces
// max to the current calendar year. Returns nil when no year is found.
func deriveYearRange(entries []models.Career, currentYear int) (*dto.YearRange, bool) {
	min, max := 0, 0
	ongoing := false
	for _, entry := range entries {
		label := strings.ToLower(entry.Year)
		if strings.Contains(label, "present") || strings.Contains(label, "now") {
			ongoing = true
		}
		for _, match := range yearPattern.FindAllString(entry.Year, -1) {
			year, err := strconv.Atoi(match)
			if err != nil {
				continue
			}
			if min == 0 || year < min {
				min = year
			}
			if year > max {
				max = year
			}
		}
	}
	if min == 0 {
		return nil, ongoing
	}
	if ongoing && currentYear > max {
		max = currentYear
	}
	return &dto.YearRange{Min: min, Max: max}, ongoing
}

func defaultSubtitle(yearRange *dto.YearRange, ongoing bool) string {
	if yearRange == nil {
		return ""
	}
	if ongoing {
		return fmt.Sprintf("since %d", yearRange.Min)
	}
	if yearRange.Min == yearRange.Max {
		return strconv.Itoa(yearRange.Min)
	}
	return fmt.Sprintf("%d — %d", yearRange.Min, yearRange.Max)
}
