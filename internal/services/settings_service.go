package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
)

var one = decimal.NewFromInt(1)

// SettingsService handles the admin-tunable registration policy
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the current portal settings, seeding defaults on
// first use.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.PortalSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings validates and stores a full settings replacement
func (s *SettingsService) UpdateSettings(ctx context.Context, settings *models.PortalSettings, updatedBy string) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return err
	}
	settings.ID = current.ID
	settings.CreatedAt = current.CreatedAt
	settings.UpdatedBy = updatedBy
	return s.settingsRepo.Save(ctx, settings)
}

// SetCategoryLock toggles the "lock to recommended category" policy
func (s *SettingsService) SetCategoryLock(ctx context.Context, locked bool, updatedBy string) (*models.PortalSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	settings.LockToRecommendedCategory = locked
	settings.UpdatedBy = updatedBy
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// validateSettings enforces the structural invariants of the policy
// tables: one band per category, contiguous and ordered cheapest-first
// with an open-ended top band, and a complete fee grid.
func validateSettings(settings *models.PortalSettings) error {
	if len(settings.RateBands) != len(models.AllCategories) {
		return fmt.Errorf("exactly %d rate bands are required", len(models.AllCategories))
	}
	var prev *models.CategoryRateBand
	for i, cat := range models.AllCategories {
		band, ok := models.FindBand(settings.RateBands, cat)
		if !ok {
			return fmt.Errorf("rate band for category %q is missing", cat)
		}
		if band.Min.IsNegative() {
			return fmt.Errorf("rate band for category %q has a negative minimum", cat)
		}
		if prev != nil {
			if prev.Max == nil {
				return fmt.Errorf("only the %s band may be open-ended", models.AllCategories[len(models.AllCategories)-1])
			}
			if !band.Min.GreaterThan(*prev.Max) {
				return fmt.Errorf("band for %q must start above the previous band's maximum", cat)
			}
		}
		if i == len(models.AllCategories)-1 && band.Max != nil {
			return fmt.Errorf("the %s band must be open-ended", cat)
		}
		b := band
		prev = &b
	}

	for _, cat := range models.AllCategories {
		for _, loc := range []models.LocationType{models.LocationMunicipalCorp, models.LocationPlanningArea, models.LocationGramPanchayat} {
			fee, ok := models.FindBaseFee(settings.FeeSchedule, cat, loc)
			if !ok {
				return fmt.Errorf("fee schedule is missing the %s x %s cell", cat, loc)
			}
			if fee.IsNegative() {
				return fmt.Errorf("fee for %s x %s is negative", cat, loc)
			}
		}
	}

	for _, c := range settings.SubDivisionConcessions {
		if c.District == "" || c.Tehsil == "" {
			return fmt.Errorf("sub-division concessions must name a district and tehsil")
		}
		if c.Rate.IsNegative() || c.Rate.GreaterThan(one) {
			return fmt.Errorf("concession rate for %s/%s must be between 0 and 1", c.District, c.Tehsil)
		}
	}
	return nil
}
