package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himtourism/homestay-portal/internal/models"
)

func TestUpdateSettings_AcceptsValidReplacement(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	updated := models.DefaultPortalSettings()
	silverMax := decimal.NewFromInt(3999)
	goldMax := decimal.NewFromInt(9999)
	updated.RateBands = []models.CategoryRateBand{
		{Category: models.CategorySilver, Min: decimal.Zero, Max: &silverMax},
		{Category: models.CategoryGold, Min: decimal.NewFromInt(4000), Max: &goldMax},
		{Category: models.CategoryDiamond, Min: decimal.NewFromInt(10000)},
	}

	require.NoError(t, svc.UpdateSettings(context.Background(), updated, "admin@hp.gov.in"))

	stored, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@hp.gov.in", stored.UpdatedBy)
	band, ok := models.FindBand(stored.RateBands, models.CategoryGold)
	require.True(t, ok)
	assert.True(t, band.Min.Equal(decimal.NewFromInt(4000)))
}

func TestUpdateSettings_RejectsOverlappingBands(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	bad := models.DefaultPortalSettings()
	silverMax := decimal.NewFromInt(5000)
	goldMax := decimal.NewFromInt(7999)
	bad.RateBands = []models.CategoryRateBand{
		{Category: models.CategorySilver, Min: decimal.Zero, Max: &silverMax},
		{Category: models.CategoryGold, Min: decimal.NewFromInt(3000), Max: &goldMax},
		{Category: models.CategoryDiamond, Min: decimal.NewFromInt(8000)},
	}

	err := svc.UpdateSettings(context.Background(), bad, "admin@hp.gov.in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start above")
}

func TestUpdateSettings_RequiresOpenEndedTopBand(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	bad := models.DefaultPortalSettings()
	diamondMax := decimal.NewFromInt(99999)
	bad.RateBands[2].Max = &diamondMax

	err := svc.UpdateSettings(context.Background(), bad, "admin@hp.gov.in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open-ended")
}

func TestUpdateSettings_RequiresCompleteFeeGrid(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	bad := models.DefaultPortalSettings()
	bad.FeeSchedule = bad.FeeSchedule[:8]

	err := svc.UpdateSettings(context.Background(), bad, "admin@hp.gov.in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestUpdateSettings_RejectsOutOfRangeConcession(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsRepo{})

	bad := models.DefaultPortalSettings()
	bad.SubDivisionConcessions = []models.SubDivisionConcession{
		{District: "Chamba", Tehsil: "Pangi", Rate: decimal.NewFromFloat(1.5)},
	}

	err := svc.UpdateSettings(context.Background(), bad, "admin@hp.gov.in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 1")
}

func TestSetCategoryLock_TogglesPolicy(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	settings, err := svc.SetCategoryLock(context.Background(), true, "admin@hp.gov.in")
	require.NoError(t, err)
	assert.True(t, settings.LockToRecommendedCategory)

	stored, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, stored.LockToRecommendedCategory)

	settings, err = svc.SetCategoryLock(context.Background(), false, "admin@hp.gov.in")
	require.NoError(t, err)
	assert.False(t, settings.LockToRecommendedCategory)
}
