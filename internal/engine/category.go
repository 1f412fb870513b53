package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/himtourism/homestay-portal/internal/models"
)

// SuggestCategory returns the lowest category whose tariff band contains
// the given nightly rate. Bands are scanned cheapest-first so ties resolve
// toward the lower category. The second return is false when no band
// contains the rate.
func SuggestCategory(rate decimal.Decimal, bands []models.CategoryRateBand) (models.Category, bool) {
	for _, cat := range models.AllCategories {
		band, ok := models.FindBand(bands, cat)
		if !ok {
			continue
		}
		if band.Contains(rate) {
			return cat, true
		}
	}
	return "", false
}

// ValidateCategory decides whether the chosen category is compliant with
// the declared room rates.
//
// Two independent checks run: the highest declared rate against the
// category's band, and every priced row against the same band. A rate above
// the band ceiling is always a blocking error; a rate below the band floor
// is a warning that blocks only when lockToRecommended is set (the admin
// "lock to recommended category" policy). Any priced row outside the band
// blocks regardless of the aggregate check.
//
// When no room has been declared or no rate entered, the result is
// unevaluated: not a pass, but not an error either.
func ValidateCategory(category models.Category, rows []models.RoomRow, bands []models.CategoryRateBand, lockToRecommended bool) models.CategoryValidationResult {
	result := models.CategoryValidationResult{
		Errors:   []string{},
		Warnings: []string{},
	}

	totalRooms := models.TotalRooms(rows)
	highest := models.HighestNightlyRate(rows)
	if totalRooms == 0 || !highest.IsPositive() {
		return result
	}
	result.Evaluated = true

	band, ok := models.FindBand(bands, category)
	if !ok {
		result.Errors = append(result.Errors, fmt.Sprintf("no tariff band is configured for the %s category", category))
		return result
	}

	if suggested, ok := SuggestCategory(highest, bands); ok {
		result.SuggestedCategory = suggested
	}

	underFloor := highest.LessThan(band.Min)
	if band.Max != nil && highest.GreaterThan(*band.Max) {
		msg := fmt.Sprintf("highest nightly tariff %s exceeds the %s category ceiling of %s",
			highest.StringFixed(0), category, band.Max.StringFixed(0))
		if result.SuggestedCategory != "" {
			msg += fmt.Sprintf("; the declared tariffs qualify for the %s category", result.SuggestedCategory)
		}
		result.Errors = append(result.Errors, msg)
	} else if underFloor {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"highest nightly tariff %s is below the %s category floor of %s; the %s category would cost less",
			highest.StringFixed(0), category, band.Min.StringFixed(0), result.SuggestedCategory))
	}

	// Per-row conflicts: with mixed room types, the binding constraint is
	// the row least compatible with the chosen category. When every row sits
	// under the floor the aggregate overpaying warning already covers it, so
	// the row scan is skipped to keep that case advisory.
	if !underFloor {
		for _, r := range rows {
			if r.Quantity == 0 || !r.NightlyRate.IsPositive() {
				continue
			}
			if !band.Contains(r.NightlyRate) {
				result.Errors = append(result.Errors, fmt.Sprintf(
					"%s room tariff %s falls outside the %s category band",
					r.RoomType, r.NightlyRate.StringFixed(0), category))
			}
		}
	}

	result.IsValid = len(result.Errors) == 0 && (!lockToRecommended || len(result.Warnings) == 0)
	return result
}
