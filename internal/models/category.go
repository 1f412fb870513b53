package models

import (
	"github.com/shopspring/decimal"
)

// Category represents a homestay registration category
type Category string

const (
	CategorySilver  Category = "silver"
	CategoryGold    Category = "gold"
	CategoryDiamond Category = "diamond"
)

// AllCategories lists categories from cheapest to most premium
var AllCategories = []Category{CategorySilver, CategoryGold, CategoryDiamond}

// IsValidCategory reports whether c is a known category
func IsValidCategory(c Category) bool {
	switch c {
	case CategorySilver, CategoryGold, CategoryDiamond:
		return true
	}
	return false
}

// LocationType represents the planning-area classification of a property
type LocationType string

const (
	LocationMunicipalCorp LocationType = "mc"
	LocationPlanningArea  LocationType = "tcp"
	LocationGramPanchayat LocationType = "gp"
)

// IsValidLocationType reports whether l is a known location type
func IsValidLocationType(l LocationType) bool {
	switch l {
	case LocationMunicipalCorp, LocationPlanningArea, LocationGramPanchayat:
		return true
	}
	return false
}

// CategoryRateBand maps a category to its allowed nightly-tariff band.
// Max is nil for the open-ended top band.
type CategoryRateBand struct {
	Category Category         `bson:"category" json:"category"`
	Min      decimal.Decimal  `bson:"min" json:"min"`
	Max      *decimal.Decimal `bson:"max,omitempty" json:"max,omitempty"`
}

// Contains reports whether rate falls inside the band
func (b CategoryRateBand) Contains(rate decimal.Decimal) bool {
	if rate.LessThan(b.Min) {
		return false
	}
	if b.Max != nil && rate.GreaterThan(*b.Max) {
		return false
	}
	return true
}

// FindBand returns the band configured for the given category
func FindBand(bands []CategoryRateBand, category Category) (CategoryRateBand, bool) {
	for _, b := range bands {
		if b.Category == category {
			return b, true
		}
	}
	return CategoryRateBand{}, false
}

// CategoryValidationResult is the outcome of checking a chosen category
// against the declared room rates. It is derived state, recomputed on every
// call and never persisted.
type CategoryValidationResult struct {
	Evaluated         bool     `json:"evaluated"`
	IsValid           bool     `json:"isValid"`
	Errors            []string `json:"errors"`
	Warnings          []string `json:"warnings"`
	SuggestedCategory Category `json:"suggestedCategory,omitempty"`
}
