package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PortalSettings represents the admin-tunable registration policy: tariff
// bands per category, the annual fee grid, sub-division concessions and
// enforcement flags. Read-only to the applicant flow.
type PortalSettings struct {
	ID                        primitive.ObjectID      `bson:"_id,omitempty" json:"id,omitempty"`
	RateBands                 []CategoryRateBand      `bson:"rateBands" json:"rateBands"`
	FeeSchedule               []FeeScheduleEntry      `bson:"feeSchedule" json:"feeSchedule"`
	SubDivisionConcessions    []SubDivisionConcession `bson:"subDivisionConcessions" json:"subDivisionConcessions"`
	LockToRecommendedCategory bool                    `bson:"lockToRecommendedCategory" json:"lockToRecommendedCategory"`
	CreatedAt                 time.Time               `bson:"createdAt" json:"createdAt"`
	UpdatedAt                 time.Time               `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy                 string                  `bson:"updatedBy" json:"updatedBy"`
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// DefaultPortalSettings returns the seeded policy used until an admin
// changes it: silver up to 2999/night, gold 3000-7999, diamond 8000+,
// the nine-cell fee grid, and the Pangi sub-division 50% concession.
func DefaultPortalSettings() *PortalSettings {
	silverMax := dec(2999)
	goldMax := dec(7999)
	return &PortalSettings{
		RateBands: []CategoryRateBand{
			{Category: CategorySilver, Min: dec(0), Max: &silverMax},
			{Category: CategoryGold, Min: dec(3000), Max: &goldMax},
			{Category: CategoryDiamond, Min: dec(8000), Max: nil},
		},
		FeeSchedule: []FeeScheduleEntry{
			{Category: CategorySilver, LocationType: LocationMunicipalCorp, BaseFee: dec(8000)},
			{Category: CategorySilver, LocationType: LocationPlanningArea, BaseFee: dec(5000)},
			{Category: CategorySilver, LocationType: LocationGramPanchayat, BaseFee: dec(3000)},
			{Category: CategoryGold, LocationType: LocationMunicipalCorp, BaseFee: dec(12000)},
			{Category: CategoryGold, LocationType: LocationPlanningArea, BaseFee: dec(8000)},
			{Category: CategoryGold, LocationType: LocationGramPanchayat, BaseFee: dec(5000)},
			{Category: CategoryDiamond, LocationType: LocationMunicipalCorp, BaseFee: dec(18000)},
			{Category: CategoryDiamond, LocationType: LocationPlanningArea, BaseFee: dec(12000)},
			{Category: CategoryDiamond, LocationType: LocationGramPanchayat, BaseFee: dec(8000)},
		},
		SubDivisionConcessions: []SubDivisionConcession{
			{District: "Chamba", Tehsil: "Pangi", Rate: decimal.NewFromFloat(0.50)},
		},
		LockToRecommendedCategory: false,
		CreatedAt:                 time.Now(),
		UpdatedAt:                 time.Now(),
	}
}
