package models

import (
	"github.com/shopspring/decimal"
)

// FeeScheduleEntry is one cell of the category x location-type fee grid
type FeeScheduleEntry struct {
	Category     Category        `bson:"category" json:"category"`
	LocationType LocationType    `bson:"locationType" json:"locationType"`
	BaseFee      decimal.Decimal `bson:"baseFee" json:"baseFee"`
}

// FindBaseFee looks up the annual base fee for a category and location type
func FindBaseFee(schedule []FeeScheduleEntry, category Category, location LocationType) (decimal.Decimal, bool) {
	for _, e := range schedule {
		if e.Category == category && e.LocationType == location {
			return e.BaseFee, true
		}
	}
	return decimal.Zero, false
}

// SubDivisionConcession grants a fee concession to properties in a specific
// district sub-division. Rate is a fraction, e.g. 0.50 for a 50% concession.
type SubDivisionConcession struct {
	District string          `bson:"district" json:"district"`
	Tehsil   string          `bson:"tehsil" json:"tehsil"`
	Rate     decimal.Decimal `bson:"rate" json:"rate"`
}

// FeeBreakdown itemises the registration fee computation. Intermediate
// amounts carry full precision; FinalFee is rounded to two decimals as the
// last computation step. It is derived from the application's current state
// and recomputed whenever an input changes.
type FeeBreakdown struct {
	BaseFee              decimal.Decimal `bson:"baseFee" json:"baseFee"`
	TotalBeforeDiscounts decimal.Decimal `bson:"totalBeforeDiscounts" json:"totalBeforeDiscounts"`
	ValidityDiscount     decimal.Decimal `bson:"validityDiscount" json:"validityDiscount"`
	FemaleOwnerDiscount  decimal.Decimal `bson:"femaleOwnerDiscount" json:"femaleOwnerDiscount"`
	SubDivisionDiscount  decimal.Decimal `bson:"subDivisionDiscount" json:"subDivisionDiscount"`
	TotalDiscount        decimal.Decimal `bson:"totalDiscount" json:"totalDiscount"`
	FinalFee             decimal.Decimal `bson:"finalFee" json:"finalFee"`
	SavingsAmount        decimal.Decimal `bson:"savingsAmount" json:"savingsAmount"`
	SavingsPercentage    decimal.Decimal `bson:"savingsPercentage" json:"savingsPercentage"`
}

// Rounded returns a copy with every amount rounded to two decimal places,
// for presentation and for the submission payload.
func (f FeeBreakdown) Rounded() FeeBreakdown {
	return FeeBreakdown{
		BaseFee:              f.BaseFee.Round(2),
		TotalBeforeDiscounts: f.TotalBeforeDiscounts.Round(2),
		ValidityDiscount:     f.ValidityDiscount.Round(2),
		FemaleOwnerDiscount:  f.FemaleOwnerDiscount.Round(2),
		SubDivisionDiscount:  f.SubDivisionDiscount.Round(2),
		TotalDiscount:        f.TotalDiscount.Round(2),
		FinalFee:             f.FinalFee.Round(2),
		SavingsAmount:        f.SavingsAmount.Round(2),
		SavingsPercentage:    f.SavingsPercentage.Round(2),
	}
}
