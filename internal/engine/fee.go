package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/himtourism/homestay-portal/internal/models"
)

// Discount policy. The lump-sum incentive applies to the long validity
// term only; the owner and sub-division concessions each apply to the
// amount remaining after the previous stage.
const (
	ShortValidityYears = 1
	LongValidityYears  = 3
)

var (
	lumpSumDiscountRate     = decimal.NewFromFloat(0.10)
	femaleOwnerDiscountRate = decimal.NewFromFloat(0.05)
	hundred                 = decimal.NewFromInt(100)
)

// FeeInput collects everything the fee computation depends on
type FeeInput struct {
	Category      models.Category
	LocationType  models.LocationType
	ValidityYears int
	OwnerGender   models.Gender
	District      string
	Tehsil        string
}

// discountStage is one step of the ordered discount pipeline. Each stage
// sees the remainder left by the stages before it; reordering the pipeline
// changes the final fee.
type discountStage struct {
	rate    decimal.Decimal
	applies bool
}

func (s discountStage) amountOn(remainder decimal.Decimal) decimal.Decimal {
	if !s.applies {
		return decimal.Zero
	}
	return remainder.Mul(s.rate)
}

// ConcessionRate returns the configured sub-division concession rate for
// the given district and tehsil, or zero when none applies. Matching is
// case-insensitive.
func ConcessionRate(concessions []models.SubDivisionConcession, district, tehsil string) decimal.Decimal {
	for _, c := range concessions {
		if strings.EqualFold(c.District, district) && strings.EqualFold(c.Tehsil, tehsil) {
			return c.Rate
		}
	}
	return decimal.Zero
}

// CalculateFee computes the registration fee breakdown for the given
// inputs against the fee schedule and concession table.
//
// The base fee comes from the category x location-type grid and is paid
// once per validity year. Discounts then apply in a fixed order - the
// long-term lump-sum incentive, the female-owner concession on the
// remainder, and the sub-division concession on what is left - and the
// final fee is rounded to two decimals only after all stages have run.
// Intermediate fields keep full precision.
func CalculateFee(in FeeInput, schedule []models.FeeScheduleEntry, concessions []models.SubDivisionConcession) (models.FeeBreakdown, error) {
	var breakdown models.FeeBreakdown

	if in.ValidityYears != ShortValidityYears && in.ValidityYears != LongValidityYears {
		return breakdown, fmt.Errorf("validity term must be %d or %d years, got %d", ShortValidityYears, LongValidityYears, in.ValidityYears)
	}
	baseFee, ok := models.FindBaseFee(schedule, in.Category, in.LocationType)
	if !ok {
		return breakdown, fmt.Errorf("no fee is scheduled for category %q in location type %q", in.Category, in.LocationType)
	}

	totalBefore := baseFee.Mul(decimal.NewFromInt(int64(in.ValidityYears)))

	concession := ConcessionRate(concessions, in.District, in.Tehsil)
	stages := []discountStage{
		{rate: lumpSumDiscountRate, applies: in.ValidityYears == LongValidityYears},
		{rate: femaleOwnerDiscountRate, applies: in.OwnerGender == models.GenderFemale},
		{rate: concession, applies: concession.IsPositive()},
	}

	remainder := totalBefore
	amounts := make([]decimal.Decimal, len(stages))
	for i, stage := range stages {
		amounts[i] = stage.amountOn(remainder)
		remainder = remainder.Sub(amounts[i])
	}

	totalDiscount := decimal.Zero
	for _, a := range amounts {
		totalDiscount = totalDiscount.Add(a)
	}

	breakdown = models.FeeBreakdown{
		BaseFee:              baseFee,
		TotalBeforeDiscounts: totalBefore,
		ValidityDiscount:     amounts[0],
		FemaleOwnerDiscount:  amounts[1],
		SubDivisionDiscount:  amounts[2],
		TotalDiscount:        totalDiscount,
		FinalFee:             totalBefore.Sub(totalDiscount).Round(2),
		SavingsAmount:        totalDiscount,
	}
	if totalBefore.IsPositive() {
		breakdown.SavingsPercentage = totalDiscount.Div(totalBefore).Mul(hundred)
	} else {
		breakdown.SavingsPercentage = decimal.Zero
	}
	return breakdown, nil
}
