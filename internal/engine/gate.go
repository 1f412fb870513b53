package engine

import (
	"fmt"
	"regexp"

	"github.com/himtourism/homestay-portal/internal/models"
)

// Step identifies one page of the application wizard
type Step int

const (
	StepProperty Step = iota + 1
	StepOwner
	StepRooms
	StepDistances
	StepDocuments
	StepReview
)

// FirstStep and LastStep bound the wizard's linear progression
const (
	FirstStep = StepProperty
	LastStep  = StepReview
)

// MinPropertyPhotos is the minimum number of property photographs required
// on the documents step.
const MinPropertyPhotos = 2

var (
	// Six-digit PIN codes in the state all start with 17.
	pinCodePattern = regexp.MustCompile(`^17\d{4}$`)
	// 15-character GSTIN: state code, PAN, entity code, Z, check character.
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// StepResult reports whether one wizard step permits forward navigation.
// Errors block; warnings are advisory unless the category lock policy
// promoted them inside the category validation.
type StepResult struct {
	Step       Step     `json:"step"`
	CanAdvance bool     `json:"canAdvance"`
	Errors     []string `json:"errors"`
	Warnings   []string `json:"warnings"`
}

// CanNavigate reports whether the applicant may jump directly to target:
// any step already reached may be revisited freely; steps beyond the
// high-water mark are reachable only by advancing through the gate.
func CanNavigate(target Step, maxStepReached int) bool {
	return target >= FirstStep && target <= LastStep && int(target) <= maxStepReached
}

// MandatoryDocuments returns the document types that must each have at
// least one upload before the documents step passes. Gold and diamond
// applications additionally require a fire NOC and a GST certificate.
func MandatoryDocuments(category models.Category) []models.DocumentType {
	docs := []models.DocumentType{models.DocOwnershipProof, models.DocIDProof, models.DocAffidavit}
	if category == models.CategoryGold || category == models.CategoryDiamond {
		docs = append(docs, models.DocFireNOC, models.DocGSTCertificate)
	}
	return docs
}

// EvaluateStep runs the gate for a single wizard step against the current
// application snapshot. Gate failures are user-facing messages; the
// application state itself is never modified here.
func EvaluateStep(step Step, app *models.HomestayApplication, settings *models.PortalSettings) StepResult {
	result := StepResult{Step: step, Errors: []string{}, Warnings: []string{}}

	switch step {
	case StepProperty:
		checkProperty(app, &result)
	case StepOwner:
		checkOwner(app, &result)
	case StepRooms:
		checkRooms(app, settings, &result)
	case StepDistances:
		// All distance fields are optional.
	case StepDocuments:
		checkDocuments(app, &result)
	case StepReview:
		for s := FirstStep; s < StepReview; s++ {
			prior := EvaluateStep(s, app, settings)
			result.Errors = append(result.Errors, prior.Errors...)
			result.Warnings = append(result.Warnings, prior.Warnings...)
		}
		if app.CorrectionMode && !app.CorrectionAcknowledged {
			result.Errors = append(result.Errors, "please acknowledge that the requested corrections have been made")
		}
	default:
		result.Errors = append(result.Errors, fmt.Sprintf("unknown application step %d", step))
	}

	result.CanAdvance = len(result.Errors) == 0
	return result
}

// EvaluateSubmission runs every step gate and reports whether the
// application may be submitted. Draft saves never call this: only final
// submission and forward navigation are gated.
func EvaluateSubmission(app *models.HomestayApplication, settings *models.PortalSettings) ([]StepResult, bool) {
	results := make([]StepResult, 0, int(LastStep))
	ok := true
	for s := FirstStep; s <= LastStep; s++ {
		r := EvaluateStep(s, app, settings)
		results = append(results, r)
		if !r.CanAdvance {
			ok = false
		}
	}
	return results, ok
}

func checkProperty(app *models.HomestayApplication, result *StepResult) {
	p := app.Property
	if p.Name == "" {
		result.Errors = append(result.Errors, "property name is required")
	}
	if p.Address == "" {
		result.Errors = append(result.Errors, "property address is required")
	}
	if p.District == "" {
		result.Errors = append(result.Errors, "district is required")
	}
	if p.Tehsil == "" {
		result.Errors = append(result.Errors, "tehsil is required")
	}
	if !models.IsValidLocationType(p.LocationType) {
		result.Errors = append(result.Errors, "location type must be selected")
	}
	if !pinCodePattern.MatchString(p.PinCode) {
		result.Errors = append(result.Errors, "PIN code must be a six-digit code starting with 17")
	}
}

func checkOwner(app *models.HomestayApplication, result *StepResult) {
	o := app.Owner
	if o.FullName == "" {
		result.Errors = append(result.Errors, "owner name is required")
	}
	if o.Phone == "" {
		result.Errors = append(result.Errors, "owner contact number is required")
	}
	if o.IDNumber == "" {
		result.Errors = append(result.Errors, "owner identity document number is required")
	}
	switch o.Gender {
	case models.GenderFemale, models.GenderMale, models.GenderOther:
	default:
		result.Errors = append(result.Errors, "owner gender is required")
	}
	switch o.OwnershipType {
	case models.OwnershipLeasehold:
		// Policy decision: leasehold properties cannot be registered.
		result.Errors = append(result.Errors, "leasehold properties are not eligible for homestay registration")
	case models.OwnershipSelf, models.OwnershipAncestral:
	default:
		result.Errors = append(result.Errors, "ownership type is required")
	}
}

func checkRooms(app *models.HomestayApplication, settings *models.PortalSettings, result *StepResult) {
	totalRooms := models.TotalRooms(app.Rooms)
	totalBeds := models.TotalBeds(app.Rooms)

	if totalRooms == 0 {
		result.Errors = append(result.Errors, "at least one room must be declared")
	}
	if totalRooms > MaxRoomsAllowed {
		result.Errors = append(result.Errors, fmt.Sprintf("a homestay may declare at most %d rooms", MaxRoomsAllowed))
	}
	if totalBeds > MaxBedsAllowed {
		result.Errors = append(result.Errors, fmt.Sprintf("a homestay may declare at most %d beds", MaxBedsAllowed))
	}
	if app.AttachedWashrooms < totalRooms {
		result.Errors = append(result.Errors, "every room must have an attached washroom")
	}
	if !app.HasCCTV {
		result.Errors = append(result.Errors, "CCTV coverage of common areas is mandatory")
	}
	if !app.HasFireSafety {
		result.Errors = append(result.Errors, "fire-safety equipment is mandatory")
	}

	if !models.IsValidCategory(app.Category) {
		result.Errors = append(result.Errors, "a registration category must be selected")
	} else {
		validation := ValidateCategory(app.Category, app.Rooms, settings.RateBands, settings.LockToRecommendedCategory)
		result.Warnings = append(result.Warnings, validation.Warnings...)
		if validation.Evaluated {
			result.Errors = append(result.Errors, validation.Errors...)
			if !validation.IsValid && len(validation.Errors) == 0 {
				// Under the lock policy an under-floor warning blocks too.
				result.Errors = append(result.Errors, fmt.Sprintf(
					"the declared tariffs require the recommended %s category", validation.SuggestedCategory))
			}
		} else if totalRooms > 0 {
			result.Errors = append(result.Errors, "a nightly tariff must be entered for the declared rooms")
		}

		if app.Category == models.CategoryGold || app.Category == models.CategoryDiamond {
			if app.Owner.GSTIN == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("a GSTIN is required for the %s category", app.Category))
			} else if !gstinPattern.MatchString(app.Owner.GSTIN) {
				result.Errors = append(result.Errors, "GSTIN must be a valid 15-character identification number")
			}
		}
	}

	if app.ValidityYears != ShortValidityYears && app.ValidityYears != LongValidityYears {
		result.Errors = append(result.Errors, fmt.Sprintf("registration validity must be %d or %d years", ShortValidityYears, LongValidityYears))
	}
}

func checkDocuments(app *models.HomestayApplication, result *StepResult) {
	for _, docType := range MandatoryDocuments(app.Category) {
		if models.CountDocuments(app.Documents, docType) == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("document %q has not been uploaded", docType))
		}
	}
	if n := models.CountDocuments(app.Documents, models.DocPropertyPhoto); n < MinPropertyPhotos {
		result.Errors = append(result.Errors, fmt.Sprintf("at least %d property photographs are required, %d uploaded", MinPropertyPhotos, n))
	}
}
