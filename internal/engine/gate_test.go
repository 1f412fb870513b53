package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himtourism/homestay-portal/internal/models"
)

// completeApplication returns a silver-category application that passes
// every step gate.
func completeApplication() *models.HomestayApplication {
	return &models.HomestayApplication{
		Status: models.StatusDraft,
		Property: models.PropertyDetails{
			Name:         "Deodar View Homestay",
			Address:      "Village Jagatsukh, Naggar Road",
			District:     "Kullu",
			Tehsil:       "Manali",
			LocationType: models.LocationGramPanchayat,
			PinCode:      "175143",
		},
		Owner: models.OwnerDetails{
			FullName:      "Sunita Thakur",
			Gender:        models.GenderFemale,
			Phone:         "9805012345",
			IDNumber:      "1234-5678-9012",
			OwnershipType: models.OwnershipSelf,
		},
		Rooms: []models.RoomRow{
			{ID: "r1", RoomType: models.RoomTypeDouble, Quantity: 2, BedsPerRoom: 2, NightlyRate: decimal.NewFromInt(2500)},
		},
		Category:          models.CategorySilver,
		ValidityYears:     ShortValidityYears,
		AttachedWashrooms: 2,
		HasCCTV:           true,
		HasFireSafety:     true,
		Documents: []models.DocumentRef{
			{Type: models.DocOwnershipProof, FileName: "jamabandi.pdf", ObjectKey: "docs/1"},
			{Type: models.DocIDProof, FileName: "aadhaar.pdf", ObjectKey: "docs/2"},
			{Type: models.DocAffidavit, FileName: "affidavit.pdf", ObjectKey: "docs/3"},
			{Type: models.DocPropertyPhoto, FileName: "front.jpg", ObjectKey: "docs/4"},
			{Type: models.DocPropertyPhoto, FileName: "rooms.jpg", ObjectKey: "docs/5"},
		},
	}
}

func TestEvaluateSubmission_CompleteApplicationPasses(t *testing.T) {
	app := completeApplication()
	settings := models.DefaultPortalSettings()

	results, ok := EvaluateSubmission(app, settings)
	assert.True(t, ok)
	require.Len(t, results, int(LastStep))
	for _, r := range results {
		assert.Truef(t, r.CanAdvance, "step %d blocked: %v", r.Step, r.Errors)
	}
}

func TestEvaluateStep_PropertyRequiresFieldsAndStatePinCode(t *testing.T) {
	settings := models.DefaultPortalSettings()

	empty := &models.HomestayApplication{}
	result := EvaluateStep(StepProperty, empty, settings)
	assert.False(t, result.CanAdvance)
	assert.NotEmpty(t, result.Errors)

	app := completeApplication()
	app.Property.PinCode = "110001"
	result = EvaluateStep(StepProperty, app, settings)
	assert.False(t, result.CanAdvance)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "PIN code")
}

func TestEvaluateStep_OwnerLeaseholdIsIneligible(t *testing.T) {
	app := completeApplication()
	app.Owner.OwnershipType = models.OwnershipLeasehold

	result := EvaluateStep(StepOwner, app, models.DefaultPortalSettings())
	assert.False(t, result.CanAdvance)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "leasehold")

	app.Owner.OwnershipType = models.OwnershipAncestral
	result = EvaluateStep(StepOwner, app, models.DefaultPortalSettings())
	assert.True(t, result.CanAdvance)
}

func TestEvaluateStep_RoomsRequiresWashroomsAndSafety(t *testing.T) {
	settings := models.DefaultPortalSettings()

	app := completeApplication()
	app.AttachedWashrooms = 1
	result := EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance)
	assert.Contains(t, result.Errors[0], "washroom")

	app = completeApplication()
	app.HasCCTV = false
	app.HasFireSafety = false
	result = EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance)
	assert.Len(t, result.Errors, 2)
}

func TestEvaluateStep_RoomsRequiresDeclaredAndPricedRooms(t *testing.T) {
	settings := models.DefaultPortalSettings()

	app := completeApplication()
	app.Rooms = nil
	app.AttachedWashrooms = 0
	result := EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance)
	assert.Contains(t, result.Errors[0], "at least one room")

	app = completeApplication()
	app.Rooms[0].NightlyRate = decimal.Zero
	result = EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance)
	found := false
	for _, e := range result.Errors {
		if e == "a nightly tariff must be entered for the declared rooms" {
			found = true
		}
	}
	assert.True(t, found, "errors: %v", result.Errors)
}

func TestEvaluateStep_RoomsRequiresGSTINForPremiumCategories(t *testing.T) {
	settings := models.DefaultPortalSettings()

	app := completeApplication()
	app.Category = models.CategoryGold
	app.Rooms[0].NightlyRate = decimal.NewFromInt(3500)
	result := EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "GSTIN")

	app.Owner.GSTIN = "not-a-gstin"
	result = EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance)

	app.Owner.GSTIN = "02ABCDE1234F1Z5"
	result = EvaluateStep(StepRooms, app, settings)
	assert.True(t, result.CanAdvance)
}

func TestEvaluateStep_RoomsEnforcesCategoryBand(t *testing.T) {
	settings := models.DefaultPortalSettings()

	app := completeApplication()
	app.Rooms[0].NightlyRate = decimal.NewFromInt(3500)
	result := EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance, "3500/night exceeds the silver ceiling")

	// Overpaying is advisory until the lock policy promotes it.
	app = completeApplication()
	app.Category = models.CategoryDiamond
	app.Owner.GSTIN = "02ABCDE1234F1Z5"
	result = EvaluateStep(StepRooms, app, settings)
	assert.True(t, result.CanAdvance)
	assert.NotEmpty(t, result.Warnings)

	settings.LockToRecommendedCategory = true
	result = EvaluateStep(StepRooms, app, settings)
	assert.False(t, result.CanAdvance)
}

func TestEvaluateStep_RoomsRequiresValidityTerm(t *testing.T) {
	app := completeApplication()
	app.ValidityYears = 5

	result := EvaluateStep(StepRooms, app, models.DefaultPortalSettings())
	assert.False(t, result.CanAdvance)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "validity")
}

func TestEvaluateStep_DistancesAreOptional(t *testing.T) {
	result := EvaluateStep(StepDistances, &models.HomestayApplication{}, models.DefaultPortalSettings())
	assert.True(t, result.CanAdvance)
}

func TestEvaluateStep_DocumentsRequireMandatorySlotsAndPhotos(t *testing.T) {
	settings := models.DefaultPortalSettings()

	app := completeApplication()
	app.Documents = app.Documents[:2] // drop affidavit and both photos
	result := EvaluateStep(StepDocuments, app, settings)
	assert.False(t, result.CanAdvance)
	assert.Len(t, result.Errors, 2)

	app = completeApplication()
	app.Category = models.CategoryGold
	result = EvaluateStep(StepDocuments, app, settings)
	assert.False(t, result.CanAdvance, "gold also requires fire NOC and GST certificate")
	assert.Len(t, result.Errors, 2)

	app.Documents = append(app.Documents,
		models.DocumentRef{Type: models.DocFireNOC, FileName: "noc.pdf", ObjectKey: "docs/6"},
		models.DocumentRef{Type: models.DocGSTCertificate, FileName: "gst.pdf", ObjectKey: "docs/7"},
	)
	result = EvaluateStep(StepDocuments, app, settings)
	assert.True(t, result.CanAdvance)
}

func TestEvaluateStep_ReviewAggregatesAllPriorSteps(t *testing.T) {
	settings := models.DefaultPortalSettings()

	app := completeApplication()
	app.Property.PinCode = ""
	app.Owner.Phone = ""

	result := EvaluateStep(StepReview, app, settings)
	assert.False(t, result.CanAdvance)
	assert.Len(t, result.Errors, 2)
}

func TestEvaluateStep_ReviewRequiresCorrectionAcknowledgment(t *testing.T) {
	settings := models.DefaultPortalSettings()

	app := completeApplication()
	app.CorrectionMode = true
	result := EvaluateStep(StepReview, app, settings)
	assert.False(t, result.CanAdvance)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "acknowledge")

	app.CorrectionAcknowledged = true
	result = EvaluateStep(StepReview, app, settings)
	assert.True(t, result.CanAdvance)
}

func TestCanNavigate_HighWaterMark(t *testing.T) {
	assert.True(t, CanNavigate(StepProperty, 1))
	assert.False(t, CanNavigate(StepOwner, 1), "beyond the high-water mark")
	assert.True(t, CanNavigate(StepOwner, 4))
	assert.True(t, CanNavigate(StepDistances, 4))
	assert.False(t, CanNavigate(StepDocuments, 4))
	assert.True(t, CanNavigate(StepReview, 6))
	assert.False(t, CanNavigate(Step(0), 6))
	assert.False(t, CanNavigate(Step(7), 6))
}

func TestMandatoryDocuments_PremiumCategoriesNeedMore(t *testing.T) {
	assert.Len(t, MandatoryDocuments(models.CategorySilver), 3)
	assert.Len(t, MandatoryDocuments(models.CategoryGold), 5)
	assert.Len(t, MandatoryDocuments(models.CategoryDiamond), 5)
}
