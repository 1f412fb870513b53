package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/himtourism/homestay-portal/internal/engine"
	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
	"github.com/himtourism/homestay-portal/internal/utils"
)

var (
	// ErrNotOwner is returned when an application does not belong to the requesting account
	ErrNotOwner = errors.New("application does not belong to this account")
	// ErrNotEditable is returned when a mutation is attempted on a non-draft application
	ErrNotEditable = errors.New("application can no longer be edited")
	// ErrGateBlocked is returned when a step gate or the submission gate fails
	ErrGateBlocked = errors.New("validation failures block this action")
)

// ApplicationUpdate carries a partial draft save. Nil sections are left
// untouched. Draft saves are never gated: an incomplete or invalid draft
// is always storable.
type ApplicationUpdate struct {
	Property               *models.PropertyDetails `json:"property,omitempty"`
	Owner                  *models.OwnerDetails    `json:"owner,omitempty"`
	Distances              *models.DistanceDetails `json:"distances,omitempty"`
	Category               *models.Category        `json:"category,omitempty"`
	ValidityYears          *int                    `json:"validityYears,omitempty"`
	AttachedWashrooms      *int                    `json:"attachedWashrooms,omitempty"`
	HasCCTV                *bool                   `json:"hasCctv,omitempty"`
	HasFireSafety          *bool                   `json:"hasFireSafety,omitempty"`
	CorrectionAcknowledged *bool                   `json:"correctionAcknowledged,omitempty"`
}

// ApplicationService handles the applicant-facing application lifecycle.
// All engine computations run server-side on the stored draft; the stored
// fee breakdown is recomputed, never trusted from the client.
type ApplicationService struct {
	appRepo      repositories.ApplicationRepository
	settingsRepo repositories.SettingsRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repositories.ApplicationRepository, settingsRepo repositories.SettingsRepository) *ApplicationService {
	return &ApplicationService{
		appRepo:      appRepo,
		settingsRepo: settingsRepo,
	}
}

// CreateDraft opens a new draft application for the applicant
func (s *ApplicationService) CreateDraft(ctx context.Context, applicantID primitive.ObjectID) (*models.HomestayApplication, error) {
	rooms := engine.NewRoomConfiguration()
	app := &models.HomestayApplication{
		ApplicationNo:  utils.GenerateApplicationNo(),
		ApplicantID:    applicantID,
		Status:         models.StatusDraft,
		CurrentStep:    int(engine.FirstStep),
		MaxStepReached: int(engine.FirstStep),
		Rooms:          rooms.Rows(),
		ValidityYears:  engine.ShortValidityYears,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// GetForApplicant loads an application and verifies ownership
func (s *ApplicationService) GetForApplicant(ctx context.Context, id, applicantID primitive.ObjectID) (*models.HomestayApplication, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != applicantID {
		return nil, ErrNotOwner
	}
	return app, nil
}

// ListForApplicant lists the applicant's applications
func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]*models.HomestayApplication, error) {
	return s.appRepo.FindByApplicant(ctx, applicantID)
}

// UpdateDraft applies a partial draft save
func (s *ApplicationService) UpdateDraft(ctx context.Context, id, applicantID primitive.ObjectID, update ApplicationUpdate) (*models.HomestayApplication, error) {
	app, err := s.editableApplication(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}

	if update.Property != nil {
		app.Property = *update.Property
	}
	if update.Owner != nil {
		app.Owner = *update.Owner
	}
	if update.Distances != nil {
		app.Distances = *update.Distances
	}
	if update.Category != nil {
		app.Category = *update.Category
	}
	if update.ValidityYears != nil {
		app.ValidityYears = *update.ValidityYears
	}
	if update.AttachedWashrooms != nil {
		app.AttachedWashrooms = *update.AttachedWashrooms
	}
	if update.HasCCTV != nil {
		app.HasCCTV = *update.HasCCTV
	}
	if update.HasFireSafety != nil {
		app.HasFireSafety = *update.HasFireSafety
	}
	if update.CorrectionAcknowledged != nil {
		app.CorrectionAcknowledged = *update.CorrectionAcknowledged
	}

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// AddRoom adds a room-type row to the draft's room configuration
func (s *ApplicationService) AddRoom(ctx context.Context, id, applicantID primitive.ObjectID, roomType models.RoomType) (*models.HomestayApplication, error) {
	return s.mutateRooms(ctx, id, applicantID, func(rooms *engine.RoomConfiguration) {
		rooms.AddRow(roomType)
	})
}

// UpdateRoom patches one room row; the engine re-clamps every row
func (s *ApplicationService) UpdateRoom(ctx context.Context, id, applicantID primitive.ObjectID, rowID string, patch engine.RoomRowPatch) (*models.HomestayApplication, error) {
	return s.mutateRooms(ctx, id, applicantID, func(rooms *engine.RoomConfiguration) {
		rooms.UpdateRow(rowID, patch)
	})
}

// RemoveRoom deletes one room row
func (s *ApplicationService) RemoveRoom(ctx context.Context, id, applicantID primitive.ObjectID, rowID string) (*models.HomestayApplication, error) {
	return s.mutateRooms(ctx, id, applicantID, func(rooms *engine.RoomConfiguration) {
		rooms.RemoveRow(rowID)
	})
}

// ResetRooms clears the room configuration back to its seed state
func (s *ApplicationService) ResetRooms(ctx context.Context, id, applicantID primitive.ObjectID) (*models.HomestayApplication, error) {
	return s.mutateRooms(ctx, id, applicantID, func(rooms *engine.RoomConfiguration) {
		rooms.ResetAll()
	})
}

// AddDocument records the metadata of an uploaded file
func (s *ApplicationService) AddDocument(ctx context.Context, id, applicantID primitive.ObjectID, doc models.DocumentRef) (*models.HomestayApplication, error) {
	app, err := s.editableApplication(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	doc.UploadedAt = time.Now()
	app.Documents = append(app.Documents, doc)
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// RemoveDocument drops a previously recorded upload by object key
func (s *ApplicationService) RemoveDocument(ctx context.Context, id, applicantID primitive.ObjectID, objectKey string) (*models.HomestayApplication, error) {
	app, err := s.editableApplication(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	kept := app.Documents[:0]
	for _, d := range app.Documents {
		if d.ObjectKey != objectKey {
			kept = append(kept, d)
		}
	}
	app.Documents = kept
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// QuoteFee recomputes the fee breakdown for the draft's current inputs
func (s *ApplicationService) QuoteFee(ctx context.Context, id, applicantID primitive.ObjectID) (*models.FeeBreakdown, error) {
	app, err := s.GetForApplicant(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.computeFee(app, settings)
	if err != nil {
		return nil, err
	}
	rounded := breakdown.Rounded()
	return &rounded, nil
}

// ValidateCategory recomputes the category-compliance result for the draft
func (s *ApplicationService) ValidateCategory(ctx context.Context, id, applicantID primitive.ObjectID) (*models.CategoryValidationResult, error) {
	app, err := s.GetForApplicant(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	result := engine.ValidateCategory(app.Category, app.Rooms, settings.RateBands, settings.LockToRecommendedCategory)
	return &result, nil
}

// StepStatus evaluates the gate for one wizard step without side effects
func (s *ApplicationService) StepStatus(ctx context.Context, id, applicantID primitive.ObjectID, step engine.Step) (*engine.StepResult, error) {
	app, err := s.GetForApplicant(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	result := engine.EvaluateStep(step, app, settings)
	return &result, nil
}

// AdvanceStep moves the wizard forward one step if the current step's gate
// passes, raising the high-water mark.
func (s *ApplicationService) AdvanceStep(ctx context.Context, id, applicantID primitive.ObjectID) (*engine.StepResult, *models.HomestayApplication, error) {
	app, err := s.editableApplication(ctx, id, applicantID)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	result := engine.EvaluateStep(engine.Step(app.CurrentStep), app, settings)
	if !result.CanAdvance {
		return &result, app, ErrGateBlocked
	}
	if app.CurrentStep < int(engine.LastStep) {
		app.CurrentStep++
		if app.CurrentStep > app.MaxStepReached {
			app.MaxStepReached = app.CurrentStep
		}
		if err := s.appRepo.Update(ctx, app); err != nil {
			return nil, nil, err
		}
	}
	return &result, app, nil
}

// GoToStep navigates to a previously reached step. Steps beyond the
// high-water mark are unreachable except through AdvanceStep.
func (s *ApplicationService) GoToStep(ctx context.Context, id, applicantID primitive.ObjectID, step engine.Step) (*models.HomestayApplication, error) {
	app, err := s.editableApplication(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	if !engine.CanNavigate(step, app.MaxStepReached) {
		return nil, ErrGateBlocked
	}
	app.CurrentStep = int(step)
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Submit runs the full submission gate, recomputes the authoritative fee
// breakdown and moves the application to the submitted state. On failure
// the step results explain every blocking message; the draft is untouched.
func (s *ApplicationService) Submit(ctx context.Context, id, applicantID primitive.ObjectID) ([]engine.StepResult, *models.HomestayApplication, error) {
	app, err := s.editableApplication(ctx, id, applicantID)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	results, ok := engine.EvaluateSubmission(app, settings)
	if !ok {
		return results, app, ErrGateBlocked
	}

	breakdown, err := s.computeFee(app, settings)
	if err != nil {
		return results, app, err
	}
	rounded := breakdown.Rounded()
	app.Fee = &rounded
	app.Status = models.StatusSubmitted
	app.SubmittedAt = time.Now()
	if err := s.appRepo.Update(ctx, app); err != nil {
		return results, app, err
	}
	return results, app, nil
}

func (s *ApplicationService) computeFee(app *models.HomestayApplication, settings *models.PortalSettings) (models.FeeBreakdown, error) {
	return engine.CalculateFee(engine.FeeInput{
		Category:      app.Category,
		LocationType:  app.Property.LocationType,
		ValidityYears: app.ValidityYears,
		OwnerGender:   app.Owner.Gender,
		District:      app.Property.District,
		Tehsil:        app.Property.Tehsil,
	}, settings.FeeSchedule, settings.SubDivisionConcessions)
}

func (s *ApplicationService) mutateRooms(ctx context.Context, id, applicantID primitive.ObjectID, mutate func(*engine.RoomConfiguration)) (*models.HomestayApplication, error) {
	app, err := s.editableApplication(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	rooms := engine.RestoreRoomConfiguration(app.Rooms)
	mutate(rooms)
	app.Rooms = rooms.Rows()
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// editableApplication loads the application, verifies ownership and checks
// that it is still in an applicant-editable state.
func (s *ApplicationService) editableApplication(ctx context.Context, id, applicantID primitive.ObjectID) (*models.HomestayApplication, error) {
	app, err := s.GetForApplicant(ctx, id, applicantID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.StatusDraft && app.Status != models.StatusCorrectionRequired {
		return nil, ErrNotEditable
	}
	return app, nil
}
