package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
	"github.com/himtourism/homestay-portal/internal/utils"
	"github.com/himtourism/homestay-portal/pkg/payment"
	"github.com/himtourism/homestay-portal/pkg/smsgateway"
)

// ErrNotReviewable is returned when a decision is attempted on an
// application that is not awaiting review.
var ErrNotReviewable = errors.New("application is not awaiting review")

// ReviewService handles the officer review workflow. Approval publishes
// the property to the public directory, raises a payment order for the
// computed fee and notifies the applicant; notification and payment
// failures are logged but never roll back the decision.
type ReviewService struct {
	appRepo      repositories.ApplicationRepository
	propertyRepo repositories.PropertyRepository
	payments     *payment.Client
	sms          smsgateway.Gateway
}

// NewReviewService creates a new ReviewService
func NewReviewService(appRepo repositories.ApplicationRepository, propertyRepo repositories.PropertyRepository, payments *payment.Client, sms smsgateway.Gateway) *ReviewService {
	return &ReviewService{
		appRepo:      appRepo,
		propertyRepo: propertyRepo,
		payments:     payments,
		sms:          sms,
	}
}

// ListByStatus lists applications in the given status with pagination
func (s *ReviewService) ListByStatus(ctx context.Context, status models.ApplicationStatus, page, limit int) ([]*models.HomestayApplication, error) {
	return s.appRepo.FindByStatus(ctx, status, page, limit)
}

// CountByStatus counts applications in the given status
func (s *ReviewService) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	return s.appRepo.CountByStatus(ctx, status)
}

// Get loads one application for review
func (s *ReviewService) Get(ctx context.Context, id primitive.ObjectID) (*models.HomestayApplication, error) {
	return s.appRepo.FindByID(ctx, id)
}

// StartReview claims a submitted application for an officer
func (s *ReviewService) StartReview(ctx context.Context, id primitive.ObjectID, officer string) (*models.HomestayApplication, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.StatusSubmitted {
		return nil, ErrNotReviewable
	}
	app.Status = models.StatusUnderReview
	app.ReviewedBy = officer
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Approve registers the homestay: the application is approved, a directory
// entry is published, a payment order is raised for the final fee and the
// applicant is notified by SMS.
func (s *ReviewService) Approve(ctx context.Context, id primitive.ObjectID, officer, comment string) (*models.HomestayApplication, error) {
	app, err := s.decidable(ctx, id)
	if err != nil {
		return nil, err
	}

	app.Status = models.StatusApproved
	app.ReviewedBy = officer
	app.ReviewComment = comment
	app.ReviewedAt = time.Now()
	app.CorrectionMode = false
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	property := &models.Property{
		RegistrationNo: utils.GenerateRegistrationNo(app.Property.District),
		Name:           app.Property.Name,
		OwnerName:      app.Owner.FullName,
		District:       app.Property.District,
		Tehsil:         app.Property.Tehsil,
		Village:        app.Property.Village,
		LocationType:   app.Property.LocationType,
		Category:       app.Category,
		Rooms:          models.TotalRooms(app.Rooms),
		Beds:           models.TotalBeds(app.Rooms),
		Phone:          app.Owner.Phone,
		Source:         models.SourcePortal,
		ValidUntil:     app.ReviewedAt.AddDate(app.ValidityYears, 0, 0),
		ApprovedAt:     app.ReviewedAt,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	if app.Fee != nil {
		if _, err := s.payments.CreateOrder(ctx, app.ApplicationNo, app.Fee.FinalFee); err != nil {
			log.Printf("payment order for application %s failed: %v", app.ApplicationNo, err)
		}
	}
	s.notify(app, fmt.Sprintf(
		"Your homestay application %s has been approved. Registration number: %s.",
		app.ApplicationNo, property.RegistrationNo))

	return app, nil
}

// Reject declines the application with the officer's reasons
func (s *ReviewService) Reject(ctx context.Context, id primitive.ObjectID, officer, comment string) (*models.HomestayApplication, error) {
	app, err := s.decidable(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Status = models.StatusRejected
	app.ReviewedBy = officer
	app.ReviewComment = comment
	app.ReviewedAt = time.Now()
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	s.notify(app, fmt.Sprintf("Your homestay application %s has been rejected. Reason: %s", app.ApplicationNo, comment))
	return app, nil
}

// RequestCorrection returns the application to the applicant for fixes.
// The applicant must acknowledge the corrections before resubmitting.
func (s *ReviewService) RequestCorrection(ctx context.Context, id primitive.ObjectID, officer, comment string) (*models.HomestayApplication, error) {
	app, err := s.decidable(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Status = models.StatusCorrectionRequired
	app.ReviewedBy = officer
	app.ReviewComment = comment
	app.ReviewedAt = time.Now()
	app.CorrectionMode = true
	app.CorrectionAcknowledged = false
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	s.notify(app, fmt.Sprintf("Your homestay application %s needs corrections: %s", app.ApplicationNo, comment))
	return app, nil
}

func (s *ReviewService) decidable(ctx context.Context, id primitive.ObjectID) (*models.HomestayApplication, error) {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.StatusSubmitted && app.Status != models.StatusUnderReview {
		return nil, ErrNotReviewable
	}
	return app, nil
}

func (s *ReviewService) notify(app *models.HomestayApplication, message string) {
	if app.Owner.Phone == "" {
		return
	}
	if _, err := s.sms.SendSMS(app.Owner.Phone, message); err != nil {
		log.Printf("SMS notification for application %s failed: %v", app.ApplicationNo, err)
	}
}
