package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/himtourism/homestay-portal/internal/models"
)

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.HomestayApplication) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.HomestayApplication, error)
	FindByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]*models.HomestayApplication, error)
	FindByStatus(ctx context.Context, status models.ApplicationStatus, page, limit int) ([]*models.HomestayApplication, error)
	Update(ctx context.Context, app *models.HomestayApplication) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)
}

// SettingsRepository defines the interface for portal settings data access
type SettingsRepository interface {
	Get(ctx context.Context) (*models.PortalSettings, error)
	Save(ctx context.Context, settings *models.PortalSettings) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role models.UserRole, page, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
}

// PropertyRepository defines the interface for directory data access
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	FindByRegistrationNo(ctx context.Context, registrationNo string) (*models.Property, error)
	Search(ctx context.Context, filter models.PropertyFilter, page, limit int) ([]*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Count(ctx context.Context) (int64, error)
}
