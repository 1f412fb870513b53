package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
)

// Compile-time check to ensure SettingsRepository implements the interface
var _ repositories.SettingsRepository = (*SettingsRepository)(nil)

// SettingsRepository handles MongoDB operations for PortalSettings. A
// single settings document exists; it is seeded with the defaults on
// first read.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Collection("portal_settings"),
	}
}

// Get retrieves the settings document, seeding the defaults when none exists
func (r *SettingsRepository) Get(ctx context.Context) (*models.PortalSettings, error) {
	var settings models.PortalSettings
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		defaults := models.DefaultPortalSettings()
		defaults.ID = primitive.NewObjectID()
		if _, err := r.collection.InsertOne(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save replaces the settings document
func (r *SettingsRepository) Save(ctx context.Context, settings *models.PortalSettings) error {
	settings.UpdatedAt = time.Now()
	if settings.ID.IsZero() {
		settings.ID = primitive.NewObjectID()
		settings.CreatedAt = time.Now()
		_, err := r.collection.InsertOne(ctx, settings)
		return err
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": settings.ID}, bson.M{"$set": settings})
	return err
}
