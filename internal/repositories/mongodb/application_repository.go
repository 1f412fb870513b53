package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
)

// Compile-time check to ensure ApplicationRepository implements the interface
var _ repositories.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository handles MongoDB operations for HomestayApplication
type ApplicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{
		collection: db.Collection("applications"),
	}
}

// Create inserts a new application
func (r *ApplicationRepository) Create(ctx context.Context, app *models.HomestayApplication) error {
	app.ID = primitive.NewObjectID()
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, app)
	return err
}

// FindByID finds an application by ID
func (r *ApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.HomestayApplication, error) {
	var app models.HomestayApplication
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &app, nil
}

// FindByApplicant finds all applications belonging to an applicant
func (r *ApplicationRepository) FindByApplicant(ctx context.Context, applicantID primitive.ObjectID) ([]*models.HomestayApplication, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"applicantId": applicantID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []*models.HomestayApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByStatus finds applications by status with pagination
func (r *ApplicationRepository) FindByStatus(ctx context.Context, status models.ApplicationStatus, page, limit int) ([]*models.HomestayApplication, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.M{"submittedAt": 1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []*models.HomestayApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// Update updates an existing application
func (r *ApplicationRepository) Update(ctx context.Context, app *models.HomestayApplication) error {
	app.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": app.ID}, bson.M{"$set": app})
	return err
}

// Delete deletes an application
func (r *ApplicationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// CountByStatus counts applications in the given status
func (r *ApplicationRepository) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}
