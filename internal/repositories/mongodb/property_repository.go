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

// Compile-time check to ensure PropertyRepository implements the interface
var _ repositories.PropertyRepository = (*PropertyRepository)(nil)

// PropertyRepository handles MongoDB operations for the public directory
type PropertyRepository struct {
	collection *mongo.Collection
}

// NewPropertyRepository creates a new PropertyRepository
func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{
		collection: db.Collection("properties"),
	}
}

// Create inserts a new directory entry
func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	property.ID = primitive.NewObjectID()
	property.CreatedAt = time.Now()
	property.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	return err
}

// FindByID finds a directory entry by ID
func (r *PropertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &property, nil
}

// FindByRegistrationNo finds a directory entry by its registration number
func (r *PropertyRepository) FindByRegistrationNo(ctx context.Context, registrationNo string) (*models.Property, error) {
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"registrationNo": registrationNo}).Decode(&property)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &property, nil
}

// Search finds directory entries matching the filter with pagination
func (r *PropertyRepository) Search(ctx context.Context, filter models.PropertyFilter, page, limit int) ([]*models.Property, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	query := bson.M{}
	if filter.District != "" {
		query["district"] = filter.District
	}
	if filter.Tehsil != "" {
		query["tehsil"] = filter.Tehsil
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().
		SetSort(bson.M{"name": 1}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []*models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Update updates an existing directory entry
func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": property.ID}, bson.M{"$set": property})
	return err
}

// Count gets the total number of directory entries
func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
