package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/repositories"
)

// DirectoryService serves the public register of approved homestays
type DirectoryService struct {
	propertyRepo repositories.PropertyRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(propertyRepo repositories.PropertyRepository) *DirectoryService {
	return &DirectoryService{
		propertyRepo: propertyRepo,
	}
}

// Search finds directory entries matching the filter with pagination
func (s *DirectoryService) Search(ctx context.Context, filter models.PropertyFilter, page, limit int) ([]*models.Property, error) {
	return s.propertyRepo.Search(ctx, filter, page, limit)
}

// GetByID retrieves one directory entry
func (s *DirectoryService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	return s.propertyRepo.FindByID(ctx, id)
}

// GetByRegistrationNo retrieves one directory entry by registration number
func (s *DirectoryService) GetByRegistrationNo(ctx context.Context, registrationNo string) (*models.Property, error) {
	return s.propertyRepo.FindByRegistrationNo(ctx, registrationNo)
}

// Count gets the total number of registered homestays
func (s *DirectoryService) Count(ctx context.Context) (int64, error) {
	return s.propertyRepo.Count(ctx)
}
