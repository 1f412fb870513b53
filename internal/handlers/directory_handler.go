package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/services"
)

// DirectoryHandler handles public directory HTTP requests
type DirectoryHandler struct {
	directoryService *services.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directoryService *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// Search handles GET /directory?district=&tehsil=&category=&page=&limit=
func (h *DirectoryHandler) Search(c *gin.Context) {
	var filter models.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	properties, err := h.directoryService.Search(c, filter, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Count handles GET /directory/count
func (h *DirectoryHandler) Count(c *gin.Context) {
	count, err := h.directoryService.Count(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetByRegistrationNo handles GET /directory/registration?regNo=...
// Registration numbers contain slashes, so they travel as a query param.
func (h *DirectoryHandler) GetByRegistrationNo(c *gin.Context) {
	regNo := c.Query("regNo")
	if regNo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "regNo query parameter is required"})
		return
	}
	property, err := h.directoryService.GetByRegistrationNo(c, regNo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, property)
}
