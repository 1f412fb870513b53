package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/himtourism/homestay-portal/internal/engine"
	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/services"
)

// ApplicationHandler handles applicant-facing application HTTP requests
type ApplicationHandler struct {
	appService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// currentUserID extracts the authenticated account ID set by the JWT middleware
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid account ID in token"})
		return primitive.NilObjectID, false
	}
	return id, true
}

func pathObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondServiceError translates service errors into HTTP responses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotEditable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateDraft handles POST /applications
func (h *ApplicationHandler) CreateDraft(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	app, err := h.appService.CreateDraft(c, applicantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// List handles GET /applications
func (h *ApplicationHandler) List(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	apps, err := h.appService.ListForApplicant(c, applicantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Get handles GET /applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	app, err := h.appService.GetForApplicant(c, id, applicantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateDraft handles PUT /applications/:id
func (h *ApplicationHandler) UpdateDraft(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var update services.ApplicationUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.appService.UpdateDraft(c, id, applicantID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// AddRoom handles POST /applications/:id/rooms
func (h *ApplicationHandler) AddRoom(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var request struct {
		RoomType models.RoomType `json:"roomType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.appService.AddRoom(c, id, applicantID, request.RoomType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateRoom handles PUT /applications/:id/rooms/:rowId
func (h *ApplicationHandler) UpdateRoom(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var patch engine.RoomRowPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.appService.UpdateRoom(c, id, applicantID, c.Param("rowId"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RemoveRoom handles DELETE /applications/:id/rooms/:rowId
func (h *ApplicationHandler) RemoveRoom(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	app, err := h.appService.RemoveRoom(c, id, applicantID, c.Param("rowId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// ResetRooms handles POST /applications/:id/rooms/reset
func (h *ApplicationHandler) ResetRooms(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	app, err := h.appService.ResetRooms(c, id, applicantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// AddDocument handles POST /applications/:id/documents
func (h *ApplicationHandler) AddDocument(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var doc models.DocumentRef
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.appService.AddDocument(c, id, applicantID, doc)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RemoveDocument handles DELETE /applications/:id/documents?objectKey=...
func (h *ApplicationHandler) RemoveDocument(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	objectKey := c.Query("objectKey")
	if objectKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "objectKey query parameter is required"})
		return
	}
	app, err := h.appService.RemoveDocument(c, id, applicantID, objectKey)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// QuoteFee handles GET /applications/:id/fee
func (h *ApplicationHandler) QuoteFee(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	breakdown, err := h.appService.QuoteFee(c, id, applicantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// ValidateCategory handles GET /applications/:id/category-check
func (h *ApplicationHandler) ValidateCategory(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	result, err := h.appService.ValidateCategory(c, id, applicantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// StepStatus handles GET /applications/:id/steps/:step
func (h *ApplicationHandler) StepStatus(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < int(engine.FirstStep) || step > int(engine.LastStep) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid step number"})
		return
	}
	result, err := h.appService.StepStatus(c, id, applicantID, engine.Step(step))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AdvanceStep handles POST /applications/:id/advance
func (h *ApplicationHandler) AdvanceStep(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	result, app, err := h.appService.AdvanceStep(c, id, applicantID)
	if errors.Is(err, services.ErrGateBlocked) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"gate": result})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gate": result, "application": app})
}

// GoToStep handles POST /applications/:id/goto
func (h *ApplicationHandler) GoToStep(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var request struct {
		Step int `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	app, err := h.appService.GoToStep(c, id, applicantID, engine.Step(request.Step))
	if errors.Is(err, services.ErrGateBlocked) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "That step has not been reached yet"})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Submit handles POST /applications/:id/submit
func (h *ApplicationHandler) Submit(c *gin.Context) {
	applicantID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	results, app, err := h.appService.Submit(c, id, applicantID)
	if errors.Is(err, services.ErrGateBlocked) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"gates": results})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gates": results, "application": app})
}
