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

// ReviewHandler handles officer review HTTP requests
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

type decisionRequest struct {
	Comment string `json:"comment"`
}

func respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrNotReviewable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func currentOfficer(c *gin.Context) string {
	officer, _ := c.Get("userID")
	id, _ := officer.(string)
	return id
}

// ListByStatus handles GET /review/applications?status=&page=&limit=
func (h *ReviewHandler) ListByStatus(c *gin.Context) {
	status := models.ApplicationStatus(c.DefaultQuery("status", string(models.StatusSubmitted)))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	apps, err := h.reviewService.ListByStatus(c, status, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	count, err := h.reviewService.CountByStatus(c, status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "total": count})
}

// Get handles GET /review/applications/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	app, err := h.reviewService.Get(c, id)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// StartReview handles POST /review/applications/:id/claim
func (h *ReviewHandler) StartReview(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	app, err := h.reviewService.StartReview(c, id, currentOfficer(c))
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Approve handles POST /review/applications/:id/approve
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	// The approval comment is optional; an empty body is fine.
	var req decisionRequest
	_ = c.ShouldBindJSON(&req)
	app, err := h.reviewService.Approve(c, id, currentOfficer(c), req.Comment)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Reject handles POST /review/applications/:id/reject
func (h *ReviewHandler) Reject(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A rejection reason is required"})
		return
	}
	app, err := h.reviewService.Reject(c, id, currentOfficer(c), req.Comment)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RequestCorrection handles POST /review/applications/:id/request-correction
func (h *ReviewHandler) RequestCorrection(c *gin.Context) {
	id, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A correction note is required"})
		return
	}
	app, err := h.reviewService.RequestCorrection(c, id, currentOfficer(c), req.Comment)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
