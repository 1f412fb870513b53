package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/himtourism/homestay-portal/internal/models"
	"github.com/himtourism/homestay-portal/internal/services"
)

// SettingsHandler handles admin settings HTTP requests
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var settings models.PortalSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.settingsService.UpdateSettings(c, &settings, userID.(string)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update settings: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateCategoryLock handles PUT /settings/category-lock
func (h *SettingsHandler) UpdateCategoryLock(c *gin.Context) {
	var request struct {
		Locked *bool `json:"locked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	settings, err := h.settingsService.SetCategoryLock(c, *request.Locked, userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category lock: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
