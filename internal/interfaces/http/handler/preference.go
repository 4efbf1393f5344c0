package handler

import (
	"github.com/gin-gonic/gin"
	pantryapp "github.com/smartgrocer/backend/internal/application/pantry"
)

// PreferenceHandler handles the household preference endpoints
type PreferenceHandler struct {
	BaseHandler
	preferenceService *pantryapp.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler
func NewPreferenceHandler(preferenceService *pantryapp.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{preferenceService: preferenceService}
}

// Get handles GET /preferences
func (h *PreferenceHandler) Get(c *gin.Context) {
	prefs, err := h.preferenceService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prefs)
}

// Update handles PUT /preferences
func (h *PreferenceHandler) Update(c *gin.Context) {
	var req pantryapp.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	prefs, err := h.preferenceService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, prefs)
}

// RegisterRoutes registers all preference routes
func (h *PreferenceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.Get)
		prefs.PUT("", h.Update)
	}
}
