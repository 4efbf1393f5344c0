package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	pantryapp "github.com/smartgrocer/backend/internal/application/pantry"
)

// PantryHandler handles inventory intake, listing and reminder endpoints
type PantryHandler struct {
	BaseHandler
	pantryService   *pantryapp.PantryService
	reminderService *pantryapp.ReminderService
}

// NewPantryHandler creates a new PantryHandler
func NewPantryHandler(pantryService *pantryapp.PantryService, reminderService *pantryapp.ReminderService) *PantryHandler {
	return &PantryHandler{
		pantryService:   pantryService,
		reminderService: reminderService,
	}
}

// AddPurchase handles POST /pantry/purchases
func (h *PantryHandler) AddPurchase(c *gin.Context) {
	var req pantryapp.AddPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	entry, err := h.pantryService.AddPurchase(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

// ListInventory handles GET /pantry/inventory
func (h *PantryHandler) ListInventory(c *gin.Context) {
	entries, err := h.pantryService.ListInventory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entries)
}

// RecordConsumption handles POST /pantry/consumption
func (h *PantryHandler) RecordConsumption(c *gin.Context) {
	var req pantryapp.RecordConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.pantryService.RecordConsumption(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, record)
}

// GetReminders handles GET /pantry/reminders?cart=a,b
func (h *PantryHandler) GetReminders(c *gin.Context) {
	var cart []string
	if raw := c.Query("cart"); raw != "" {
		cart = strings.Split(raw, ",")
	}

	reminders, err := h.reminderService.Scan(c.Request.Context(), cart)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reminders)
}

// RegisterRoutes registers all pantry routes
func (h *PantryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pantry := rg.Group("/pantry")
	{
		pantry.POST("/purchases", h.AddPurchase)
		pantry.GET("/inventory", h.ListInventory)
		pantry.POST("/consumption", h.RecordConsumption)
		pantry.GET("/reminders", h.GetReminders)
	}
}
