package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	planningapp "github.com/smartgrocer/backend/internal/application/planning"
)

// PlanHandler handles meal-plan generation and reconciliation endpoints
type PlanHandler struct {
	BaseHandler
	planService *planningapp.PlanService
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService *planningapp.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GeneratePlan handles POST /plans
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	// an empty body means "use the configured plan length"
	var req planningapp.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.planService.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, plan)
}

// Shortfall handles POST /plans/shortfall
func (h *PlanHandler) Shortfall(c *gin.Context) {
	var req planningapp.ShortfallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shortfall, err := h.planService.Shortfall(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shortfall)
}

// RegisterRoutes registers all plan routes
func (h *PlanHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/plans")
	{
		plans.POST("", h.GeneratePlan)
		plans.POST("/shortfall", h.Shortfall)
	}
}
