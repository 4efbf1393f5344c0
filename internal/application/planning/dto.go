package planning

import (
	"github.com/smartgrocer/backend/internal/domain/planning"
)

// GeneratePlanRequest represents a request to generate a meal plan
type GeneratePlanRequest struct {
	Days int `json:"days" binding:"omitempty,min=1,max=14"`
}

// PlanDayInput is one externally supplied plan day. It is validated
// strictly: a malformed day is rejected rather than guessed at.
type PlanDayInput struct {
	Day   int      `json:"day" validate:"gte=0"`
	Dish  string   `json:"dish"`
	Uses  []string `json:"uses" validate:"omitempty,dive,required"`
	Extra []string `json:"extra" validate:"omitempty,dive,required"`
}

// ShortfallRequest represents a plan to reconcile against the inventory
type ShortfallRequest struct {
	Plan []PlanDayInput `json:"plan" validate:"required,min=1,dive"`
}

// PlanDayResponse represents one generated plan day
type PlanDayResponse struct {
	Day   int      `json:"day"`
	Dish  string   `json:"dish"`
	Uses  []string `json:"uses"`
	Extra []string `json:"extra"`
	Steps []string `json:"steps,omitempty"`
}

// PlanResponse represents a generated meal plan
type PlanResponse struct {
	Days          int               `json:"days"`
	ExpiringItems []string          `json:"expiring_items"`
	Plan          []PlanDayResponse `json:"plan"`
}

// ShortfallItemResponse represents one purchase suggestion
type ShortfallItemResponse struct {
	Item     string  `json:"item"`
	Required float64 `json:"required"`
	Have     float64 `json:"have"`
	HaveUnit string  `json:"have_unit"`
	Unit     string  `json:"unit"`
	ToBuy    float64 `json:"to_buy"`
}

// ShortfallResponse represents the reconciliation of a plan against stock
type ShortfallResponse struct {
	ToBuy []ShortfallItemResponse `json:"to_buy"`
}

func toPlanDayResponses(days []planning.PlanDay) []PlanDayResponse {
	responses := make([]PlanDayResponse, len(days))
	for i, d := range days {
		responses[i] = PlanDayResponse{
			Day:   d.Day,
			Dish:  d.Dish,
			Uses:  d.Uses,
			Extra: d.Extra,
			Steps: d.Steps,
		}
	}
	return responses
}

func toShortfallResponse(items []planning.ShortfallItem) *ShortfallResponse {
	resp := &ShortfallResponse{ToBuy: make([]ShortfallItemResponse, len(items))}
	for i, item := range items {
		resp.ToBuy[i] = ShortfallItemResponse{
			Item:     item.Item,
			Required: item.Required,
			Have:     item.Have,
			HaveUnit: item.HaveUnit,
			Unit:     item.Unit,
			ToBuy:    item.ToBuy,
		}
	}
	return resp
}

func toPlanDays(inputs []PlanDayInput) []planning.PlanDay {
	days := make([]planning.PlanDay, len(inputs))
	for i, in := range inputs {
		days[i] = planning.PlanDay{
			Day:   in.Day,
			Dish:  in.Dish,
			Uses:  in.Uses,
			Extra: in.Extra,
		}
	}
	return days
}
