package planning

import (
	"context"
)

// PlanDay is one day of a meal plan, as produced by an external planner or
// the built-in one. Uses lists the expiring ingredients the dish consumes;
// Extra lists the remaining ingredients.
type PlanDay struct {
	Day   int      `json:"day" validate:"gte=0"`
	Dish  string   `json:"dish"`
	Uses  []string `json:"uses" validate:"omitempty,dive,required"`
	Extra []string `json:"extra" validate:"omitempty,dive,required"`
	Steps []string `json:"steps,omitempty"`
}

// Requirement is the aggregated quantity of one ingredient a plan needs.
type Requirement struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ShortfallItem is one purchase suggestion: the gap between what a plan
// requires and what is on hand.
type ShortfallItem struct {
	Item     string  `json:"item"`
	Required float64 `json:"required"`
	Have     float64 `json:"have"`
	HaveUnit string  `json:"have_unit"`
	Unit     string  `json:"unit"`
	ToBuy    float64 `json:"to_buy"`
}

// Planner produces a meal plan that prefers using the given expiring items.
// The deterministic recipe-book planner implements it; an externally backed
// planner can be swapped in at wiring time.
type Planner interface {
	Plan(ctx context.Context, expiringItems []string, days int) ([]PlanDay, error)
}
