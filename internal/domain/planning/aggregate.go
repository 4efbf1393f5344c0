package planning

import (
	"github.com/shopspring/decimal"
	"github.com/smartgrocer/backend/internal/domain/pantry"
)

// AggregateRequirements collapses a multi-day plan into one requirement per
// distinct ingredient. Every occurrence of an ingredient in a day's Uses or
// Extra list contributes one nominal serving; contributions for repeated
// ingredients sum within and across days. Totals are rounded to four decimal
// places for display stability.
func AggregateRequirements(plan []PlanDay) map[string]Requirement {
	reqs := make(map[string]Requirement)
	for _, day := range plan {
		ingredients := make([]string, 0, len(day.Uses)+len(day.Extra))
		ingredients = append(ingredients, day.Uses...)
		ingredients = append(ingredients, day.Extra...)
		for _, raw := range ingredients {
			item := pantry.NormalizeName(raw)
			if item == "" {
				continue
			}
			serving, ok := ServingSizes[item]
			if !ok {
				serving = defaultServing
			}
			req, seen := reqs[item]
			if !seen {
				req = Requirement{Unit: serving.Unit}
			}
			req.Quantity += serving.Quantity
			reqs[item] = req
		}
	}

	for item, req := range reqs {
		req.Quantity = decimal.NewFromFloat(req.Quantity).Round(4).InexactFloat64()
		reqs[item] = req
	}
	return reqs
}
