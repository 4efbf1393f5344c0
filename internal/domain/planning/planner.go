package planning

import (
	"context"

	"github.com/smartgrocer/backend/internal/domain/pantry"
)

// Recipe is one dish in the built-in recipe book.
type Recipe struct {
	Dish  string
	Uses  []string
	Steps []string
}

// DefaultRecipeBook is the deterministic planner's repertoire. Order matters:
// the planner walks the book front to back, so plans are reproducible.
var DefaultRecipeBook = []Recipe{
	{
		Dish:  "Paneer Bhurji",
		Uses:  []string{"paneer", "onion", "tomato"},
		Steps: []string{"Crumble paneer", "Saute onions & tomatoes", "Mix & serve"},
	},
	{
		Dish:  "Milk Poha",
		Uses:  []string{"milk", "poha", "sugar"},
		Steps: []string{"Soak poha", "Warm milk", "Mix & serve"},
	},
	{
		Dish:  "Aloo Sabzi",
		Uses:  []string{"potato", "onion", "tomato"},
		Steps: []string{"Boil potatoes", "Saute masala", "Mix & serve"},
	},
	{
		Dish:  "Dal Tadka",
		Uses:  []string{"dal", "onion", "tomato"},
		Steps: []string{"Wash dal", "Cook dal", "Tadka & serve"},
	},
}

// RecipePlanner builds meal plans from a fixed recipe book, preferring dishes
// that use up expiring items. It is the deterministic stand-in for an
// externally generated plan.
type RecipePlanner struct {
	recipes []Recipe
}

// NewRecipePlanner creates a planner over the default recipe book.
func NewRecipePlanner() *RecipePlanner {
	return &RecipePlanner{recipes: DefaultRecipeBook}
}

// NewRecipePlannerWithBook creates a planner over a custom recipe book.
func NewRecipePlannerWithBook(recipes []Recipe) *RecipePlanner {
	return &RecipePlanner{recipes: recipes}
}

// Plan produces a plan of the requested length. Each day picks the first
// recipe using an expiring ingredient not yet consumed by an earlier day;
// when none qualifies it falls back to the first recipe not already planned,
// wrapping around once the book is exhausted.
func (p *RecipePlanner) Plan(_ context.Context, expiringItems []string, days int) ([]PlanDay, error) {
	expiring := make(map[string]bool, len(expiringItems))
	for _, item := range expiringItems {
		expiring[pantry.NormalizeName(item)] = true
	}

	plan := make([]PlanDay, 0, days)
	usedIngredients := make(map[string]bool)
	plannedDishes := make(map[string]bool)

	for d := 0; d < days; d++ {
		recipe := p.pick(expiring, usedIngredients, plannedDishes)

		uses := make([]string, 0, len(recipe.Uses))
		for _, ing := range recipe.Uses {
			if expiring[ing] {
				uses = append(uses, ing)
			}
		}
		if len(uses) == 0 {
			n := 2
			if len(recipe.Uses) < n {
				n = len(recipe.Uses)
			}
			uses = append(uses, recipe.Uses[:n]...)
		}

		inUses := make(map[string]bool, len(uses))
		for _, ing := range uses {
			inUses[ing] = true
			usedIngredients[ing] = true
		}
		extra := make([]string, 0, len(recipe.Uses))
		for _, ing := range recipe.Uses {
			if !inUses[ing] {
				extra = append(extra, ing)
			}
		}

		plannedDishes[recipe.Dish] = true
		plan = append(plan, PlanDay{
			Day:   d + 1,
			Dish:  recipe.Dish,
			Uses:  uses,
			Extra: extra,
			Steps: recipe.Steps,
		})
	}
	return plan, nil
}

func (p *RecipePlanner) pick(expiring, usedIngredients, plannedDishes map[string]bool) Recipe {
	for _, r := range p.recipes {
		for _, ing := range r.Uses {
			if expiring[ing] && !usedIngredients[ing] {
				return r
			}
		}
	}
	for _, r := range p.recipes {
		if !plannedDishes[r.Dish] {
			return r
		}
	}
	return p.recipes[0]
}
