package grocery

import (
	"sort"
	"strings"

	"github.com/bursteinalan/fooder/internal/model"
	"github.com/bursteinalan/fooder/internal/store"
)

// Consolidator merges the ingredients of a set of recipes into one
// categorized shopping list.
type Consolidator struct {
	store       store.Store
	categorizer *Categorizer
}

func NewConsolidator(st store.Store, categorizer *Categorizer) *Consolidator {
	return &Consolidator{store: st, categorizer: categorizer}
}

// Consolidate aggregates the ingredients of the given recipes, summing
// quantities for matching (name, unit) pairs. Recipe ids that resolve to
// nothing, or to another user's recipe, are skipped silently; they may
// reference deleted items. The result is sorted by category, then name.
func (c *Consolidator) Consolidate(userID string, recipeIDs []string) ([]model.ConsolidatedIngredient, error) {
	totals := make(map[string]*model.ConsolidatedIngredient)
	var order []string

	for _, recipeID := range recipeIDs {
		recipe, err := c.store.GetRecipe(recipeID)
		if err != nil {
			return nil, err
		}
		if recipe == nil || recipe.UserID != userID {
			continue
		}

		for _, ing := range recipe.Ingredients {
			name := strings.ToLower(strings.TrimSpace(ing.Name))
			unit := strings.ToLower(strings.TrimSpace(ing.Unit))
			key := name + "|" + unit

			if existing, ok := totals[key]; ok {
				existing.Quantity += ing.Quantity
				continue
			}

			// Category is resolved once, at first sight of the key.
			category, err := c.categorizer.Categorize(userID, name)
			if err != nil {
				return nil, err
			}
			totals[key] = &model.ConsolidatedIngredient{
				Name:     name,
				Quantity: ing.Quantity,
				Unit:     unit,
				Category: category,
			}
			order = append(order, key)
		}
	}

	result := make([]model.ConsolidatedIngredient, 0, len(order))
	for _, key := range order {
		result = append(result, *totals[key])
	}
	// Stable sort keeps encounter order for same-name different-unit rows.
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Uncategorized returns the sorted unique ingredient names across all of
// the user's recipes that currently resolve to "Other".
func (c *Consolidator) Uncategorized(userID string) ([]string, error) {
	recipes, err := c.store.ListRecipes(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, recipe := range recipes {
		for _, ing := range recipe.Ingredients {
			normalized := strings.ToLower(strings.TrimSpace(ing.Name))
			if _, ok := seen[normalized]; ok {
				continue
			}
			seen[normalized] = struct{}{}

			category, err := c.categorizer.Categorize(userID, normalized)
			if err != nil {
				return nil, err
			}
			if category == "Other" {
				names = append(names, normalized)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// Category exposes categorization for single-name lookups.
func (c *Consolidator) Category(userID, ingredientName string) (string, error) {
	return c.categorizer.Categorize(userID, ingredientName)
}
