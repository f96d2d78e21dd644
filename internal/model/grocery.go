package model

import "time"

// CategoryRule maps an ingredient keyword to a grocery-store category.
// Rules are ordered: when several keywords match the same ingredient name
// as substrings, the first rule wins.
type CategoryRule struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// ConsolidatedIngredient is one line of a generated shopping list. It is
// derived on every consolidation call and never persisted as such.
type ConsolidatedIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

type SavedGroceryListItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Checked  bool    `json:"checked"`
	Order    int     `json:"order"`
}

type SavedGroceryList struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	Name      string                 `json:"name"`
	Items     []SavedGroceryListItem `json:"items"`
	RecipeIDs []string               `json:"recipe_ids"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
