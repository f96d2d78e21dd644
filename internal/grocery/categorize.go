// Package grocery holds the shopping-list engine: ingredient
// categorization, cross-recipe consolidation, and saved-list mutation.
package grocery

import (
	"errors"
	"strings"

	"github.com/bursteinalan/fooder/internal/store"
)

var (
	// ErrInvalidCategory is returned when a category update names a label
	// outside the fixed category set.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrUserNotFound is returned when a category update targets a user
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Categorizer resolves a grocery-store category for an ingredient name
// through a layered policy: user override, then exact common-mapping
// match, then first substring match in mapping order, then "Other".
type Categorizer struct {
	store store.Store
}

func NewCategorizer(st store.Store) *Categorizer {
	return &Categorizer{store: st}
}

// Categorize returns the category for the given ingredient name. The
// result is always a member of Categories; classification itself cannot
// fail, only storage access can.
func (c *Categorizer) Categorize(userID, ingredientName string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(ingredientName))

	user, err := c.store.GetUser(userID)
	if err != nil {
		return "", err
	}
	if user != nil {
		if category, ok := user.Overrides[normalized]; ok {
			return category, nil
		}
	}

	rules, err := c.store.CommonCategories()
	if err != nil {
		return "", err
	}
	for _, rule := range rules {
		if rule.Keyword == normalized {
			return rule.Category, nil
		}
	}
	// Keyword fallback: first rule whose keyword appears inside the name
	// wins. Mapping order decides ties; there is deliberately no
	// longest-match preference.
	for _, rule := range rules {
		if strings.Contains(normalized, rule.Keyword) {
			return rule.Category, nil
		}
	}

	return "Other", nil
}

// SetCategory records a per-user override for the given ingredient name.
// The category must be a member of Categories ("Other" included).
func (c *Categorizer) SetCategory(userID, ingredientName, category string) error {
	if !ValidCategory(category) {
		return ErrInvalidCategory
	}

	user, err := c.store.GetUser(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	normalized := strings.ToLower(strings.TrimSpace(ingredientName))
	if user.Overrides == nil {
		user.Overrides = map[string]string{}
	}
	user.Overrides[normalized] = category
	return c.store.PutUser(user)
}
