// Package ingredient parses free-text ingredient lines like "2 cups flour"
// or "1/2 tsp salt" into structured quantity/unit/name triples.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bursteinalan/fooder/internal/model"
)

// unitAliases maps plural and alternate unit spellings to a canonical token.
var unitAliases = map[string]string{
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"ounce":       "oz",
	"ounces":      "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lbs":         "lb",
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"milliliter":  "ml",
	"milliliters": "ml",
	"liter":       "l",
	"liters":      "l",
	"cup":         "cup",
	"cups":        "cup",
	"clove":       "clove",
	"cloves":      "clove",
	"piece":       "piece",
	"pieces":      "piece",
	"pinch":       "pinch",
	"dash":        "dash",
	"can":         "can",
	"cans":        "can",
	"bunch":       "bunch",
	"bunches":     "bunch",
	"whole":       "whole",
	"package":     "piece",
	"packages":    "piece",
	"pkg":         "piece",
}

// NormalizeUnit canonicalizes a measurement unit token. Unknown tokens pass
// through lower-cased; an empty token yields the default unit "piece".
func NormalizeUnit(token string) string {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if canonical, ok := unitAliases[normalized]; ok {
		return canonical
	}
	if normalized == "" {
		return "piece"
	}
	return normalized
}

// Quantity (integer, decimal, or simple fraction), optional unit word, then
// the ingredient name.
var linePattern = regexp.MustCompile(`^(\d+(?:/\d+)?(?:\.\d+)?)\s*([a-zA-Z]+)?\s+(.+)$`)

// Leading word that might be a unit ("pinch of salt" style lines).
var unitNamePattern = regexp.MustCompile(`^([a-zA-Z]+)\s+(.+)$`)

// Parse extracts quantity, unit, and name from a raw ingredient line.
// Lines without a recognizable quantity default to quantity 1; lines that
// match nothing at all become a name-only ingredient with unit "piece".
// Returns nil for blank input or an unparseable quantity; a nil result is
// an expected outcome, not an error.
func Parse(raw string) *model.Ingredient {
	line := strings.TrimSpace(raw)
	if line == "" {
		return nil
	}

	if m := linePattern.FindStringSubmatch(line); m != nil {
		quantity, ok := parseQuantity(m[1])
		if !ok {
			return nil
		}
		return &model.Ingredient{
			Name:     strings.TrimSpace(m[3]),
			Quantity: quantity,
			Unit:     NormalizeUnit(m[2]),
		}
	}

	// No quantity. If the leading word normalizes to a known unit token,
	// treat it as one unit of the remainder.
	if m := unitNamePattern.FindStringSubmatch(line); m != nil {
		if normalized := NormalizeUnit(m[1]); normalized != strings.ToLower(m[1]) {
			return &model.Ingredient{
				Name:     strings.TrimSpace(m[2]),
				Quantity: 1,
				Unit:     normalized,
			}
		}
	}

	return &model.Ingredient{Name: line, Quantity: 1, Unit: "piece"}
}

// parseQuantity handles integers, decimals, and simple a/b fractions.
// A zero denominator is a parse failure, not an infinite quantity.
func parseQuantity(s string) (float64, bool) {
	if num, denom, found := strings.Cut(s, "/"); found {
		n, errN := strconv.ParseFloat(num, 64)
		d, errD := strconv.ParseFloat(denom, 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return q, true
}
