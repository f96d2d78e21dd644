package grocery

import (
	"errors"
	"testing"

	"github.com/bursteinalan/fooder/internal/model"
)

func TestCategorize(t *testing.T) {
	fs := newFakeStore()
	fs.users["u1"] = &model.User{
		ID:       "u1",
		Username: "alice",
		Overrides: map[string]string{
			"tofu": "Frozen",
		},
	}
	c := NewCategorizer(fs)

	tests := []struct {
		name       string
		ingredient string
		want       string
	}{
		{"user override wins", "tofu", "Frozen"},
		{"exact common match", "milk", "Dairy & Eggs"},
		{"case and space insensitive", "  Milk ", "Dairy & Eggs"},
		{"substring match", "boneless chicken thighs", "Meat & Seafood"},
		{"no match falls through", "dragon fruit jam", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Categorize("u1", tt.ingredient)
			if err != nil {
				t.Fatalf("Categorize: %v", err)
			}
			if got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.ingredient, got, tt.want)
			}
		})
	}
}

func TestCategorizeExactBeatsSubstring(t *testing.T) {
	fs := newFakeStore()
	fs.users["u1"] = &model.User{ID: "u1", Username: "alice"}
	c := NewCategorizer(fs)

	// "black pepper" has its own rule under Spices & Seasonings even
	// though "pepper" alone maps to Produce.
	got, err := c.Categorize("u1", "black pepper")
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if got != "Spices & Seasonings" {
		t.Errorf("Categorize(black pepper) = %q, want Spices & Seasonings", got)
	}
}

func TestCategorizeUnknownUser(t *testing.T) {
	fs := newFakeStore()
	c := NewCategorizer(fs)

	// A missing user still gets common rules applied.
	got, err := c.Categorize("ghost", "milk")
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if got != "Dairy & Eggs" {
		t.Errorf("Categorize(milk) = %q, want Dairy & Eggs", got)
	}
}

func TestSetCategory(t *testing.T) {
	fs := newFakeStore()
	fs.users["u1"] = &model.User{ID: "u1", Username: "alice"}
	c := NewCategorizer(fs)

	if err := c.SetCategory("u1", "Durian", "Produce"); err != nil {
		t.Fatalf("SetCategory: %v", err)
	}
	got, err := c.Categorize("u1", "durian")
	if err != nil {
		t.Fatalf("Categorize: %v", err)
	}
	if got != "Produce" {
		t.Errorf("after SetCategory, Categorize(durian) = %q, want Produce", got)
	}

	if err := c.SetCategory("u1", "durian", "Snacks"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("SetCategory with bad label = %v, want ErrInvalidCategory", err)
	}
	// A rejected update must not disturb the existing override.
	if got, _ := c.Categorize("u1", "durian"); got != "Produce" {
		t.Errorf("after rejected SetCategory, Categorize(durian) = %q, want Produce", got)
	}
	if err := c.SetCategory("ghost", "durian", "Produce"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("SetCategory for missing user = %v, want ErrUserNotFound", err)
	}
}
