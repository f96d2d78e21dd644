package grocery

import "github.com/bursteinalan/fooder/internal/model"

// Categories is the fixed set of grocery-store sections an ingredient can
// resolve to. "Other" is the universal fallback and a legal value in its
// own right.
var Categories = []string{
	"Produce",
	"Meat & Seafood",
	"Dairy & Eggs",
	"Pantry & Dry Goods",
	"Spices & Seasonings",
	"Canned & Jarred",
	"Frozen",
	"Bakery",
	"Beverages",
	"Other",
}

// ValidCategory reports whether name is a member of the category set.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// DefaultRules returns the seed keyword-to-category table for a fresh
// store. Order matters: the categorizer's substring fallback takes the
// first rule whose keyword appears in the ingredient name.
func DefaultRules() []model.CategoryRule {
	return []model.CategoryRule{
		// Produce
		{Keyword: "onion", Category: "Produce"},
		{Keyword: "garlic", Category: "Produce"},
		{Keyword: "ginger", Category: "Produce"},
		{Keyword: "carrot", Category: "Produce"},
		{Keyword: "carrots", Category: "Produce"},
		{Keyword: "celery", Category: "Produce"},
		{Keyword: "potato", Category: "Produce"},
		{Keyword: "potatoes", Category: "Produce"},
		{Keyword: "tomato", Category: "Produce"},
		{Keyword: "tomatoes", Category: "Produce"},
		{Keyword: "lettuce", Category: "Produce"},
		{Keyword: "spinach", Category: "Produce"},
		{Keyword: "kale", Category: "Produce"},
		{Keyword: "broccoli", Category: "Produce"},
		{Keyword: "cauliflower", Category: "Produce"},
		{Keyword: "bell pepper", Category: "Produce"},
		{Keyword: "pepper", Category: "Produce"},
		{Keyword: "cucumber", Category: "Produce"},
		{Keyword: "zucchini", Category: "Produce"},
		{Keyword: "mushroom", Category: "Produce"},
		{Keyword: "mushrooms", Category: "Produce"},
		{Keyword: "apple", Category: "Produce"},
		{Keyword: "banana", Category: "Produce"},
		{Keyword: "lemon", Category: "Produce"},
		{Keyword: "lime", Category: "Produce"},
		{Keyword: "orange", Category: "Produce"},
		{Keyword: "avocado", Category: "Produce"},
		{Keyword: "cilantro", Category: "Produce"},
		{Keyword: "parsley", Category: "Produce"},
		{Keyword: "basil", Category: "Produce"},
		{Keyword: "thyme", Category: "Produce"},
		{Keyword: "rosemary", Category: "Produce"},

		// Meat & Seafood
		{Keyword: "chicken", Category: "Meat & Seafood"},
		{Keyword: "beef", Category: "Meat & Seafood"},
		{Keyword: "pork", Category: "Meat & Seafood"},
		{Keyword: "turkey", Category: "Meat & Seafood"},
		{Keyword: "lamb", Category: "Meat & Seafood"},
		{Keyword: "fish", Category: "Meat & Seafood"},
		{Keyword: "salmon", Category: "Meat & Seafood"},
		{Keyword: "tuna", Category: "Meat & Seafood"},
		{Keyword: "shrimp", Category: "Meat & Seafood"},
		{Keyword: "ground beef", Category: "Meat & Seafood"},
		{Keyword: "ground turkey", Category: "Meat & Seafood"},
		{Keyword: "bacon", Category: "Meat & Seafood"},
		{Keyword: "sausage", Category: "Meat & Seafood"},

		// Dairy & Eggs
		{Keyword: "milk", Category: "Dairy & Eggs"},
		{Keyword: "butter", Category: "Dairy & Eggs"},
		{Keyword: "cheese", Category: "Dairy & Eggs"},
		{Keyword: "cream", Category: "Dairy & Eggs"},
		{Keyword: "yogurt", Category: "Dairy & Eggs"},
		{Keyword: "sour cream", Category: "Dairy & Eggs"},
		{Keyword: "egg", Category: "Dairy & Eggs"},
		{Keyword: "eggs", Category: "Dairy & Eggs"},
		{Keyword: "cream cheese", Category: "Dairy & Eggs"},
		{Keyword: "parmesan", Category: "Dairy & Eggs"},
		{Keyword: "mozzarella", Category: "Dairy & Eggs"},
		{Keyword: "cheddar", Category: "Dairy & Eggs"},

		// Pantry & Dry Goods
		{Keyword: "flour", Category: "Pantry & Dry Goods"},
		{Keyword: "sugar", Category: "Pantry & Dry Goods"},
		{Keyword: "salt", Category: "Pantry & Dry Goods"},
		{Keyword: "black pepper", Category: "Spices & Seasonings"},
		{Keyword: "rice", Category: "Pantry & Dry Goods"},
		{Keyword: "pasta", Category: "Pantry & Dry Goods"},
		{Keyword: "bread", Category: "Pantry & Dry Goods"},
		{Keyword: "oil", Category: "Pantry & Dry Goods"},
		{Keyword: "olive oil", Category: "Pantry & Dry Goods"},
		{Keyword: "vegetable oil", Category: "Pantry & Dry Goods"},
		{Keyword: "coconut oil", Category: "Pantry & Dry Goods"},
		{Keyword: "vinegar", Category: "Pantry & Dry Goods"},
		{Keyword: "soy sauce", Category: "Pantry & Dry Goods"},
		{Keyword: "honey", Category: "Pantry & Dry Goods"},
		{Keyword: "maple syrup", Category: "Pantry & Dry Goods"},
		{Keyword: "beans", Category: "Pantry & Dry Goods"},
		{Keyword: "lentils", Category: "Pantry & Dry Goods"},
		{Keyword: "chickpeas", Category: "Pantry & Dry Goods"},
		{Keyword: "oats", Category: "Pantry & Dry Goods"},
		{Keyword: "quinoa", Category: "Pantry & Dry Goods"},
		{Keyword: "cornstarch", Category: "Pantry & Dry Goods"},
		{Keyword: "baking powder", Category: "Pantry & Dry Goods"},
		{Keyword: "baking soda", Category: "Pantry & Dry Goods"},
		{Keyword: "vanilla", Category: "Pantry & Dry Goods"},
		{Keyword: "vanilla extract", Category: "Pantry & Dry Goods"},
		{Keyword: "chocolate chips", Category: "Pantry & Dry Goods"},
		{Keyword: "nuts", Category: "Pantry & Dry Goods"},
		{Keyword: "almonds", Category: "Pantry & Dry Goods"},
		{Keyword: "walnuts", Category: "Pantry & Dry Goods"},

		// Spices & Seasonings
		{Keyword: "cumin", Category: "Spices & Seasonings"},
		{Keyword: "paprika", Category: "Spices & Seasonings"},
		{Keyword: "chili powder", Category: "Spices & Seasonings"},
		{Keyword: "cayenne", Category: "Spices & Seasonings"},
		{Keyword: "turmeric", Category: "Spices & Seasonings"},
		{Keyword: "cinnamon", Category: "Spices & Seasonings"},
		{Keyword: "nutmeg", Category: "Spices & Seasonings"},
		{Keyword: "oregano", Category: "Spices & Seasonings"},
		{Keyword: "bay leaf", Category: "Spices & Seasonings"},
		{Keyword: "bay leaves", Category: "Spices & Seasonings"},
		{Keyword: "red pepper", Category: "Spices & Seasonings"},
		{Keyword: "crushed red pepper", Category: "Spices & Seasonings"},
		{Keyword: "garlic powder", Category: "Spices & Seasonings"},
		{Keyword: "onion powder", Category: "Spices & Seasonings"},

		// Canned & Jarred
		{Keyword: "tomato sauce", Category: "Canned & Jarred"},
		{Keyword: "crushed tomatoes", Category: "Canned & Jarred"},
		{Keyword: "diced tomatoes", Category: "Canned & Jarred"},
		{Keyword: "tomato paste", Category: "Canned & Jarred"},
		{Keyword: "coconut milk", Category: "Canned & Jarred"},
		{Keyword: "chicken broth", Category: "Canned & Jarred"},
		{Keyword: "beef broth", Category: "Canned & Jarred"},
		{Keyword: "vegetable broth", Category: "Canned & Jarred"},
		{Keyword: "stock", Category: "Canned & Jarred"},
		{Keyword: "broth", Category: "Canned & Jarred"},
	}
}
