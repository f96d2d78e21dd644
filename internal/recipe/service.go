// Package recipe implements recipe CRUD on top of the storage layer.
package recipe

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bursteinalan/fooder/internal/model"
	"github.com/bursteinalan/fooder/internal/store"
)

type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Input is the caller-supplied shape of a recipe. On update, nil fields
// mean "leave unchanged".
type Input struct {
	Title        *string             `json:"title"`
	Ingredients  *[]model.Ingredient `json:"ingredients"`
	Instructions *string             `json:"instructions"`
	SourceURL    *string             `json:"source_url"`
}

// Create stores a new recipe owned by userID. All fields must be set;
// the handler validates that before calling.
func (s *Service) Create(userID string, in Input) (*model.Recipe, error) {
	now := time.Now().UTC()
	r := &model.Recipe{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        *in.Title,
		Ingredients:  *in.Ingredients,
		Instructions: *in.Instructions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.SourceURL != nil {
		r.SourceURL = *in.SourceURL
	}
	if err := s.store.PutRecipe(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Get returns the recipe, or nil when it is absent or owned by someone
// else.
func (s *Service) Get(userID, id string) (*model.Recipe, error) {
	r, err := s.store.GetRecipe(id)
	if err != nil {
		return nil, err
	}
	if r == nil || r.UserID != userID {
		return nil, nil
	}
	return r, nil
}

// Update applies the non-nil fields of in. Returns nil when the recipe
// is absent or not owned by userID.
func (s *Service) Update(userID, id string, in Input) (*model.Recipe, error) {
	r, err := s.Get(userID, id)
	if err != nil || r == nil {
		return nil, err
	}

	if in.Title != nil {
		r.Title = *in.Title
	}
	if in.Ingredients != nil {
		r.Ingredients = *in.Ingredients
	}
	if in.Instructions != nil {
		r.Instructions = *in.Instructions
	}
	if in.SourceURL != nil {
		r.SourceURL = *in.SourceURL
	}
	r.UpdatedAt = time.Now().UTC()

	if err := s.store.PutRecipe(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes the recipe. Returns false when there was nothing to
// delete. Saved lists that referenced it keep their snapshot items.
func (s *Service) Delete(userID, id string) (bool, error) {
	r, err := s.Get(userID, id)
	if err != nil || r == nil {
		return false, err
	}
	if err := s.store.DeleteRecipe(id); err != nil {
		return false, err
	}
	return true, nil
}

// List returns the user's recipes, newest first.
func (s *Service) List(userID string) ([]model.Recipe, error) {
	return s.store.ListRecipes(userID)
}

// UniqueIngredientNames returns the sorted, de-duplicated, lowercased
// ingredient names across all of the user's recipes. The UI uses it for
// autocomplete and category management.
func (s *Service) UniqueIngredientNames(userID string) ([]string, error) {
	recipes, err := s.store.ListRecipes(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			name := strings.ToLower(strings.TrimSpace(ing.Name))
			if name == "" {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
