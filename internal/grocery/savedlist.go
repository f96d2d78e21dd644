package grocery

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bursteinalan/fooder/internal/model"
	"github.com/bursteinalan/fooder/internal/store"
)

// SavedLists manages persisted, named, checkable shopping lists. Every
// mutation fetches the whole list, changes it in memory, and writes it
// back; that read-modify-write is the transaction boundary.
type SavedLists struct {
	store store.Store
}

func NewSavedLists(st store.Store) *SavedLists {
	return &SavedLists{store: st}
}

// ItemInput is the caller-supplied shape of a list item, typically a
// snapshot of one consolidated ingredient.
type ItemInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

// Create stores a new list. Items get fresh ids, order values matching
// their input position, and start unchecked.
func (s *SavedLists) Create(userID, name string, items []ItemInput, recipeIDs []string) (*model.SavedGroceryList, error) {
	now := time.Now().UTC()

	listItems := make([]model.SavedGroceryListItem, len(items))
	for i, item := range items {
		listItems[i] = model.SavedGroceryListItem{
			ID:       uuid.NewString(),
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Category: item.Category,
			Checked:  false,
			Order:    i,
		}
	}

	list := &model.SavedGroceryList{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Items:     listItems,
		RecipeIDs: recipeIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.PutSavedList(list); err != nil {
		return nil, err
	}
	return list, nil
}

// List returns the user's saved lists, newest first.
func (s *SavedLists) List(userID string) ([]model.SavedGroceryList, error) {
	lists, err := s.store.ListSavedLists(userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})
	return lists, nil
}

// Get returns the list, or nil if it is absent or owned by someone else.
func (s *SavedLists) Get(userID, listID string) (*model.SavedGroceryList, error) {
	return s.store.GetSavedList(userID, listID)
}

// Rename replaces the list's name; items are untouched.
func (s *SavedLists) Rename(userID, listID, name string) (*model.SavedGroceryList, error) {
	list, err := s.store.GetSavedList(userID, listID)
	if err != nil || list == nil {
		return nil, err
	}

	list.Name = name
	list.UpdatedAt = time.Now().UTC()
	if err := s.store.PutSavedList(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the whole list. Returns false if there was nothing to
// delete.
func (s *SavedLists) Delete(userID, listID string) (bool, error) {
	list, err := s.store.GetSavedList(userID, listID)
	if err != nil || list == nil {
		return false, err
	}
	if err := s.store.DeleteSavedList(userID, listID); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleChecked flips one item's checked flag. Returns nil if the list or
// the item is absent.
func (s *SavedLists) ToggleChecked(userID, listID, itemID string) (*model.SavedGroceryList, error) {
	list, err := s.store.GetSavedList(userID, listID)
	if err != nil || list == nil {
		return nil, err
	}

	found := false
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items[i].Checked = !list.Items[i].Checked
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	list.UpdatedAt = time.Now().UTC()
	if err := s.store.PutSavedList(list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddItem appends a new unchecked item with order one past the current
// maximum. Items are never inserted by category or name.
func (s *SavedLists) AddItem(userID, listID string, item ItemInput) (*model.SavedGroceryList, error) {
	list, err := s.store.GetSavedList(userID, listID)
	if err != nil || list == nil {
		return nil, err
	}

	maxOrder := -1
	for _, existing := range list.Items {
		if existing.Order > maxOrder {
			maxOrder = existing.Order
		}
	}

	list.Items = append(list.Items, model.SavedGroceryListItem{
		ID:       uuid.NewString(),
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Category: item.Category,
		Checked:  false,
		Order:    maxOrder + 1,
	})
	list.UpdatedAt = time.Now().UTC()
	if err := s.store.PutSavedList(list); err != nil {
		return nil, err
	}
	return list, nil
}

// RemoveItem deletes one item by id. Remaining items keep their order
// values; gaps are expected. Returns nil if the list or item is absent.
func (s *SavedLists) RemoveItem(userID, listID, itemID string) (*model.SavedGroceryList, error) {
	list, err := s.store.GetSavedList(userID, listID)
	if err != nil || list == nil {
		return nil, err
	}

	kept := list.Items[:0]
	for _, item := range list.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(list.Items) {
		return nil, nil
	}
	list.Items = kept

	list.UpdatedAt = time.Now().UTC()
	if err := s.store.PutSavedList(list); err != nil {
		return nil, err
	}
	return list, nil
}
