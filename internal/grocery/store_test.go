package grocery

import (
	"sort"

	"github.com/bursteinalan/fooder/internal/model"
)

// fakeStore is an in-memory Store for exercising the engine without a
// backend.
type fakeStore struct {
	users      map[string]*model.User
	sessions   map[string]*model.Session
	recipes    map[string]*model.Recipe
	savedLists map[string]*model.SavedGroceryList
	rules      []model.CategoryRule
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      map[string]*model.User{},
		sessions:   map[string]*model.Session{},
		recipes:    map[string]*model.Recipe{},
		savedLists: map[string]*model.SavedGroceryList{},
		rules:      DefaultRules(),
	}
}

func (f *fakeStore) GetUser(id string) (*model.User, error) { return f.users[id], nil }

func (f *fakeStore) GetUserByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) PutUser(u *model.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeStore) GetSession(token string) (*model.Session, error) { return f.sessions[token], nil }

func (f *fakeStore) PutSession(s *model.Session) error {
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeStore) DeleteSession(token string) error {
	delete(f.sessions, token)
	return nil
}

func (f *fakeStore) GetRecipe(id string) (*model.Recipe, error) { return f.recipes[id], nil }

func (f *fakeStore) ListRecipes(userID string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	for _, r := range f.recipes {
		if r.UserID == userID {
			recipes = append(recipes, *r)
		}
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID < recipes[j].ID })
	return recipes, nil
}

func (f *fakeStore) PutRecipe(r *model.Recipe) error {
	f.recipes[r.ID] = r
	return nil
}

func (f *fakeStore) DeleteRecipe(id string) error {
	delete(f.recipes, id)
	return nil
}

func (f *fakeStore) CommonCategories() ([]model.CategoryRule, error) { return f.rules, nil }

func (f *fakeStore) GetSavedList(userID, id string) (*model.SavedGroceryList, error) {
	list, ok := f.savedLists[id]
	if !ok || list.UserID != userID {
		return nil, nil
	}
	return list, nil
}

func (f *fakeStore) ListSavedLists(userID string) ([]model.SavedGroceryList, error) {
	var lists []model.SavedGroceryList
	for _, l := range f.savedLists {
		if l.UserID == userID {
			lists = append(lists, *l)
		}
	}
	return lists, nil
}

func (f *fakeStore) PutSavedList(l *model.SavedGroceryList) error {
	f.savedLists[l.ID] = l
	return nil
}

func (f *fakeStore) DeleteSavedList(userID, id string) error {
	if list, ok := f.savedLists[id]; ok && list.UserID == userID {
		delete(f.savedLists, id)
	}
	return nil
}
