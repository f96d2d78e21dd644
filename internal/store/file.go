package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bursteinalan/fooder/internal/model"
)

// FileStore keeps everything in one JSON document on disk. Every operation
// reads the whole file and mutations write the whole file back through a
// temp-file rename, so a crash never leaves a half-written store behind.
// Suited to single-user scale; a mutex serializes access within the process.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileData struct {
	Users            map[string]*model.User             `json:"users"`
	Sessions         map[string]*model.Session          `json:"sessions"`
	Recipes          map[string]*model.Recipe           `json:"recipes"`
	SavedLists       map[string]*model.SavedGroceryList `json:"saved_grocery_lists"`
	CommonCategories []model.CategoryRule               `json:"common_categories"`
}

// NewFileStore opens the store at path, creating it with the given common
// category rules if it does not exist yet.
func NewFileStore(path string, seed []model.CategoryRule) (*FileStore, error) {
	s := &FileStore{path: path}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		initial := fileData{
			Users:            map[string]*model.User{},
			Sessions:         map[string]*model.Session{},
			Recipes:          map[string]*model.Recipe{},
			SavedLists:       map[string]*model.SavedGroceryList{},
			CommonCategories: seed,
		}
		if err := s.write(&initial); err != nil {
			return nil, fmt.Errorf("initialize store: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat store: %w", err)
	}

	// Fail fast on an unreadable or corrupt file.
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) read() (*fileData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse store: %w", err)
	}
	if data.Users == nil {
		data.Users = map[string]*model.User{}
	}
	if data.Sessions == nil {
		data.Sessions = map[string]*model.Session{}
	}
	if data.Recipes == nil {
		data.Recipes = map[string]*model.Recipe{}
	}
	if data.SavedLists == nil {
		data.SavedLists = map[string]*model.SavedGroceryList{}
	}
	return &data, nil
}

func (s *FileStore) write(data *fileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// --- Users ---

func (s *FileStore) GetUser(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return data.Users[id], nil
}

func (s *FileStore) GetUserByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, u := range data.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *FileStore) PutUser(u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	data.Users[u.ID] = u
	return s.write(data)
}

// --- Sessions ---

func (s *FileStore) GetSession(token string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return data.Sessions[token], nil
}

func (s *FileStore) PutSession(sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	data.Sessions[sess.Token] = sess
	return s.write(data)
}

func (s *FileStore) DeleteSession(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data.Sessions[token]; !ok {
		return nil
	}
	delete(data.Sessions, token)
	return s.write(data)
}

// --- Recipes ---

func (s *FileStore) GetRecipe(id string) (*model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return data.Recipes[id], nil
}

func (s *FileStore) ListRecipes(userID string) ([]model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	var recipes []model.Recipe
	for _, r := range data.Recipes {
		if r.UserID == userID {
			recipes = append(recipes, *r)
		}
	}
	sort.Slice(recipes, func(i, j int) bool {
		if !recipes[i].CreatedAt.Equal(recipes[j].CreatedAt) {
			return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
		}
		return recipes[i].ID < recipes[j].ID
	})
	return recipes, nil
}

func (s *FileStore) PutRecipe(r *model.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	data.Recipes[r.ID] = r
	return s.write(data)
}

func (s *FileStore) DeleteRecipe(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data.Recipes[id]; !ok {
		return nil
	}
	delete(data.Recipes, id)
	return s.write(data)
}

// --- Common categories ---

func (s *FileStore) CommonCategories() ([]model.CategoryRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return data.CommonCategories, nil
}

// --- Saved grocery lists ---

func (s *FileStore) GetSavedList(userID, id string) (*model.SavedGroceryList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	list, ok := data.SavedLists[id]
	if !ok || list.UserID != userID {
		return nil, nil
	}
	return list, nil
}

func (s *FileStore) ListSavedLists(userID string) ([]model.SavedGroceryList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return nil, err
	}
	var lists []model.SavedGroceryList
	for _, l := range data.SavedLists {
		if l.UserID == userID {
			lists = append(lists, *l)
		}
	}
	sort.Slice(lists, func(i, j int) bool {
		if !lists[i].CreatedAt.Equal(lists[j].CreatedAt) {
			return lists[i].CreatedAt.After(lists[j].CreatedAt)
		}
		return lists[i].ID < lists[j].ID
	})
	return lists, nil
}

func (s *FileStore) PutSavedList(l *model.SavedGroceryList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	data.SavedLists[l.ID] = l
	return s.write(data)
}

func (s *FileStore) DeleteSavedList(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return err
	}
	list, ok := data.SavedLists[id]
	if !ok || list.UserID != userID {
		return nil
	}
	delete(data.SavedLists, id)
	return s.write(data)
}
