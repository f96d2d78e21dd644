// Package store defines the persistence contract and its two backends:
// a single-file JSON store and a SQLite store. Callers program against the
// Store interface and never branch on backend identity.
package store

import "github.com/bursteinalan/fooder/internal/model"

// Store is the read/write contract shared by both backends. A missing
// record is reported as (nil, nil); non-nil errors are real I/O failures.
// Mutations replace whole records; read-modify-write is the caller's
// transaction boundary.
type Store interface {
	GetUser(id string) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	PutUser(u *model.User) error

	GetSession(token string) (*model.Session, error)
	PutSession(s *model.Session) error
	DeleteSession(token string) error

	GetRecipe(id string) (*model.Recipe, error)
	// ListRecipes returns the user's recipes, newest first.
	ListRecipes(userID string) ([]model.Recipe, error)
	PutRecipe(r *model.Recipe) error
	DeleteRecipe(id string) error

	// CommonCategories returns the shared keyword-to-category rules in
	// their stored order. Order is part of the contract: the categorizer's
	// substring fallback takes the first matching rule.
	CommonCategories() ([]model.CategoryRule, error)

	GetSavedList(userID, id string) (*model.SavedGroceryList, error)
	ListSavedLists(userID string) ([]model.SavedGroceryList, error)
	PutSavedList(l *model.SavedGroceryList) error
	DeleteSavedList(userID, id string) error
}
