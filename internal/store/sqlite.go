package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bursteinalan/fooder/internal/model"
)

// SQLiteStore implements Store over a migrated SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an open database and seeds the common category
// rules if the table is empty.
func NewSQLiteStore(db *sql.DB, seed []model.CategoryRule) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM common_categories`).Scan(&count); err != nil {
		return nil, fmt.Errorf("count common categories: %w", err)
	}
	if count == 0 {
		tx, err := db.Begin()
		if err != nil {
			return nil, fmt.Errorf("begin seed: %w", err)
		}
		for i, rule := range seed {
			if _, err := tx.Exec(
				`INSERT INTO common_categories (keyword, category, sort_order) VALUES (?, ?, ?)`,
				rule.Keyword, rule.Category, i,
			); err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("seed common categories: %w", err)
			}
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit seed: %w", err)
		}
	}
	return s, nil
}

// --- Users ---

func (s *SQLiteStore) GetUser(id string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at FROM users WHERE id = ?`, id)
	return s.scanUser(row)
}

func (s *SQLiteStore) GetUserByUsername(username string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
	return s.scanUser(row)
}

func (s *SQLiteStore) scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u.Overrides = map[string]string{}
	rows, err := s.db.Query(`SELECT ingredient, category FROM user_categories WHERE user_id = ?`, u.ID)
	if err != nil {
		return nil, fmt.Errorf("get user overrides: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ingredient, category string
		if err := rows.Scan(&ingredient, &category); err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		u.Overrides[ingredient] = category
	}
	return &u, rows.Err()
}

func (s *SQLiteStore) PutUser(u *model.User) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin put user: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET username = excluded.username, password_hash = excluded.password_hash`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}

	// Whole-record replace: overrides are rewritten as mutated in memory.
	if _, err := tx.Exec(`DELETE FROM user_categories WHERE user_id = ?`, u.ID); err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}
	for ingredient, category := range u.Overrides {
		if _, err := tx.Exec(
			`INSERT INTO user_categories (user_id, ingredient, category) VALUES (?, ?, ?)`,
			u.ID, ingredient, category,
		); err != nil {
			return fmt.Errorf("insert override: %w", err)
		}
	}
	return tx.Commit()
}

// --- Sessions ---

func (s *SQLiteStore) GetSession(token string) (*model.Session, error) {
	row := s.db.QueryRow(`SELECT token, user_id, expires_at, created_at FROM sessions WHERE token = ?`, token)
	var sess model.Session
	err := row.Scan(&sess.Token, &sess.UserID, &sess.ExpiresAt, &sess.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}

func (s *SQLiteStore) PutSession(sess *model.Session) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (token, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(token) DO UPDATE SET expires_at = excluded.expires_at`,
		sess.Token, sess.UserID, sess.ExpiresAt, sess.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteSession(token string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// --- Recipes ---

func (s *SQLiteStore) GetRecipe(id string) (*model.Recipe, error) {
	row := s.db.QueryRow(
		`SELECT id, user_id, title, instructions, source_url, created_at, updated_at FROM recipes WHERE id = ?`,
		id,
	)
	var r model.Recipe
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Instructions, &r.SourceURL, &r.CreatedAt, &r.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	if r.Ingredients, err = s.recipeIngredients(r.ID); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteStore) recipeIngredients(recipeID string) ([]model.Ingredient, error) {
	rows, err := s.db.Query(
		`SELECT name, quantity, unit FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position ASC`,
		recipeID,
	)
	if err != nil {
		return nil, fmt.Errorf("get ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.Name, &ing.Quantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (s *SQLiteStore) ListRecipes(userID string) ([]model.Recipe, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, title, instructions, source_url, created_at, updated_at
		 FROM recipes WHERE user_id = ? ORDER BY created_at DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		var r model.Recipe
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Instructions, &r.SourceURL, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range recipes {
		if recipes[i].Ingredients, err = s.recipeIngredients(recipes[i].ID); err != nil {
			return nil, err
		}
	}
	return recipes, nil
}

func (s *SQLiteStore) PutRecipe(r *model.Recipe) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin put recipe: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO recipes (id, user_id, title, instructions, source_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title, instructions = excluded.instructions,
		   source_url = excluded.source_url, updated_at = excluded.updated_at`,
		r.ID, r.UserID, r.Title, r.Instructions, r.SourceURL, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert recipe: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, r.ID); err != nil {
		return fmt.Errorf("clear ingredients: %w", err)
	}
	for i, ing := range r.Ingredients {
		if _, err := tx.Exec(
			`INSERT INTO recipe_ingredients (recipe_id, position, name, quantity, unit) VALUES (?, ?, ?, ?, ?)`,
			r.ID, i, ing.Name, ing.Quantity, ing.Unit,
		); err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) DeleteRecipe(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete recipe: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM recipe_ingredients WHERE recipe_id = ?`, id); err != nil {
		return fmt.Errorf("delete ingredients: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM recipes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return tx.Commit()
}

// --- Common categories ---

func (s *SQLiteStore) CommonCategories() ([]model.CategoryRule, error) {
	rows, err := s.db.Query(`SELECT keyword, category FROM common_categories ORDER BY sort_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("list common categories: %w", err)
	}
	defer rows.Close()

	var rules []model.CategoryRule
	for rows.Next() {
		var rule model.CategoryRule
		if err := rows.Scan(&rule.Keyword, &rule.Category); err != nil {
			return nil, fmt.Errorf("scan category rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// --- Saved grocery lists ---

func (s *SQLiteStore) GetSavedList(userID, id string) (*model.SavedGroceryList, error) {
	row := s.db.QueryRow(
		`SELECT id, user_id, name, recipe_ids, created_at, updated_at FROM saved_lists WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	list, err := scanSavedList(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get saved list: %w", err)
	}
	if list.Items, err = s.savedListItems(list.ID); err != nil {
		return nil, err
	}
	return list, nil
}

func scanSavedList(scanner interface{ Scan(...any) error }) (*model.SavedGroceryList, error) {
	var l model.SavedGroceryList
	var recipeIDs string
	if err := scanner.Scan(&l.ID, &l.UserID, &l.Name, &recipeIDs, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(recipeIDs), &l.RecipeIDs); err != nil {
		return nil, fmt.Errorf("decode recipe ids: %w", err)
	}
	return &l, nil
}

func (s *SQLiteStore) savedListItems(listID string) ([]model.SavedGroceryListItem, error) {
	rows, err := s.db.Query(
		`SELECT id, name, quantity, unit, category, checked, ord FROM saved_list_items WHERE list_id = ? ORDER BY ord ASC`,
		listID,
	)
	if err != nil {
		return nil, fmt.Errorf("get list items: %w", err)
	}
	defer rows.Close()

	var items []model.SavedGroceryListItem
	for rows.Next() {
		var item model.SavedGroceryListItem
		var checked int
		if err := rows.Scan(&item.ID, &item.Name, &item.Quantity, &item.Unit, &item.Category, &checked, &item.Order); err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		item.Checked = checked != 0
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) ListSavedLists(userID string) ([]model.SavedGroceryList, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, name, recipe_ids, created_at, updated_at
		 FROM saved_lists WHERE user_id = ? ORDER BY created_at DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list saved lists: %w", err)
	}
	defer rows.Close()

	var lists []model.SavedGroceryList
	for rows.Next() {
		l, err := scanSavedList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved list: %w", err)
		}
		lists = append(lists, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range lists {
		if lists[i].Items, err = s.savedListItems(lists[i].ID); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

func (s *SQLiteStore) PutSavedList(l *model.SavedGroceryList) error {
	recipeIDs, err := json.Marshal(l.RecipeIDs)
	if err != nil {
		return fmt.Errorf("encode recipe ids: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin put saved list: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO saved_lists (id, user_id, name, recipe_ids, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name, recipe_ids = excluded.recipe_ids, updated_at = excluded.updated_at`,
		l.ID, l.UserID, l.Name, string(recipeIDs), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert saved list: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM saved_list_items WHERE list_id = ?`, l.ID); err != nil {
		return fmt.Errorf("clear list items: %w", err)
	}
	for _, item := range l.Items {
		checked := 0
		if item.Checked {
			checked = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO saved_list_items (id, list_id, name, quantity, unit, category, checked, ord)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, l.ID, item.Name, item.Quantity, item.Unit, item.Category, checked, item.Order,
		); err != nil {
			return fmt.Errorf("insert list item: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) DeleteSavedList(userID, id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin delete saved list: %w", err)
	}
	defer tx.Rollback()

	var owner string
	err = tx.QueryRow(`SELECT user_id FROM saved_lists WHERE id = ?`, id).Scan(&owner)
	if err == sql.ErrNoRows || (err == nil && owner != userID) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check saved list owner: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM saved_list_items WHERE list_id = ?`, id); err != nil {
		return fmt.Errorf("delete list items: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM saved_lists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete saved list: %w", err)
	}
	return tx.Commit()
}
