package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/bursteinalan/fooder/internal/grocery"
	"github.com/bursteinalan/fooder/internal/model"
	"github.com/bursteinalan/fooder/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"), grocery.DefaultRules())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(st, Config{SeedSignupOverrides: false}, logger)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		buf = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode
}

func signup(t *testing.T, ts *httptest.Server, username string) string {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	status := doJSON(t, "POST", ts.URL+"/api/auth/signup", "", map[string]string{
		"username": username,
		"password": "hunter22",
	}, &resp)
	if status != http.StatusCreated {
		t.Fatalf("signup status = %d", status)
	}
	if resp.Token == "" {
		t.Fatal("signup returned no token")
	}
	return resp.Token
}

func TestHealthAndAuthGuard(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/health status = %d", resp.StatusCode)
	}

	// Everything under the protected mux needs a token.
	if status := doJSON(t, "GET", ts.URL+"/api/recipes", "", nil, nil); status != http.StatusUnauthorized {
		t.Errorf("unauthenticated /api/recipes status = %d, want 401", status)
	}
}

func TestRecipeToGroceryListFlow(t *testing.T) {
	ts := newTestServer(t)
	token := signup(t, ts, "alice")

	var pasta model.Recipe
	status := doJSON(t, "POST", ts.URL+"/api/recipes", token, map[string]any{
		"title": "Pasta",
		"ingredients": []map[string]any{
			{"name": "flour", "quantity": 2, "unit": "cup"},
			{"name": "garlic", "quantity": 3, "unit": "clove"},
		},
		"instructions": "Boil.",
	}, &pasta)
	if status != http.StatusCreated {
		t.Fatalf("create recipe status = %d", status)
	}

	var bread model.Recipe
	status = doJSON(t, "POST", ts.URL+"/api/recipes", token, map[string]any{
		"title": "Bread",
		"ingredients": []map[string]any{
			{"name": "flour", "quantity": 1.5, "unit": "cup"},
		},
		"instructions": "Bake.",
	}, &bread)
	if status != http.StatusCreated {
		t.Fatalf("create recipe status = %d", status)
	}

	var items []model.ConsolidatedIngredient
	status = doJSON(t, "POST", ts.URL+"/api/grocery-list", token, map[string]any{
		"recipe_ids": []string{pasta.ID, bread.ID},
	}, &items)
	if status != http.StatusOK {
		t.Fatalf("generate status = %d", status)
	}
	if len(items) != 2 {
		t.Fatalf("items = %+v, want 2 entries", items)
	}
	for _, item := range items {
		if item.Name == "flour" && item.Quantity != 3.5 {
			t.Errorf("flour quantity = %v, want 3.5", item.Quantity)
		}
	}

	// Save the generated list, then check an item off.
	var list model.SavedGroceryList
	status = doJSON(t, "POST", ts.URL+"/api/saved-lists", token, map[string]any{
		"name":       "Week 1",
		"items":      items,
		"recipe_ids": []string{pasta.ID, bread.ID},
	}, &list)
	if status != http.StatusCreated {
		t.Fatalf("save list status = %d", status)
	}
	if len(list.Items) != 2 {
		t.Fatalf("saved items = %+v", list.Items)
	}

	var toggled model.SavedGroceryList
	status = doJSON(t, "PATCH", ts.URL+"/api/saved-lists/"+list.ID+"/items/"+list.Items[0].ID+"/check", token, nil, &toggled)
	if status != http.StatusOK {
		t.Fatalf("toggle status = %d", status)
	}
	if !toggled.Items[0].Checked {
		t.Error("item not checked after toggle")
	}
}

func TestCategoryOverrideFlow(t *testing.T) {
	ts := newTestServer(t)
	token := signup(t, ts, "alice")

	var lookup map[string]string
	if status := doJSON(t, "GET", ts.URL+"/api/grocery-list/category?name=tofu", token, nil, &lookup); status != http.StatusOK {
		t.Fatalf("category lookup status = %d", status)
	}
	if lookup["category"] != "Other" {
		t.Errorf("tofu category = %q, want Other", lookup["category"])
	}

	if status := doJSON(t, "PUT", ts.URL+"/api/grocery-list/category", token, map[string]string{
		"name":     "tofu",
		"category": "Frozen",
	}, nil); status != http.StatusOK {
		t.Fatalf("set category status = %d", status)
	}

	if status := doJSON(t, "GET", ts.URL+"/api/grocery-list/category?name=tofu", token, nil, &lookup); status != http.StatusOK {
		t.Fatalf("category lookup status = %d", status)
	}
	if lookup["category"] != "Frozen" {
		t.Errorf("tofu category = %q, want Frozen", lookup["category"])
	}

	// Unknown labels are rejected.
	if status := doJSON(t, "PUT", ts.URL+"/api/grocery-list/category", token, map[string]string{
		"name":     "tofu",
		"category": "Snacks",
	}, nil); status != http.StatusBadRequest {
		t.Errorf("bad category status = %d, want 400", status)
	}
}

func TestUserIsolation(t *testing.T) {
	ts := newTestServer(t)
	aliceToken := signup(t, ts, "alice")
	bobToken := signup(t, ts, "bob")

	var created model.Recipe
	status := doJSON(t, "POST", ts.URL+"/api/recipes", aliceToken, map[string]any{
		"title": "Secret Sauce",
		"ingredients": []map[string]any{
			{"name": "ketchup", "quantity": 1, "unit": "cup"},
		},
		"instructions": "Stir.",
	}, &created)
	if status != http.StatusCreated {
		t.Fatalf("create status = %d", status)
	}

	if status := doJSON(t, "GET", ts.URL+"/api/recipes/"+created.ID, bobToken, nil, nil); status != http.StatusNotFound {
		t.Errorf("cross-user get status = %d, want 404", status)
	}
	if status := doJSON(t, "DELETE", ts.URL+"/api/recipes/"+created.ID, bobToken, nil, nil); status != http.StatusNotFound {
		t.Errorf("cross-user delete status = %d, want 404", status)
	}

	var recipes []model.Recipe
	if status := doJSON(t, "GET", ts.URL+"/api/recipes", bobToken, nil, &recipes); status != http.StatusOK {
		t.Fatalf("list status = %d", status)
	}
	if len(recipes) != 0 {
		t.Errorf("bob sees %d recipes, want 0", len(recipes))
	}
}
