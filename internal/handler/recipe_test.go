package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bursteinalan/fooder/internal/auth"
	"github.com/bursteinalan/fooder/internal/recipe"
	"github.com/bursteinalan/fooder/internal/scraper"
	"github.com/bursteinalan/fooder/internal/store"
	"github.com/bursteinalan/fooder/internal/sync"
)

func newRecipeHandler(t *testing.T) *RecipeHandler {
	t.Helper()
	st, err := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"), nil)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRecipeHandler(recipe.NewService(st), scraper.New(logger), sync.NewHub(logger), logger)
}

func TestRecipeCreateValidation(t *testing.T) {
	h := newRecipeHandler(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			"valid",
			`{"title":"Pasta","ingredients":[{"name":"flour","quantity":2,"unit":"cup"}],"instructions":"Boil."}`,
			http.StatusCreated,
		},
		{
			"invalid JSON",
			`{`,
			http.StatusBadRequest,
		},
		{
			"missing title",
			`{"ingredients":[{"name":"flour","quantity":2,"unit":"cup"}],"instructions":"Boil."}`,
			http.StatusBadRequest,
		},
		{
			"blank title",
			`{"title":"  ","ingredients":[{"name":"flour","quantity":2,"unit":"cup"}],"instructions":"Boil."}`,
			http.StatusBadRequest,
		},
		{
			"empty ingredients",
			`{"title":"Pasta","ingredients":[],"instructions":"Boil."}`,
			http.StatusBadRequest,
		},
		{
			"zero quantity",
			`{"title":"Pasta","ingredients":[{"name":"flour","quantity":0,"unit":"cup"}],"instructions":"Boil."}`,
			http.StatusBadRequest,
		},
		{
			"missing unit",
			`{"title":"Pasta","ingredients":[{"name":"flour","quantity":2,"unit":""}],"instructions":"Boil."}`,
			http.StatusBadRequest,
		},
		{
			"blank instructions",
			`{"title":"Pasta","ingredients":[{"name":"flour","quantity":2,"unit":"cup"}],"instructions":" "}`,
			http.StatusBadRequest,
		},
		{
			"bad source url",
			`{"title":"Pasta","ingredients":[{"name":"flour","quantity":2,"unit":"cup"}],"instructions":"Boil.","source_url":"not a url"}`,
			http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/recipes", strings.NewReader(tt.body))
			req = req.WithContext(auth.WithUser(req.Context(), "u1"))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestRecipeUpdateNeedsAField(t *testing.T) {
	h := newRecipeHandler(t)

	req := httptest.NewRequest("PUT", "/api/recipes/r1", strings.NewReader(`{}`))
	req = req.WithContext(auth.WithUser(req.Context(), "u1"))
	req.SetPathValue("id", "r1")
	rec := httptest.NewRecorder()
	h.Update(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRecipeScrapeBadURL(t *testing.T) {
	h := newRecipeHandler(t)

	req := httptest.NewRequest("POST", "/api/recipes/scrape", strings.NewReader(`{"url":"ftp://example.com"}`))
	req = req.WithContext(auth.WithUser(req.Context(), "u1"))
	rec := httptest.NewRecorder()
	h.Scrape(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
