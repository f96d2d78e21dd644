package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bursteinalan/fooder/internal/auth"
	"github.com/bursteinalan/fooder/internal/model"
	"github.com/bursteinalan/fooder/internal/recipe"
	"github.com/bursteinalan/fooder/internal/scraper"
	"github.com/bursteinalan/fooder/internal/sync"
)

type RecipeHandler struct {
	svc     *recipe.Service
	scraper *scraper.Service
	hub     *sync.Hub
	logger  *slog.Logger
}

func NewRecipeHandler(svc *recipe.Service, sc *scraper.Service, hub *sync.Hub, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, scraper: sc, hub: hub, logger: logger}
}

// validateInput checks a recipe payload. For updates, required is false
// and only the provided fields are validated, but at least one must be
// present.
func validateInput(w http.ResponseWriter, in *recipe.Input, required bool) bool {
	if required {
		if in.Title == nil || in.Ingredients == nil || in.Instructions == nil {
			writeError(w, http.StatusBadRequest, "title, ingredients, and instructions are required")
			return false
		}
	} else if in.Title == nil && in.Ingredients == nil && in.Instructions == nil && in.SourceURL == nil {
		writeError(w, http.StatusBadRequest, "at least one field is required")
		return false
	}

	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		if trimmed == "" {
			writeError(w, http.StatusBadRequest, "title must not be empty")
			return false
		}
		in.Title = &trimmed
	}
	if in.Ingredients != nil {
		if len(*in.Ingredients) == 0 {
			writeError(w, http.StatusBadRequest, "ingredients must not be empty")
			return false
		}
		for _, ing := range *in.Ingredients {
			if !validIngredient(ing) {
				writeError(w, http.StatusBadRequest, "each ingredient needs a name, a positive quantity, and a unit")
				return false
			}
		}
	}
	if in.Instructions != nil && strings.TrimSpace(*in.Instructions) == "" {
		writeError(w, http.StatusBadRequest, "instructions must not be empty")
		return false
	}
	if in.SourceURL != nil && *in.SourceURL != "" && !validURL(*in.SourceURL) {
		writeError(w, http.StatusBadRequest, "source_url must be a valid http(s) URL")
		return false
	}
	return true
}

func validIngredient(ing model.Ingredient) bool {
	return strings.TrimSpace(ing.Name) != "" && ing.Quantity > 0 && strings.TrimSpace(ing.Unit) != ""
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in recipe.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validateInput(w, &in, true) {
		return
	}

	userID := auth.UserID(r.Context())
	created, err := h.svc.Create(userID, in)
	if err != nil {
		h.logger.Error("create recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create recipe")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("recipe", "created", created.ID, nil))
	writeJSON(w, http.StatusCreated, created)
}

func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.svc.List(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	got, err := h.svc.Get(auth.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.logger.Error("get recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get recipe")
		return
	}
	if got == nil {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}
	writeJSON(w, http.StatusOK, got)
}

func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in recipe.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validateInput(w, &in, false) {
		return
	}

	userID := auth.UserID(r.Context())
	updated, err := h.svc.Update(userID, r.PathValue("id"), in)
	if err != nil {
		h.logger.Error("update recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update recipe")
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("recipe", "updated", updated.ID, nil))
	writeJSON(w, http.StatusOK, updated)
}

func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := r.PathValue("id")

	deleted, err := h.svc.Delete(userID, id)
	if err != nil {
		h.logger.Error("delete recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete recipe")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("recipe", "deleted", id, nil))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Scrape extracts a recipe draft from an external page. Nothing is
// saved; the client reviews the draft and posts it back via Create.
func (h *RecipeHandler) Scrape(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validURL(req.URL) {
		writeError(w, http.StatusBadRequest, "url must be a valid http(s) URL")
		return
	}

	result := h.scraper.Scrape(r.Context(), req.URL)
	if result == nil {
		writeError(w, http.StatusNotFound, "no recipe found at that URL")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// IngredientNames serves the autocomplete list of every ingredient name
// the user has used across recipes.
func (h *RecipeHandler) IngredientNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.UniqueIngredientNames(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("ingredient names", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list ingredient names")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}
