package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bursteinalan/fooder/internal/auth"
	"github.com/bursteinalan/fooder/internal/grocery"
	"github.com/bursteinalan/fooder/internal/model"
)

type GroceryHandler struct {
	consolidator *grocery.Consolidator
	categorizer  *grocery.Categorizer
	logger       *slog.Logger
}

func NewGroceryHandler(cons *grocery.Consolidator, cat *grocery.Categorizer, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{consolidator: cons, categorizer: cat, logger: logger}
}

// Generate builds a consolidated shopping list from a set of recipe ids.
func (h *GroceryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecipeIDs []string `json:"recipe_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if len(req.RecipeIDs) == 0 {
		writeError(w, http.StatusBadRequest, "recipe_ids must not be empty")
		return
	}

	items, err := h.consolidator.Consolidate(auth.UserID(r.Context()), req.RecipeIDs)
	if err != nil {
		h.logger.Error("consolidate", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate grocery list")
		return
	}
	if items == nil {
		items = []model.ConsolidatedIngredient{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Categories returns the fixed category set in display order.
func (h *GroceryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, grocery.Categories)
}

// Uncategorized lists the user's ingredient names that currently fall
// through to "Other".
func (h *GroceryHandler) Uncategorized(w http.ResponseWriter, r *http.Request) {
	names, err := h.consolidator.Uncategorized(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("uncategorized", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list uncategorized ingredients")
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

// Category resolves the category for a single ingredient name given as
// the "name" query parameter.
func (h *GroceryHandler) Category(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	category, err := h.categorizer.Categorize(auth.UserID(r.Context()), name)
	if err != nil {
		h.logger.Error("categorize", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to categorize ingredient")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": name, "category": category})
}

// SetCategory records a per-user category override.
func (h *GroceryHandler) SetCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	err := h.categorizer.SetCategory(auth.UserID(r.Context()), req.Name, req.Category)
	switch {
	case errors.Is(err, grocery.ErrInvalidCategory):
		writeError(w, http.StatusBadRequest, "invalid category")
	case errors.Is(err, grocery.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case err != nil:
		h.logger.Error("set category", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to set category")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"name": req.Name, "category": req.Category})
	}
}
