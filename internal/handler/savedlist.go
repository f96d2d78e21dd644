package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bursteinalan/fooder/internal/auth"
	"github.com/bursteinalan/fooder/internal/grocery"
	"github.com/bursteinalan/fooder/internal/model"
	"github.com/bursteinalan/fooder/internal/sync"
)

type SavedListHandler struct {
	svc    *grocery.SavedLists
	hub    *sync.Hub
	logger *slog.Logger
}

func NewSavedListHandler(svc *grocery.SavedLists, hub *sync.Hub, logger *slog.Logger) *SavedListHandler {
	return &SavedListHandler{svc: svc, hub: hub, logger: logger}
}

func validItemInput(in grocery.ItemInput) bool {
	return strings.TrimSpace(in.Name) != "" && in.Quantity > 0 && strings.TrimSpace(in.Unit) != ""
}

func (h *SavedListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string              `json:"name"`
		Items     []grocery.ItemInput `json:"items"`
		RecipeIDs []string            `json:"recipe_ids"`
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
	for _, item := range req.Items {
		if !validItemInput(item) {
			writeError(w, http.StatusBadRequest, "each item needs a name, a positive quantity, and a unit")
			return
		}
	}

	userID := auth.UserID(r.Context())
	list, err := h.svc.Create(userID, req.Name, req.Items, req.RecipeIDs)
	if err != nil {
		h.logger.Error("create saved list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create list")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("saved_list", "created", list.ID, nil))
	writeJSON(w, http.StatusCreated, list)
}

func (h *SavedListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.List(auth.UserID(r.Context()))
	if err != nil {
		h.logger.Error("list saved lists", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list saved lists")
		return
	}
	if lists == nil {
		lists = []model.SavedGroceryList{}
	}
	writeJSON(w, http.StatusOK, lists)
}

func (h *SavedListHandler) Get(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Get(auth.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.logger.Error("get saved list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get list")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *SavedListHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
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

	userID := auth.UserID(r.Context())
	list, err := h.svc.Rename(userID, r.PathValue("id"), req.Name)
	if err != nil {
		h.logger.Error("rename saved list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to rename list")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("saved_list", "updated", list.ID, nil))
	writeJSON(w, http.StatusOK, list)
}

func (h *SavedListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := r.PathValue("id")

	deleted, err := h.svc.Delete(userID, id)
	if err != nil {
		h.logger.Error("delete saved list", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete list")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("saved_list", "deleted", id, nil))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *SavedListHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	listID := r.PathValue("id")
	itemID := r.PathValue("itemID")

	list, err := h.svc.ToggleChecked(userID, listID, itemID)
	if err != nil {
		h.logger.Error("toggle item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to toggle item")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "list or item not found")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("saved_list", "updated", listID, map[string]any{"item_id": itemID}))
	writeJSON(w, http.StatusOK, list)
}

func (h *SavedListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var in grocery.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !validItemInput(in) {
		writeError(w, http.StatusBadRequest, "item needs a name, a positive quantity, and a unit")
		return
	}

	userID := auth.UserID(r.Context())
	listID := r.PathValue("id")

	list, err := h.svc.AddItem(userID, listID, in)
	if err != nil {
		h.logger.Error("add item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add item")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "list not found")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("saved_list", "updated", listID, nil))
	writeJSON(w, http.StatusOK, list)
}

func (h *SavedListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	listID := r.PathValue("id")
	itemID := r.PathValue("itemID")

	list, err := h.svc.RemoveItem(userID, listID, itemID)
	if err != nil {
		h.logger.Error("remove item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to remove item")
		return
	}
	if list == nil {
		writeError(w, http.StatusNotFound, "list or item not found")
		return
	}

	h.hub.Broadcast(userID, sync.NewMessage("saved_list", "updated", listID, map[string]any{"item_id": itemID}))
	writeJSON(w, http.StatusOK, list)
}
