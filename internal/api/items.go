package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/matejg/invtrack/internal/label"
	"github.com/matejg/invtrack/internal/model"
	"github.com/matejg/invtrack/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Name     string `json:"name"`
	Serial   string `json:"serial"`
	Location string `json:"location"`
	Code     string `json:"code,omitempty"`
}

// List handles GET /api/items. Supports status, search and limit query
// parameters.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ItemFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			jsonError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	items, err := store.ListItems(r.Context(), h.DB, filter)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Serial == "" || req.Location == "" {
		jsonError(w, http.StatusBadRequest, "name, serial and location required")
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, req.Name, req.Serial, req.Location, req.Code)
	if errors.Is(err, store.ErrDuplicateCode) {
		jsonError(w, http.StatusConflict, "item code already exists")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{code}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItemByCode(r.Context(), h.DB, r.PathValue("code"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// GetLabel handles GET /api/items/{code}/label. Returns the barcode as a
// raw PNG.
func (h *ItemsHandler) GetLabel(w http.ResponseWriter, r *http.Request) {
	item, err := store.GetItemByCode(r.Context(), h.DB, r.PathValue("code"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	data, err := label.Render(item.Code)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to render label")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

// MarkOutgoing handles POST /api/items/{id}/outgoing.
func (h *ItemsHandler) MarkOutgoing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	err = store.MarkOutgoing(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to mark item outgoing")
		return
	}

	item, _ := store.GetItem(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, item)
}
