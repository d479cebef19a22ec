package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/matejg/invtrack/internal/label"
	"github.com/matejg/invtrack/internal/model"
	"github.com/matejg/invtrack/internal/store"
)

// AddItemPage handles GET /add-item.
func (s *Server) AddItemPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	s.Templates.Render(w, "add_item.html", &PageData{Title: "Add item", User: claims})
}

// AddItemSubmit handles POST /add-item. On success it redirects to the
// print-label page for the newly generated code.
func (s *Server) AddItemSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	name := r.FormValue("name")
	serial := r.FormValue("serial")
	location := r.FormValue("location")

	if name == "" || serial == "" || location == "" {
		s.Templates.Render(w, "add_item.html", &PageData{
			Title: "Add item",
			User:  claims,
			Error: "Name, serial and location are required.",
		})
		return
	}

	item, err := store.CreateItem(r.Context(), s.DB, name, serial, location, "")
	if err != nil {
		slog.Error("failed to create item", "error", err)
		s.Templates.Render(w, "add_item.html", &PageData{
			Title: "Add item",
			User:  claims,
			Error: "Failed to create item.",
		})
		return
	}

	slog.Info("item created", "user", claims.Username, "item", item.Name, "code", item.Code)
	http.Redirect(w, r, "/print-label/"+item.Code, http.StatusSeeOther)
}

// PrintLabelPage handles GET /print-label/{code}.
func (s *Server) PrintLabelPage(w http.ResponseWriter, r *http.Request) {
	itemCode := r.PathValue("code")

	item, err := store.GetItemByCode(r.Context(), s.DB, itemCode)
	if err != nil {
		slog.Error("failed to get item by code", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}

	barcode, err := label.RenderBase64(item.Code)
	if err != nil {
		slog.Error("failed to render barcode", "code", item.Code, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "print_label.html", &struct {
		PageData
		Item    *model.Item
		Barcode string
	}{
		PageData: PageData{Title: "Print label"},
		Item:     item,
		Barcode:  barcode,
	})
}

// outgoingPageData is the template data for the outgoing items page.
type outgoingPageData struct {
	PageData
	OutgoingItems []model.Item
	AllItems      []model.Item
	Search        string
}

// OutgoingItemsPage handles GET /outgoing-items.
func (s *Server) OutgoingItemsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	outgoing, err := store.ListItems(r.Context(), s.DB, store.ItemFilter{Status: model.ItemStatusOut})
	if err != nil {
		slog.Error("failed to list outgoing items", "error", err)
	}
	all, err := store.ListItems(r.Context(), s.DB, store.ItemFilter{})
	if err != nil {
		slog.Error("failed to list items", "error", err)
	}

	s.Templates.Render(w, "outgoing_items.html", &outgoingPageData{
		PageData:      PageData{Title: "Outgoing items", User: claims},
		OutgoingItems: outgoing,
		AllItems:      all,
	})
}

// MarkOutgoingSubmit handles POST /outgoing-items.
func (s *Server) MarkOutgoingSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	id, err := strconv.ParseInt(r.FormValue("item_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	err = store.MarkOutgoing(r.Context(), s.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to mark item outgoing", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("item marked outgoing", "user", claims.Username, "item_id", id)
	http.Redirect(w, r, "/outgoing-items", http.StatusSeeOther)
}

// SearchOutgoingSubmit handles POST /search-outgoing-items.
func (s *Server) SearchOutgoingSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	search := r.FormValue("outgoing_search")

	outgoing, err := store.ListItems(r.Context(), s.DB, store.ItemFilter{
		Status: model.ItemStatusOut,
		Search: search,
	})
	if err != nil {
		slog.Error("failed to search outgoing items", "error", err)
	}

	s.Templates.Render(w, "outgoing_items.html", &outgoingPageData{
		PageData:      PageData{Title: "Outgoing items", User: claims},
		OutgoingItems: outgoing,
		Search:        search,
	})
}
