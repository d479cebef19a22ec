package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/matejg/invtrack/internal/model"
	"github.com/matejg/invtrack/internal/store"
)

// ReservationsHandler handles reservation endpoints.
type ReservationsHandler struct {
	DB *sql.DB
}

type createReservationRequest struct {
	PropertyCode string `json:"property_code"`
	Location     string `json:"location"`
	Reason       string `json:"reason"`
}

// List handles GET /api/reservations, optionally filtered by status.
func (h *ReservationsHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := store.ListReservations(r.Context(), h.DB, r.URL.Query().Get("status"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list reservations")
		return
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	jsonResponse(w, http.StatusOK, reservations)
}

// Create handles POST /api/reservations.
func (h *ReservationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.PropertyCode == "" || req.Location == "" || req.Reason == "" {
		jsonError(w, http.StatusBadRequest, "property_code, location and reason required")
		return
	}

	id, err := store.CreateReservation(r.Context(), h.DB, req.PropertyCode, req.Location, req.Reason)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create reservation")
		return
	}

	reservation, err := store.GetReservation(r.Context(), h.DB, id)
	if err != nil || reservation == nil {
		jsonError(w, http.StatusInternalServerError, "failed to load reservation")
		return
	}
	jsonResponse(w, http.StatusCreated, reservation)
}

// Issue handles POST /api/reservations/{id}/issue.
func (h *ReservationsHandler) Issue(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	err = store.IssueReservation(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "reservation not found or already issued")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to issue reservation")
		return
	}

	reservation, _ := store.GetReservation(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, reservation)
}
