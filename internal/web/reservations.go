package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/matejg/invtrack/internal/model"
	"github.com/matejg/invtrack/internal/store"
)

// ReservationPage handles GET /reservation.
func (s *Server) ReservationPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	reservations, err := store.ListReservations(r.Context(), s.DB, "")
	if err != nil {
		slog.Error("failed to list reservations", "error", err)
	}

	s.Templates.Render(w, "reservation.html", &struct {
		PageData
		Reservations []model.Reservation
	}{
		PageData:     PageData{Title: "Reservations", User: claims},
		Reservations: reservations,
	})
}

// ReservationSubmit handles POST /reservation.
func (s *Server) ReservationSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	propertyCode := r.FormValue("property_code")
	location := r.FormValue("location")
	reason := r.FormValue("reason")

	if propertyCode == "" || location == "" || reason == "" {
		reservations, _ := store.ListReservations(r.Context(), s.DB, "")
		s.Templates.Render(w, "reservation.html", &struct {
			PageData
			Reservations []model.Reservation
		}{
			PageData: PageData{
				Title: "Reservations",
				User:  claims,
				Error: "Property code, location and reason are required.",
			},
			Reservations: reservations,
		})
		return
	}

	id, err := store.CreateReservation(r.Context(), s.DB, propertyCode, location, reason)
	if err != nil {
		slog.Error("failed to create reservation", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("reservation created", "user", claims.Username, "reservation_id", id, "property_code", propertyCode)
	http.Redirect(w, r, "/reservation", http.StatusSeeOther)
}

// ReservationIssueSubmit handles POST /reservation/{id}/issue.
func (s *Server) ReservationIssueSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = store.IssueReservation(r.Context(), s.DB, id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "reservation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("failed to issue reservation", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("reservation issued", "user", claims.Username, "reservation_id", id)
	http.Redirect(w, r, "/reservation", http.StatusSeeOther)
}
