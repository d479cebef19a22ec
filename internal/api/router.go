package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	reservationsHandler := &ReservationsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: register and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{code}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("GET /api/items/{code}/label", authMW(http.HandlerFunc(itemsHandler.GetLabel)))
	mux.Handle("POST /api/items/{id}/outgoing", authMW(http.HandlerFunc(itemsHandler.MarkOutgoing)))

	mux.Handle("GET /api/reservations", authMW(http.HandlerFunc(reservationsHandler.List)))
	mux.Handle("POST /api/reservations", authMW(http.HandlerFunc(reservationsHandler.Create)))
	mux.Handle("POST /api/reservations/{id}/issue", authMW(http.HandlerFunc(reservationsHandler.Issue)))

	return mux
}
