package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/matejg/invtrack/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /register", s.RegisterPage)
	mux.HandleFunc("POST /register", s.RegisterSubmit)
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("GET /logout", s.Logout)
	mux.HandleFunc("GET /print-label/{code}", s.PrintLabelPage)

	// Authenticated routes.
	mux.Handle("GET /{$}", http.RedirectHandler("/add-item", http.StatusSeeOther))

	mux.Handle("GET /add-item", cookieAuth(http.HandlerFunc(s.AddItemPage)))
	mux.Handle("POST /add-item", cookieAuth(http.HandlerFunc(s.AddItemSubmit)))

	mux.Handle("GET /outgoing-items", cookieAuth(http.HandlerFunc(s.OutgoingItemsPage)))
	mux.Handle("POST /outgoing-items", cookieAuth(http.HandlerFunc(s.MarkOutgoingSubmit)))
	mux.Handle("POST /search-outgoing-items", cookieAuth(http.HandlerFunc(s.SearchOutgoingSubmit)))

	mux.Handle("GET /reservation", cookieAuth(http.HandlerFunc(s.ReservationPage)))
	mux.Handle("POST /reservation", cookieAuth(http.HandlerFunc(s.ReservationSubmit)))
	mux.Handle("POST /reservation/{id}/issue", cookieAuth(http.HandlerFunc(s.ReservationIssueSubmit)))

	return mux, nil
}
