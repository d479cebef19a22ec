package web

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/matejg/invtrack/internal/auth"
	"github.com/matejg/invtrack/internal/model"
	"github.com/matejg/invtrack/internal/store"
)

// RegisterPage handles GET /register.
func (s *Server) RegisterPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "register.html", &PageData{Title: "Register"})
}

// RegisterSubmit handles POST /register.
func (s *Server) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := model.ValidateUsername(username); err != nil {
		s.Templates.Render(w, "register.html", &PageData{Title: "Register", Error: err.Error()})
		return
	}
	if err := model.ValidatePassword(password); err != nil {
		s.Templates.Render(w, "register.html", &PageData{Title: "Register", Error: err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		s.Templates.Render(w, "register.html", &PageData{Title: "Register", Error: "Registration failed."})
		return
	}

	user, err := store.CreateUser(r.Context(), s.DB, username, string(hash))
	if errors.Is(err, store.ErrUsernameTaken) {
		s.Templates.Render(w, "register.html", &PageData{Title: "Register", Error: "Username already taken"})
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		s.Templates.Render(w, "register.html", &PageData{Title: "Register", Error: "Registration failed."})
		return
	}

	slog.Info("user registered", "user", user.Username)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Login"})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Login",
			Error: "Enter a username and password.",
		})
		return
	}

	// Unknown username and wrong password produce the same response so
	// the two cases stay indistinguishable to the caller.
	user, err := store.GetUserByUsername(r.Context(), s.DB, username)
	if err != nil || user == nil {
		if err != nil {
			slog.Error("failed to look up user", "error", err)
		}
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Login",
			Error: "Invalid credentials",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login failed", "username", username, "remote", r.RemoteAddr)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Login",
			Error: "Invalid credentials",
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Username)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Login",
			Error: "Login failed.",
		})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.TokenExpiry.Seconds()),
	})

	slog.Info("user logged in", "user", user.Username)
	http.Redirect(w, r, "/add-item", http.StatusSeeOther)
}

// Logout handles GET /logout. If a valid session cookie is present its token
// is revoked; the cookie is cleared either way.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.JWTSecret, cookie.Value); err == nil && claims.ID != "" {
			if err := store.RevokeToken(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
				slog.Error("failed to revoke token", "error", err)
			}
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
