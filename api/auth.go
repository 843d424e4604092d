package api

import (
	"net/http"
	"strings"
	"time"

	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/vertiport/evtolhub/pkg/models"
	"github.com/vertiport/evtolhub/pkg/repository"
	"github.com/vertiport/evtolhub/web"
)

type AuthHandler struct {
	users      repository.UserRepo
	sessions   repository.SessionRepo
	renderer   *web.Renderer
	sessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(users repository.UserRepo, sessions repository.SessionRepo, renderer *web.Renderer, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, renderer: renderer, sessionTTL: sessionTTL}
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, h.renderer, "register.html", map[string]any{"User": CurrentUser(r.Context())})
}

// Register creates a new user account from the submitted form. The username
// uniqueness check runs before the email check, so a request breaking both
// reports the username conflict.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if username == "" || email == "" || password == "" {
		writeJSONError(w, "missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	existing, err := h.users.GetUserByUsername(ctx, username)
	if err != nil {
		writeJSONError(w, "registration failed", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		writeJSONError(w, "username already exists", http.StatusBadRequest)
		return
	}

	existing, err = h.users.GetUserByEmail(ctx, email)
	if err != nil {
		writeJSONError(w, "registration failed", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		writeJSONError(w, "email already registered", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		writeJSONError(w, "registration failed", http.StatusInternalServerError)
		return
	}

	user := models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if _, err := h.users.CreateUser(ctx, &user); err != nil {
		logger.Error("create user", slog.Any("err", err))
		writeJSONError(w, "registration failed", http.StatusInternalServerError)
		return
	}

	writeJSONMessage(w, "registration successful", http.StatusOK)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, h.renderer, "login.html", map[string]any{"User": CurrentUser(r.Context())})
}

// Login verifies the username/password pair and binds the user to the
// session. Unknown username and wrong password are deliberately
// indistinguishable in the response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	ctx := r.Context()

	user, err := h.users.GetUserByUsername(ctx, username)
	if err != nil {
		writeJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		writeJSONError(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	session, err := ensureSession(w, r, h.sessions, h.sessionTTL)
	if err != nil {
		logger.Error("create session", slog.Any("err", err))
		writeJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}

	session.UserID = &user.ID
	if err := h.sessions.UpdateSession(ctx, session); err != nil {
		logger.Error("bind session user", slog.Any("err", err))
		writeJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}

	writeJSONMessage(w, "login successful", http.StatusOK)
}

// Logout removes the user binding from the session and redirects home. The
// session row itself survives: an admin flag on the same session stays valid.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := CurrentSession(r.Context()); session != nil && session.UserID != nil {
		session.UserID = nil
		if err := h.sessions.UpdateSession(r.Context(), session); err != nil {
			logger.Error("clear session user", slog.Any("err", err))
		}
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
