package api

import (
	"net/http"
	"strings"
	"time"

	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/vertiport/evtolhub/pkg/repository"
	"github.com/vertiport/evtolhub/web"
)

// AdminHandler serves the back-office: the admin login form and the
// hand-written CRUD views over every table.
type AdminHandler struct {
	admins     repository.AdminRepo
	users      repository.UserRepo
	companies  repository.CompanyRepo
	products   repository.ProductRepo
	jobs       repository.JobRepo
	sessions   repository.SessionRepo
	renderer   *web.Renderer
	sessionTTL time.Duration
}

func NewAdminHandler(
	admins repository.AdminRepo,
	users repository.UserRepo,
	companies repository.CompanyRepo,
	products repository.ProductRepo,
	jobs repository.JobRepo,
	sessions repository.SessionRepo,
	renderer *web.Renderer,
	sessionTTL time.Duration,
) *AdminHandler {
	return &AdminHandler{
		admins:     admins,
		users:      users,
		companies:  companies,
		products:   products,
		jobs:       jobs,
		sessions:   sessions,
		renderer:   renderer,
		sessionTTL: sessionTTL,
	}
}

func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, h.renderer, "admin_login.html", map[string]any{"Error": ""})
}

// Login authenticates against the admin_users table. Success marks the
// session as admin and redirects into the back-office; failure re-renders the
// form with a generic error.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	ctx := r.Context()

	admin, err := h.admins.GetAdminByUsername(ctx, username)
	if err != nil {
		logger.Error("admin lookup", slog.Any("err", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		renderHTML(w, h.renderer, "admin_login.html", map[string]any{"Error": "用户名或密码错误"})
		return
	}

	session, err := ensureSession(w, r, h.sessions, h.sessionTTL)
	if err != nil {
		logger.Error("create session", slog.Any("err", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	session.IsAdmin = true
	if err := h.sessions.UpdateSession(ctx, session); err != nil {
		logger.Error("mark session admin", slog.Any("err", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/", http.StatusSeeOther)
}

func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, h.renderer, "admin_index.html", nil)
}
