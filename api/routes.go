package api

import (
	"fmt"

	"github.com/gorilla/mux"

	"github.com/vertiport/evtolhub/internal/config"
	"github.com/vertiport/evtolhub/internal/db"
	"github.com/vertiport/evtolhub/internal/repository/sqlite"
	"github.com/vertiport/evtolhub/pkg/repository"
	"github.com/vertiport/evtolhub/web"
)

// Repos bundles the repository interfaces the router needs.
type Repos struct {
	Users     repository.UserRepo
	Admins    repository.AdminRepo
	Companies repository.CompanyRepo
	Products  repository.ProductRepo
	Jobs      repository.JobRepo
	Sessions  repository.SessionRepo
}

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) (*mux.Router, error) {
	repo := sqlite.New(database)

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("setup renderer: %w", err)
	}

	repos := Repos{
		Users:     repo,
		Admins:    repo,
		Companies: repo,
		Products:  repo,
		Jobs:      repo,
		Sessions:  repo,
	}

	return NewRouter(cfg, version, buildTime, repos, renderer), nil
}

// NewRouter wires middleware, handlers and routes.
func NewRouter(cfg *config.Config, version, buildTime string, repos Repos, renderer *web.Renderer) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(SessionMiddleware(repos.Sessions, repos.Users))

	// Create handlers
	systemHandler := &SystemHandler{}
	pagesHandler := NewPagesHandler(renderer)
	searchHandler := NewSearchHandler(repos.Companies)
	authHandler := NewAuthHandler(repos.Users, repos.Sessions, renderer, cfg.SessionTTL)
	jobsHandler := NewJobsHandler(repos.Jobs, renderer)
	adminHandler := NewAdminHandler(repos.Admins, repos.Users, repos.Companies, repos.Products, repos.Jobs, repos.Sessions, renderer, cfg.SessionTTL)

	// Public endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	r.HandleFunc("/", pagesHandler.Home).Methods("GET")
	r.HandleFunc("/search", searchHandler.Search).Methods("GET")
	r.HandleFunc("/register", authHandler.RegisterPage).Methods("GET")
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.LoginPage).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET")
	r.HandleFunc("/jobs", jobsHandler.ListPage).Methods("GET")
	r.HandleFunc("/jobs/post", jobsHandler.PostPage).Methods("GET")
	r.HandleFunc("/jobs/post", jobsHandler.PostJob).Methods("POST")

	// Admin login stays outside the gate
	r.HandleFunc("/admin/login", adminHandler.LoginPage).Methods("GET")
	r.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")

	// Gated back-office
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(RequireAdmin)
	admin.HandleFunc("", adminHandler.Index).Methods("GET")
	admin.HandleFunc("/", adminHandler.Index).Methods("GET")

	admin.HandleFunc("/users", adminHandler.UsersPage).Methods("GET")
	admin.HandleFunc("/users", adminHandler.CreateUser).Methods("POST")
	admin.HandleFunc("/users/{id:[0-9]+}", adminHandler.UpdateUser).Methods("POST")
	admin.HandleFunc("/users/{id:[0-9]+}/delete", adminHandler.DeleteUser).Methods("POST")

	admin.HandleFunc("/admin-users", adminHandler.AdminUsersPage).Methods("GET")
	admin.HandleFunc("/admin-users", adminHandler.CreateAdminUser).Methods("POST")
	admin.HandleFunc("/admin-users/{id:[0-9]+}", adminHandler.UpdateAdminUser).Methods("POST")
	admin.HandleFunc("/admin-users/{id:[0-9]+}/delete", adminHandler.DeleteAdminUser).Methods("POST")

	admin.HandleFunc("/companies", adminHandler.CompaniesPage).Methods("GET")
	admin.HandleFunc("/companies", adminHandler.CreateCompany).Methods("POST")
	admin.HandleFunc("/companies/{id:[0-9]+}", adminHandler.UpdateCompany).Methods("POST")
	admin.HandleFunc("/companies/{id:[0-9]+}/delete", adminHandler.DeleteCompany).Methods("POST")

	admin.HandleFunc("/products", adminHandler.ProductsPage).Methods("GET")
	admin.HandleFunc("/products", adminHandler.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id:[0-9]+}", adminHandler.UpdateProduct).Methods("POST")
	admin.HandleFunc("/products/{id:[0-9]+}/delete", adminHandler.DeleteProduct).Methods("POST")

	admin.HandleFunc("/jobs", adminHandler.JobsPage).Methods("GET")
	admin.HandleFunc("/jobs", adminHandler.CreateJob).Methods("POST")
	admin.HandleFunc("/jobs/{id:[0-9]+}", adminHandler.UpdateJob).Methods("POST")
	admin.HandleFunc("/jobs/{id:[0-9]+}/delete", adminHandler.DeleteJob).Methods("POST")

	return r
}
