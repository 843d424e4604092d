package api

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"github.com/vertiport/evtolhub/pkg/models"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func (h *AdminHandler) adminError(w http.ResponseWriter, op string, err error) {
	logger.Error(op, slog.Any("err", err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// ── users ──

func (h *AdminHandler) UsersPage(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.adminError(w, "list users", err)
		return
	}
	renderHTML(w, h.renderer, "admin_users.html", map[string]any{"Users": users})
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r.FormValue("password")), bcrypt.DefaultCost)
	if err != nil {
		h.adminError(w, "hash password", err)
		return
	}

	u := models.User{
		Username:     r.FormValue("username"),
		Email:        r.FormValue("email"),
		PasswordHash: string(hash),
	}
	if _, err := h.users.CreateUser(r.Context(), &u); err != nil {
		h.adminError(w, "create user", err)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	u, err := h.users.GetUserByID(ctx, id)
	if err != nil {
		h.adminError(w, "load user", err)
		return
	}
	if u == nil {
		http.NotFound(w, r)
		return
	}

	u.Username = r.FormValue("username")
	u.Email = r.FormValue("email")
	if err := h.users.UpdateUser(ctx, u); err != nil {
		h.adminError(w, "update user", err)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		h.adminError(w, "delete user", err)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// ── admin users ──

func (h *AdminHandler) AdminUsersPage(w http.ResponseWriter, r *http.Request) {
	admins, err := h.admins.ListAdmins(r.Context())
	if err != nil {
		h.adminError(w, "list admins", err)
		return
	}
	renderHTML(w, h.renderer, "admin_admin_users.html", map[string]any{"Admins": admins})
}

func (h *AdminHandler) CreateAdminUser(w http.ResponseWriter, r *http.Request) {
	hash, err := bcrypt.GenerateFromPassword([]byte(r.FormValue("password")), bcrypt.DefaultCost)
	if err != nil {
		h.adminError(w, "hash password", err)
		return
	}

	a := models.AdminUser{
		Username:     r.FormValue("username"),
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if _, err := h.admins.CreateAdmin(r.Context(), &a); err != nil {
		h.adminError(w, "create admin", err)
		return
	}
	http.Redirect(w, r, "/admin/admin-users", http.StatusSeeOther)
}

func (h *AdminHandler) UpdateAdminUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	admins, err := h.admins.ListAdmins(ctx)
	if err != nil {
		h.adminError(w, "load admins", err)
		return
	}

	var a *models.AdminUser
	for i := range admins {
		if admins[i].ID == id {
			a = &admins[i]
			break
		}
	}
	if a == nil {
		http.NotFound(w, r)
		return
	}

	a.Username = r.FormValue("username")
	if pw := r.FormValue("password"); pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			h.adminError(w, "hash password", err)
			return
		}
		a.PasswordHash = string(hash)
	}
	if err := h.admins.UpdateAdmin(ctx, a); err != nil {
		h.adminError(w, "update admin", err)
		return
	}
	http.Redirect(w, r, "/admin/admin-users", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteAdminUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.admins.DeleteAdmin(r.Context(), id); err != nil {
		h.adminError(w, "delete admin", err)
		return
	}
	http.Redirect(w, r, "/admin/admin-users", http.StatusSeeOther)
}

// ── companies ──

func (h *AdminHandler) CompaniesPage(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.ListCompanies(r.Context())
	if err != nil {
		h.adminError(w, "list companies", err)
		return
	}
	renderHTML(w, h.renderer, "admin_companies.html", map[string]any{"Companies": companies})
}

func companyFromForm(r *http.Request) models.Company {
	return models.Company{
		Name:                r.FormValue("name"),
		Country:             r.FormValue("country"),
		Description:         r.FormValue("description"),
		CertificationStatus: r.FormValue("certification_status"),
	}
}

func (h *AdminHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	c := companyFromForm(r)
	if _, err := h.companies.CreateCompany(r.Context(), &c); err != nil {
		h.adminError(w, "create company", err)
		return
	}
	http.Redirect(w, r, "/admin/companies", http.StatusSeeOther)
}

func (h *AdminHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	c := companyFromForm(r)
	c.ID = id
	if err := h.companies.UpdateCompany(r.Context(), &c); err != nil {
		h.adminError(w, "update company", err)
		return
	}
	http.Redirect(w, r, "/admin/companies", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.companies.DeleteCompany(r.Context(), id); err != nil {
		h.adminError(w, "delete company", err)
		return
	}
	http.Redirect(w, r, "/admin/companies", http.StatusSeeOther)
}

// ── products ──

func (h *AdminHandler) ProductsPage(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		h.adminError(w, "list products", err)
		return
	}
	renderHTML(w, h.renderer, "admin_products.html", map[string]any{"Products": products})
}

func productFromForm(r *http.Request) models.Product {
	companyID, _ := strconv.ParseInt(r.FormValue("company_id"), 10, 64)
	maxRange, _ := strconv.ParseFloat(r.FormValue("max_range"), 64)
	maxSpeed, _ := strconv.ParseFloat(r.FormValue("max_speed"), 64)
	capacity, _ := strconv.Atoi(r.FormValue("passenger_capacity"))
	return models.Product{
		CompanyID:         companyID,
		ModelName:         r.FormValue("model_name"),
		MaxRange:          maxRange,
		MaxSpeed:          maxSpeed,
		PassengerCapacity: capacity,
	}
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	p := productFromForm(r)
	if _, err := h.products.CreateProduct(r.Context(), &p); err != nil {
		h.adminError(w, "create product", err)
		return
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	p := productFromForm(r)
	p.ID = id
	if err := h.products.UpdateProduct(r.Context(), &p); err != nil {
		h.adminError(w, "update product", err)
		return
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		h.adminError(w, "delete product", err)
		return
	}
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}

// ── jobs ──

func (h *AdminHandler) JobsPage(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.jobs.ListJobs(r.Context())
	if err != nil {
		h.adminError(w, "list jobs", err)
		return
	}
	renderHTML(w, h.renderer, "admin_jobs.html", map[string]any{"Jobs": jobs})
}

func jobFromForm(r *http.Request) models.Job {
	return models.Job{
		Title:        r.FormValue("title"),
		Company:      r.FormValue("company"),
		Location:     r.FormValue("location"),
		Description:  r.FormValue("description"),
		Requirements: r.FormValue("requirements"),
		SalaryRange:  r.FormValue("salary_range"),
		ContactEmail: r.FormValue("contact_email"),
	}
}

func (h *AdminHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	j := jobFromForm(r)
	if _, err := h.jobs.CreateJob(r.Context(), &j); err != nil {
		h.adminError(w, "create job", err)
		return
	}
	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}

func (h *AdminHandler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	existing, err := h.jobs.GetJobByID(ctx, id)
	if err != nil {
		h.adminError(w, "load job", err)
		return
	}
	if existing == nil {
		http.NotFound(w, r)
		return
	}

	j := jobFromForm(r)
	j.ID = id
	j.UserID = existing.UserID
	j.CreatedAt = existing.CreatedAt
	if err := h.jobs.UpdateJob(ctx, &j); err != nil {
		h.adminError(w, "update job", err)
		return
	}
	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.jobs.DeleteJob(r.Context(), id); err != nil {
		h.adminError(w, "delete job", err)
		return
	}
	http.Redirect(w, r, "/admin/jobs", http.StatusSeeOther)
}
