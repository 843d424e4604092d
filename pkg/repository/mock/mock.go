// Package mock provides in-memory repository implementations for handler
// tests. Error fields let tests inject failures per operation.
package mock

import (
	"context"
	"sort"
	"strings"

	"github.com/vertiport/evtolhub/pkg/models"
)

type Mocks struct {
	Users     *UserRepo
	Admins    *AdminRepo
	Companies *CompanyRepo
	Products  *ProductRepo
	Jobs      *JobRepo
	Sessions  *SessionRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Users:     &UserRepo{},
		Admins:    &AdminRepo{},
		Companies: &CompanyRepo{},
		Products:  &ProductRepo{},
		Jobs:      &JobRepo{},
		Sessions:  &SessionRepo{Stored: map[string]*models.Session{}},
	}
}

type UserRepo struct {
	Stored    []models.User
	CreateErr error
	nextID    int64
}

func (m *UserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *u
	stored.ID = m.nextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *UserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			u := m.Stored[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for i := range m.Stored {
		if m.Stored[i].Username == username {
			u := m.Stored[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range m.Stored {
		if m.Stored[i].Email == email {
			u := m.Stored[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *UserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), m.Stored...), nil
}

func (m *UserRepo) UpdateUser(ctx context.Context, u *models.User) error {
	for i := range m.Stored {
		if m.Stored[i].ID == u.ID {
			m.Stored[i] = *u
		}
	}
	return nil
}

func (m *UserRepo) DeleteUser(ctx context.Context, id int64) error {
	out := m.Stored[:0]
	for _, u := range m.Stored {
		if u.ID != id {
			out = append(out, u)
		}
	}
	m.Stored = out
	return nil
}

type AdminRepo struct {
	Stored    []models.AdminUser
	CreateErr error
	nextID    int64
}

func (m *AdminRepo) CreateAdmin(ctx context.Context, a *models.AdminUser) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *a
	stored.ID = m.nextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *AdminRepo) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	for i := range m.Stored {
		if m.Stored[i].Username == username {
			a := m.Stored[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *AdminRepo) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	return append([]models.AdminUser(nil), m.Stored...), nil
}

func (m *AdminRepo) CountAdmins(ctx context.Context) (int64, error) {
	return int64(len(m.Stored)), nil
}

func (m *AdminRepo) UpdateAdmin(ctx context.Context, a *models.AdminUser) error {
	for i := range m.Stored {
		if m.Stored[i].ID == a.ID {
			m.Stored[i] = *a
		}
	}
	return nil
}

func (m *AdminRepo) DeleteAdmin(ctx context.Context, id int64) error {
	out := m.Stored[:0]
	for _, a := range m.Stored {
		if a.ID != id {
			out = append(out, a)
		}
	}
	m.Stored = out
	return nil
}

type CompanyRepo struct {
	Stored    []models.Company
	CreateErr error
	SearchErr error
	nextID    int64
}

func (m *CompanyRepo) CreateCompany(ctx context.Context, c *models.Company) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *c
	stored.ID = m.nextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *CompanyRepo) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			c := m.Stored[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *CompanyRepo) GetCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	for i := range m.Stored {
		if m.Stored[i].Name == name {
			c := m.Stored[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *CompanyRepo) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return append([]models.Company(nil), m.Stored...), nil
}

func (m *CompanyRepo) SearchCompanies(ctx context.Context, query string) ([]models.Company, error) {
	if m.SearchErr != nil {
		return nil, m.SearchErr
	}
	q := strings.ToLower(query)
	var out []models.Company
	for _, c := range m.Stored {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Country), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *CompanyRepo) CountCompanies(ctx context.Context) (int64, error) {
	return int64(len(m.Stored)), nil
}

func (m *CompanyRepo) UpdateCompany(ctx context.Context, c *models.Company) error {
	for i := range m.Stored {
		if m.Stored[i].ID == c.ID {
			m.Stored[i] = *c
		}
	}
	return nil
}

func (m *CompanyRepo) DeleteCompany(ctx context.Context, id int64) error {
	out := m.Stored[:0]
	for _, c := range m.Stored {
		if c.ID != id {
			out = append(out, c)
		}
	}
	m.Stored = out
	return nil
}

type ProductRepo struct {
	Stored    []models.Product
	CreateErr error
	nextID    int64
}

func (m *ProductRepo) CreateProduct(ctx context.Context, p *models.Product) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *p
	stored.ID = m.nextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *ProductRepo) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			p := m.Stored[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *ProductRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), m.Stored...), nil
}

func (m *ProductRepo) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(m.Stored)), nil
}

func (m *ProductRepo) UpdateProduct(ctx context.Context, p *models.Product) error {
	for i := range m.Stored {
		if m.Stored[i].ID == p.ID {
			m.Stored[i] = *p
		}
	}
	return nil
}

func (m *ProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	out := m.Stored[:0]
	for _, p := range m.Stored {
		if p.ID != id {
			out = append(out, p)
		}
	}
	m.Stored = out
	return nil
}

type JobRepo struct {
	Stored    []models.Job
	CreateErr error
	ListErr   error
	nextID    int64
}

func (m *JobRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.nextID++
	stored := *j
	stored.ID = m.nextID
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *JobRepo) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	for i := range m.Stored {
		if m.Stored[i].ID == id {
			j := m.Stored[i]
			return &j, nil
		}
	}
	return nil, nil
}

func (m *JobRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := append([]models.Job(nil), m.Stored...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (m *JobRepo) CountJobs(ctx context.Context) (int64, error) {
	return int64(len(m.Stored)), nil
}

func (m *JobRepo) UpdateJob(ctx context.Context, j *models.Job) error {
	for i := range m.Stored {
		if m.Stored[i].ID == j.ID {
			m.Stored[i] = *j
		}
	}
	return nil
}

func (m *JobRepo) DeleteJob(ctx context.Context, id int64) error {
	out := m.Stored[:0]
	for _, j := range m.Stored {
		if j.ID != id {
			out = append(out, j)
		}
	}
	m.Stored = out
	return nil
}

type SessionRepo struct {
	Stored    map[string]*models.Session
	CreateErr error
}

func (m *SessionRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	stored := *s
	m.Stored[s.Token] = &stored
	return nil
}

func (m *SessionRepo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	s, ok := m.Stored[token]
	if !ok {
		return nil, nil
	}
	out := *s
	return &out, nil
}

func (m *SessionRepo) UpdateSession(ctx context.Context, s *models.Session) error {
	stored := *s
	m.Stored[s.Token] = &stored
	return nil
}

func (m *SessionRepo) DeleteSession(ctx context.Context, token string) error {
	delete(m.Stored, token)
	return nil
}
