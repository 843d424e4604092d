package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	dbfs "github.com/vertiport/evtolhub/db"
	"github.com/vertiport/evtolhub/internal/db"
	"github.com/vertiport/evtolhub/pkg/models"
)

func newTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()

	ctx := context.Background()
	conn, err := db.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(ctx, conn, dbfs.Migrations); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return New(conn)
}

func TestUserCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.CreateUser(ctx, &models.User{
		Username:     "amy",
		Email:        "amy@example.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	got, err := repo.GetUserByUsername(ctx, "amy")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got == nil || got.ID != id || got.Email != "amy@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}

	got, err = repo.GetUserByEmail(ctx, "amy@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got == nil || got.Username != "amy" {
		t.Fatalf("unexpected user by email: %+v", got)
	}

	missing, err := repo.GetUserByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing user, got %+v", missing)
	}

	got.Email = "new@example.com"
	if err := repo.UpdateUser(ctx, got); err != nil {
		t.Fatalf("update user: %v", err)
	}
	updated, err := repo.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := repo.DeleteUser(ctx, id); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	gone, err := repo.GetUserByID(ctx, id)
	if err != nil {
		t.Fatalf("get deleted: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected user deleted, got %+v", gone)
	}
}

func TestUserUniqueConstraints(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.CreateUser(ctx, &models.User{Username: "amy", Email: "amy@example.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := repo.CreateUser(ctx, &models.User{Username: "amy", Email: "other@example.com", PasswordHash: "h"}); err == nil {
		t.Fatalf("expected duplicate username to fail")
	}
	if _, err := repo.CreateUser(ctx, &models.User{Username: "bob", Email: "amy@example.com", PasswordHash: "h"}); err == nil {
		t.Fatalf("expected duplicate email to fail")
	}
}

func TestAdminCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	count, err := repo.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("count admins: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d", count)
	}

	id, err := repo.CreateAdmin(ctx, &models.AdminUser{Username: "admin", PasswordHash: "h", IsAdmin: true})
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}

	got, err := repo.GetAdminByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if got == nil || got.ID != id || !got.IsAdmin {
		t.Fatalf("unexpected admin: %+v", got)
	}

	admins, err := repo.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("expected one admin, got %d", len(admins))
	}

	got.PasswordHash = "h2"
	if err := repo.UpdateAdmin(ctx, got); err != nil {
		t.Fatalf("update admin: %v", err)
	}
	if err := repo.DeleteAdmin(ctx, id); err != nil {
		t.Fatalf("delete admin: %v", err)
	}
	count, err = repo.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("recount admins: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected admin deleted, count=%d", count)
	}
}

func TestCompanySearch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	seed := []models.Company{
		{Name: "亿航智能", Country: "中国", Description: "EH216-S自动驾驶飞行器", CertificationStatus: "已获中国民航局认证"},
		{Name: "Joby Aviation", Country: "美国", Description: "S4五座倾转旋翼机", CertificationStatus: "FAA认证进行中"},
		{Name: "Volocopter", Country: "德国", Description: "VoloCity城市空中出租车", CertificationStatus: "EASA认证进行中"},
	}
	for i := range seed {
		if _, err := repo.CreateCompany(ctx, &seed[i]); err != nil {
			t.Fatalf("seed company: %v", err)
		}
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"ByName", "亿航", []string{"亿航智能"}},
		{"ByCountry", "德国", []string{"Volocopter"}},
		{"ByDescription", "倾转旋翼", []string{"Joby Aviation"}},
		{"CaseInsensitive", "joby", []string{"Joby Aviation"}},
		{"NoMatch", "boeing", nil},
		{"EmptyMatchesAll", "", []string{"亿航智能", "Joby Aviation", "Volocopter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.SearchCompanies(ctx, tt.query)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("search %q: got %d companies, want %d", tt.query, len(got), len(tt.want))
			}
			names := make(map[string]bool, len(got))
			for _, c := range got {
				names[c.Name] = true
			}
			for _, want := range tt.want {
				if !names[want] {
					t.Fatalf("search %q: missing %q in %v", tt.query, want, got)
				}
			}
		})
	}
}

func TestCompanyByName(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.CreateCompany(ctx, &models.Company{Name: "Lilium", Country: "德国"})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}

	got, err := repo.GetCompanyByName(ctx, "Lilium")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if got == nil || got.ID != id {
		t.Fatalf("unexpected company: %+v", got)
	}

	missing, err := repo.GetCompanyByName(ctx, "Archer")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing company, got %+v", missing)
	}
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	companyID, err := repo.CreateCompany(ctx, &models.Company{Name: "Joby Aviation", Country: "美国"})
	if err != nil {
		t.Fatalf("create company: %v", err)
	}

	id, err := repo.CreateProduct(ctx, &models.Product{
		CompanyID:         companyID,
		ModelName:         "S4",
		MaxRange:          241,
		MaxSpeed:          322,
		PassengerCapacity: 4,
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}

	got, err := repo.GetProductByID(ctx, id)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got == nil || got.CompanyID != companyID || got.ModelName != "S4" {
		t.Fatalf("unexpected product: %+v", got)
	}

	got.MaxRange = 250
	if err := repo.UpdateProduct(ctx, got); err != nil {
		t.Fatalf("update product: %v", err)
	}

	products, err := repo.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 1 || products[0].MaxRange != 250 {
		t.Fatalf("unexpected products: %+v", products)
	}

	if err := repo.DeleteProduct(ctx, id); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	count, err := repo.CountProducts(ctx)
	if err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected product deleted, count=%d", count)
	}
}

func TestJobListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Now().UTC().UnixMilli()
	for _, j := range []models.Job{
		{Title: "older", Company: "a", CreatedAt: base - 2000},
		{Title: "newest", Company: "b", CreatedAt: base},
		{Title: "middle", Company: "c", CreatedAt: base - 1000},
	} {
		job := j
		if _, err := repo.CreateJob(ctx, &job); err != nil {
			t.Fatalf("create job: %v", err)
		}
	}

	jobs, err := repo.ListJobs(ctx)
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	want := []string{"newest", "middle", "older"}
	for i, title := range want {
		if jobs[i].Title != title {
			t.Fatalf("position %d: got %q want %q", i, jobs[i].Title, title)
		}
	}
}

func TestJobCreateDefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	before := time.Now().UTC().UnixMilli()
	id, err := repo.CreateJob(ctx, &models.Job{Title: "pilot", Company: "Joby Aviation"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	got, err := repo.GetJobByID(ctx, id)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.CreatedAt < before {
		t.Fatalf("expected created_at defaulted, got %d < %d", got.CreatedAt, before)
	}
}

func TestJobPosterReference(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	userID, err := repo.CreateUser(ctx, &models.User{Username: "amy", Email: "amy@example.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	id, err := repo.CreateJob(ctx, &models.Job{Title: "pilot", Company: "c", UserID: &userID})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	got, err := repo.GetJobByID(ctx, id)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.UserID == nil || *got.UserID != userID {
		t.Fatalf("expected poster %d, got %+v", userID, got.UserID)
	}

	anon, err := repo.CreateJob(ctx, &models.Job{Title: "mech", Company: "c"})
	if err != nil {
		t.Fatalf("create anonymous job: %v", err)
	}
	gotAnon, err := repo.GetJobByID(ctx, anon)
	if err != nil {
		t.Fatalf("get anonymous job: %v", err)
	}
	if gotAnon.UserID != nil {
		t.Fatalf("expected nil poster, got %v", *gotAnon.UserID)
	}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	expires := time.Now().UTC().Add(time.Hour).UnixMilli()
	session := &models.Session{Token: "tok-1", ExpiresAt: expires}
	if err := repo.CreateSession(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := repo.GetSession(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil || got.UserID != nil || got.IsAdmin {
		t.Fatalf("unexpected session: %+v", got)
	}

	uid := int64(7)
	got.UserID = &uid
	got.IsAdmin = true
	if err := repo.UpdateSession(ctx, got); err != nil {
		t.Fatalf("update session: %v", err)
	}

	got, err = repo.GetSession(ctx, "tok-1")
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	if got.UserID == nil || *got.UserID != uid || !got.IsAdmin {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := repo.DeleteSession(ctx, "tok-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	gone, err := repo.GetSession(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get deleted session: %v", err)
	}
	if gone != nil {
		t.Fatalf("expected session deleted, got %+v", gone)
	}
}
