package seed

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vertiport/evtolhub/pkg/repository/mock"
)

func TestRunPopulatesEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	mocks := mock.NewMocks()

	if err := Run(ctx, mocks.Admins, mocks.Companies, mocks.Products, mocks.Jobs); err != nil {
		t.Fatalf("seed run: %v", err)
	}

	if len(mocks.Admins.Stored) != 1 {
		t.Fatalf("expected one admin, got %d", len(mocks.Admins.Stored))
	}
	if len(mocks.Companies.Stored) == 0 {
		t.Fatalf("expected companies seeded")
	}
	if len(mocks.Jobs.Stored) == 0 {
		t.Fatalf("expected jobs seeded")
	}
	if len(mocks.Products.Stored) == 0 {
		t.Fatalf("expected products seeded")
	}
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mocks := mock.NewMocks()

	if err := Run(ctx, mocks.Admins, mocks.Companies, mocks.Products, mocks.Jobs); err != nil {
		t.Fatalf("first run: %v", err)
	}
	admins := len(mocks.Admins.Stored)
	companies := len(mocks.Companies.Stored)
	products := len(mocks.Products.Stored)
	jobs := len(mocks.Jobs.Stored)

	if err := Run(ctx, mocks.Admins, mocks.Companies, mocks.Products, mocks.Jobs); err != nil {
		t.Fatalf("second run: %v", err)
	}

	if len(mocks.Admins.Stored) != admins ||
		len(mocks.Companies.Stored) != companies ||
		len(mocks.Products.Stored) != products ||
		len(mocks.Jobs.Stored) != jobs {
		t.Fatalf("second run changed row counts: admins %d->%d companies %d->%d products %d->%d jobs %d->%d",
			admins, len(mocks.Admins.Stored),
			companies, len(mocks.Companies.Stored),
			products, len(mocks.Products.Stored),
			jobs, len(mocks.Jobs.Stored))
	}
}

func TestEnsureAdminCredentials(t *testing.T) {
	ctx := context.Background()
	mocks := mock.NewMocks()

	if err := EnsureAdmin(ctx, mocks.Admins); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	admin := mocks.Admins.Stored[0]
	if admin.Username != DefaultAdminUsername {
		t.Fatalf("expected username %q, got %q", DefaultAdminUsername, admin.Username)
	}
	if !admin.IsAdmin {
		t.Fatalf("expected admin flag set")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(DefaultAdminPassword)); err != nil {
		t.Fatalf("password hash does not match default password: %v", err)
	}
}

func TestProductsResolveCompanyByName(t *testing.T) {
	ctx := context.Background()
	mocks := mock.NewMocks()

	if err := Companies(ctx, mocks.Companies); err != nil {
		t.Fatalf("seed companies: %v", err)
	}
	if err := Products(ctx, mocks.Products, mocks.Companies); err != nil {
		t.Fatalf("seed products: %v", err)
	}

	byID := map[int64]string{}
	for _, c := range mocks.Companies.Stored {
		byID[c.ID] = c.Name
	}
	for _, p := range mocks.Products.Stored {
		if _, ok := byID[p.CompanyID]; !ok {
			t.Fatalf("product %q references company id %d with no row", p.ModelName, p.CompanyID)
		}
	}
}

func TestProductsFailOnUnknownCompany(t *testing.T) {
	ctx := context.Background()
	mocks := mock.NewMocks()

	// companies deliberately not seeded
	if err := Products(ctx, mocks.Products, mocks.Companies); err == nil {
		t.Fatalf("expected error when product companies are missing")
	}
}
