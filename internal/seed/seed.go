// Package seed populates an empty database with the portal's sample catalog
// and the default administrator account. Every step is guarded by a row
// count: a table that already holds data is left untouched, so re-running
// the seed is a no-op.
package seed

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/vertiport/evtolhub/pkg/models"
	"github.com/vertiport/evtolhub/pkg/repository"
)

const (
	// DefaultAdminUsername is the account created on first run.
	DefaultAdminUsername = "admin"
	// DefaultAdminPassword is the initial password; change it via the
	// back-office after the first login.
	DefaultAdminPassword = "admin123"
)

// Run seeds the default admin, companies, jobs and products.
func Run(ctx context.Context, admins repository.AdminRepo, companies repository.CompanyRepo, products repository.ProductRepo, jobs repository.JobRepo) error {
	if err := EnsureAdmin(ctx, admins); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := Companies(ctx, companies); err != nil {
		return fmt.Errorf("seed companies: %w", err)
	}
	if err := Jobs(ctx, jobs); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}
	if err := Products(ctx, products, companies); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

// EnsureAdmin creates the default admin account when no admin exists.
func EnsureAdmin(ctx context.Context, admins repository.AdminRepo) error {
	existing, err := admins.GetAdminByUsername(ctx, DefaultAdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = admins.CreateAdmin(ctx, &models.AdminUser{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	return err
}

// Companies inserts the sample company catalog when the table is empty.
func Companies(ctx context.Context, companies repository.CompanyRepo) error {
	count, err := companies.CountCompanies(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range companySeed {
		if _, err := companies.CreateCompany(ctx, &companySeed[i]); err != nil {
			return fmt.Errorf("insert company %q: %w", companySeed[i].Name, err)
		}
	}
	return nil
}

// Jobs inserts the sample job postings when the table is empty. The company
// field is free text that happens to match seeded company names; it is not a
// foreign key.
func Jobs(ctx context.Context, jobs repository.JobRepo) error {
	count, err := jobs.CountJobs(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range jobSeed {
		if _, err := jobs.CreateJob(ctx, &jobSeed[i]); err != nil {
			return fmt.Errorf("insert job %q: %w", jobSeed[i].Title, err)
		}
	}
	return nil
}

// Products inserts the sample products when the table is empty. Each product
// names its company; the id is resolved at insert time so the association
// does not depend on company insertion order.
func Products(ctx context.Context, products repository.ProductRepo, companies repository.CompanyRepo) error {
	count, err := products.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range productSeed {
		company, err := companies.GetCompanyByName(ctx, p.CompanyName)
		if err != nil {
			return err
		}
		if company == nil {
			return fmt.Errorf("product %q references unknown company %q", p.ModelName, p.CompanyName)
		}

		product := models.Product{
			CompanyID:         company.ID,
			ModelName:         p.ModelName,
			MaxRange:          p.MaxRange,
			MaxSpeed:          p.MaxSpeed,
			PassengerCapacity: p.PassengerCapacity,
		}
		if _, err := products.CreateProduct(ctx, &product); err != nil {
			return fmt.Errorf("insert product %q: %w", p.ModelName, err)
		}
	}
	return nil
}
