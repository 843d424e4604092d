package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vertiport/evtolhub/pkg/models"
)

func (r *SQLiteRepo) CreateCompany(ctx context.Context, c *models.Company) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("company is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO companies (name, country, description, certification_status) VALUES (?, ?, ?, ?)`, c.Name, c.Country, c.Description, c.CertificationStatus)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	return r.scanCompany(r.conn.QueryRow(ctx, `SELECT id, name, country, description, certification_status FROM companies WHERE id = ?`, id))
}

func (r *SQLiteRepo) GetCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	return r.scanCompany(r.conn.QueryRow(ctx, `SELECT id, name, country, description, certification_status FROM companies WHERE name = ?`, name))
}

func (r *SQLiteRepo) ListCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, country, description, certification_status FROM companies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collectCompanies(rows)
}

// SearchCompanies performs a case-insensitive substring match against name,
// country and description.
func (r *SQLiteRepo) SearchCompanies(ctx context.Context, query string) ([]models.Company, error) {
	pattern := "%" + query + "%"
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, country, description, certification_status FROM companies WHERE name LIKE ? OR country LIKE ? OR description LIKE ? ORDER BY id`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	return collectCompanies(rows)
}

func (r *SQLiteRepo) CountCompanies(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM companies`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepo) UpdateCompany(ctx context.Context, c *models.Company) error {
	if c == nil {
		return fmt.Errorf("company is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE companies SET name = ?, country = ?, description = ?, certification_status = ? WHERE id = ?`, c.Name, c.Country, c.Description, c.CertificationStatus, c.ID)
	return err
}

func (r *SQLiteRepo) DeleteCompany(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM companies WHERE id = ?`, id)
	return err
}

func (r *SQLiteRepo) scanCompany(row *sql.Row) (*models.Company, error) {
	var c models.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Country, &c.Description, &c.CertificationStatus); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &c, nil
}

func collectCompanies(rows *sql.Rows) ([]models.Company, error) {
	defer rows.Close()

	var out []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Description, &c.CertificationStatus); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
