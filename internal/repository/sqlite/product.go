package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vertiport/evtolhub/pkg/models"
)

func (r *SQLiteRepo) CreateProduct(ctx context.Context, p *models.Product) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("product is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO products (company_id, model_name, max_range, max_speed, passenger_capacity) VALUES (?, ?, ?, ?, ?)`, p.CompanyID, p.ModelName, p.MaxRange, p.MaxSpeed, p.PassengerCapacity)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, company_id, model_name, max_range, max_speed, passenger_capacity FROM products WHERE id = ?`, id)
	var p models.Product
	if err := row.Scan(&p.ID, &p.CompanyID, &p.ModelName, &p.MaxRange, &p.MaxSpeed, &p.PassengerCapacity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &p, nil
}

func (r *SQLiteRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, company_id, model_name, max_range, max_speed, passenger_capacity FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.ModelName, &p.MaxRange, &p.MaxSpeed, &p.PassengerCapacity); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM products`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepo) UpdateProduct(ctx context.Context, p *models.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE products SET company_id = ?, model_name = ?, max_range = ?, max_speed = ?, passenger_capacity = ? WHERE id = ?`, p.CompanyID, p.ModelName, p.MaxRange, p.MaxSpeed, p.PassengerCapacity, p.ID)
	return err
}

func (r *SQLiteRepo) DeleteProduct(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM products WHERE id = ?`, id)
	return err
}
