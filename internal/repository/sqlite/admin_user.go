package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vertiport/evtolhub/pkg/models"
)

func (r *SQLiteRepo) CreateAdmin(ctx context.Context, a *models.AdminUser) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("admin user is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO admin_users (username, password_hash, is_admin) VALUES (?, ?, ?)`, a.Username, a.PasswordHash, boolToInt(a.IsAdmin))
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetAdminByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, username, password_hash, is_admin FROM admin_users WHERE username = ?`, username)
	var a models.AdminUser
	var pw sql.NullString
	var isAdmin int
	if err := row.Scan(&a.ID, &a.Username, &pw, &isAdmin); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if pw.Valid {
		a.PasswordHash = pw.String
	}
	a.IsAdmin = isAdmin != 0

	return &a, nil
}

func (r *SQLiteRepo) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, username, password_hash, is_admin FROM admin_users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AdminUser
	for rows.Next() {
		var a models.AdminUser
		var pw sql.NullString
		var isAdmin int
		if err := rows.Scan(&a.ID, &a.Username, &pw, &isAdmin); err != nil {
			return nil, err
		}
		if pw.Valid {
			a.PasswordHash = pw.String
		}
		a.IsAdmin = isAdmin != 0
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM admin_users`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepo) UpdateAdmin(ctx context.Context, a *models.AdminUser) error {
	if a == nil {
		return fmt.Errorf("admin user is nil")
	}

	_, err := r.conn.Exec(ctx, `UPDATE admin_users SET username = ?, password_hash = ?, is_admin = ? WHERE id = ?`, a.Username, a.PasswordHash, boolToInt(a.IsAdmin), a.ID)
	return err
}

func (r *SQLiteRepo) DeleteAdmin(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM admin_users WHERE id = ?`, id)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
