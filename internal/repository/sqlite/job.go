package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vertiport/evtolhub/pkg/models"
)

func (r *SQLiteRepo) CreateJob(ctx context.Context, j *models.Job) (int64, error) {
	if j == nil {
		return 0, fmt.Errorf("job is nil")
	}

	createdAt := j.CreatedAt
	if createdAt == 0 {
		createdAt = now()
	}

	var userID any
	if j.UserID != nil {
		userID = *j.UserID
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO jobs (title, company, location, description, requirements, salary_range, contact_email, created_at, user_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.Title, j.Company, j.Location, j.Description, j.Requirements, j.SalaryRange, j.ContactEmail, createdAt, userID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetJobByID(ctx context.Context, id int64) (*models.Job, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, title, company, location, description, requirements, salary_range, contact_email, created_at, user_id FROM jobs WHERE id = ?`, id)
	j, err := scanJob(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	return j, nil
}

// ListJobs returns every job, newest first. Ties on created_at break on the
// higher id so the order stays strict.
func (r *SQLiteRepo) ListJobs(ctx context.Context) ([]models.Job, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, title, company, location, description, requirements, salary_range, contact_email, created_at, user_id FROM jobs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(1) FROM jobs`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SQLiteRepo) UpdateJob(ctx context.Context, j *models.Job) error {
	if j == nil {
		return fmt.Errorf("job is nil")
	}

	var userID any
	if j.UserID != nil {
		userID = *j.UserID
	}

	_, err := r.conn.Exec(ctx, `UPDATE jobs SET title = ?, company = ?, location = ?, description = ?, requirements = ?, salary_range = ?, contact_email = ?, user_id = ? WHERE id = ?`,
		j.Title, j.Company, j.Location, j.Description, j.Requirements, j.SalaryRange, j.ContactEmail, userID, j.ID)
	return err
}

func (r *SQLiteRepo) DeleteJob(ctx context.Context, id int64) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	return err
}

func scanJob(scan func(dest ...any) error) (*models.Job, error) {
	var j models.Job
	var userID sql.NullInt64
	if err := scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Description, &j.Requirements, &j.SalaryRange, &j.ContactEmail, &j.CreatedAt, &userID); err != nil {
		return nil, err
	}
	if userID.Valid {
		j.UserID = &userID.Int64
	}
	return &j, nil
}
