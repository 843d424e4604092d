package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vertiport/evtolhub/pkg/models"
)

func (r *SQLiteRepo) CreateSession(ctx context.Context, s *models.Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	var userID any
	if s.UserID != nil {
		userID = *s.UserID
	}

	_, err := r.conn.Exec(ctx, `INSERT INTO sessions (token, user_id, is_admin, expires_at) VALUES (?, ?, ?, ?)`, s.Token, userID, boolToInt(s.IsAdmin), s.ExpiresAt)
	return err
}

func (r *SQLiteRepo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	row := r.conn.QueryRow(ctx, `SELECT token, user_id, is_admin, expires_at FROM sessions WHERE token = ?`, token)
	var s models.Session
	var userID sql.NullInt64
	var isAdmin int
	if err := row.Scan(&s.Token, &userID, &isAdmin, &s.ExpiresAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	if userID.Valid {
		s.UserID = &userID.Int64
	}
	s.IsAdmin = isAdmin != 0

	return &s, nil
}

func (r *SQLiteRepo) UpdateSession(ctx context.Context, s *models.Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	var userID any
	if s.UserID != nil {
		userID = *s.UserID
	}

	_, err := r.conn.Exec(ctx, `UPDATE sessions SET user_id = ?, is_admin = ?, expires_at = ? WHERE token = ?`, userID, boolToInt(s.IsAdmin), s.ExpiresAt, s.Token)
	return err
}

func (r *SQLiteRepo) DeleteSession(ctx context.Context, token string) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	return err
}
