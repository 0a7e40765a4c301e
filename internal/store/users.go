package store

import (
	"context"
	"fmt"

	"github.com/inovacc/clientrec/internal/model"
)

const userColumns = `id, username, password_hash, is_admin, created_at`

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt); err != nil {
		return nil, err
	}

	return &u, nil
}

// InsertUser stores a user with an already hashed password.
func (s *Store) InsertUser(ctx context.Context, username, passwordHash string, isAdmin bool) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, is_admin, created_at) VALUES (?, ?, ?, ?)`,
		username, passwordHash, isAdmin, s.timestamp())
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", mapError(err))
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}

	s.log.Debug("user created", "user_id", id, "is_admin", isAdmin)

	return id, nil
}

// GetUserByUsername returns the user or ErrNotFound.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, mapError(err))
	}

	return u, nil
}

// GetUserByID returns the user or ErrNotFound.
func (s *Store) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, mapError(err))
	}

	return u, nil
}

// UpdatePasswordHash replaces the stored hash. It returns false when no user
// has that id.
func (s *Store) UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return false, fmt.Errorf("update password: %w", mapError(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update password: %w", err)
	}

	return n > 0, nil
}

// CountUsers returns the number of registered users.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", mapError(err))
	}

	return n, nil
}
