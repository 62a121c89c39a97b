package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/DevRamona/Course-Management-Platform/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides read-only queries over the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves one user by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `
		SELECT id, email, first_name, last_name, role, is_active
		FROM users
		WHERE id = $1;
    `

	var u model.User
	err := r.db.Master.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// ListActiveByRole retrieves every active user holding the given role.
func (r *Repository) ListActiveByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	query := `
		SELECT id, email, first_name, last_name, role, is_active
		FROM users
		WHERE role = $1 AND is_active = TRUE
		ORDER BY id;
    `

	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}
