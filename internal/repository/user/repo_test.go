package user

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/DevRamona/Course-Management-Platform/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "role", "is_active"}).
			AddRow(int64(7), "jane@example.com", "Jane", "Doe", "facilitator", true))

	u, err := repo.GetByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.FullName())
	assert.Equal(t, model.RoleFacilitator, u.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByRole(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "email", "first_name", "last_name", "role", "is_active"}).
		AddRow(int64(3), "max@example.com", "Max", "Payne", "manager", true).
		AddRow(int64(4), "ada@example.com", "Ada", "Lovelace", "manager", true)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(model.RoleManager).
		WillReturnRows(rows)

	users, err := repo.ListActiveByRole(context.Background(), model.RoleManager)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, int64(3), users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
