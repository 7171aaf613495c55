package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alikitto/ad-dash/internal/domain"
)

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,lastname,email,password_hash,active,role_id)")).
		WithArgs("Ana", "Silva", "ana@example.com", "hash", false, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	user, err := NewUserRepository(db).CreateUser(context.Background(), &domain.User{
		Name:         "Ana",
		Lastname:     "Silva",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		RoleID:       3,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				now := time.Now()
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ana@example.com").
					WillReturnRows(sqlmock.NewRows(userColumns).
						AddRow(5, "Ana", "Silva", "ana@example.com", "hash", true, 1, nil, now, now))
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, 5, user.ID)
				assert.True(t, user.Active)
			},
		},
		{
			name: "unknown email",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
					WithArgs("ana@example.com").
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.NoError(t, err)
				assert.Nil(t, user)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			user, err := NewUserRepository(db).GetUserByEmail(context.Background(), "ana@example.com")
			tt.validate(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserByID_SkipsDeleted(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE deleted = $1 AND id = $2")).
		WithArgs(false, 5).
		WillReturnRows(sqlmock.NewRows(userColumns))

	user, err := NewUserRepository(db).GetUserByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateUser(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET active = $1, updated_at = NOW(), name = $2 WHERE id = $3")).
		WithArgs(true, "Ana", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewUserRepository(db).UpdateUser(context.Background(), &domain.User{ID: 5, Name: "Ana", Active: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUser(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE deleted = $1 ORDER BY name ASC")).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "lastname", "email", "active", "role_id", "avatar_url", "created_at", "updated_at"}).
			AddRow(1, "Ana", "Silva", "ana@example.com", true, 1, nil, now, now).
			AddRow(2, "Bruno", "Costa", "bruno@example.com", false, 3, nil, now, now))

	users, err := NewUserRepository(db).ListUser(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Empty(t, users[0].PasswordHash)
	assert.Equal(t, "Bruno", users[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
