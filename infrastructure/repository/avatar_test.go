package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alikitto/ad-dash/internal/domain"
)

func TestAvatarRepository_ListAvatars(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, account_id, image_url, created_at FROM account_avatars ORDER BY account_id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "image_url", "created_at"}).
			AddRow(1, "111", "https://cdn.example.com/1.png", time.Now()))

	avatars, err := NewAvatarRepository(db).ListAvatars(context.Background())
	require.NoError(t, err)
	require.Len(t, avatars, 1)
	assert.Equal(t, "111", avatars[0].AccountID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvatarRepository_SaveAvatar(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, avatar *domain.AvatarSetting, err error)
	}{
		{
			name: "upserts by account",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (account_id) DO UPDATE SET image_url = EXCLUDED.image_url")).
					WithArgs("111", "https://cdn.example.com/1.png").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))
			},
			validate: func(t *testing.T, avatar *domain.AvatarSetting, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, avatar.ID)
			},
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO account_avatars")).
					WillReturnError(errors.New("boom"))
			},
			validate: func(t *testing.T, avatar *domain.AvatarSetting, err error) {
				assert.EqualError(t, err, "boom")
				assert.Nil(t, avatar)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			avatar, err := NewAvatarRepository(db).SaveAvatar(context.Background(), &domain.AvatarSetting{
				AccountID: "111",
				ImageURL:  "https://cdn.example.com/1.png",
			})
			tt.validate(t, avatar, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAvatarRepository_DeleteAvatar(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM account_avatars WHERE id = $1")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := NewAvatarRepository(db).DeleteAvatar(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
