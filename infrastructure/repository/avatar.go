package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/alikitto/ad-dash/infrastructure/database/postgres"
	"github.com/alikitto/ad-dash/internal/domain"
)

const avatarsTable = "account_avatars"

type AvatarRepository interface {
	ListAvatars(ctx context.Context) ([]*domain.AvatarSetting, error)
	SaveAvatar(ctx context.Context, avatar *domain.AvatarSetting) (*domain.AvatarSetting, error)
	DeleteAvatar(ctx context.Context, id int) (bool, error)
}

type avatarRepository struct {
	db postgres.Queryer
}

func NewAvatarRepository(db postgres.Queryer) AvatarRepository {
	return &avatarRepository{
		db: db,
	}
}

func (r *avatarRepository) ListAvatars(ctx context.Context) ([]*domain.AvatarSetting, error) {
	avatarsSQL, avatarsArgs, err := squirrel.
		Select("id", "account_id", "image_url", "created_at").
		From(avatarsTable).
		OrderBy("account_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, avatarsSQL, avatarsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	avatars := make([]*domain.AvatarSetting, 0)
	for rows.Next() {
		var avatar domain.AvatarSetting
		if err := rows.Scan(&avatar.ID, &avatar.AccountID, &avatar.ImageURL, &avatar.CreatedAt); err != nil {
			return nil, err
		}
		avatars = append(avatars, &avatar)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return avatars, nil
}

// SaveAvatar grava ou substitui o avatar de uma conta
func (r *avatarRepository) SaveAvatar(ctx context.Context, avatar *domain.AvatarSetting) (*domain.AvatarSetting, error) {
	upsertSQL, upsertArgs, err := squirrel.
		Insert(avatarsTable).
		Columns("account_id", "image_url").
		Values(avatar.AccountID, avatar.ImageURL).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET image_url = EXCLUDED.image_url RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.db.QueryRowContext(ctx, upsertSQL, upsertArgs...).Scan(&avatar.ID, &avatar.CreatedAt); err != nil {
		return nil, err
	}

	return avatar, nil
}

func (r *avatarRepository) DeleteAvatar(ctx context.Context, id int) (bool, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(avatarsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.db.ExecContext(ctx, deleteSQL, deleteArgs...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
