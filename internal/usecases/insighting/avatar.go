package insighting

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/repository"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
)

// Avatars é um mapa id canônico da conta -> url da imagem
type Avatars map[string]string

func (a Avatars) URL(accountID string) string {
	return a[domain.CanonicalAccountID(accountID)]
}

// For procura pelo id da conta e, sem resultado, pelo nome exibido
func (a Avatars) For(account domain.AdAccount) string {
	if url := a.URL(account.ID); url != "" {
		return url
	}
	if name := strings.TrimSpace(account.Name); name != "" {
		return a[name]
	}
	return ""
}

type AvatarResolver interface {
	Snapshot(ctx context.Context) Avatars
}

type avatarResolver struct {
	static Avatars
	repo   repository.AvatarRepository
}

// NewAvatarResolver junta os avatares do ACCOUNT_AVATARS com os salvos no banco.
// O banco tem precedência.
func NewAvatarResolver(cfg config.Avatars, repo repository.AvatarRepository) AvatarResolver {
	static := Avatars{}
	for id, url := range cfg.AvatarMap() {
		static[domain.CanonicalAccountID(id)] = url
	}

	return &avatarResolver{
		static: static,
		repo:   repo,
	}
}

func (r *avatarResolver) Snapshot(ctx context.Context) Avatars {
	avatars := make(Avatars, len(r.static))
	for id, url := range r.static {
		avatars[id] = url
	}

	if r.repo == nil {
		return avatars
	}

	stored, err := r.repo.ListAvatars(ctx)
	if err != nil {
		logrus.WithError(err).Warn("insights: failed to load stored avatars, using configured ones")
		return avatars
	}

	for _, avatar := range stored {
		if avatar == nil || avatar.ImageURL == "" {
			continue
		}
		avatars[domain.CanonicalAccountID(avatar.AccountID)] = avatar.ImageURL
	}

	return avatars
}
