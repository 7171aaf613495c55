package insighting

import (
	"context"

	"github.com/alikitto/ad-dash/internal/domain"
)

// Aggregator monta a visão de todos os ad sets de todas as contas
type Aggregator interface {
	Run(ctx context.Context, window domain.InsightWindow) ([]domain.AggregatedAdSetRecord, error)
}

// AdsDetailFetcher monta as linhas dos anúncios de um ad set
type AdsDetailFetcher interface {
	BuildAdRows(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.AdRecord, error)
}

// AdSetManager reúne as leituras e alterações de um único ad set
type AdSetManager interface {
	GetDailyStats(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.AdSetDailyStat, error)
	GetDetails(ctx context.Context, adsetID string) (*domain.AdSetDetails, error)
	ListActivities(ctx context.Context, adsetID string) ([]domain.AdSetActivity, error)
	UpdateStatus(ctx context.Context, entityID, status string) (map[string]any, error)
	UpdateBudget(ctx context.Context, adsetID string, update domain.BudgetUpdate) (map[string]any, error)
}

type Insighter interface {
	Aggregator
	AdsDetailFetcher
	AdSetManager
}
