package insighting

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/internal/domain"
)

// Formato de data/hora usado pelo Graph API (ex.: 2025-07-01T10:00:00+0000)
const metaTimeLayout = "2006-01-02T15:04:05-0700"

// GetDailyStats devolve uma linha por dia com dados reais do Meta
func (s *Service) GetDailyStats(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.AdSetDailyStat, error) {
	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	rows, err := s.metaService.FetchAdSetDailyInsights(ctx, adsetID, window)
	if err != nil {
		return nil, err
	}

	stats := make([]domain.AdSetDailyStat, 0, len(rows))
	for _, row := range rows {
		spend := SafeNumber(row.Spend)
		leads := SumLeadActions(row.Actions, s.cfg.Meta.LeadActionType)

		stats = append(stats, domain.AdSetDailyStat{
			Date:        row.DateStart,
			Spent:       spend,
			Leads:       leads,
			Impressions: SafeInt(row.Impressions),
			Clicks:      SafeInt(row.Clicks),
			LinkClicks:  SafeInt(row.InlineLinkClicks),
			Frequency:   SafeNumber(row.Frequency),
			CPL:         DeriveCPL(spend, leads),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})

	return stats, nil
}

// GetDetails converte o orçamento de centavos para a moeda da conta
func (s *Service) GetDetails(ctx context.Context, adsetID string) (*domain.AdSetDetails, error) {
	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	settings, err := s.metaService.GetAdSetSettings(ctx, adsetID)
	if err != nil {
		return nil, err
	}

	details := &domain.AdSetDetails{
		ID:              settings.ID,
		AccountID:       settings.AccountID,
		Name:            settings.Name,
		Status:          settings.Status,
		DailyBudget:     SafeNumber(settings.DailyBudget) / 100,
		LifetimeBudget:  SafeNumber(settings.LifetimeBudget) / 100,
		BudgetRemaining: SafeNumber(settings.BudgetRemaining) / 100,
		StartTime:       settings.StartTime,
		EndTime:         settings.EndTime,
	}

	switch {
	case details.DailyBudget > 0:
		details.BudgetType = domain.BudgetTypeDaily
	case details.LifetimeBudget > 0:
		details.BudgetType = domain.BudgetTypeLifetime
	default:
		details.BudgetType = domain.BudgetTypeNone
	}

	return details, nil
}

// ListActivities devolve o histórico do mais recente para o mais antigo
func (s *Service) ListActivities(ctx context.Context, adsetID string) ([]domain.AdSetActivity, error) {
	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	activities, err := s.metaService.ListAdSetActivities(ctx, adsetID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return eventTime(activities[i].EventTime).After(eventTime(activities[j].EventTime))
	})

	return activities, nil
}

func (s *Service) UpdateStatus(ctx context.Context, entityID, status string) (map[string]any, error) {
	if strings.TrimSpace(entityID) == "" {
		return nil, newValidationError("id", "is required")
	}

	if status != domain.StatusActive && status != domain.StatusPaused {
		return nil, newValidationError("status", "must be 'ACTIVE' or 'PAUSED'")
	}

	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	resp, err := s.metaService.UpdateStatus(ctx, entityID, status)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity_id": entityID,
			"status":    status,
		}).Error("insights: failed to update status")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"entity_id": entityID,
		"status":    status,
	}).Info("insights: status updated")

	return resp, nil
}

func (s *Service) UpdateBudget(ctx context.Context, adsetID string, update domain.BudgetUpdate) (map[string]any, error) {
	if strings.TrimSpace(adsetID) == "" {
		return nil, newValidationError("id", "is required")
	}

	if update.IsEmpty() {
		return nil, newValidationError("", "at least one of daily_budget, lifetime_budget or end_time is required")
	}

	if update.DailyBudget != nil && update.LifetimeBudget != nil {
		return nil, newValidationError("daily_budget", "daily_budget and lifetime_budget are mutually exclusive")
	}

	if update.DailyBudget != nil && *update.DailyBudget <= 0 {
		return nil, newValidationError("daily_budget", "must be greater than zero")
	}

	if update.LifetimeBudget != nil && *update.LifetimeBudget <= 0 {
		return nil, newValidationError("lifetime_budget", "must be greater than zero")
	}

	if update.EndTime != nil && *update.EndTime != "" && eventTime(*update.EndTime).IsZero() {
		return nil, newValidationError("end_time", "expected RFC3339 or YYYY-MM-DDTHH:MM:SS+0000")
	}

	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	resp, err := s.metaService.UpdateBudget(ctx, adsetID, update)
	if err != nil {
		logrus.WithError(err).WithField("adset_id", adsetID).Error("insights: failed to update budget")
		return nil, err
	}

	return resp, nil
}

func eventTime(value string) time.Time {
	for _, layout := range []string{metaTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
