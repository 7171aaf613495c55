package meta

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/alikitto/ad-dash/infrastructure/integrator/meta/domain"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
)

// Integrator expõe o Graph API em tipos do domínio
type Integrator interface {
	ListAccounts(ctx context.Context) ([]domain.AdAccount, error)
	ListAdSets(ctx context.Context, accountID string) ([]domain.AdSet, error)
	FetchInsights(ctx context.Context, accountID string, adsetIDs []string, window domain.InsightWindow) ([]domain.InsightRow, error)
	ListAds(ctx context.Context, adsetID string) ([]domain.Ad, error)
	FetchAdInsights(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.InsightRow, error)
	FetchAdSetDailyInsights(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.InsightRow, error)
	GetAdSetSettings(ctx context.Context, adsetID string) (*domain.AdSetSettings, error)
	ListAdSetActivities(ctx context.Context, adsetID string) ([]domain.AdSetActivity, error)
	UpdateStatus(ctx context.Context, entityID, status string) (map[string]any, error)
	UpdateBudget(ctx context.Context, adsetID string, update domain.BudgetUpdate) (map[string]any, error)
	CheckCredential(ctx context.Context) (string, error)
}

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
	now    func() time.Time
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// WithClock fixa o relógio usado para resolver o preset "maximum"
func (s *MetaIntegrator) WithClock(now func() time.Time) *MetaIntegrator {
	s.now = now
	return s
}

func (s *MetaIntegrator) ListAccounts(ctx context.Context) ([]domain.AdAccount, error) {
	resp, err := s.Client.ListAdAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("meta: failed to list ad accounts")
		return nil, err
	}

	accounts := make([]domain.AdAccount, 0, len(resp))
	for _, acc := range resp {
		id := acc.AccountID
		if id == "" {
			id = domain.CanonicalAccountID(acc.ID)
		}
		if id == "" {
			continue
		}
		accounts = append(accounts, domain.AdAccount{ID: id, Name: acc.Name})
	}

	logrus.WithField("accounts", len(accounts)).Debug("meta: ad accounts discovered")

	return accounts, nil
}

func (s *MetaIntegrator) ListAdSets(ctx context.Context, accountID string) ([]domain.AdSet, error) {
	resp, err := s.Client.ListAdSets(ctx, accountID)
	if err != nil {
		return nil, err
	}

	adsets := make([]domain.AdSet, 0, len(resp))
	for _, adset := range resp {
		adsets = append(adsets, FactoryAdSet(adset))
	}

	return adsets, nil
}

func (s *MetaIntegrator) FetchInsights(ctx context.Context, accountID string, adsetIDs []string, window domain.InsightWindow) ([]domain.InsightRow, error) {
	resp, err := s.Client.GetAdSetInsights(ctx, accountID, adsetIDs, s.timeRange(window))
	if err != nil {
		return nil, err
	}

	return FactoryInsightRows(resp), nil
}

func (s *MetaIntegrator) ListAds(ctx context.Context, adsetID string) ([]domain.Ad, error) {
	resp, err := s.Client.ListAds(ctx, adsetID)
	if err != nil {
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(resp))
	for _, ad := range resp {
		ads = append(ads, FactoryAd(ad))
	}

	return ads, nil
}

func (s *MetaIntegrator) FetchAdInsights(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.InsightRow, error) {
	resp, err := s.Client.GetAdInsights(ctx, adsetID, s.timeRange(window))
	if err != nil {
		return nil, err
	}

	return FactoryInsightRows(resp), nil
}

func (s *MetaIntegrator) FetchAdSetDailyInsights(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.InsightRow, error) {
	resp, err := s.Client.GetAdSetDailyInsights(ctx, adsetID, s.timeRange(window))
	if err != nil {
		return nil, err
	}

	return FactoryInsightRows(resp), nil
}

func (s *MetaIntegrator) GetAdSetSettings(ctx context.Context, adsetID string) (*domain.AdSetSettings, error) {
	resp, err := s.Client.GetAdSetDetails(ctx, adsetID)
	if err != nil {
		return nil, err
	}

	status := resp.EffectiveStatus
	if status == "" {
		status = resp.Status
	}

	return &domain.AdSetSettings{
		ID:              resp.ID,
		AccountID:       domain.CanonicalAccountID(resp.AccountID),
		Name:            resp.Name,
		Status:          status,
		DailyBudget:     resp.DailyBudget,
		LifetimeBudget:  resp.LifetimeBudget,
		BudgetRemaining: resp.BudgetRemaining,
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
	}, nil
}

// ListAdSetActivities descobre a conta dona do ad set e lê o histórico dela filtrado pelo ad set
func (s *MetaIntegrator) ListAdSetActivities(ctx context.Context, adsetID string) ([]domain.AdSetActivity, error) {
	settings, err := s.GetAdSetSettings(ctx, adsetID)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.ListAdSetActivities(ctx, settings.AccountID, adsetID)
	if err != nil {
		return nil, err
	}

	activities := make([]domain.AdSetActivity, 0, len(resp))
	for _, activity := range resp {
		label := activity.TranslatedEventType
		if label == "" {
			label = activity.EventType
		}
		activities = append(activities, domain.AdSetActivity{
			EventType:  activity.EventType,
			EventLabel: label,
			EventTime:  activity.EventTime,
			ActorName:  activity.ActorName,
			ObjectName: activity.ObjectName,
			ExtraData:  activity.ExtraData,
		})
	}

	return activities, nil
}

func (s *MetaIntegrator) UpdateStatus(ctx context.Context, entityID, status string) (map[string]any, error) {
	fields := url.Values{}
	fields.Set("status", status)

	return s.Client.UpdateEntity(ctx, entityID, fields)
}

func (s *MetaIntegrator) UpdateBudget(ctx context.Context, adsetID string, update domain.BudgetUpdate) (map[string]any, error) {
	fields := url.Values{}
	if update.DailyBudget != nil {
		fields.Set("daily_budget", strconv.FormatInt(*update.DailyBudget, 10))
	}
	if update.LifetimeBudget != nil {
		fields.Set("lifetime_budget", strconv.FormatInt(*update.LifetimeBudget, 10))
	}
	if update.EndTime != nil && *update.EndTime != "" {
		fields.Set("end_time", *update.EndTime)
	}

	return s.Client.UpdateEntity(ctx, adsetID, fields)
}

// CheckCredential devolve o nome do dono do token
func (s *MetaIntegrator) CheckCredential(ctx context.Context) (string, error) {
	owner, err := s.Client.CheckCredential(ctx)
	if err != nil {
		return "", err
	}

	return owner.Name, nil
}

func FactoryAdSet(adset metadomain.AdSet) domain.AdSet {
	status := adset.EffectiveStatus
	if status == "" {
		status = adset.Status
	}

	result := domain.AdSet{
		ID:     adset.ID,
		Name:   adset.Name,
		Status: status,
	}

	if adset.Campaign != nil {
		result.CampaignName = adset.Campaign.Name
		result.Objective = adset.Campaign.Objective
	}

	return result
}

func FactoryAd(ad metadomain.Ad) domain.Ad {
	status := ad.Status
	if status == "" {
		status = ad.EffectiveStatus
	}

	result := domain.Ad{
		ID:     ad.ID,
		Name:   ad.Name,
		Status: status,
	}

	if ad.Creative != nil {
		result.ThumbnailURL = ad.Creative.ThumbnailURL
		if result.ThumbnailURL == "" {
			result.ThumbnailURL = ad.Creative.ImageURL
		}
	}

	return result
}

func FactoryInsightRows(rows []metadomain.InsightRow) []domain.InsightRow {
	result := make([]domain.InsightRow, 0, len(rows))
	for _, row := range rows {
		actions := make([]domain.Action, 0, len(row.Actions))
		for _, action := range row.Actions {
			actions = append(actions, domain.Action{ActionType: action.ActionType, Value: action.Value})
		}

		result = append(result, domain.InsightRow{
			AdSetID:          row.AdSetID,
			AdID:             row.AdID,
			DateStart:        row.DateStart,
			Spend:            row.Spend,
			Impressions:      row.Impressions,
			Clicks:           row.Clicks,
			InlineLinkClicks: row.InlineLinkClicks,
			CPM:              row.CPM,
			CTR:              row.CTR,
			Frequency:        row.Frequency,
			Actions:          actions,
		})
	}

	return result
}
