package insighting

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/integrator/meta"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/pkg/metrics"
)

const defaultMaxConcurrentAccounts = 5

type Service struct {
	cfg           *config.Config
	metaService   meta.Integrator
	avatars       AvatarResolver
	maxConcurrent int
}

func NewService(cfg *config.Config, metaService meta.Integrator, avatars AvatarResolver) *Service {
	maxConcurrent := cfg.Meta.MaxConcurrentAccounts
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentAccounts
	}

	return &Service{
		cfg:           cfg,
		metaService:   metaService,
		avatars:       avatars,
		maxConcurrent: maxConcurrent,
	}
}

// accountResult é o resultado isolado de uma conta
type accountResult struct {
	records []domain.AggregatedAdSetRecord
	skipped bool
	err     error
}

// Run descobre as contas e processa cada uma em paralelo, com limite de concorrência.
// Falha em uma conta não derruba as outras; token rejeitado devolve lista vazia.
func (s *Service) Run(ctx context.Context, window domain.InsightWindow) ([]domain.AggregatedAdSetRecord, error) {
	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	startTime := time.Now()

	accounts, err := s.metaService.ListAccounts(ctx)
	if err != nil {
		if metaclient.IsCredentialError(err) {
			logrus.WithError(err).Error("insights: meta credential rejected during account discovery, returning empty result")
			return []domain.AggregatedAdSetRecord{}, nil
		}
		return nil, err
	}

	if len(accounts) == 0 {
		logrus.Info("insights: no ad accounts available")
		return []domain.AggregatedAdSetRecord{}, nil
	}

	avatars := Avatars{}
	if s.avatars != nil {
		avatars = s.avatars.Snapshot(ctx)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]accountResult, len(accounts))
	semaphore := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup
	var credentialRejected atomic.Bool

	for i, account := range accounts {
		wg.Add(1)

		go func(i int, account domain.AdAccount) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if credentialRejected.Load() {
				results[i] = accountResult{skipped: true}
				return
			}

			results[i] = s.processAccount(runCtx, account, window, avatars)

			if metaclient.IsCredentialError(results[i].err) {
				credentialRejected.Store(true)
				cancel()
			}
		}(i, account)
	}

	wg.Wait()

	if credentialRejected.Load() {
		logrus.WithField("accounts", len(accounts)).Error("insights: meta credential rejected, returning empty result")
		metrics.AggregationAccounts.WithLabelValues("credential").Add(float64(len(accounts)))
		return []domain.AggregatedAdSetRecord{}, nil
	}

	records := make([]domain.AggregatedAdSetRecord, 0)
	failed := 0
	for i, result := range results {
		switch {
		case result.err != nil:
			failed++
			metrics.AggregationAccounts.WithLabelValues("failed").Inc()
			logrus.WithError(result.err).WithFields(logrus.Fields{
				"account_id":   accounts[i].ID,
				"account_name": accounts[i].Name,
			}).Warn("insights: account skipped after upstream failure")
		case result.skipped:
			metrics.AggregationAccounts.WithLabelValues("empty").Inc()
		default:
			metrics.AggregationAccounts.WithLabelValues("ok").Inc()
			records = append(records, result.records...)
		}
	}

	metrics.AggregationRecords.Observe(float64(len(records)))

	logrus.WithFields(logrus.Fields{
		"accounts":        len(accounts),
		"failed_accounts": failed,
		"records":         len(records),
		"duration":        time.Since(startTime).String(),
	}).Info("insights: aggregation finished")

	return records, nil
}

func (s *Service) processAccount(ctx context.Context, account domain.AdAccount, window domain.InsightWindow, avatars Avatars) accountResult {
	adsets, err := s.metaService.ListAdSets(ctx, account.ID)
	if err != nil {
		return accountResult{err: err}
	}

	if len(adsets) == 0 {
		return accountResult{skipped: true}
	}

	adsetIDs := make([]string, 0, len(adsets))
	for _, adset := range adsets {
		adsetIDs = append(adsetIDs, adset.ID)
	}

	rows, err := s.metaService.FetchInsights(ctx, account.ID, adsetIDs, window)
	if err != nil {
		return accountResult{err: err}
	}

	insightsByAdSet := make(map[string]domain.InsightRow, len(rows))
	for _, row := range rows {
		if row.AdSetID == "" {
			continue
		}
		insightsByAdSet[row.AdSetID] = row
	}

	avatarURL := avatars.For(account)
	records := make([]domain.AggregatedAdSetRecord, 0, len(rows))
	for _, adset := range adsets {
		row, ok := insightsByAdSet[adset.ID]
		if !ok {
			continue
		}
		records = append(records, s.buildRecord(account, adset, row, avatarURL))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"adsets":     len(adsets),
		"records":    len(records),
	}).Debug("insights: account processed")

	return accountResult{records: records}
}

func (s *Service) buildRecord(account domain.AdAccount, adset domain.AdSet, row domain.InsightRow, avatarURL string) domain.AggregatedAdSetRecord {
	spend := SafeNumber(row.Spend)
	leads := SumLeadActions(row.Actions, s.cfg.Meta.LeadActionType)

	objective := adset.Objective
	if objective == "" {
		objective = domain.ObjectiveNotAvailable
	}

	return domain.AggregatedAdSetRecord{
		AccountID:    account.ID,
		AccountName:  account.Name,
		AvatarURL:    avatarURL,
		AdSetID:      adset.ID,
		AdSetName:    adset.Name,
		CampaignName: adset.CampaignName,
		Status:       adset.Status,
		Objective:    objective,
		Spend:        spend,
		Leads:        leads,
		CPL:          DeriveCPL(spend, leads),
		CPM:          SafeNumber(row.CPM),
		CTRAll:       SafeNumber(row.CTR),
		LinkClicks:   SafeInt(row.InlineLinkClicks),
		Impressions:  SafeInt(row.Impressions),
		Frequency:    SafeNumber(row.Frequency),
	}
}
