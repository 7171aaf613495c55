package insighting

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/internal/domain"
)

// BuildAdRows busca metadados e métricas dos anúncios ao mesmo tempo e faz left join
// por ad id: anúncio sem métricas aparece com zeros.
func (s *Service) BuildAdRows(ctx context.Context, adsetID string, window domain.InsightWindow) ([]domain.AdRecord, error) {
	if err := s.cfg.Meta.Ready(); err != nil {
		return nil, err
	}

	if adsetID == "" {
		return nil, newValidationError("adset_id", "is required")
	}

	var (
		ads         []domain.Ad
		rows        []domain.InsightRow
		adsErr      error
		insightsErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		ads, adsErr = s.metaService.ListAds(ctx, adsetID)
	}()

	go func() {
		defer wg.Done()
		rows, insightsErr = s.metaService.FetchAdInsights(ctx, adsetID, window)
	}()

	wg.Wait()

	if adsErr != nil {
		logrus.WithError(adsErr).WithField("adset_id", adsetID).Error("ads: failed to list ads")
		return nil, fmt.Errorf("ads metadata: %w", adsErr)
	}

	if insightsErr != nil {
		logrus.WithError(insightsErr).WithField("adset_id", adsetID).Error("ads: failed to fetch ad insights")
		return nil, fmt.Errorf("ads insights: %w", insightsErr)
	}

	return s.joinAdRows(ads, rows), nil
}

func (s *Service) joinAdRows(ads []domain.Ad, rows []domain.InsightRow) []domain.AdRecord {
	insightsByAd := make(map[string]domain.InsightRow, len(rows))
	for _, row := range rows {
		if row.AdID == "" {
			continue
		}
		insightsByAd[row.AdID] = row
	}

	records := make([]domain.AdRecord, 0, len(ads))
	for _, ad := range ads {
		row := insightsByAd[ad.ID]

		spend := SafeNumber(row.Spend)
		impressions := SafeInt(row.Impressions)
		linkClicks := SafeInt(row.InlineLinkClicks)
		leads := SumLeadActions(row.Actions, s.cfg.Meta.LeadActionType)

		records = append(records, domain.AdRecord{
			AdID:         ad.ID,
			AdName:       ad.Name,
			Status:       ad.Status,
			ThumbnailURL: ad.ThumbnailURL,
			Spend:        spend,
			Impressions:  impressions,
			Clicks:       SafeInt(row.Clicks),
			LinkClicks:   linkClicks,
			Leads:        leads,
			CPA:          DeriveCPL(spend, leads),
			CTR:          SafeNumber(row.CTR),
			CTRLink:      DeriveCTRLink(linkClicks, impressions),
			CPM:          SafeNumber(row.CPM),
			Frequency:    SafeNumber(row.Frequency),
		})
	}

	return records
}
