package analysing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/integrator/bedrock"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/internal/usecases/insighting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxAdSetsForAnalysis = 35
	topBySpend           = 15
	topByLeads           = 10
	worstPerformers      = 5
	topAdsByCPA          = 5
)

var ErrInvalidReport = errors.New("analysis: model returned an invalid report")

type Analyzer interface {
	AnalyzeAdSets(ctx context.Context, adsets []domain.AggregatedAdSetRecord) (*domain.AnalysisReport, error)
	AnalyzeAdSet(ctx context.Context, request domain.AdSetAnalysisRequest) (*domain.AnalysisReport, error)
}

type Service struct {
	cfg   *config.Config
	ads   insighting.AdsDetailFetcher
	model bedrock.Integrator
}

func NewService(cfg *config.Config, ads insighting.AdsDetailFetcher, model bedrock.Integrator) *Service {
	return &Service{
		cfg:   cfg,
		ads:   ads,
		model: model,
	}
}

type adSetSample struct {
	Name    string  `json:"name"`
	Status  string  `json:"status"`
	Spend   float64 `json:"spend"`
	Leads   int     `json:"leads"`
	CPL     float64 `json:"cpl"`
	CTRLink float64 `json:"ctr_link"`
}

type portfolioPayload struct {
	TotalSpend   float64       `json:"total_spend"`
	TotalLeads   int           `json:"total_leads"`
	AdSetsSample []adSetSample `json:"adsets_sample"`
}

type windowSummary struct {
	TotalSpend float64 `json:"total_spend"`
	TotalLeads int     `json:"total_leads"`
	CPL        float64 `json:"cpl"`
	AdsCount   int     `json:"ads_count"`
}

type rankedAd struct {
	Name  string  `json:"name"`
	Leads int     `json:"leads"`
	CPA   float64 `json:"cpa"`
}

type adSetPayload struct {
	AdSetName          string                   `json:"adset_name"`
	CampaignName       string                   `json:"campaign_name"`
	Objective          string                   `json:"objective"`
	PerformanceSummary map[string]windowSummary `json:"performance_summary"`
	TopAdsByLifetime   []rankedAd               `json:"top_ads_by_lifetime_cpa"`
}

// AnalyzeAdSets pede ao modelo uma leitura do portfólio inteiro. Acima de 35 ad sets
// apenas uma amostra é enviada, mas os totais consideram todos.
func (s *Service) AnalyzeAdSets(ctx context.Context, adsets []domain.AggregatedAdSetRecord) (*domain.AnalysisReport, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	if len(adsets) == 0 {
		return nil, &insighting.ValidationError{Field: "adsets", Message: "adset data is required"}
	}

	payload := portfolioPayload{AdSetsSample: make([]adSetSample, 0)}
	var totalSpend float64
	for _, adset := range adsets {
		totalSpend += adset.Spend
		payload.TotalLeads += adset.Leads
	}
	payload.TotalSpend = round2(totalSpend)

	for _, adset := range SampleAdSets(adsets) {
		payload.AdSetsSample = append(payload.AdSetsSample, adSetSample{
			Name:    truncate(adset.AccountName, 15) + " / " + truncate(adset.AdSetName, 25),
			Status:  adset.Status,
			Spend:   round2(adset.Spend),
			Leads:   adset.Leads,
			CPL:     round2(adset.CPL),
			CTRLink: round2(insighting.DeriveCTRLink(adset.LinkClicks, adset.Impressions)),
		})
	}

	content, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"adsets":  len(adsets),
		"sampled": len(payload.AdSetsSample),
	}).Info("analysis: requesting portfolio analysis")

	return s.complete(ctx, portfolioPrompt, string(content))
}

// AnalyzeAdSet compara hoje, ontem e todo o período de um ad set. Uma janela que
// falha entra vazia na análise.
func (s *Service) AnalyzeAdSet(ctx context.Context, request domain.AdSetAnalysisRequest) (*domain.AnalysisReport, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	if request.AdSetID == "" {
		return nil, &insighting.ValidationError{Field: "adset_id", Message: "is missing in the payload"}
	}

	windows := []string{"today", "yesterday", domain.DatePresetMaximum}
	results := make([][]domain.AdRecord, len(windows))

	wg := sync.WaitGroup{}
	for i, preset := range windows {
		wg.Add(1)
		go func(i int, preset string) {
			defer wg.Done()

			rows, err := s.ads.BuildAdRows(ctx, request.AdSetID, domain.InsightWindow{DatePreset: preset})
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"adset_id": request.AdSetID,
					"window":   preset,
				}).Warn("analysis: could not fetch ads, using empty window")
				return
			}
			results[i] = rows
		}(i, preset)
	}
	wg.Wait()

	payload := adSetPayload{
		AdSetName:    request.AdSetName,
		CampaignName: request.CampaignName,
		Objective:    request.Objective,
		PerformanceSummary: map[string]windowSummary{
			"today":     summarize(results[0]),
			"yesterday": summarize(results[1]),
			"lifetime":  summarize(results[2]),
		},
		TopAdsByLifetime: rankByCPA(results[2], topAdsByCPA),
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return s.complete(ctx, adSetPrompt, string(content))
}

// SampleAdSets devolve todos os ad sets até o limite; acima dele, a união dos 15 de
// maior gasto, dos 10 com mais leads e dos 5 que gastaram sem gerar lead.
func SampleAdSets(adsets []domain.AggregatedAdSetRecord) []domain.AggregatedAdSetRecord {
	if len(adsets) <= maxAdSetsForAnalysis {
		return adsets
	}

	bySpend := sortedCopy(adsets, func(a, b domain.AggregatedAdSetRecord) bool { return a.Spend > b.Spend })
	byLeads := sortedCopy(adsets, func(a, b domain.AggregatedAdSetRecord) bool { return a.Leads > b.Leads })

	wasted := make([]domain.AggregatedAdSetRecord, 0)
	for _, adset := range adsets {
		if adset.Leads == 0 && adset.Spend > 0 {
			wasted = append(wasted, adset)
		}
	}
	wasted = sortedCopy(wasted, func(a, b domain.AggregatedAdSetRecord) bool { return a.Spend > b.Spend })

	seen := make(map[string]struct{})
	sample := make([]domain.AggregatedAdSetRecord, 0, topBySpend+topByLeads+worstPerformers)
	for _, group := range [][]domain.AggregatedAdSetRecord{
		head(bySpend, topBySpend),
		head(byLeads, topByLeads),
		head(wasted, worstPerformers),
	} {
		for _, adset := range group {
			if _, ok := seen[adset.AdSetID]; ok {
				continue
			}
			seen[adset.AdSetID] = struct{}{}
			sample = append(sample, adset)
		}
	}

	return sample
}

func (s *Service) ready() error {
	if !s.cfg.Bedrock.Enabled || s.model == nil {
		return &config.ConfigurationError{Missing: []string{"BEDROCK_ENABLED"}}
	}
	return nil
}

func (s *Service) complete(ctx context.Context, prompt, content string) (*domain.AnalysisReport, error) {
	text, err := s.model.Complete(ctx, prompt, content)
	if err != nil {
		logrus.WithError(err).Error("analysis: model call failed")
		return nil, err
	}

	return parseReport(text)
}

type rawReport struct {
	Summary         string                  `json:"summary"`
	Insights        any                     `json:"insights"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// parseReport aceita o JSON puro ou envolvido em bloco de código
func parseReport(text string) (*domain.AnalysisReport, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, ErrInvalidReport
	}

	var raw rawReport
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}

	report := &domain.AnalysisReport{
		Summary:         raw.Summary,
		Recommendations: raw.Recommendations,
	}
	if report.Recommendations == nil {
		report.Recommendations = make([]domain.Recommendation, 0)
	}

	switch insights := raw.Insights.(type) {
	case string:
		report.Insights = insights
	case []any:
		lines := make([]string, 0, len(insights))
		for _, item := range insights {
			lines = append(lines, fmt.Sprintf("- %v", item))
		}
		report.Insights = strings.Join(lines, "\n")
	}

	return report, nil
}

func summarize(ads []domain.AdRecord) windowSummary {
	if len(ads) == 0 {
		return windowSummary{}
	}

	var spend float64
	var leads int
	for _, ad := range ads {
		spend += ad.Spend
		leads += ad.Leads
	}

	return windowSummary{
		TotalSpend: round2(spend),
		TotalLeads: leads,
		CPL:        round2(insighting.DeriveCPL(spend, leads)),
		AdsCount:   len(ads),
	}
}

func rankByCPA(ads []domain.AdRecord, limit int) []rankedAd {
	ranked := make([]rankedAd, 0)
	for _, ad := range ads {
		if ad.Leads <= 0 {
			continue
		}
		ranked = append(ranked, rankedAd{Name: ad.AdName, Leads: ad.Leads, CPA: ad.CPA})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CPA < ranked[j].CPA
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func sortedCopy(adsets []domain.AggregatedAdSetRecord, less func(a, b domain.AggregatedAdSetRecord) bool) []domain.AggregatedAdSetRecord {
	sorted := make([]domain.AggregatedAdSetRecord, len(adsets))
	copy(sorted, adsets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func head(adsets []domain.AggregatedAdSetRecord, n int) []domain.AggregatedAdSetRecord {
	if len(adsets) > n {
		return adsets[:n]
	}
	return adsets
}

func truncate(value string, size int) string {
	runes := []rune(value)
	if len(runes) > size {
		return string(runes[:size])
	}
	return value
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
