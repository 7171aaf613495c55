package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/mocks"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
)

type staticAvatars Avatars

func (a staticAvatars) Snapshot(context.Context) Avatars {
	return Avatars(a)
}

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			AccessToken:           "token",
			Version:               "v19.0",
			LeadActionType:        "lead_signal",
			MaximumPresetSince:    "2025-06-01",
			MaxConcurrentAccounts: 2,
		},
	}
}

var last7d = domain.InsightWindow{DatePreset: "last_7d"}

func TestService_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), metaService, staticAvatars{"1": "https://cdn/alpha.png"})

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, records []domain.AggregatedAdSetRecord, err error)
	}{
		{
			name: "ad set without insights is dropped",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{{ID: "1", Name: "Alpha"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "1").Return([]domain.AdSet{
					{ID: "10", Name: "With traffic", CampaignName: "Spring", Objective: "OUTCOME_LEADS", Status: "ACTIVE"},
					{ID: "11", Name: "Idle", Status: "PAUSED"},
				}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "1", []string{"10", "11"}, last7d).
					Return([]domain.InsightRow{{AdSetID: "10", Spend: "20", Impressions: "1000"}}, nil)
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, "10", records[0].AdSetID)
				assert.Equal(t, "https://cdn/alpha.png", records[0].AvatarURL)
				assert.Equal(t, 1000, records[0].Impressions)
			},
		},
		{
			name: "string spend and lead actions are normalized",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{{ID: "1", Name: "Alpha"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "1").Return([]domain.AdSet{{ID: "10", Name: "Leads"}}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "1", []string{"10"}, last7d).
					Return([]domain.InsightRow{{
						AdSetID: "10",
						Spend:   "12.50",
						Actions: []domain.Action{{ActionType: "onsite_conversion.lead_signal", Value: "3"}},
					}}, nil)
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, 12.5, records[0].Spend)
				assert.Equal(t, 3, records[0].Leads)
				assert.InDelta(t, 4.1666, records[0].CPL, 0.0001)
				assert.Equal(t, "N/A", records[0].Objective)
			},
		},
		{
			name: "credential rejected on insights returns empty list",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{{ID: "1", Name: "Alpha"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "1").Return([]domain.AdSet{{ID: "10"}}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "1", []string{"10"}, last7d).
					Return(nil, &metaclient.CredentialError{Code: 190, Message: "Error validating access token: Session has expired"})
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
		{
			name: "credential rejected on discovery returns empty list",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return(nil, &metaclient.CredentialError{Code: 190})
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, records)
			},
		},
		{
			name: "discovery upstream failure is returned",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return(nil, &metaclient.UpstreamError{StatusCode: 500, Message: "boom"})
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				assert.True(t, metaclient.IsUpstreamError(err))
				assert.Nil(t, records)
			},
		},
		{
			name: "no accounts",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{}, nil)
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				assert.NotNil(t, records)
				assert.Empty(t, records)
			},
		},
		{
			name: "one failing account does not abort the others",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{
					{ID: "A", Name: "A"}, {ID: "B", Name: "B"}, {ID: "C", Name: "C"},
				}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "A").Return([]domain.AdSet{{ID: "a1"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "B").Return(nil, &metaclient.UpstreamError{StatusCode: 400, Code: 100, Message: "unsupported field"})
				metaService.EXPECT().ListAdSets(gomock.Any(), "C").Return([]domain.AdSet{{ID: "c1"}}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "A", []string{"a1"}, last7d).Return([]domain.InsightRow{{AdSetID: "a1", Spend: "1"}}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "C", []string{"c1"}, last7d).Return([]domain.InsightRow{{AdSetID: "c1", Spend: "2"}}, nil)
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 2)
				assert.Equal(t, "A", records[0].AccountID)
				assert.Equal(t, "C", records[1].AccountID)
			},
		},
		{
			name: "transport failure on insights isolates the account",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{{ID: "A"}, {ID: "B"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "A").Return([]domain.AdSet{{ID: "a1"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "B").Return([]domain.AdSet{{ID: "b1"}}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "A", []string{"a1"}, last7d).
					Return(nil, &metaclient.TransportError{Op: "adset_insights", Err: context.DeadlineExceeded, Timeout: true})
				metaService.EXPECT().FetchInsights(gomock.Any(), "B", []string{"b1"}, last7d).Return([]domain.InsightRow{{AdSetID: "b1"}}, nil)
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 1)
				assert.Equal(t, "B", records[0].AccountID)
			},
		},
		{
			name: "accounts reusing the same ad set id do not mix",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{{ID: "A", Name: "A"}, {ID: "B", Name: "B"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "A").Return([]domain.AdSet{{ID: "same", Name: "from A"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "B").Return([]domain.AdSet{{ID: "same", Name: "from B"}}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "A", []string{"same"}, last7d).Return([]domain.InsightRow{{AdSetID: "same", Spend: "1"}}, nil)
				metaService.EXPECT().FetchInsights(gomock.Any(), "B", []string{"same"}, last7d).Return([]domain.InsightRow{{AdSetID: "same", Spend: "2"}}, nil)
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				require.Len(t, records, 2)
				for _, record := range records {
					switch record.AccountID {
					case "A":
						assert.Equal(t, "from A", record.AdSetName)
						assert.Equal(t, 1.0, record.Spend)
					case "B":
						assert.Equal(t, "from B", record.AdSetName)
						assert.Equal(t, 2.0, record.Spend)
					default:
						t.Errorf("unexpected account %s", record.AccountID)
					}
				}
			},
		},
		{
			name: "account without ad sets is skipped",
			setup: func() {
				metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{{ID: "A"}}, nil)
				metaService.EXPECT().ListAdSets(gomock.Any(), "A").Return([]domain.AdSet{}, nil)
			},
			validate: func(t *testing.T, records []domain.AggregatedAdSetRecord, err error) {
				require.NoError(t, err)
				assert.Empty(t, records)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			records, err := service.Run(context.Background(), last7d)
			tt.validate(t, records, err)
		})
	}
}

func TestService_Run_IsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	metaService.EXPECT().ListAccounts(gomock.Any()).Return([]domain.AdAccount{{ID: "A"}, {ID: "B"}}, nil).Times(2)
	metaService.EXPECT().ListAdSets(gomock.Any(), "A").Return([]domain.AdSet{{ID: "a1"}, {ID: "a2"}}, nil).Times(2)
	metaService.EXPECT().ListAdSets(gomock.Any(), "B").Return([]domain.AdSet{{ID: "b1"}}, nil).Times(2)
	metaService.EXPECT().FetchInsights(gomock.Any(), "A", gomock.Any(), last7d).
		Return([]domain.InsightRow{{AdSetID: "a2", Spend: "3"}, {AdSetID: "a1", Spend: "1"}}, nil).Times(2)
	metaService.EXPECT().FetchInsights(gomock.Any(), "B", gomock.Any(), last7d).
		Return([]domain.InsightRow{{AdSetID: "b1", Spend: "2"}}, nil).Times(2)

	service := NewService(testConfig(), metaService, nil)

	first, err := service.Run(context.Background(), last7d)
	require.NoError(t, err)
	second, err := service.Run(context.Background(), last7d)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"a1", "a2", "b1"}, []string{first[0].AdSetID, first[1].AdSetID, first[2].AdSetID})
}

func TestService_Run_NotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Meta.AccessToken = ""

	service := NewService(cfg, nil, nil)

	records, err := service.Run(context.Background(), last7d)

	var cfgErr *config.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"META_ACCESS_TOKEN"}, cfgErr.Missing)
	assert.Nil(t, records)
}
