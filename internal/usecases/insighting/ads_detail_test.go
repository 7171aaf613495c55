package insighting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/mocks"
	"github.com/alikitto/ad-dash/internal/domain"
)

func TestService_BuildAdRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), metaService, nil)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, rows []domain.AdRecord, err error)
	}{
		{
			name: "ad without insights appears with zero metrics",
			setup: func() {
				metaService.EXPECT().ListAds(gomock.Any(), "10").Return([]domain.Ad{
					{ID: "100", Name: "Video", Status: "ACTIVE", ThumbnailURL: "https://thumb/100"},
					{ID: "101", Name: "Carousel", Status: "PAUSED"},
				}, nil)
				metaService.EXPECT().FetchAdInsights(gomock.Any(), "10", last7d).Return([]domain.InsightRow{{
					AdID:             "100",
					Spend:            "30",
					Impressions:      "2000",
					Clicks:           "80",
					InlineLinkClicks: "50",
					CTR:              "4",
					CPM:              "15",
					Frequency:        "1.2",
					Actions:          []domain.Action{{ActionType: "lead_signal", Value: "6"}},
				}}, nil)
			},
			validate: func(t *testing.T, rows []domain.AdRecord, err error) {
				require.NoError(t, err)
				require.Len(t, rows, 2)

				assert.Equal(t, domain.AdRecord{
					AdID:         "100",
					AdName:       "Video",
					Status:       "ACTIVE",
					ThumbnailURL: "https://thumb/100",
					Spend:        30,
					Impressions:  2000,
					Clicks:       80,
					LinkClicks:   50,
					Leads:        6,
					CPA:          5,
					CTR:          4,
					CTRLink:      2.5,
					CPM:          15,
					Frequency:    1.2,
				}, rows[0])

				assert.Equal(t, "101", rows[1].AdID)
				assert.Equal(t, 0.0, rows[1].Spend)
				assert.Equal(t, 0, rows[1].Leads)
				assert.Equal(t, 0.0, rows[1].CPA)
				assert.Equal(t, 0.0, rows[1].CTRLink)
			},
		},
		{
			name: "insights failure is not hidden behind zero rows",
			setup: func() {
				metaService.EXPECT().ListAds(gomock.Any(), "10").Return([]domain.Ad{{ID: "100"}}, nil)
				metaService.EXPECT().FetchAdInsights(gomock.Any(), "10", last7d).
					Return(nil, &metaclient.UpstreamError{StatusCode: 500, Message: "boom"})
			},
			validate: func(t *testing.T, rows []domain.AdRecord, err error) {
				assert.True(t, metaclient.IsUpstreamError(err))
				assert.Contains(t, err.Error(), "ads insights")
				assert.Nil(t, rows)
			},
		},
		{
			name: "metadata failure keeps its type",
			setup: func() {
				metaService.EXPECT().ListAds(gomock.Any(), "10").Return(nil, &metaclient.CredentialError{Code: 190})
				metaService.EXPECT().FetchAdInsights(gomock.Any(), "10", last7d).Return([]domain.InsightRow{}, nil)
			},
			validate: func(t *testing.T, rows []domain.AdRecord, err error) {
				assert.True(t, metaclient.IsCredentialError(err))
				assert.Nil(t, rows)
			},
		},
		{
			name: "no ads",
			setup: func() {
				metaService.EXPECT().ListAds(gomock.Any(), "10").Return([]domain.Ad{}, nil)
				metaService.EXPECT().FetchAdInsights(gomock.Any(), "10", last7d).Return([]domain.InsightRow{}, nil)
			},
			validate: func(t *testing.T, rows []domain.AdRecord, err error) {
				require.NoError(t, err)
				assert.NotNil(t, rows)
				assert.Empty(t, rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			rows, err := service.BuildAdRows(context.Background(), "10", last7d)
			tt.validate(t, rows, err)
		})
	}
}

func TestService_BuildAdRows_RequiresAdSet(t *testing.T) {
	service := NewService(testConfig(), nil, nil)

	rows, err := service.BuildAdRows(context.Background(), "", last7d)

	assert.True(t, IsValidationError(err))
	assert.Nil(t, rows)
}
