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

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(v string) *string { return &v }

func TestService_GetDailyStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	metaService.EXPECT().FetchAdSetDailyInsights(gomock.Any(), "10", last7d).Return([]domain.InsightRow{
		{DateStart: "2025-07-02", Spend: "10", Actions: []domain.Action{{ActionType: "lead_signal", Value: "2"}}},
		{DateStart: "2025-07-01", Spend: "4.5", Impressions: "300", Clicks: 12},
	}, nil)

	stats, err := NewService(testConfig(), metaService, nil).GetDailyStats(context.Background(), "10", last7d)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "2025-07-01", stats[0].Date)
	assert.Equal(t, 4.5, stats[0].Spent)
	assert.Equal(t, 300, stats[0].Impressions)
	assert.Equal(t, 12, stats[0].Clicks)
	assert.Equal(t, "2025-07-02", stats[1].Date)
	assert.Equal(t, 2, stats[1].Leads)
	assert.Equal(t, 5.0, stats[1].CPL)
}

func TestService_GetDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), metaService, nil)

	tests := []struct {
		name     string
		settings *domain.AdSetSettings
		validate func(t *testing.T, details *domain.AdSetDetails)
	}{
		{
			name:     "daily budget in minor units",
			settings: &domain.AdSetSettings{ID: "10", DailyBudget: "2500", BudgetRemaining: "1250"},
			validate: func(t *testing.T, details *domain.AdSetDetails) {
				assert.Equal(t, domain.BudgetTypeDaily, details.BudgetType)
				assert.Equal(t, 25.0, details.DailyBudget)
				assert.Equal(t, 12.5, details.BudgetRemaining)
			},
		},
		{
			name:     "lifetime budget",
			settings: &domain.AdSetSettings{ID: "10", DailyBudget: "0", LifetimeBudget: "100000", EndTime: "2025-08-01T00:00:00+0000"},
			validate: func(t *testing.T, details *domain.AdSetDetails) {
				assert.Equal(t, domain.BudgetTypeLifetime, details.BudgetType)
				assert.Equal(t, 1000.0, details.LifetimeBudget)
				assert.Equal(t, "2025-08-01T00:00:00+0000", details.EndTime)
			},
		},
		{
			name:     "campaign budget leaves the ad set without one",
			settings: &domain.AdSetSettings{ID: "10"},
			validate: func(t *testing.T, details *domain.AdSetDetails) {
				assert.Equal(t, domain.BudgetTypeNone, details.BudgetType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metaService.EXPECT().GetAdSetSettings(gomock.Any(), "10").Return(tt.settings, nil)

			details, err := service.GetDetails(context.Background(), "10")

			require.NoError(t, err)
			tt.validate(t, details)
		})
	}
}

func TestService_ListActivities_SortsNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	metaService.EXPECT().ListAdSetActivities(gomock.Any(), "10").Return([]domain.AdSetActivity{
		{EventType: "first", EventTime: "2025-07-01T10:00:00+0000"},
		{EventType: "third", EventTime: "2025-07-03T08:00:00+0000"},
		{EventType: "second", EventTime: "2025-07-02T23:59:00+0000"},
	}, nil)

	activities, err := NewService(testConfig(), metaService, nil).ListActivities(context.Background(), "10")

	require.NoError(t, err)
	assert.Equal(t, "third", activities[0].EventType)
	assert.Equal(t, "second", activities[1].EventType)
	assert.Equal(t, "first", activities[2].EventType)
}

func TestService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), metaService, nil)

	t.Run("rejects unknown status before calling meta", func(t *testing.T) {
		resp, err := service.UpdateStatus(context.Background(), "10", "DELETED")

		assert.True(t, IsValidationError(err))
		assert.Nil(t, resp)
	})

	t.Run("passes the upstream response through", func(t *testing.T) {
		metaService.EXPECT().UpdateStatus(gomock.Any(), "10", "PAUSED").Return(map[string]any{"success": true}, nil)

		resp, err := service.UpdateStatus(context.Background(), "10", "PAUSED")

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"success": true}, resp)
	})

	t.Run("propagates upstream errors", func(t *testing.T) {
		upstreamErr := &metaclient.UpstreamError{StatusCode: 400, Code: 100, Message: "Invalid parameter"}
		metaService.EXPECT().UpdateStatus(gomock.Any(), "11", "ACTIVE").Return(nil, upstreamErr)

		resp, err := service.UpdateStatus(context.Background(), "11", "ACTIVE")

		assert.Equal(t, upstreamErr, err)
		assert.Nil(t, resp)
	})
}

func TestService_UpdateBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaService := mocks.NewMockIntegrator(ctrl)
	service := NewService(testConfig(), metaService, nil)

	tests := []struct {
		name    string
		update  domain.BudgetUpdate
		wantErr bool
		setup   func()
	}{
		{name: "empty update", update: domain.BudgetUpdate{}, wantErr: true},
		{name: "both budgets", update: domain.BudgetUpdate{DailyBudget: int64Ptr(100), LifetimeBudget: int64Ptr(1000)}, wantErr: true},
		{name: "negative budget", update: domain.BudgetUpdate{DailyBudget: int64Ptr(-5)}, wantErr: true},
		{name: "bad end time", update: domain.BudgetUpdate{EndTime: stringPtr("tomorrow")}, wantErr: true},
		{
			name:   "daily budget and end time",
			update: domain.BudgetUpdate{DailyBudget: int64Ptr(2500), EndTime: stringPtr("2025-08-01T00:00:00+0000")},
			setup: func() {
				metaService.EXPECT().UpdateBudget(gomock.Any(), "10", gomock.Any()).Return(map[string]any{"success": true}, nil)
			},
		},
		{
			name:   "rfc3339 end time",
			update: domain.BudgetUpdate{EndTime: stringPtr("2025-08-01T00:00:00Z")},
			setup: func() {
				metaService.EXPECT().UpdateBudget(gomock.Any(), "10", gomock.Any()).Return(map[string]any{"success": true}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			resp, err := service.UpdateBudget(context.Background(), "10", tt.update)

			if tt.wantErr {
				assert.True(t, IsValidationError(err))
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, true, resp["success"])
		})
	}
}
