package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	metamocks "github.com/alikitto/ad-dash/infrastructure/integrator/meta/mocks"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/pkg/metrics"
)

func readyConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			AccessToken:        "token",
			Version:            "v19.0",
			LeadActionType:     "lead",
			MaximumPresetSince: "2025-06-01",
		},
		CredentialHealth: config.CredentialHealth{CronSchedule: "*/30 * * * *", Enabled: true},
	}
}

func TestCredentialHealthService_Check(t *testing.T) {
	checkedAt := time.Date(2025, time.August, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		cfg      *config.Config
		setup    func(metaService *metamocks.MockIntegrator)
		validate func(t *testing.T, status domain.CredentialStatus)
	}{
		{
			name: "healthy token",
			cfg:  readyConfig(),
			setup: func(metaService *metamocks.MockIntegrator) {
				metaService.EXPECT().CheckCredential(gomock.Any()).Return("Ad Dash Bot", nil)
			},
			validate: func(t *testing.T, status domain.CredentialStatus) {
				assert.Equal(t, domain.CredentialStatus{Healthy: true, Owner: "Ad Dash Bot", CheckedAt: checkedAt}, status)
				assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CredentialHealthy))
			},
		},
		{
			name: "expired token",
			cfg:  readyConfig(),
			setup: func(metaService *metamocks.MockIntegrator) {
				metaService.EXPECT().CheckCredential(gomock.Any()).
					Return("", &metaclient.CredentialError{StatusCode: 400, Code: 190, Message: "Session has expired"})
			},
			validate: func(t *testing.T, status domain.CredentialStatus) {
				assert.False(t, status.Healthy)
				assert.Equal(t, ErrorKindCredential, status.ErrorKind)
				assert.Contains(t, status.Message, "Session has expired")
				assert.Equal(t, 0.0, testutil.ToFloat64(metrics.CredentialHealthy))
			},
		},
		{
			name: "network failure",
			cfg:  readyConfig(),
			setup: func(metaService *metamocks.MockIntegrator) {
				metaService.EXPECT().CheckCredential(gomock.Any()).
					Return("", &metaclient.TransportError{Op: "GET /me", Err: errors.New("dial tcp: timeout"), Timeout: true})
			},
			validate: func(t *testing.T, status domain.CredentialStatus) {
				assert.Equal(t, ErrorKindTransport, status.ErrorKind)
			},
		},
		{
			name:  "missing token skips the upstream call",
			cfg:   &config.Config{},
			setup: func(metaService *metamocks.MockIntegrator) {},
			validate: func(t *testing.T, status domain.CredentialStatus) {
				assert.False(t, status.Healthy)
				assert.Equal(t, ErrorKindConfiguration, status.ErrorKind)
				assert.Contains(t, status.Message, "META_ACCESS_TOKEN")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			metaService := metamocks.NewMockIntegrator(ctrl)
			tt.setup(metaService)

			service := NewCredentialHealthService(tt.cfg, metaService)
			service.now = func() time.Time { return checkedAt }

			tt.validate(t, service.Check(context.Background()))
		})
	}
}

func TestCredentialHealthService_StatusUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	metaService := metamocks.NewMockIntegrator(ctrl)
	metaService.EXPECT().CheckCredential(gomock.Any()).Return("owner", nil).Times(1)

	service := NewCredentialHealthService(readyConfig(), metaService)

	first := service.Status(context.Background())
	second := service.Status(context.Background())

	assert.True(t, first.Healthy)
	assert.Equal(t, first, second)
}

func TestCredentialHealthService_StartDisabled(t *testing.T) {
	cfg := readyConfig()
	cfg.CredentialHealth.Enabled = false

	service := NewCredentialHealthService(cfg, nil)
	assert.NoError(t, service.Start(context.Background()))
}

func TestCredentialHealthService_StartInvalidCron(t *testing.T) {
	cfg := readyConfig()
	cfg.CredentialHealth.CronSchedule = "not a cron"

	service := NewCredentialHealthService(cfg, nil)
	assert.Error(t, service.Start(context.Background()))
}
