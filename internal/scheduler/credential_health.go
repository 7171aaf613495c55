package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/integrator/meta"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/domain"
	"github.com/alikitto/ad-dash/pkg/metrics"
)

const (
	ErrorKindCredential    = "credential"
	ErrorKindUpstream      = "upstream"
	ErrorKindTransport     = "transport"
	ErrorKindConfiguration = "configuration"
	ErrorKindUnknown       = "unknown"
)

type HealthChecker interface {
	// Status devolve o último resultado em cache, verificando na hora se ainda não houve nenhum
	Status(ctx context.Context) domain.CredentialStatus
	Check(ctx context.Context) domain.CredentialStatus
}

// CredentialHealthService verifica periodicamente se o token do Meta ainda é aceito
type CredentialHealthService struct {
	scheduler   *gocron.Scheduler
	cfg         *config.Config
	metaService meta.Integrator
	now         func() time.Time

	mu        sync.RWMutex
	last      *domain.CredentialStatus
	checkLock sync.Mutex
}

func NewCredentialHealthService(cfg *config.Config, metaService meta.Integrator) *CredentialHealthService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CredentialHealth.CronSchedule,
		"enabled":       cfg.CredentialHealth.Enabled,
	}).Info("health: credential check scheduler configured")

	return &CredentialHealthService{
		scheduler:   gocron.NewScheduler(time.UTC),
		cfg:         cfg,
		metaService: metaService,
		now:         time.Now,
	}
}

func (s *CredentialHealthService) Start(ctx context.Context) error {
	if !s.cfg.CredentialHealth.Enabled {
		logrus.Info("health: credential check disabled by configuration")
		return nil
	}

	_, err := s.scheduler.Cron(s.cfg.CredentialHealth.CronSchedule).Do(func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("health: schedule credential check: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("health: stopping credential check scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CredentialHealthService) Status(ctx context.Context) domain.CredentialStatus {
	s.mu.RLock()
	last := s.last
	s.mu.RUnlock()

	if last != nil {
		return *last
	}

	return s.Check(ctx)
}

// Check consulta /me e guarda o resultado. Execuções concorrentes são serializadas.
func (s *CredentialHealthService) Check(ctx context.Context) domain.CredentialStatus {
	s.checkLock.Lock()
	defer s.checkLock.Unlock()

	status := domain.CredentialStatus{CheckedAt: s.now().UTC()}

	if err := s.cfg.Meta.Ready(); err != nil {
		status.ErrorKind = ErrorKindConfiguration
		status.Message = err.Error()
	} else if owner, err := s.metaService.CheckCredential(ctx); err != nil {
		status.ErrorKind = classify(err)
		status.Message = err.Error()
	} else {
		status.Healthy = true
		status.Owner = owner
	}

	if status.Healthy {
		metrics.CredentialHealthy.Set(1)
		logrus.WithField("owner", status.Owner).Debug("health: meta credential accepted")
	} else {
		metrics.CredentialHealthy.Set(0)
		logrus.WithFields(logrus.Fields{
			"error_kind": status.ErrorKind,
			"error":      status.Message,
		}).Warn("health: meta credential check failed")
	}

	s.mu.Lock()
	s.last = &status
	s.mu.Unlock()

	return status
}

func classify(err error) string {
	switch {
	case metaclient.IsCredentialError(err):
		return ErrorKindCredential
	case metaclient.IsUpstreamError(err):
		return ErrorKindUpstream
	case metaclient.IsTransportError(err):
		return ErrorKindTransport
	default:
		return ErrorKindUnknown
	}
}
