package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/infrastructure/database/postgres"
	"github.com/alikitto/ad-dash/infrastructure/integrator/bedrock"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta"
	"github.com/alikitto/ad-dash/infrastructure/integrator/meta/metaclient"
	"github.com/alikitto/ad-dash/infrastructure/repository"
	"github.com/alikitto/ad-dash/internal/api"
	"github.com/alikitto/ad-dash/internal/config"
	"github.com/alikitto/ad-dash/internal/scheduler"
	"github.com/alikitto/ad-dash/internal/usecases/analysing"
	"github.com/alikitto/ad-dash/internal/usecases/authenticating"
	"github.com/alikitto/ad-dash/internal/usecases/clienting"
	"github.com/alikitto/ad-dash/internal/usecases/insighting"
	"github.com/alikitto/ad-dash/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	if err := cfg.ResolveSecrets(config.NewRenderClient(cfg)); err != nil {
		logrus.WithError(err).Warn("config: could not read secrets from render")
	}

	// Sem token o servidor sobe mesmo assim: leituras devolvem vazio e o health check aponta o problema
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Warn("config: meta integration is not fully configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	paymentRepo := repository.NewPaymentRepository(pgConn)
	avatarRepo := repository.NewAvatarRepository(pgConn)

	metaClient, err := metaclient.NewClient(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("meta: could not build graph api client")
	}
	metaIntegrator := meta.New(cfg, metaClient)

	avatarResolver := insighting.NewAvatarResolver(cfg.Avatars, avatarRepo)
	insightService := insighting.NewService(cfg, metaIntegrator, avatarResolver)

	clientService := clienting.NewService(cfg, clientRepo, paymentRepo, avatarRepo, metaIntegrator)

	var model bedrock.Integrator
	if cfg.Bedrock.Enabled {
		bedrockIntegrator, err := bedrock.New(ctx, cfg.Bedrock)
		if err != nil {
			logrus.WithError(err).Error("bedrock: analysis disabled")
		} else {
			model = bedrockIntegrator
		}
	}
	analysisService := analysing.NewService(cfg, insightService, model)

	authenticator := authenticating.NewService(userRepo, cfg)

	credentialHealth := scheduler.NewCredentialHealthService(cfg, metaIntegrator)
	if err := credentialHealth.Start(ctx); err != nil {
		logrus.WithError(err).Error("health: could not start credential health job")
	}

	server, err := api.New(cfg, api.Services{
		Insights:      insightService,
		Clients:       clientService,
		Analysis:      analysisService,
		Authenticator: authenticator,
		MetaHealth:    credentialHealth,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("postgres: could not connect")
	}

	logrus.Info("postgres: connection established")
	return conn
}
