package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	badgeregistry "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry"
	badgeevents "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/adapters/events"
	badgememory "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/adapters/memory"
	badgepostgres "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/adapters/postgres"
	badgeports "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
	verificationservice "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service"
	registryadapter "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/adapters/registry"
	issuerregistry "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry"
	rewardsservice "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service"
	rewardsevents "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/adapters/events"
	rewardsmemory "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/adapters/memory"
	rewardspostgres "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/adapters/postgres"
	rewardsports "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/ports"
	"github.com/techgyrl/BadgeBoost/internal/platform/clock"
	"github.com/techgyrl/BadgeBoost/internal/platform/config"
	"github.com/techgyrl/BadgeBoost/internal/platform/db"
	"github.com/techgyrl/BadgeBoost/internal/platform/httpserver"
	"github.com/techgyrl/BadgeBoost/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

// BuildAPI wires the four context modules behind one HTTP server. Badge and
// rewards state lives in Postgres when POSTGRES_DSN is set, otherwise every
// adapter is in-memory. The issuer registry and the verification request
// ledger are memory-backed in both modes.
func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	bus := messaging.NewBus(logger)
	clk := clock.System{}

	issuers := issuerregistry.NewInMemoryModule(cfg.OwnerIdentity, clk, logger)

	var (
		pg          *db.Postgres
		badgeRepo   badgeports.Repository
		rewardsRepo rewardsports.Repository
	)
	if strings.TrimSpace(cfg.PostgresDSN) != "" {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		badgeRepo = badgepostgres.NewRepository(pg.DB, logger)
		rewardsRepo = rewardspostgres.NewRepository(pg.DB, logger)
	} else {
		badgeRepo = badgememory.NewStore()
		rewardsRepo = rewardsmemory.NewStore()
	}

	badges := badgeregistry.NewModule(badgeregistry.Dependencies{
		Repository:    badgeRepo,
		Authorization: issuers.Service,
		Clock:         clk,
		Events:        badgeevents.NewPublisher(bus, cfg.ServiceName, logger),
		Logger:        logger,
	})

	verification := verificationservice.NewInMemoryModule(
		registryadapter.BadgeSource{Badges: badgeRepo},
		issuers.Service,
		clk,
		logger,
	)

	rewards := rewardsservice.NewModule(rewardsservice.Dependencies{
		Repository:    rewardsRepo,
		Authorization: issuers.Service,
		Clock:         clk,
		Events:        rewardsevents.NewPublisher(bus, cfg.ServiceName, logger),
		Logger:        logger,
	})

	server := httpserver.New(
		issuers,
		badges,
		verification,
		rewards,
		logger,
		normalizeAddr(cfg.HTTPPort),
		cfg.RateLimitPerMinute,
		cfg.SwaggerEnabled,
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
