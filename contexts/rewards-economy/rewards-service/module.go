package rewardsservice

import (
	"log/slog"

	httpadapter "github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/adapters/http"
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/adapters/memory"
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/application"
	"github.com/techgyrl/BadgeBoost/contexts/rewards-economy/rewards-service/ports"
)

type Module struct {
	Points  application.PointsService
	Rewards application.RewardService
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository    ports.Repository
	Authorization ports.AuthorizationGate
	Clock         ports.Clock
	Events        ports.EventPublisher
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	points := application.PointsService{
		Repo:   deps.Repository,
		Authz:  deps.Authorization,
		Clock:  deps.Clock,
		Events: deps.Events,
		Logger: deps.Logger,
	}
	rewards := application.RewardService{
		Repo:   deps.Repository,
		Authz:  deps.Authorization,
		Clock:  deps.Clock,
		Events: deps.Events,
		Logger: deps.Logger,
	}
	return Module{
		Points:  points,
		Rewards: rewards,
		Handler: httpadapter.Handler{
			Points:  points,
			Rewards: rewards,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(
	authorization ports.AuthorizationGate,
	clk ports.Clock,
	logger *slog.Logger,
) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:    store,
		Authorization: authorization,
		Clock:         clk,
		Logger:        logger,
	})
	module.Store = store
	return module
}
