package badgeregistry

import (
	"log/slog"

	httpadapter "github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/adapters/http"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/adapters/memory"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/application"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/badge-registry/ports"
)

type Module struct {
	Service application.Service
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
	service := application.Service{
		Repo:   deps.Repository,
		Authz:  deps.Authorization,
		Clock:  deps.Clock,
		Events: deps.Events,
		Logger: deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
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
