package issuerregistry

import (
	"log/slog"

	httpadapter "github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/adapters/http"
	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/adapters/memory"
	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/application"
	"github.com/techgyrl/BadgeBoost/contexts/identity-access/issuer-registry/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	RootOwner  string
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		RootOwner: deps.RootOwner,
		Repo:      deps.Repository,
		Clock:     deps.Clock,
		Logger:    deps.Logger,
	}
	return Module{
		Service: service,
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(rootOwner string, clk ports.Clock, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		RootOwner:  rootOwner,
		Repository: store,
		Clock:      clk,
		Logger:     logger,
	})
	module.Store = store
	return module
}
