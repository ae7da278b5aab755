package verificationservice

import (
	"log/slog"

	httpadapter "github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/adapters/http"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/adapters/memory"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/application"
	"github.com/techgyrl/BadgeBoost/contexts/credential-core/verification-service/ports"
)

type Module struct {
	Service application.Service
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Badges   ports.BadgeSource
	Issuers  ports.IssuerDirectory
	Requests ports.RequestStore
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Badges:   deps.Badges,
		Issuers:  deps.Issuers,
		Requests: deps.Requests,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
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
	badges ports.BadgeSource,
	issuers ports.IssuerDirectory,
	clk ports.Clock,
	logger *slog.Logger,
) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Badges:   badges,
		Issuers:  issuers,
		Requests: store,
		Clock:    clk,
		Logger:   logger,
	})
	module.Store = store
	return module
}
