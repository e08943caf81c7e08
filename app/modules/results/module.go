package results

import (
	"context"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	resultsservice "github.com/fantakl/votes-admin/app/modules/results/application"
	resultshandlers "github.com/fantakl/votes-admin/app/modules/results/infrastructure/handlers"
	resultsdb "github.com/fantakl/votes-admin/app/modules/results/infrastructure/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the results module.
type Module struct {
	Service  resultsservice.Service
	Handlers *resultshandlers.ResultsHandlers
}

func NewResultsModule(ctx context.Context, obs observability.Observability, publisher eventbus.Publisher, db *bun.DB) *Module {
	obs.Logger.InfoContext(ctx, "results.NewResultsModule initializing")

	service := resultsservice.NewResultsService(resultsdb.NewRepository(db), publisher, obs.Logger, obs.Metrics, obs.Tracer)
	return &Module{
		Service:  service,
		Handlers: resultshandlers.NewResultsHandlers(service, obs.Logger, obs.Tracer),
	}
}

func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.Routes(r)
}
