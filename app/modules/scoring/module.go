package scoring

import (
	"context"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	scoringservice "github.com/fantakl/votes-admin/app/modules/scoring/application"
	scoringhandlers "github.com/fantakl/votes-admin/app/modules/scoring/infrastructure/handlers"
	scoringdb "github.com/fantakl/votes-admin/app/modules/scoring/infrastructure/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the scoring module.
type Module struct {
	Service  scoringservice.Service
	Handlers *scoringhandlers.ScoringHandlers
}

// NewScoringModule wires the scoring repository, service and handlers.
func NewScoringModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	db *bun.DB,
) *Module {
	obs.Logger.InfoContext(ctx, "scoring.NewScoringModule initializing")

	repo := scoringdb.NewRepository(db)
	service := scoringservice.NewScoringService(repo, publisher, obs.Logger, obs.Metrics, obs.Tracer, db)
	handlers := scoringhandlers.NewScoringHandlers(service, obs.Logger, obs.Tracer)

	return &Module{Service: service, Handlers: handlers}
}

// RegisterRoutes mounts the scoring endpoints on an /api router.
func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.Routes(r)
}
