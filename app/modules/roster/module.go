package roster

import (
	"context"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	rosterservice "github.com/fantakl/votes-admin/app/modules/roster/application"
	rosterhandlers "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/handlers"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the roster module.
type Module struct {
	Repository rosterdb.Repository
	Service    rosterservice.Service
	Handlers   *rosterhandlers.RosterHandlers
}

// NewRosterModule wires the roster repository, service and handlers.
func NewRosterModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	db *bun.DB,
) *Module {
	obs.Logger.InfoContext(ctx, "roster.NewRosterModule initializing")

	repo := rosterdb.NewRepository(db)
	service := rosterservice.NewRosterService(repo, publisher, rosterservice.NewDateParser(nil), obs.Logger, obs.Metrics, obs.Tracer, db)
	handlers := rosterhandlers.NewRosterHandlers(service, obs.Logger, obs.Tracer)

	return &Module{Repository: repo, Service: service, Handlers: handlers}
}

func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.Routes(r)
}
