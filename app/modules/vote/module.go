package vote

import (
	"context"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	voteservice "github.com/fantakl/votes-admin/app/modules/vote/application"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
	votehandlers "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/handlers"
	votedb "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the vote module.
type Module struct {
	Repository votedb.Repository
	Service    voteservice.Service
	Handlers   *votehandlers.VoteHandlers
}

// NewVoteModule wires the vote lifecycle on top of the roster repository and
// the scoring configuration.
func NewVoteModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	db *bun.DB,
	roster rosterdb.Repository,
	config voteservice.ConfigLoader,
	policy votedomain.Policy,
) *Module {
	obs.Logger.InfoContext(ctx, "vote.NewVoteModule initializing",
		"require_explicit_start", policy.RequireExplicitStart,
	)

	repo := votedb.NewRepository(db)
	service := voteservice.NewVoteService(repo, roster, config, policy, publisher, obs.Logger, obs.Metrics, obs.Tracer, db)
	handlers := votehandlers.NewVoteHandlers(service, obs.Logger, obs.Tracer)

	return &Module{Repository: repo, Service: service, Handlers: handlers}
}

func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.Routes(r)
}
