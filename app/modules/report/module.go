package report

import (
	"context"

	"github.com/fantakl/votes-admin/app/observability"
	reportservice "github.com/fantakl/votes-admin/app/modules/report/application"
	reporthandlers "github.com/fantakl/votes-admin/app/modules/report/infrastructure/handlers"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	votedb "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the report module.
type Module struct {
	Service  reportservice.Service
	Handlers *reporthandlers.ReportHandlers
}

// NewReportModule reads from the vote and roster repositories; it owns no tables.
func NewReportModule(
	ctx context.Context,
	obs observability.Observability,
	db *bun.DB,
	votes votedb.Repository,
	roster rosterdb.Repository,
) *Module {
	obs.Logger.InfoContext(ctx, "report.NewReportModule initializing")

	service := reportservice.NewReportService(votes, roster, obs.Logger, obs.Metrics, obs.Tracer, db)
	return &Module{
		Service:  service,
		Handlers: reporthandlers.NewReportHandlers(service, obs.Logger, obs.Tracer),
	}
}

func (m *Module) RegisterRoutes(r chi.Router) {
	m.Handlers.Routes(r)
}
