package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/modules/auth"
	"github.com/fantakl/votes-admin/app/modules/report"
	resultsmodule "github.com/fantakl/votes-admin/app/modules/results"
	"github.com/fantakl/votes-admin/app/modules/roster"
	"github.com/fantakl/votes-admin/app/modules/scoring"
	"github.com/fantakl/votes-admin/app/modules/vote"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
	"github.com/fantakl/votes-admin/app/observability"
	"github.com/fantakl/votes-admin/config"
	"github.com/fantakl/votes-admin/db/bundb"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/uptrace/bun"
)

// Modules holds every wired module.
type Modules struct {
	Scoring *scoring.Module
	Roster  *roster.Module
	Vote    *vote.Module
	Results *resultsmodule.Module
	Report  *report.Module
	Auth    *auth.Module
}

// App owns the shared infrastructure and the HTTP router.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      *eventbus.EventBus
	Modules       Modules
	Router        http.Handler
}

// NewApp connects to Postgres and the event bus and builds every module.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	obs, err := observability.New(observability.Config{
		Environment:    cfg.Observability.Environment,
		LogLevel:       cfg.Observability.LogLevel,
		MetricsEnabled: cfg.Observability.MetricsEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	logger := obs.Logger

	db, err := bundb.Open(ctx, cfg.Postgres.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus, err := eventbus.New(cfg.NATS.URL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	modules := NewModules(ctx, cfg, obs, bus, db)

	logger.InfoContext(ctx, "Application initialized",
		attr.String("http_address", cfg.HTTP.Address),
		attr.Bool("require_explicit_start", cfg.Votes.RequireExplicitStart),
		attr.Bool("auth_enabled", cfg.JWT.Secret != ""),
	)

	return &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
		Modules:       modules,
		Router:        NewRouter(obs, modules),
	}, nil
}

// NewModules wires the modules in dependency order: the vote controller
// reads coefficients through the scoring service and rosters through the
// roster repository; the report reads both repositories.
func NewModules(ctx context.Context, cfg *config.Config, obs observability.Observability, publisher eventbus.Publisher, db *bun.DB) Modules {
	scoringModule := scoring.NewScoringModule(ctx, obs, publisher, db)
	rosterModule := roster.NewRosterModule(ctx, obs, publisher, db)
	voteModule := vote.NewVoteModule(ctx, obs, publisher, db,
		rosterModule.Repository,
		scoringModule.Service,
		votedomain.Policy{RequireExplicitStart: cfg.Votes.RequireExplicitStart},
	)

	return Modules{
		Scoring: scoringModule,
		Roster:  rosterModule,
		Vote:    voteModule,
		Results: resultsmodule.NewResultsModule(ctx, obs, publisher, db),
		Report:  report.NewReportModule(ctx, obs, db, voteModule.Repository, rosterModule.Repository),
		Auth:    auth.NewAuthModule(ctx, cfg, obs.Logger),
	}
}

// Close releases the event bus and database connections.
func (app *App) Close() error {
	var errs []error
	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event bus: %w", err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
