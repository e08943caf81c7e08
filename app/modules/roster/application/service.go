package rosterservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	rosterdomain "github.com/fantakl/votes-admin/app/modules/roster/domain"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/operation"
	"github.com/fantakl/votes-admin/pkg/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// RosterService implements the Service interface.
type RosterService struct {
	repo      rosterdb.Repository
	publisher eventbus.Publisher
	dates     *DateParser
	logger    *slog.Logger
	runner    operation.Runner
}

// NewRosterService creates a new RosterService.
func NewRosterService(
	repo rosterdb.Repository,
	publisher eventbus.Publisher,
	dates *DateParser,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *RosterService {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = eventbus.Noop{}
	}
	if dates == nil {
		dates = NewDateParser(nil)
	}
	return &RosterService{
		repo:      repo,
		publisher: publisher,
		dates:     dates,
		logger:    logger,
		runner: operation.Runner{
			Service: "RosterService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			DB:      db,
		},
	}
}

func (s *RosterService) ListMatchdays(ctx context.Context) ([]rosterdb.Matchday, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ListMatchdays", "all", func(ctx context.Context) (results.OperationResult[[]rosterdb.Matchday, error], error) {
		matchdays, err := s.repo.ListMatchdays(ctx, nil)
		if err != nil {
			return results.OperationResult[[]rosterdb.Matchday, error]{}, apperrors.NewPersistenceError("list matchdays", err)
		}
		return results.SuccessResult[[]rosterdb.Matchday, error](matchdays), nil
	})
	return operation.Unwrap(result, err)
}

// ScheduleMatchday validates and inserts a new matchday.
func (s *RosterService) ScheduleMatchday(ctx context.Context, req ScheduleMatchdayRequest) (*rosterdb.Matchday, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ScheduleMatchday", fmt.Sprint(req.MatchdayNumber), func(ctx context.Context) (results.OperationResult[*rosterdb.Matchday, error], error) {
		if req.MatchdayNumber <= 0 {
			return results.FailureResult[*rosterdb.Matchday, error](apperrors.NewValidationError("matchday_number", "must be positive")), nil
		}
		date, err := s.dates.Parse(req.Date)
		if err != nil {
			return results.FailureResult[*rosterdb.Matchday, error](apperrors.NewValidationError("date", err.Error())), nil
		}

		matchday := &rosterdb.Matchday{
			ID:             uuid.New(),
			MatchdayNumber: req.MatchdayNumber,
			Date:           date,
			IsPlayoff:      req.IsPlayoff,
		}
		if err := s.repo.InsertMatchday(ctx, nil, matchday); err != nil {
			return results.OperationResult[*rosterdb.Matchday, error]{}, apperrors.NewPersistenceError("insert matchday", err)
		}
		return results.SuccessResult[*rosterdb.Matchday, error](matchday), nil
	})
	matchday, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, eventbus.MatchdayScheduledV1, eventbus.MatchdayScheduledPayloadV1{
		MatchdayID:     matchday.ID,
		MatchdayNumber: matchday.MatchdayNumber,
		Date:           matchday.Date,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish matchday scheduled", attr.Error(err))
	}
	return matchday, nil
}

func (s *RosterService) ListTeams(ctx context.Context) ([]rosterdb.Team, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ListTeams", "all", func(ctx context.Context) (results.OperationResult[[]rosterdb.Team, error], error) {
		teams, err := s.repo.ListTeams(ctx, nil)
		if err != nil {
			return results.OperationResult[[]rosterdb.Team, error]{}, apperrors.NewPersistenceError("list teams", err)
		}
		return results.SuccessResult[[]rosterdb.Team, error](teams), nil
	})
	return operation.Unwrap(result, err)
}

// GetRoster loads a team with its players and president.
func (s *RosterService) GetRoster(ctx context.Context, teamID uuid.UUID) (*TeamRoster, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "GetRoster", teamID.String(), func(ctx context.Context) (results.OperationResult[*TeamRoster, error], error) {
		return operation.Run(ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*TeamRoster, error], error) {
			return s.getRosterLogic(ctx, db, teamID)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *RosterService) getRosterLogic(ctx context.Context, db bun.IDB, teamID uuid.UUID) (results.OperationResult[*TeamRoster, error], error) {
	team, err := s.repo.GetTeam(ctx, db, teamID)
	if err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			return results.FailureResult[*TeamRoster, error](fmt.Errorf("team %s: %w", teamID, apperrors.ErrNotFound)), nil
		}
		return results.OperationResult[*TeamRoster, error]{}, apperrors.NewPersistenceError("get team", err)
	}

	players, err := s.repo.ListPlayersByTeams(ctx, db, []uuid.UUID{teamID})
	if err != nil {
		return results.OperationResult[*TeamRoster, error]{}, apperrors.NewPersistenceError("list players", err)
	}
	SortPlayers(players)

	presidents, err := s.repo.ListPresidentsByTeams(ctx, db, []uuid.UUID{teamID})
	if err != nil {
		return results.OperationResult[*TeamRoster, error]{}, apperrors.NewPersistenceError("list presidents", err)
	}

	roster := &TeamRoster{Team: *team, Players: players}
	if len(presidents) > 0 {
		roster.President = &presidents[0]
	}
	return results.SuccessResult[*TeamRoster, error](roster), nil
}

// AddPlayer validates the required fields and inserts a player.
func (s *RosterService) AddPlayer(ctx context.Context, req AddPlayerRequest) (*rosterdb.Player, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "AddPlayer", req.TeamID.String(), func(ctx context.Context) (results.OperationResult[*rosterdb.Player, error], error) {
		return operation.RunInTx(s.runner, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*rosterdb.Player, error], error) {
			return s.addPlayerLogic(ctx, db, req)
		})
	})
	player, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, eventbus.PlayerAddedV1, eventbus.PlayerAddedPayloadV1{
		PlayerID: player.ID,
		TeamID:   player.TeamID,
		Role:     string(player.Role),
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish player added", attr.Error(err))
	}
	return player, nil
}

func (s *RosterService) addPlayerLogic(ctx context.Context, db bun.IDB, req AddPlayerRequest) (results.OperationResult[*rosterdb.Player, error], error) {
	fail := func(field, msg string) (results.OperationResult[*rosterdb.Player, error], error) {
		return results.FailureResult[*rosterdb.Player, error](apperrors.NewValidationError(field, msg)), nil
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fail("name", "name is required")
	}
	if req.TeamID == uuid.Nil {
		return fail("team_id", "team is required")
	}
	role, ok := rosterdomain.ParseRole(req.Role)
	if !ok {
		return fail("role", "role must be one of P, D, C, A")
	}
	if req.OverallRating != nil && (*req.OverallRating < 0 || *req.OverallRating > 99) {
		return fail("overall_rating", "must be between 0 and 99")
	}

	if _, err := s.repo.GetTeam(ctx, db, req.TeamID); err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			return fail("team_id", "team does not exist")
		}
		return results.OperationResult[*rosterdb.Player, error]{}, apperrors.NewPersistenceError("get team", err)
	}

	player := &rosterdb.Player{
		ID:            uuid.New(),
		TeamID:        req.TeamID,
		Role:          role,
		Name:          name,
		IsWildcard:    req.IsWildcard,
		OverallRating: req.OverallRating,
		AvatarURL:     req.AvatarURL,
	}
	if err := s.repo.InsertPlayer(ctx, db, player); err != nil {
		return results.OperationResult[*rosterdb.Player, error]{}, apperrors.NewPersistenceError("insert player", err)
	}
	return results.SuccessResult[*rosterdb.Player, error](player), nil
}
