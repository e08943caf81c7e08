package voteservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
	votedb "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/operation"
	"github.com/fantakl/votes-admin/pkg/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// VoteService implements the Service interface.
type VoteService struct {
	votes     votedb.Repository
	roster    rosterdb.Repository
	config    ConfigLoader
	policy    votedomain.Policy
	publisher eventbus.Publisher
	logger    *slog.Logger
	runner    operation.Runner
	now       func() time.Time
}

// NewVoteService creates a new VoteService.
func NewVoteService(
	votes votedb.Repository,
	roster rosterdb.Repository,
	config ConfigLoader,
	policy votedomain.Policy,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *VoteService {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = eventbus.Noop{}
	}
	return &VoteService{
		votes:     votes,
		roster:    roster,
		config:    config,
		policy:    policy,
		publisher: publisher,
		logger:    logger,
		runner: operation.Runner{
			Service: "VoteService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			DB:      db,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// SelectMatch loads rosters, presidents and any stored votes for a selection.
func (s *VoteService) SelectMatch(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "SelectMatch", sel.MatchdayID.String(), func(ctx context.Context) (sessionResult, error) {
		return operation.Run(ctx, func(ctx context.Context, db bun.IDB) (sessionResult, error) {
			return s.loadSession(ctx, db, sel)
		})
	})
	return operation.Unwrap(result, err)
}

// StartMatch creates default votes for every player and president of both
// teams. It is only valid while the match is NotStarted.
func (s *VoteService) StartMatch(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error) {
	var created struct{ players, presidents int }

	result, err := operation.WithTelemetry(s.runner, ctx, "StartMatch", sel.MatchdayID.String(), func(ctx context.Context) (sessionResult, error) {
		return operation.RunInTx(s.runner, ctx, func(ctx context.Context, db bun.IDB) (sessionResult, error) {
			loaded, err := s.loadSession(ctx, db, sel)
			if err != nil || loaded.IsFailure() {
				return loaded, err
			}
			session := *loaded.Success

			if session.State == votedomain.Started {
				return sessionFailure(votedomain.ErrMatchAlreadyStarted)
			}

			now := s.now()
			playerVotes := make([]votedb.PlayerVote, 0, len(session.Players))
			for _, row := range session.Players {
				playerVotes = append(playerVotes, votedb.PlayerVote{
					ID:         uuid.New(),
					MatchdayID: sel.MatchdayID,
					PlayerID:   row.PlayerID,
					BaseVote:   row.Stats.BaseVote,
					FinalScore: row.Stats.BaseVote,
					UpdatedAt:  now,
				})
			}
			presidentVotes := make([]votedb.PresidentVote, 0, len(session.Presidents))
			for _, row := range session.Presidents {
				presidentVotes = append(presidentVotes, votedb.PresidentVote{
					ID:          uuid.New(),
					MatchdayID:  sel.MatchdayID,
					PresidentID: row.PresidentID,
					UpdatedAt:   now,
				})
			}

			if created.players, err = s.votes.InsertPlayerVotes(ctx, db, playerVotes); err != nil {
				return sessionResult{}, apperrors.NewPersistenceError("insert player votes", err)
			}
			if created.presidents, err = s.votes.InsertPresidentVotes(ctx, db, presidentVotes); err != nil {
				return sessionResult{}, apperrors.NewPersistenceError("insert president votes", err)
			}

			session.MarkStarted()
			return results.SuccessResult[*votedomain.MatchSession, error](session), nil
		})
	})
	session, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, eventbus.MatchStartedV1, eventbus.MatchStartedPayloadV1{
		MatchdayID:     sel.MatchdayID,
		TeamAID:        sel.TeamAID,
		TeamBID:        sel.TeamBID,
		PlayerVotes:    created.players,
		PresidentVotes: created.presidents,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish match started",
			attr.UUID("matchday_id", sel.MatchdayID),
			attr.Error(err),
		)
	}
	return session, nil
}

// SaveVotes validates, scores and upserts the submitted rows in one transaction.
func (s *VoteService) SaveVotes(ctx context.Context, req SaveRequest) (*SaveSummary, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "SaveVotes", req.Selection.MatchdayID.String(), func(ctx context.Context) (results.OperationResult[*SaveSummary, error], error) {
		return operation.RunInTx(s.runner, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*SaveSummary, error], error) {
			return s.saveVotesLogic(ctx, db, req)
		})
	})
	summary, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, eventbus.VotesSavedV1, eventbus.VotesSavedPayloadV1{
		MatchdayID:     summary.MatchdayID,
		PlayerVotes:    len(summary.Players),
		PresidentVotes: len(summary.Presidents),
		SavedAt:        summary.SavedAt,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish votes saved",
			attr.UUID("matchday_id", summary.MatchdayID),
			attr.Error(err),
		)
	}
	return summary, nil
}

func (s *VoteService) saveVotesLogic(ctx context.Context, db bun.IDB, req SaveRequest) (results.OperationResult[*SaveSummary, error], error) {
	fail := func(err error) (results.OperationResult[*SaveSummary, error], error) {
		return results.FailureResult[*SaveSummary, error](err), nil
	}

	if err := req.Selection.Validate(); err != nil {
		return fail(err)
	}
	if len(req.Players) == 0 && len(req.Presidents) == 0 {
		return fail(apperrors.NewValidationError("players", "nothing to save"))
	}

	loaded, err := s.loadSession(ctx, db, req.Selection)
	if err != nil {
		return results.OperationResult[*SaveSummary, error]{}, err
	}
	if loaded.IsFailure() {
		return fail(*loaded.Failure)
	}
	session := *loaded.Success

	implicit := session.State == votedomain.NotStarted
	if implicit && s.policy.RequireExplicitStart {
		return fail(votedomain.ErrMatchNotStarted)
	}

	playerVotes, presidentVotes, err := s.scoreRows(session, req)
	if err != nil {
		return fail(err)
	}

	if err := s.votes.UpsertPlayerVotes(ctx, db, playerVotes); err != nil {
		return results.OperationResult[*SaveSummary, error]{}, apperrors.NewPersistenceError("upsert player votes", err)
	}
	if err := s.votes.UpsertPresidentVotes(ctx, db, presidentVotes); err != nil {
		return results.OperationResult[*SaveSummary, error]{}, apperrors.NewPersistenceError("upsert president votes", err)
	}

	summary := &SaveSummary{
		MatchdayID: req.Selection.MatchdayID,
		Implicit:   implicit,
		Players:    make([]ScoredVote, 0, len(playerVotes)),
		Presidents: make([]ScoredVote, 0, len(presidentVotes)),
		SavedAt:    s.now(),
	}
	for _, v := range playerVotes {
		summary.Players = append(summary.Players, ScoredVote{ID: v.PlayerID, FinalScore: v.FinalScore})
	}
	for _, v := range presidentVotes {
		summary.Presidents = append(summary.Presidents, ScoredVote{ID: v.PresidentID, FinalScore: v.FinalScore})
	}
	return results.SuccessResult[*SaveSummary, error](summary), nil
}

// scoreRows validates every submitted row against the session and computes
// its final score with the session's config snapshot. Any invalid row
// rejects the whole batch.
func (s *VoteService) scoreRows(session *votedomain.MatchSession, req SaveRequest) ([]votedb.PlayerVote, []votedb.PresidentVote, error) {
	playerIndex := make(map[uuid.UUID]votedomain.PlayerRow, len(session.Players))
	for _, row := range session.Players {
		playerIndex[row.PlayerID] = row
	}
	presidentIndex := make(map[uuid.UUID]votedomain.PresidentRow, len(session.Presidents))
	for _, row := range session.Presidents {
		presidentIndex[row.PresidentID] = row
	}

	now := s.now()
	seen := map[uuid.UUID]bool{}

	playerVotes := make([]votedb.PlayerVote, 0, len(req.Players))
	for i, in := range req.Players {
		field := fmt.Sprintf("players[%d]", i)
		row, ok := playerIndex[in.PlayerID]
		if !ok {
			return nil, nil, apperrors.NewValidationError(field+".player_id", "player does not belong to the selected teams")
		}
		if seen[in.PlayerID] {
			return nil, nil, apperrors.NewValidationError(field+".player_id", "player submitted twice")
		}
		seen[in.PlayerID] = true

		stats := in.Stats
		if in.Played != nil {
			switch {
			case !*in.Played:
				votedomain.SetPlayed(&stats, false)
			case stats.BaseVote == 0:
				votedomain.SetPlayed(&stats, true)
			}
		}
		if err := votedomain.ValidatePlayerStats(field, stats, in.MinutesPlayed); err != nil {
			return nil, nil, err
		}

		goalkeeper := row.Role.IsGoalkeeper()
		stats = scoringdomain.GateGoalkeeperFields(stats, goalkeeper)
		playerVotes = append(playerVotes, votedb.PlayerVote{
			ID:               uuid.New(),
			MatchdayID:       session.Selection.MatchdayID,
			PlayerID:         in.PlayerID,
			BaseVote:         stats.BaseVote,
			Goals:            stats.Goals,
			GoalsDouble:      stats.GoalsDouble,
			PenaltiesScored:  stats.PenaltiesScored,
			PenaltiesMissed:  stats.PenaltiesMissed,
			Assists:          stats.Assists,
			YellowCards:      stats.YellowCards,
			RedCards:         stats.RedCards,
			CleanSheet:       stats.CleanSheet,
			ShootoutScored:   stats.ShootoutScored,
			ShootoutMissed:   stats.ShootoutMissed,
			OwnGoals:         stats.OwnGoals,
			GoalsConceded:    stats.GoalsConceded,
			ShootoutConceded: stats.ShootoutConceded,
			MinutesPlayed:    in.MinutesPlayed,
			FinalScore:       scoringdomain.PlayerScore(stats, goalkeeper, session.Config),
			UpdatedAt:        now,
		})
	}

	presidentVotes := make([]votedb.PresidentVote, 0, len(req.Presidents))
	for i, in := range req.Presidents {
		field := fmt.Sprintf("presidents[%d]", i)
		if _, ok := presidentIndex[in.PresidentID]; !ok {
			return nil, nil, apperrors.NewValidationError(field+".president_id", "president does not belong to the selected teams")
		}
		if seen[in.PresidentID] {
			return nil, nil, apperrors.NewValidationError(field+".president_id", "president submitted twice")
		}
		seen[in.PresidentID] = true

		outcome, err := votedomain.PenaltyOutcomeFromFlags(field, in.PenaltyScored, in.PenaltyMissed)
		if err != nil {
			return nil, nil, err
		}
		presidentVotes = append(presidentVotes, votedb.PresidentVote{
			ID:            uuid.New(),
			MatchdayID:    session.Selection.MatchdayID,
			PresidentID:   in.PresidentID,
			PenaltyScored: in.PenaltyScored,
			PenaltyMissed: in.PenaltyMissed,
			FinalScore:    scoringdomain.PresidentScore(outcome, session.Config),
			UpdatedAt:     now,
		})
	}

	return playerVotes, presidentVotes, nil
}
