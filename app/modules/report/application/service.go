package reportservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/fantakl/votes-admin/app/observability"
	rosterservice "github.com/fantakl/votes-admin/app/modules/roster/application"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	votedb "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/operation"
	"github.com/fantakl/votes-admin/pkg/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pngContentType  = "image/png"
)

// ReportService implements the Service interface.
type ReportService struct {
	votes   votedb.Repository
	roster  rosterdb.Repository
	palette ChartPalette
	runner  operation.Runner
}

// NewReportService creates a new ReportService.
func NewReportService(
	votes votedb.Repository,
	roster rosterdb.Repository,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ReportService {
	return &ReportService{
		votes:   votes,
		roster:  roster,
		palette: DefaultPalette,
		runner: operation.Runner{
			Service: "ReportService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			DB:      db,
		},
	}
}

// ExportMatchday writes every stored vote of a matchday to an XLSX workbook.
func (s *ReportService) ExportMatchday(ctx context.Context, matchdayID uuid.UUID) (*Export, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ExportMatchday", matchdayID.String(), func(ctx context.Context) (results.OperationResult[*Export, error], error) {
		return operation.Run(ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*Export, error], error) {
			return s.exportMatchdayLogic(ctx, db, matchdayID)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *ReportService) exportMatchdayLogic(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (results.OperationResult[*Export, error], error) {
	matchday, err := s.roster.GetMatchday(ctx, db, matchdayID)
	if err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			return results.FailureResult[*Export, error](fmt.Errorf("matchday %s: %w", matchdayID, apperrors.ErrNotFound)), nil
		}
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("get matchday", err)
	}

	count, err := s.votes.CountVotesForMatchday(ctx, db, matchdayID)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("count votes", err)
	}
	if count == 0 {
		return results.FailureResult[*Export, error](fmt.Errorf("no votes recorded for matchday %d: %w", matchday.MatchdayNumber, apperrors.ErrNotFound)), nil
	}

	teams, err := s.roster.ListTeams(ctx, db)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("list teams", err)
	}
	teamNames := make(map[uuid.UUID]string, len(teams))
	teamIDs := make([]uuid.UUID, 0, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
		teamIDs = append(teamIDs, t.ID)
	}

	players, err := s.roster.ListPlayersByTeams(ctx, db, teamIDs)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("list players", err)
	}
	presidents, err := s.roster.ListPresidentsByTeams(ctx, db, teamIDs)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("list presidents", err)
	}
	playerVotes, err := s.votes.ListPlayerVotesByMatchday(ctx, db, matchdayID)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("list player votes", err)
	}
	presidentVotes, err := s.votes.ListPresidentVotesByMatchday(ctx, db, matchdayID)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("list president votes", err)
	}

	sheet := MatchdaySheet{
		MatchdayNumber: matchday.MatchdayNumber,
		Date:           matchday.Date,
		Players:        playerLines(teamNames, players, playerVotes),
		Presidents:     presidentLines(teamNames, presidents, presidentVotes),
	}
	data, err := BuildMatchdayWorkbook(sheet)
	if err != nil {
		return results.OperationResult[*Export, error]{}, err
	}

	return results.SuccessResult[*Export, error](&Export{
		FileName:    ExportFileName(matchday.MatchdayNumber),
		ContentType: xlsxContentType,
		Data:        data,
	}), nil
}

// playerLines keeps roster order (team, role, name) for players with a vote.
func playerLines(teamNames map[uuid.UUID]string, players []rosterdb.Player, votes []votedb.PlayerVote) []PlayerVoteLine {
	byPlayer := make(map[uuid.UUID]votedb.PlayerVote, len(votes))
	for _, v := range votes {
		byPlayer[v.PlayerID] = v
	}

	rosterservice.SortPlayers(players)
	slices.SortStableFunc(players, func(a, b rosterdb.Player) int {
		return strings.Compare(teamNames[a.TeamID], teamNames[b.TeamID])
	})

	lines := make([]PlayerVoteLine, 0, len(votes))
	for _, p := range players {
		v, ok := byPlayer[p.ID]
		if !ok {
			continue
		}
		lines = append(lines, PlayerVoteLine{
			Team:             teamNames[p.TeamID],
			Player:           p.Name,
			Role:             string(p.Role),
			BaseVote:         v.BaseVote,
			Goals:            v.Goals,
			GoalsDouble:      v.GoalsDouble,
			PenaltiesScored:  v.PenaltiesScored,
			PenaltiesMissed:  v.PenaltiesMissed,
			Assists:          v.Assists,
			YellowCards:      v.YellowCards,
			RedCards:         v.RedCards,
			ShootoutScored:   v.ShootoutScored,
			ShootoutMissed:   v.ShootoutMissed,
			OwnGoals:         v.OwnGoals,
			CleanSheet:       v.CleanSheet,
			GoalsConceded:    v.GoalsConceded,
			ShootoutConceded: v.ShootoutConceded,
			MinutesPlayed:    v.MinutesPlayed,
			FinalScore:       v.FinalScore,
		})
	}
	return lines
}

func presidentLines(teamNames map[uuid.UUID]string, presidents []rosterdb.President, votes []votedb.PresidentVote) []PresidentVoteLine {
	byPresident := make(map[uuid.UUID]votedb.PresidentVote, len(votes))
	for _, v := range votes {
		byPresident[v.PresidentID] = v
	}

	lines := make([]PresidentVoteLine, 0, len(votes))
	for _, p := range presidents {
		v, ok := byPresident[p.ID]
		if !ok {
			continue
		}
		outcome := scoringdomain.PenaltyNone
		if v.PenaltyScored {
			outcome = scoringdomain.PenaltyScored
		} else if v.PenaltyMissed {
			outcome = scoringdomain.PenaltyMissed
		}
		lines = append(lines, PresidentVoteLine{
			Team:       teamNames[p.TeamID],
			President:  p.Name,
			Penalty:    outcome.String(),
			FinalScore: v.FinalScore,
		})
	}
	slices.SortStableFunc(lines, func(a, b PresidentVoteLine) int {
		return strings.Compare(a.Team, b.Team)
	})
	return lines
}

// PlayerScoreChart renders a player's final score over the matchdays they
// have a vote for.
func (s *ReportService) PlayerScoreChart(ctx context.Context, playerID uuid.UUID) (*Export, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "PlayerScoreChart", playerID.String(), func(ctx context.Context) (results.OperationResult[*Export, error], error) {
		return operation.Run(ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*Export, error], error) {
			return s.playerScoreChartLogic(ctx, db, playerID)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *ReportService) playerScoreChartLogic(ctx context.Context, db bun.IDB, playerID uuid.UUID) (results.OperationResult[*Export, error], error) {
	player, err := s.roster.GetPlayer(ctx, db, playerID)
	if err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			return results.FailureResult[*Export, error](fmt.Errorf("player %s: %w", playerID, apperrors.ErrNotFound)), nil
		}
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("get player", err)
	}

	votes, err := s.votes.ListPlayerVotesByPlayer(ctx, db, playerID)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("list player votes", err)
	}
	matchdays, err := s.roster.ListMatchdays(ctx, db)
	if err != nil {
		return results.OperationResult[*Export, error]{}, apperrors.NewPersistenceError("list matchdays", err)
	}

	history := ScoreHistory(votes, matchdays)
	data, err := RenderScoreHistoryChart(player.Name, history, s.palette)
	if err != nil {
		return results.OperationResult[*Export, error]{}, err
	}
	return results.SuccessResult[*Export, error](&Export{
		FileName:    fmt.Sprintf("%s.png", playerID),
		ContentType: pngContentType,
		Data:        data,
	}), nil
}

// ScoreHistory joins votes to their matchdays, oldest first. Rows for a
// non-playing player (base vote 0) are skipped.
func ScoreHistory(votes []votedb.PlayerVote, matchdays []rosterdb.Matchday) []ScorePoint {
	byID := make(map[uuid.UUID]rosterdb.Matchday, len(matchdays))
	for _, m := range matchdays {
		byID[m.ID] = m
	}

	points := make([]ScorePoint, 0, len(votes))
	for _, v := range votes {
		m, ok := byID[v.MatchdayID]
		if !ok || v.BaseVote <= 0 {
			continue
		}
		points = append(points, ScorePoint{
			MatchdayID:     m.ID,
			MatchdayNumber: m.MatchdayNumber,
			Date:           m.Date,
			FinalScore:     v.FinalScore,
		})
	}
	slices.SortFunc(points, func(a, b ScorePoint) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return a.MatchdayNumber - b.MatchdayNumber
	})
	return points
}
