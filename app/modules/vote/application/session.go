package voteservice

import (
	"context"
	"errors"

	rosterservice "github.com/fantakl/votes-admin/app/modules/roster/application"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
	votedb "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type sessionResult = results.OperationResult[*votedomain.MatchSession, error]

func sessionFailure(err error) (sessionResult, error) {
	return results.FailureResult[*votedomain.MatchSession, error](err), nil
}

// loadSession reads everything needed to edit a selection and decides
// between NotStarted and Started.
func (s *VoteService) loadSession(ctx context.Context, db bun.IDB, sel votedomain.MatchSelection) (sessionResult, error) {
	if err := sel.Validate(); err != nil {
		return sessionFailure(err)
	}

	matchday, err := s.roster.GetMatchday(ctx, db, sel.MatchdayID)
	if err != nil {
		if errors.Is(err, rosterdb.ErrNotFound) {
			return sessionFailure(apperrors.NewValidationError("matchday_id", "matchday does not exist"))
		}
		return sessionResult{}, apperrors.NewPersistenceError("get matchday", err)
	}

	teams := make([]votedomain.TeamInfo, 0, 2)
	for _, t := range []struct {
		id    uuid.UUID
		field string
	}{{sel.TeamAID, "team_a_id"}, {sel.TeamBID, "team_b_id"}} {
		team, err := s.roster.GetTeam(ctx, db, t.id)
		if err != nil {
			if errors.Is(err, rosterdb.ErrNotFound) {
				return sessionFailure(apperrors.NewValidationError(t.field, "team does not exist"))
			}
			return sessionResult{}, apperrors.NewPersistenceError("get team", err)
		}
		teams = append(teams, votedomain.TeamInfo{ID: team.ID, Name: team.Name, IsEliminated: team.IsEliminated})
	}

	teamIDs := []uuid.UUID{sel.TeamAID, sel.TeamBID}
	players, err := s.roster.ListPlayersByTeams(ctx, db, teamIDs)
	if err != nil {
		return sessionResult{}, apperrors.NewPersistenceError("list players", err)
	}
	presidents, err := s.roster.ListPresidentsByTeams(ctx, db, teamIDs)
	if err != nil {
		return sessionResult{}, apperrors.NewPersistenceError("list presidents", err)
	}

	cfg, err := s.config.Load(ctx)
	if err != nil {
		return sessionResult{}, apperrors.NewPersistenceError("load scoring config", err)
	}

	playerVotes, err := s.votes.ListPlayerVotesByMatchday(ctx, db, sel.MatchdayID)
	if err != nil {
		return sessionResult{}, apperrors.NewPersistenceError("list player votes", err)
	}
	presidentVotes, err := s.votes.ListPresidentVotesByMatchday(ctx, db, sel.MatchdayID)
	if err != nil {
		return sessionResult{}, apperrors.NewPersistenceError("list president votes", err)
	}

	session := &votedomain.MatchSession{
		Selection:      sel,
		MatchdayNumber: matchday.MatchdayNumber,
		TeamA:          teams[0],
		TeamB:          teams[1],
		Config:         cfg,
	}
	session.Players = buildPlayerRows(session, players, playerVotes)
	session.Presidents = buildPresidentRows(presidents, presidentVotes)

	// Any pairing's rows on the matchday mark it Started.
	stored, err := s.votes.CountVotesForMatchday(ctx, db, sel.MatchdayID)
	if err != nil {
		return sessionResult{}, apperrors.NewPersistenceError("count votes", err)
	}
	session.State = votedomain.NotStarted
	if stored > 0 {
		session.State = votedomain.Started
	}
	session.Editable = s.policy.Editable(session.State)

	return results.SuccessResult[*votedomain.MatchSession, error](session), nil
}

// buildPlayerRows lists team A then team B, each in role order, overlaying
// stored votes on the defaults.
func buildPlayerRows(session *votedomain.MatchSession, players []rosterdb.Player, votes []votedb.PlayerVote) []votedomain.PlayerRow {
	stored := make(map[uuid.UUID]votedb.PlayerVote, len(votes))
	for _, v := range votes {
		stored[v.PlayerID] = v
	}

	byTeam := map[uuid.UUID][]rosterdb.Player{}
	for _, p := range players {
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}

	rows := make([]votedomain.PlayerRow, 0, len(players))
	for _, team := range []votedomain.TeamInfo{session.TeamA, session.TeamB} {
		teamPlayers := byTeam[team.ID]
		rosterservice.SortPlayers(teamPlayers)
		for _, p := range teamPlayers {
			row := votedomain.NewDefaultPlayerRow(p.ID, p.TeamID, p.Name, p.Role, team.IsEliminated)
			if v, ok := stored[p.ID]; ok {
				row.Stats = statsFromVote(v)
				row.MinutesPlayed = v.MinutesPlayed
				row.FinalScore = v.FinalScore
				row.Stored = true
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// buildPresidentRows keeps at most one president per team.
func buildPresidentRows(presidents []rosterdb.President, votes []votedb.PresidentVote) []votedomain.PresidentRow {
	stored := make(map[uuid.UUID]votedb.PresidentVote, len(votes))
	for _, v := range votes {
		stored[v.PresidentID] = v
	}

	seen := map[uuid.UUID]bool{}
	rows := make([]votedomain.PresidentRow, 0, len(presidents))
	for _, p := range presidents {
		if seen[p.TeamID] {
			continue
		}
		seen[p.TeamID] = true

		row := votedomain.NewDefaultPresidentRow(p.ID, p.TeamID, p.Name)
		if v, ok := stored[p.ID]; ok {
			switch {
			case v.PenaltyScored:
				row.Outcome = scoringdomain.PenaltyScored
			case v.PenaltyMissed:
				row.Outcome = scoringdomain.PenaltyMissed
			}
			row.FinalScore = v.FinalScore
			row.Stored = true
		}
		rows = append(rows, row)
	}
	return rows
}

func statsFromVote(v votedb.PlayerVote) scoringdomain.PlayerStats {
	return scoringdomain.PlayerStats{
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
	}
}
