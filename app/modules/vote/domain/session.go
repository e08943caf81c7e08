package votedomain

import (
	rosterdomain "github.com/fantakl/votes-admin/app/modules/roster/domain"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/google/uuid"
)

// MatchSelection identifies the match being edited.
type MatchSelection struct {
	MatchdayID uuid.UUID
	TeamAID    uuid.UUID
	TeamBID    uuid.UUID
}

// Validate checks that a matchday and two distinct teams were chosen.
func (s MatchSelection) Validate() error {
	switch {
	case s.MatchdayID == uuid.Nil:
		return apperrors.NewValidationError("matchday_id", "please select matchday and both teams")
	case s.TeamAID == uuid.Nil:
		return apperrors.NewValidationError("team_a_id", "please select matchday and both teams")
	case s.TeamBID == uuid.Nil:
		return apperrors.NewValidationError("team_b_id", "please select matchday and both teams")
	case s.TeamAID == s.TeamBID:
		return apperrors.NewValidationError("team_b_id", "please select different teams")
	}
	return nil
}

// TeamInfo is the part of a team the editor needs.
type TeamInfo struct {
	ID           uuid.UUID
	Name         string
	IsEliminated bool
}

// PlayerRow is one editable player line.
type PlayerRow struct {
	PlayerID      uuid.UUID
	TeamID        uuid.UUID
	Name          string
	Role          rosterdomain.Role
	Stats         scoringdomain.PlayerStats
	MinutesPlayed int
	FinalScore    float64
	// Stored is true when the values came from a persisted vote.
	Stored bool
}

// Played reports whether the player took part, i.e. has a positive base vote.
func (r PlayerRow) Played() bool {
	return r.Stats.BaseVote > 0
}

// PresidentRow is one editable president line.
type PresidentRow struct {
	PresidentID uuid.UUID
	TeamID      uuid.UUID
	Name        string
	Outcome     scoringdomain.PenaltyOutcome
	FinalScore  float64
	Stored      bool
}

// MatchSession carries everything loaded for one selection. It is built per
// request and never shared.
type MatchSession struct {
	Selection      MatchSelection
	MatchdayNumber int
	TeamA          TeamInfo
	TeamB          TeamInfo
	State          MatchState
	Editable       bool
	Config         scoringdomain.Config
	Players        []PlayerRow
	Presidents     []PresidentRow
}

// Team returns the selected team with the given id.
func (s *MatchSession) Team(id uuid.UUID) (TeamInfo, bool) {
	switch id {
	case s.TeamA.ID:
		return s.TeamA, true
	case s.TeamB.ID:
		return s.TeamB, true
	}
	return TeamInfo{}, false
}

// MarkStarted flips the session to Started after rows were created.
func (s *MatchSession) MarkStarted() {
	s.State = Started
	s.Editable = true
	for i := range s.Players {
		s.Players[i].Stored = true
	}
	for i := range s.Presidents {
		s.Presidents[i].Stored = true
	}
}
