package votedomain

import (
	rosterdomain "github.com/fantakl/votes-admin/app/modules/roster/domain"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	"github.com/google/uuid"
)

const (
	// PlayedBaseVote is the convenience value set when a player is marked as playing.
	PlayedBaseVote = 6.0
	// EliminatedBaseVote is the starting vote for players of eliminated teams.
	EliminatedBaseVote = 5.0
)

// DefaultBaseVote is the base vote written by the start step.
func DefaultBaseVote(teamEliminated bool) float64 {
	if teamEliminated {
		return EliminatedBaseVote
	}
	return PlayedBaseVote
}

// SetPlayed toggles a row between not playing (base vote 0) and playing
// (base vote 6.0). The admin may still edit the vote afterwards.
func SetPlayed(stats *scoringdomain.PlayerStats, played bool) {
	if played {
		stats.BaseVote = PlayedBaseVote
		return
	}
	stats.BaseVote = 0
}

// NewDefaultPlayerRow builds the row used before any vote is stored.
func NewDefaultPlayerRow(playerID, teamID uuid.UUID, name string, role rosterdomain.Role, teamEliminated bool) PlayerRow {
	base := DefaultBaseVote(teamEliminated)
	return PlayerRow{
		PlayerID:   playerID,
		TeamID:     teamID,
		Name:       name,
		Role:       role,
		Stats:      scoringdomain.PlayerStats{BaseVote: base},
		FinalScore: base,
	}
}

// NewDefaultPresidentRow builds a president row with no penalty outcome.
func NewDefaultPresidentRow(presidentID, teamID uuid.UUID, name string) PresidentRow {
	return PresidentRow{PresidentID: presidentID, TeamID: teamID, Name: name, Outcome: scoringdomain.PenaltyNone}
}
