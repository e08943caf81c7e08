package voteservice

import (
	"time"

	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
	"github.com/google/uuid"
)

// PlayerVoteInput is one submitted player row. When Played is false the base
// vote is forced to 0; when it is true and no base vote was entered the
// row gets the 6.0 default.
type PlayerVoteInput struct {
	PlayerID      uuid.UUID
	Played        *bool
	Stats         scoringdomain.PlayerStats
	MinutesPlayed int
}

// PresidentVoteInput is one submitted president row.
type PresidentVoteInput struct {
	PresidentID   uuid.UUID
	PenaltyScored bool
	PenaltyMissed bool
}

// SaveRequest carries the editor contents for one match.
type SaveRequest struct {
	Selection  votedomain.MatchSelection
	Players    []PlayerVoteInput
	Presidents []PresidentVoteInput
}

// ScoredVote is the derived score written for one subject.
type ScoredVote struct {
	ID         uuid.UUID
	FinalScore float64
}

// SaveSummary reports what a save wrote.
type SaveSummary struct {
	MatchdayID uuid.UUID
	// Implicit is true when the save created the rows without a start step.
	Implicit   bool
	Players    []ScoredVote
	Presidents []ScoredVote
	SavedAt    time.Time
}
