package eventbus

import (
	"time"

	"github.com/google/uuid"
)

const (
	MatchStartedV1          = "votes.match.started.v1"
	VotesSavedV1            = "votes.saved.v1"
	ScoringConfigUpdatedV1  = "scoring.config.updated.v1"
	MatchdayResultsComputed = "results.matchday.computed.v1"
	PlayerAddedV1           = "roster.player.added.v1"
	MatchdayScheduledV1     = "roster.matchday.scheduled.v1"
)

type MatchStartedPayloadV1 struct {
	MatchdayID     uuid.UUID `json:"matchday_id"`
	TeamAID        uuid.UUID `json:"team_a_id"`
	TeamBID        uuid.UUID `json:"team_b_id"`
	PlayerVotes    int       `json:"player_votes"`
	PresidentVotes int       `json:"president_votes"`
}

type VotesSavedPayloadV1 struct {
	MatchdayID     uuid.UUID `json:"matchday_id"`
	PlayerVotes    int       `json:"player_votes"`
	PresidentVotes int       `json:"president_votes"`
	SavedAt        time.Time `json:"saved_at"`
}

type ScoringConfigUpdatedPayloadV1 struct {
	Keys []string `json:"keys"`
}

type MatchdayResultsComputedPayloadV1 struct {
	MatchdayID          uuid.UUID `json:"matchday_id"`
	Processed           int       `json:"processed"`
	CompetitionsUpdated int       `json:"competitions_updated"`
	Errors              int       `json:"errors"`
}

type PlayerAddedPayloadV1 struct {
	PlayerID uuid.UUID `json:"player_id"`
	TeamID   uuid.UUID `json:"team_id"`
	Role     string    `json:"role"`
}

type MatchdayScheduledPayloadV1 struct {
	MatchdayID     uuid.UUID `json:"matchday_id"`
	MatchdayNumber int       `json:"matchday_number"`
	Date           time.Time `json:"date"`
}
