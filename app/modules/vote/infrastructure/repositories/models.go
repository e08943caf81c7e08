package votedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PlayerVote is one player's statistics and derived score for a matchday.
type PlayerVote struct {
	bun.BaseModel `bun:"table:player_votes,alias:pv"`

	ID               uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	MatchdayID       uuid.UUID `bun:"kl_matchday_id,type:uuid,notnull"`
	PlayerID         uuid.UUID `bun:"player_id,type:uuid,notnull"`
	BaseVote         float64   `bun:"base_vote,notnull"`
	Goals            int       `bun:"goals,notnull"`
	GoalsDouble      int       `bun:"goals_double,notnull"`
	PenaltiesScored  int       `bun:"penalties_scored,notnull"`
	PenaltiesMissed  int       `bun:"penalties_missed,notnull"`
	Assists          int       `bun:"assists,notnull"`
	YellowCards      int       `bun:"yellow_cards,notnull"`
	RedCards         int       `bun:"red_cards,notnull"`
	CleanSheet       bool      `bun:"clean_sheet,notnull"`
	ShootoutScored   int       `bun:"shootout_scored,notnull"`
	ShootoutMissed   int       `bun:"shootout_missed,notnull"`
	OwnGoals         int       `bun:"own_goals,notnull"`
	GoalsConceded    int       `bun:"goals_conceded,notnull"`
	ShootoutConceded int       `bun:"shootout_conceded,notnull"`
	MinutesPlayed    int       `bun:"minutes_played,notnull"`
	FinalScore       float64   `bun:"final_score,notnull"`
	UpdatedAt        time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// PresidentVote is one president's penalty outcome for a matchday.
type PresidentVote struct {
	bun.BaseModel `bun:"table:president_votes,alias:prv"`

	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	MatchdayID    uuid.UUID `bun:"kl_matchday_id,type:uuid,notnull"`
	PresidentID   uuid.UUID `bun:"president_id,type:uuid,notnull"`
	PenaltyScored bool      `bun:"penalty_scored,notnull"`
	PenaltyMissed bool      `bun:"penalty_missed,notnull"`
	FinalScore    float64   `bun:"final_score,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
