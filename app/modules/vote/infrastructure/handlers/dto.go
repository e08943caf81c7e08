package votehandlers

import (
	"time"

	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
	"github.com/google/uuid"
)

type selectionRequest struct {
	MatchdayID uuid.UUID `json:"matchday_id"`
	TeamAID    uuid.UUID `json:"team_a_id"`
	TeamBID    uuid.UUID `json:"team_b_id"`
}

func (r selectionRequest) toDomain() votedomain.MatchSelection {
	return votedomain.MatchSelection{MatchdayID: r.MatchdayID, TeamAID: r.TeamAID, TeamBID: r.TeamBID}
}

// PlayerStatsDTO mirrors the editor columns of a player row.
type PlayerStatsDTO struct {
	BaseVote         float64 `json:"base_vote"`
	Goals            int     `json:"goals"`
	GoalsDouble      int     `json:"goals_double"`
	PenaltiesScored  int     `json:"penalties_scored"`
	PenaltiesMissed  int     `json:"penalties_missed"`
	Assists          int     `json:"assists"`
	YellowCards      int     `json:"yellow_cards"`
	RedCards         int     `json:"red_cards"`
	ShootoutScored   int     `json:"shootout_scored"`
	ShootoutMissed   int     `json:"shootout_missed"`
	OwnGoals         int     `json:"own_goals"`
	CleanSheet       bool    `json:"clean_sheet"`
	GoalsConceded    int     `json:"goals_conceded"`
	ShootoutConceded int     `json:"shootout_conceded"`
	MinutesPlayed    int     `json:"minutes_played"`
}

type playerVoteRequest struct {
	PlayerID uuid.UUID `json:"player_id"`
	Played   *bool     `json:"played"`
	PlayerStatsDTO
}

type presidentVoteRequest struct {
	PresidentID   uuid.UUID `json:"president_id"`
	PenaltyScored bool      `json:"penalty_scored"`
	PenaltyMissed bool      `json:"penalty_missed"`
}

type saveRequest struct {
	selectionRequest
	Players    []playerVoteRequest    `json:"players"`
	Presidents []presidentVoteRequest `json:"presidents"`
}

type TeamDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	IsEliminated bool      `json:"is_eliminated"`
}

type PlayerRowDTO struct {
	PlayerID   uuid.UUID `json:"player_id"`
	TeamID     uuid.UUID `json:"team_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Played     bool      `json:"played"`
	Goalkeeper bool      `json:"goalkeeper"`
	PlayerStatsDTO
	FinalScore float64 `json:"final_score"`
	Stored     bool    `json:"stored"`
}

type PresidentRowDTO struct {
	PresidentID uuid.UUID `json:"president_id"`
	TeamID      uuid.UUID `json:"team_id"`
	Name        string    `json:"name"`
	Penalty     string    `json:"penalty"`
	FinalScore  float64   `json:"final_score"`
	Stored      bool      `json:"stored"`
}

// SessionResponse is the editor state for one match.
type SessionResponse struct {
	MatchdayID     uuid.UUID          `json:"matchday_id"`
	MatchdayNumber int                `json:"matchday_number"`
	Title          string             `json:"title"`
	TeamA          TeamDTO            `json:"team_a"`
	TeamB          TeamDTO            `json:"team_b"`
	State          string             `json:"state"`
	Editable       bool               `json:"editable"`
	Coefficients   map[string]float64 `json:"coefficients"`
	Players        []PlayerRowDTO     `json:"players"`
	Presidents     []PresidentRowDTO  `json:"presidents"`
}

type ScoredVoteDTO struct {
	ID         uuid.UUID `json:"id"`
	FinalScore float64   `json:"final_score"`
}

// SaveResponse reports the derived scores of a save.
type SaveResponse struct {
	Status     string          `json:"status"`
	MatchdayID uuid.UUID       `json:"matchday_id"`
	Implicit   bool            `json:"implicit"`
	Players    []ScoredVoteDTO `json:"players"`
	Presidents []ScoredVoteDTO `json:"presidents"`
	SavedAt    time.Time       `json:"saved_at"`
}
