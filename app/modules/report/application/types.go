package reportservice

import (
	"time"

	"github.com/google/uuid"
)

// PlayerVoteLine is one exported player row.
type PlayerVoteLine struct {
	Team             string
	Player           string
	Role             string
	BaseVote         float64
	Goals            int
	GoalsDouble      int
	PenaltiesScored  int
	PenaltiesMissed  int
	Assists          int
	YellowCards      int
	RedCards         int
	ShootoutScored   int
	ShootoutMissed   int
	OwnGoals         int
	CleanSheet       bool
	GoalsConceded    int
	ShootoutConceded int
	MinutesPlayed    int
	FinalScore       float64
}

// PresidentVoteLine is one exported president row.
type PresidentVoteLine struct {
	Team       string
	President  string
	Penalty    string
	FinalScore float64
}

// MatchdaySheet is everything written to a matchday export.
type MatchdaySheet struct {
	MatchdayNumber int
	Date           time.Time
	Players        []PlayerVoteLine
	Presidents     []PresidentVoteLine
}

// ScorePoint is one matchday in a player's score history.
type ScorePoint struct {
	MatchdayID     uuid.UUID
	MatchdayNumber int
	Date           time.Time
	FinalScore     float64
}
