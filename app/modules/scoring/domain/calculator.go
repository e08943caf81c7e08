package scoringdomain

import "math"

// PlayerStats are the raw per-match inputs for one player.
type PlayerStats struct {
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
}

// PenaltyOutcome is a president's penalty kick result.
type PenaltyOutcome int

const (
	PenaltyNone PenaltyOutcome = iota
	PenaltyScored
	PenaltyMissed
)

func (o PenaltyOutcome) String() string {
	switch o {
	case PenaltyScored:
		return "scored"
	case PenaltyMissed:
		return "missed"
	default:
		return "none"
	}
}

// GateGoalkeeperFields clears clean sheet, goals conceded and shootout
// conceded unless the player is a goalkeeper.
func GateGoalkeeperFields(stats PlayerStats, goalkeeper bool) PlayerStats {
	if goalkeeper {
		return stats
	}
	stats.CleanSheet = false
	stats.GoalsConceded = 0
	stats.ShootoutConceded = 0
	return stats
}

// PlayerScore computes base vote plus weighted contributions, rounded to one
// decimal. Goalkeeper-only inputs are ignored for other roles. The result is
// not clamped.
func PlayerScore(stats PlayerStats, goalkeeper bool, cfg Config) float64 {
	stats = GateGoalkeeperFields(stats, goalkeeper)

	score := stats.BaseVote
	weighted := []struct {
		count int
		key   Key
	}{
		{stats.Goals, KeyGoalNormal},
		{stats.GoalsDouble, KeyGoalDouble},
		{stats.PenaltiesScored, KeyPenaltyScored},
		{stats.PenaltiesMissed, KeyPenaltyMissed},
		{stats.Assists, KeyAssist},
		{stats.YellowCards, KeyYellowCard},
		{stats.RedCards, KeyRedCard},
		{stats.ShootoutScored, KeyShootoutScored},
		{stats.ShootoutMissed, KeyShootoutMissed},
		{stats.OwnGoals, KeyOwnGoal},
		{stats.GoalsConceded, KeyGoalConceded},
		{stats.ShootoutConceded, KeyShootoutConceded},
	}
	for _, w := range weighted {
		score += float64(w.count) * cfg.Coefficient(w.key)
	}
	if stats.CleanSheet {
		score += cfg.Coefficient(KeyCleanSheet)
	}

	return RoundTenth(score)
}

// PresidentScore returns the configured weight for the outcome, 0 for none.
func PresidentScore(outcome PenaltyOutcome, cfg Config) float64 {
	switch outcome {
	case PenaltyScored:
		return cfg.Coefficient(KeyPresidentPenaltyScored)
	case PenaltyMissed:
		return cfg.Coefficient(KeyPresidentPenaltyMissed)
	default:
		return 0
	}
}

// RoundTenth rounds half up at the tenths digit.
func RoundTenth(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
