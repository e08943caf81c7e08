package votedomain

import (
	"fmt"
	"math"

	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	"github.com/fantakl/votes-admin/pkg/apperrors"
)

const (
	MinBaseVote = 0.0
	MaxBaseVote = 10.0

	// base_vote is stored as NUMERIC(4,1).
	baseVoteScale = 10
)

// ValidatePlayerStats checks the base vote range and precision and that no
// counter is negative.
// field prefixes the reported field name, e.g. "players[3]".
func ValidatePlayerStats(field string, stats scoringdomain.PlayerStats, minutesPlayed int) error {
	if math.IsNaN(stats.BaseVote) || stats.BaseVote < MinBaseVote || stats.BaseVote > MaxBaseVote {
		return apperrors.NewValidationError(field+".base_vote", fmt.Sprintf("must be between %.0f and %.0f", MinBaseVote, MaxBaseVote))
	}
	if scaled := stats.BaseVote * baseVoteScale; math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		return apperrors.NewValidationError(field+".base_vote", "must have at most one decimal")
	}

	counters := []struct {
		name  string
		value int
	}{
		{"goals", stats.Goals},
		{"goals_double", stats.GoalsDouble},
		{"penalties_scored", stats.PenaltiesScored},
		{"penalties_missed", stats.PenaltiesMissed},
		{"assists", stats.Assists},
		{"yellow_cards", stats.YellowCards},
		{"red_cards", stats.RedCards},
		{"shootout_scored", stats.ShootoutScored},
		{"shootout_missed", stats.ShootoutMissed},
		{"own_goals", stats.OwnGoals},
		{"goals_conceded", stats.GoalsConceded},
		{"shootout_conceded", stats.ShootoutConceded},
		{"minutes_played", minutesPlayed},
	}
	for _, c := range counters {
		if c.value < 0 {
			return apperrors.NewValidationError(field+"."+c.name, "must not be negative")
		}
	}
	return nil
}

// PenaltyOutcomeFromFlags converts the stored flag pair. Both flags set is invalid.
func PenaltyOutcomeFromFlags(field string, scored, missed bool) (scoringdomain.PenaltyOutcome, error) {
	switch {
	case scored && missed:
		return scoringdomain.PenaltyNone, apperrors.NewValidationError(field, "penalty cannot be both scored and missed")
	case scored:
		return scoringdomain.PenaltyScored, nil
	case missed:
		return scoringdomain.PenaltyMissed, nil
	default:
		return scoringdomain.PenaltyNone, nil
	}
}

// PenaltyFlags is the inverse of PenaltyOutcomeFromFlags.
func PenaltyFlags(o scoringdomain.PenaltyOutcome) (scored, missed bool) {
	return o == scoringdomain.PenaltyScored, o == scoringdomain.PenaltyMissed
}
