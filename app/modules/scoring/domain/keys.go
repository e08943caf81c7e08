package scoringdomain

// Key names a scoring coefficient.
type Key string

const (
	KeyGoalNormal             Key = "goal_normal"
	KeyGoalDouble             Key = "goal_double"
	KeyPenaltyScored          Key = "penalty_scored"
	KeyPenaltyMissed          Key = "penalty_missed"
	KeyAssist                 Key = "assist"
	KeyYellowCard             Key = "yellow_card"
	KeyRedCard                Key = "red_card"
	KeyCleanSheet             Key = "clean_sheet"
	KeyShootoutScored         Key = "shootout_scored"
	KeyShootoutMissed         Key = "shootout_missed"
	KeyOwnGoal                Key = "own_goal"
	KeyGoalConceded           Key = "goal_conceded"
	KeyShootoutConceded       Key = "shootout_conceded"
	KeyPresidentPenaltyScored Key = "president_penalty_scored"
	KeyPresidentPenaltyMissed Key = "president_penalty_missed"
)

// KnownKeys lists every coefficient the calculator reads, in display order.
var KnownKeys = []Key{
	KeyGoalNormal,
	KeyGoalDouble,
	KeyPenaltyScored,
	KeyPenaltyMissed,
	KeyAssist,
	KeyYellowCard,
	KeyRedCard,
	KeyCleanSheet,
	KeyShootoutScored,
	KeyShootoutMissed,
	KeyOwnGoal,
	KeyGoalConceded,
	KeyShootoutConceded,
	KeyPresidentPenaltyScored,
	KeyPresidentPenaltyMissed,
}

// DefaultCoefficients seeds a fresh database.
var DefaultCoefficients = map[Key]float64{
	KeyGoalNormal:             3,
	KeyGoalDouble:             6,
	KeyPenaltyScored:          3,
	KeyPenaltyMissed:          -3,
	KeyAssist:                 1,
	KeyYellowCard:             -0.5,
	KeyRedCard:                -1,
	KeyCleanSheet:             1,
	KeyShootoutScored:         1,
	KeyShootoutMissed:         -1,
	KeyOwnGoal:                -2,
	KeyGoalConceded:           -1,
	KeyShootoutConceded:       -0.5,
	KeyPresidentPenaltyScored: 2,
	KeyPresidentPenaltyMissed: -1,
}

// IsKnown reports whether k is one of KnownKeys.
func (k Key) IsKnown() bool {
	_, ok := DefaultCoefficients[k]
	return ok
}

func (k Key) String() string {
	return string(k)
}
