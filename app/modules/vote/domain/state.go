package votedomain

// MatchState is the lifecycle position of a selected match.
type MatchState int

const (
	NoMatchSelected MatchState = iota
	MatchLoaded
	NotStarted
	Started
)

func (s MatchState) String() string {
	switch s {
	case MatchLoaded:
		return "match_loaded"
	case NotStarted:
		return "not_started"
	case Started:
		return "started"
	default:
		return "no_match_selected"
	}
}

// Policy controls whether votes must be initialized before the first save.
type Policy struct {
	RequireExplicitStart bool
}

// Editable reports whether rows in state s accept edits under p.
func (p Policy) Editable(s MatchState) bool {
	switch s {
	case Started:
		return true
	case NotStarted:
		return !p.RequireExplicitStart
	default:
		return false
	}
}
