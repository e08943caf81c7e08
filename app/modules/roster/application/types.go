package rosterservice

import (
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/google/uuid"
)

// TeamRoster is a team with its players in display order and optional president.
type TeamRoster struct {
	Team      rosterdb.Team
	Players   []rosterdb.Player
	President *rosterdb.President
}

// AddPlayerRequest holds the fields required to add a roster entry.
type AddPlayerRequest struct {
	TeamID        uuid.UUID
	Name          string
	Role          string
	IsWildcard    bool
	OverallRating *int
	AvatarURL     *string
}

// ScheduleMatchdayRequest creates a matchday. Date accepts a calendar date or
// a natural-language phrase.
type ScheduleMatchdayRequest struct {
	MatchdayNumber int
	Date           string
	IsPlayoff      bool
}
