package rosterdb

import (
	"time"

	rosterdomain "github.com/fantakl/votes-admin/app/modules/roster/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Team is a competing roster.
type Team struct {
	bun.BaseModel `bun:"table:kings_league_teams,alias:t"`

	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name         string    `bun:"name,notnull"`
	IsEliminated bool      `bun:"is_eliminated,notnull,default:false"`
}

// Player is a rostered athlete.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID            uuid.UUID         `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	TeamID        uuid.UUID         `bun:"team_id,type:uuid,notnull"`
	Role          rosterdomain.Role `bun:"role,notnull"`
	Name          string            `bun:"name,notnull"`
	IsWildcard    bool              `bun:"is_wildcard,notnull,default:false"`
	OverallRating *int              `bun:"overall_rating"`
	AvatarURL     *string           `bun:"avatar_url"`
}

// President is a team's non-playing scored participant.
type President struct {
	bun.BaseModel `bun:"table:presidents,alias:pr"`

	ID     uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	TeamID uuid.UUID `bun:"team_id,type:uuid,notnull"`
	Name   string    `bun:"name,notnull"`
}

// Matchday is a scheduled round.
type Matchday struct {
	bun.BaseModel `bun:"table:kl_matchdays,alias:md"`

	ID             uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	MatchdayNumber int       `bun:"matchday_number,notnull"`
	Date           time.Time `bun:"date,notnull"`
	IsPlayoff      bool      `bun:"is_playoff,notnull,default:false"`
}
