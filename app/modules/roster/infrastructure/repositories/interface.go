package rosterdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for roster and calendar persistence.
type Repository interface {
	ListMatchdays(ctx context.Context, db bun.IDB) ([]Matchday, error)
	GetMatchday(ctx context.Context, db bun.IDB, id uuid.UUID) (*Matchday, error)
	InsertMatchday(ctx context.Context, db bun.IDB, matchday *Matchday) error

	ListTeams(ctx context.Context, db bun.IDB) ([]Team, error)
	GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*Team, error)

	// ListPlayersByTeams returns players of the given teams in display order.
	ListPlayersByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]Player, error)
	GetPlayer(ctx context.Context, db bun.IDB, id uuid.UUID) (*Player, error)
	InsertPlayer(ctx context.Context, db bun.IDB, player *Player) error

	ListPresidentsByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]President, error)
}
