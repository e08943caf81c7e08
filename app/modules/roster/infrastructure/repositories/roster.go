package rosterdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a team, player or matchday does not exist.
var ErrNotFound = errors.New("roster entry not found")

// roleOrderExpr sorts goalkeepers, defenders, midfielders, attackers.
const roleOrderExpr = "CASE p.role WHEN 'P' THEN 0 WHEN 'D' THEN 1 WHEN 'C' THEN 2 WHEN 'A' THEN 3 ELSE 4 END"

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new roster repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) ListMatchdays(ctx context.Context, db bun.IDB) ([]Matchday, error) {
	db = r.resolveDB(db)
	var matchdays []Matchday
	if err := db.NewSelect().
		Model(&matchdays).
		Order("matchday_number ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list matchdays: %w", err)
	}
	return matchdays, nil
}

func (r *Impl) GetMatchday(ctx context.Context, db bun.IDB, id uuid.UUID) (*Matchday, error) {
	db = r.resolveDB(db)
	matchday := new(Matchday)
	if err := db.NewSelect().
		Model(matchday).
		Where("id = ?", id).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get matchday: %w", err)
	}
	return matchday, nil
}

func (r *Impl) InsertMatchday(ctx context.Context, db bun.IDB, matchday *Matchday) error {
	db = r.resolveDB(db)
	if matchday.ID == uuid.Nil {
		matchday.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(matchday).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert matchday: %w", err)
	}
	return nil
}

func (r *Impl) ListTeams(ctx context.Context, db bun.IDB) ([]Team, error) {
	db = r.resolveDB(db)
	var teams []Team
	if err := db.NewSelect().
		Model(&teams).
		Order("name ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (r *Impl) GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	if err := db.NewSelect().
		Model(team).
		Where("id = ?", id).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (r *Impl) ListPlayersByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	if len(teamIDs) == 0 {
		return players, nil
	}
	if err := db.NewSelect().
		Model(&players).
		Where("p.team_id IN (?)", bun.In(teamIDs)).
		OrderExpr(roleOrderExpr).
		Order("p.name ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (r *Impl) GetPlayer(ctx context.Context, db bun.IDB, id uuid.UUID) (*Player, error) {
	db = r.resolveDB(db)
	player := new(Player)
	if err := db.NewSelect().
		Model(player).
		Where("id = ?", id).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (r *Impl) InsertPlayer(ctx context.Context, db bun.IDB, player *Player) error {
	db = r.resolveDB(db)
	if player.ID == uuid.Nil {
		player.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(player).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *Impl) ListPresidentsByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]President, error) {
	db = r.resolveDB(db)
	var presidents []President
	if len(teamIDs) == 0 {
		return presidents, nil
	}
	if err := db.NewSelect().
		Model(&presidents).
		Where("pr.team_id IN (?)", bun.In(teamIDs)).
		Order("pr.name ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list presidents: %w", err)
	}
	return presidents, nil
}
