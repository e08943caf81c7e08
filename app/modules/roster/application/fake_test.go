package rosterservice

import (
	"context"
	"time"

	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Roster Repo
// ------------------------

type FakeRosterRepo struct {
	trace []string

	ListMatchdaysFunc         func(ctx context.Context, db bun.IDB) ([]rosterdb.Matchday, error)
	GetMatchdayFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Matchday, error)
	InsertMatchdayFunc        func(ctx context.Context, db bun.IDB, matchday *rosterdb.Matchday) error
	ListTeamsFunc             func(ctx context.Context, db bun.IDB) ([]rosterdb.Team, error)
	GetTeamFunc               func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Team, error)
	ListPlayersByTeamsFunc    func(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]rosterdb.Player, error)
	GetPlayerFunc             func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Player, error)
	InsertPlayerFunc          func(ctx context.Context, db bun.IDB, player *rosterdb.Player) error
	ListPresidentsByTeamsFunc func(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]rosterdb.President, error)
}

func NewFakeRosterRepo() *FakeRosterRepo {
	return &FakeRosterRepo{trace: []string{}}
}

func (f *FakeRosterRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRosterRepo) ListMatchdays(ctx context.Context, db bun.IDB) ([]rosterdb.Matchday, error) {
	f.record("ListMatchdays")
	if f.ListMatchdaysFunc != nil {
		return f.ListMatchdaysFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeRosterRepo) GetMatchday(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Matchday, error) {
	f.record("GetMatchday")
	if f.GetMatchdayFunc != nil {
		return f.GetMatchdayFunc(ctx, db, id)
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) InsertMatchday(ctx context.Context, db bun.IDB, matchday *rosterdb.Matchday) error {
	f.record("InsertMatchday")
	if f.InsertMatchdayFunc != nil {
		return f.InsertMatchdayFunc(ctx, db, matchday)
	}
	return nil
}

func (f *FakeRosterRepo) ListTeams(ctx context.Context, db bun.IDB) ([]rosterdb.Team, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeRosterRepo) GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Team, error) {
	f.record("GetTeam")
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, db, id)
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) ListPlayersByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]rosterdb.Player, error) {
	f.record("ListPlayersByTeams")
	if f.ListPlayersByTeamsFunc != nil {
		return f.ListPlayersByTeamsFunc(ctx, db, teamIDs)
	}
	return nil, nil
}

func (f *FakeRosterRepo) GetPlayer(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Player, error) {
	f.record("GetPlayer")
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, db, id)
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) InsertPlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player) error {
	f.record("InsertPlayer")
	if f.InsertPlayerFunc != nil {
		return f.InsertPlayerFunc(ctx, db, player)
	}
	return nil
}

func (f *FakeRosterRepo) ListPresidentsByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]rosterdb.President, error) {
	f.record("ListPresidentsByTeams")
	if f.ListPresidentsByTeamsFunc != nil {
		return f.ListPresidentsByTeamsFunc(ctx, db, teamIDs)
	}
	return nil, nil
}

func (f *FakeRosterRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ rosterdb.Repository = (*FakeRosterRepo)(nil)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
