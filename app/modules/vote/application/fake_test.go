package voteservice

import (
	"context"

	"github.com/fantakl/votes-admin/app/eventbus"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	votedb "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Vote Repo
// ------------------------

type FakeVoteRepo struct {
	trace []string

	PlayerVotes    []votedb.PlayerVote
	PresidentVotes []votedb.PresidentVote

	UpsertPlayerVotesFunc    func(ctx context.Context, db bun.IDB, votes []votedb.PlayerVote) error
	UpsertPresidentVotesFunc func(ctx context.Context, db bun.IDB, votes []votedb.PresidentVote) error
	InsertPlayerVotesFunc    func(ctx context.Context, db bun.IDB, votes []votedb.PlayerVote) (int, error)
	ListPlayerVotesFunc      func(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) ([]votedb.PlayerVote, error)
}

func NewFakeVoteRepo() *FakeVoteRepo {
	return &FakeVoteRepo{trace: []string{}}
}

func (f *FakeVoteRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeVoteRepo) UpsertPlayerVotes(ctx context.Context, db bun.IDB, votes []votedb.PlayerVote) error {
	f.record("UpsertPlayerVotes")
	if f.UpsertPlayerVotesFunc != nil {
		return f.UpsertPlayerVotesFunc(ctx, db, votes)
	}
	for _, v := range votes {
		replaced := false
		for i := range f.PlayerVotes {
			if f.PlayerVotes[i].MatchdayID == v.MatchdayID && f.PlayerVotes[i].PlayerID == v.PlayerID {
				id := f.PlayerVotes[i].ID
				f.PlayerVotes[i] = v
				f.PlayerVotes[i].ID = id
				replaced = true
			}
		}
		if !replaced {
			f.PlayerVotes = append(f.PlayerVotes, v)
		}
	}
	return nil
}

func (f *FakeVoteRepo) UpsertPresidentVotes(ctx context.Context, db bun.IDB, votes []votedb.PresidentVote) error {
	f.record("UpsertPresidentVotes")
	if f.UpsertPresidentVotesFunc != nil {
		return f.UpsertPresidentVotesFunc(ctx, db, votes)
	}
	for _, v := range votes {
		replaced := false
		for i := range f.PresidentVotes {
			if f.PresidentVotes[i].MatchdayID == v.MatchdayID && f.PresidentVotes[i].PresidentID == v.PresidentID {
				id := f.PresidentVotes[i].ID
				f.PresidentVotes[i] = v
				f.PresidentVotes[i].ID = id
				replaced = true
			}
		}
		if !replaced {
			f.PresidentVotes = append(f.PresidentVotes, v)
		}
	}
	return nil
}

func (f *FakeVoteRepo) InsertPlayerVotes(ctx context.Context, db bun.IDB, votes []votedb.PlayerVote) (int, error) {
	f.record("InsertPlayerVotes")
	if f.InsertPlayerVotesFunc != nil {
		return f.InsertPlayerVotesFunc(ctx, db, votes)
	}
	f.PlayerVotes = append(f.PlayerVotes, votes...)
	return len(votes), nil
}

func (f *FakeVoteRepo) InsertPresidentVotes(ctx context.Context, db bun.IDB, votes []votedb.PresidentVote) (int, error) {
	f.record("InsertPresidentVotes")
	f.PresidentVotes = append(f.PresidentVotes, votes...)
	return len(votes), nil
}

func (f *FakeVoteRepo) ListPlayerVotesByMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) ([]votedb.PlayerVote, error) {
	f.record("ListPlayerVotesByMatchday")
	if f.ListPlayerVotesFunc != nil {
		return f.ListPlayerVotesFunc(ctx, db, matchdayID)
	}
	var out []votedb.PlayerVote
	for _, v := range f.PlayerVotes {
		if v.MatchdayID == matchdayID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *FakeVoteRepo) ListPresidentVotesByMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) ([]votedb.PresidentVote, error) {
	f.record("ListPresidentVotesByMatchday")
	var out []votedb.PresidentVote
	for _, v := range f.PresidentVotes {
		if v.MatchdayID == matchdayID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *FakeVoteRepo) ListPlayerVotesByPlayer(ctx context.Context, db bun.IDB, playerID uuid.UUID) ([]votedb.PlayerVote, error) {
	f.record("ListPlayerVotesByPlayer")
	var out []votedb.PlayerVote
	for _, v := range f.PlayerVotes {
		if v.PlayerID == playerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *FakeVoteRepo) CountVotesForMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (int, error) {
	f.record("CountVotesForMatchday")
	players, _ := f.ListPlayerVotesByMatchday(ctx, db, matchdayID)
	presidents, _ := f.ListPresidentVotesByMatchday(ctx, db, matchdayID)
	return len(players) + len(presidents), nil
}

// Writes returns only the mutating calls.
func (f *FakeVoteRepo) Writes() []string {
	out := []string{}
	for _, step := range f.trace {
		switch step {
		case "UpsertPlayerVotes", "UpsertPresidentVotes", "InsertPlayerVotes", "InsertPresidentVotes":
			out = append(out, step)
		}
	}
	return out
}

func (f *FakeVoteRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ votedb.Repository = (*FakeVoteRepo)(nil)

// ------------------------
// Fake Roster Repo
// ------------------------

// FakeRosterRepo serves a fixed in-memory league.
type FakeRosterRepo struct {
	Matchdays  map[uuid.UUID]rosterdb.Matchday
	Teams      map[uuid.UUID]rosterdb.Team
	Players    []rosterdb.Player
	Presidents []rosterdb.President

	GetTeamFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Team, error)
}

func NewFakeRosterRepo() *FakeRosterRepo {
	return &FakeRosterRepo{
		Matchdays: map[uuid.UUID]rosterdb.Matchday{},
		Teams:     map[uuid.UUID]rosterdb.Team{},
	}
}

func (f *FakeRosterRepo) ListMatchdays(ctx context.Context, db bun.IDB) ([]rosterdb.Matchday, error) {
	out := make([]rosterdb.Matchday, 0, len(f.Matchdays))
	for _, m := range f.Matchdays {
		out = append(out, m)
	}
	return out, nil
}

func (f *FakeRosterRepo) GetMatchday(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Matchday, error) {
	m, ok := f.Matchdays[id]
	if !ok {
		return nil, rosterdb.ErrNotFound
	}
	return &m, nil
}

func (f *FakeRosterRepo) InsertMatchday(ctx context.Context, db bun.IDB, matchday *rosterdb.Matchday) error {
	f.Matchdays[matchday.ID] = *matchday
	return nil
}

func (f *FakeRosterRepo) ListTeams(ctx context.Context, db bun.IDB) ([]rosterdb.Team, error) {
	out := make([]rosterdb.Team, 0, len(f.Teams))
	for _, t := range f.Teams {
		out = append(out, t)
	}
	return out, nil
}

func (f *FakeRosterRepo) GetTeam(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Team, error) {
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, db, id)
	}
	t, ok := f.Teams[id]
	if !ok {
		return nil, rosterdb.ErrNotFound
	}
	return &t, nil
}

func (f *FakeRosterRepo) ListPlayersByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]rosterdb.Player, error) {
	var out []rosterdb.Player
	for _, p := range f.Players {
		for _, id := range teamIDs {
			if p.TeamID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f *FakeRosterRepo) GetPlayer(ctx context.Context, db bun.IDB, id uuid.UUID) (*rosterdb.Player, error) {
	for _, p := range f.Players {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, rosterdb.ErrNotFound
}

func (f *FakeRosterRepo) InsertPlayer(ctx context.Context, db bun.IDB, player *rosterdb.Player) error {
	f.Players = append(f.Players, *player)
	return nil
}

func (f *FakeRosterRepo) ListPresidentsByTeams(ctx context.Context, db bun.IDB, teamIDs []uuid.UUID) ([]rosterdb.President, error) {
	var out []rosterdb.President
	for _, p := range f.Presidents {
		for _, id := range teamIDs {
			if p.TeamID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

var _ rosterdb.Repository = (*FakeRosterRepo)(nil)

// ------------------------
// Fake Config Loader
// ------------------------

type FakeConfigLoader struct {
	Calls    int
	LoadFunc func(ctx context.Context) (scoringdomain.Config, error)
}

func (f *FakeConfigLoader) Load(ctx context.Context) (scoringdomain.Config, error) {
	f.Calls++
	if f.LoadFunc != nil {
		return f.LoadFunc(ctx)
	}
	return scoringdomain.NewConfig(scoringdomain.DefaultCoefficients), nil
}

var _ ConfigLoader = (*FakeConfigLoader)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics   []string
	Payloads []any
}

func (f *FakePublisher) Publish(ctx context.Context, topic string, payload any) error {
	f.Topics = append(f.Topics, topic)
	f.Payloads = append(f.Payloads, payload)
	return nil
}

var _ eventbus.Publisher = (*FakePublisher)(nil)
