package rosterhandlers

import (
	"context"

	rosterservice "github.com/fantakl/votes-admin/app/modules/roster/application"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/google/uuid"
)

// ------------------------
// Fake Roster Service
// ------------------------

type FakeRosterService struct {
	trace []string

	ListMatchdaysFunc    func(ctx context.Context) ([]rosterdb.Matchday, error)
	ScheduleMatchdayFunc func(ctx context.Context, req rosterservice.ScheduleMatchdayRequest) (*rosterdb.Matchday, error)
	ListTeamsFunc        func(ctx context.Context) ([]rosterdb.Team, error)
	GetRosterFunc        func(ctx context.Context, teamID uuid.UUID) (*rosterservice.TeamRoster, error)
	AddPlayerFunc        func(ctx context.Context, req rosterservice.AddPlayerRequest) (*rosterdb.Player, error)
}

func NewFakeRosterService() *FakeRosterService {
	return &FakeRosterService{trace: []string{}}
}

func (f *FakeRosterService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRosterService) ListMatchdays(ctx context.Context) ([]rosterdb.Matchday, error) {
	f.record("ListMatchdays")
	if f.ListMatchdaysFunc != nil {
		return f.ListMatchdaysFunc(ctx)
	}
	return nil, nil
}

func (f *FakeRosterService) ScheduleMatchday(ctx context.Context, req rosterservice.ScheduleMatchdayRequest) (*rosterdb.Matchday, error) {
	f.record("ScheduleMatchday")
	if f.ScheduleMatchdayFunc != nil {
		return f.ScheduleMatchdayFunc(ctx, req)
	}
	return &rosterdb.Matchday{}, nil
}

func (f *FakeRosterService) ListTeams(ctx context.Context) ([]rosterdb.Team, error) {
	f.record("ListTeams")
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx)
	}
	return nil, nil
}

func (f *FakeRosterService) GetRoster(ctx context.Context, teamID uuid.UUID) (*rosterservice.TeamRoster, error) {
	f.record("GetRoster")
	if f.GetRosterFunc != nil {
		return f.GetRosterFunc(ctx, teamID)
	}
	return &rosterservice.TeamRoster{}, nil
}

func (f *FakeRosterService) AddPlayer(ctx context.Context, req rosterservice.AddPlayerRequest) (*rosterdb.Player, error) {
	f.record("AddPlayer")
	if f.AddPlayerFunc != nil {
		return f.AddPlayerFunc(ctx, req)
	}
	return &rosterdb.Player{}, nil
}

func (f *FakeRosterService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ rosterservice.Service = (*FakeRosterService)(nil)
