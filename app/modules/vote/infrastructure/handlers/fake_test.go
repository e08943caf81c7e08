package votehandlers

import (
	"context"

	voteservice "github.com/fantakl/votes-admin/app/modules/vote/application"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
)

// ------------------------
// Fake Vote Service
// ------------------------

type FakeVoteService struct {
	trace []string

	SelectMatchFunc func(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error)
	StartMatchFunc  func(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error)
	SaveVotesFunc   func(ctx context.Context, req voteservice.SaveRequest) (*voteservice.SaveSummary, error)
}

func NewFakeVoteService() *FakeVoteService {
	return &FakeVoteService{trace: []string{}}
}

func (f *FakeVoteService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeVoteService) SelectMatch(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error) {
	f.record("SelectMatch")
	if f.SelectMatchFunc != nil {
		return f.SelectMatchFunc(ctx, sel)
	}
	return &votedomain.MatchSession{Selection: sel}, nil
}

func (f *FakeVoteService) StartMatch(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error) {
	f.record("StartMatch")
	if f.StartMatchFunc != nil {
		return f.StartMatchFunc(ctx, sel)
	}
	return &votedomain.MatchSession{Selection: sel, State: votedomain.Started, Editable: true}, nil
}

func (f *FakeVoteService) SaveVotes(ctx context.Context, req voteservice.SaveRequest) (*voteservice.SaveSummary, error) {
	f.record("SaveVotes")
	if f.SaveVotesFunc != nil {
		return f.SaveVotesFunc(ctx, req)
	}
	return &voteservice.SaveSummary{MatchdayID: req.Selection.MatchdayID}, nil
}

func (f *FakeVoteService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ voteservice.Service = (*FakeVoteService)(nil)
