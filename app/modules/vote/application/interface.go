package voteservice

import (
	"context"

	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
)

// Service drives the vote lifecycle of one match: load, start, save.
type Service interface {
	SelectMatch(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error)
	StartMatch(ctx context.Context, sel votedomain.MatchSelection) (*votedomain.MatchSession, error)
	SaveVotes(ctx context.Context, req SaveRequest) (*SaveSummary, error)
}

// ConfigLoader returns a fresh scoring configuration snapshot.
type ConfigLoader interface {
	Load(ctx context.Context) (scoringdomain.Config, error)
}
