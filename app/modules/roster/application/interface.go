package rosterservice

import (
	"context"

	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/google/uuid"
)

// Service exposes roster and calendar lookups used to select a match.
type Service interface {
	ListMatchdays(ctx context.Context) ([]rosterdb.Matchday, error)
	ScheduleMatchday(ctx context.Context, req ScheduleMatchdayRequest) (*rosterdb.Matchday, error)
	ListTeams(ctx context.Context) ([]rosterdb.Team, error)
	GetRoster(ctx context.Context, teamID uuid.UUID) (*TeamRoster, error)
	AddPlayer(ctx context.Context, req AddPlayerRequest) (*rosterdb.Player, error)
}
