package votedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for vote persistence.
type Repository interface {
	// UpsertPlayerVotes writes all rows in one statement, updating rows that
	// already exist for (kl_matchday_id, player_id).
	UpsertPlayerVotes(ctx context.Context, db bun.IDB, votes []PlayerVote) error
	UpsertPresidentVotes(ctx context.Context, db bun.IDB, votes []PresidentVote) error

	// InsertPlayerVotes creates rows and leaves existing ones untouched.
	InsertPlayerVotes(ctx context.Context, db bun.IDB, votes []PlayerVote) (int, error)
	InsertPresidentVotes(ctx context.Context, db bun.IDB, votes []PresidentVote) (int, error)

	ListPlayerVotesByMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) ([]PlayerVote, error)
	ListPresidentVotesByMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) ([]PresidentVote, error)
	ListPlayerVotesByPlayer(ctx context.Context, db bun.IDB, playerID uuid.UUID) ([]PlayerVote, error)
	CountVotesForMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (int, error)
}
