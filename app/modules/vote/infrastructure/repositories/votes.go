package votedb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new vote repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) UpsertPlayerVotes(ctx context.Context, db bun.IDB, votes []PlayerVote) error {
	if len(votes) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(&votes).
		On("CONFLICT (kl_matchday_id, player_id) DO UPDATE").
		Set("base_vote = EXCLUDED.base_vote").
		Set("goals = EXCLUDED.goals").
		Set("goals_double = EXCLUDED.goals_double").
		Set("penalties_scored = EXCLUDED.penalties_scored").
		Set("penalties_missed = EXCLUDED.penalties_missed").
		Set("assists = EXCLUDED.assists").
		Set("yellow_cards = EXCLUDED.yellow_cards").
		Set("red_cards = EXCLUDED.red_cards").
		Set("clean_sheet = EXCLUDED.clean_sheet").
		Set("shootout_scored = EXCLUDED.shootout_scored").
		Set("shootout_missed = EXCLUDED.shootout_missed").
		Set("own_goals = EXCLUDED.own_goals").
		Set("goals_conceded = EXCLUDED.goals_conceded").
		Set("shootout_conceded = EXCLUDED.shootout_conceded").
		Set("minutes_played = EXCLUDED.minutes_played").
		Set("final_score = EXCLUDED.final_score").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert player votes: %w", err)
	}
	return nil
}

func (r *Impl) UpsertPresidentVotes(ctx context.Context, db bun.IDB, votes []PresidentVote) error {
	if len(votes) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(&votes).
		On("CONFLICT (kl_matchday_id, president_id) DO UPDATE").
		Set("penalty_scored = EXCLUDED.penalty_scored").
		Set("penalty_missed = EXCLUDED.penalty_missed").
		Set("final_score = EXCLUDED.final_score").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert president votes: %w", err)
	}
	return nil
}

func (r *Impl) InsertPlayerVotes(ctx context.Context, db bun.IDB, votes []PlayerVote) (int, error) {
	if len(votes) == 0 {
		return 0, nil
	}
	db = r.resolveDB(db)
	res, err := db.NewInsert().
		Model(&votes).
		On("CONFLICT (kl_matchday_id, player_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert player votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted player votes: %w", err)
	}
	return int(n), nil
}

func (r *Impl) InsertPresidentVotes(ctx context.Context, db bun.IDB, votes []PresidentVote) (int, error) {
	if len(votes) == 0 {
		return 0, nil
	}
	db = r.resolveDB(db)
	res, err := db.NewInsert().
		Model(&votes).
		On("CONFLICT (kl_matchday_id, president_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to insert president votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted president votes: %w", err)
	}
	return int(n), nil
}

func (r *Impl) ListPlayerVotesByMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) ([]PlayerVote, error) {
	db = r.resolveDB(db)
	var votes []PlayerVote
	if err := db.NewSelect().
		Model(&votes).
		Where("kl_matchday_id = ?", matchdayID).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list player votes: %w", err)
	}
	return votes, nil
}

func (r *Impl) ListPresidentVotesByMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) ([]PresidentVote, error) {
	db = r.resolveDB(db)
	var votes []PresidentVote
	if err := db.NewSelect().
		Model(&votes).
		Where("kl_matchday_id = ?", matchdayID).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list president votes: %w", err)
	}
	return votes, nil
}

func (r *Impl) ListPlayerVotesByPlayer(ctx context.Context, db bun.IDB, playerID uuid.UUID) ([]PlayerVote, error) {
	db = r.resolveDB(db)
	var votes []PlayerVote
	if err := db.NewSelect().
		Model(&votes).
		Where("player_id = ?", playerID).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list votes for player: %w", err)
	}
	return votes, nil
}

// CountVotesForMatchday counts player and president rows together.
func (r *Impl) CountVotesForMatchday(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (int, error) {
	db = r.resolveDB(db)
	players, err := db.NewSelect().
		Model((*PlayerVote)(nil)).
		Where("kl_matchday_id = ?", matchdayID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count player votes: %w", err)
	}
	presidents, err := db.NewSelect().
		Model((*PresidentVote)(nil)).
		Where("kl_matchday_id = ?", matchdayID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count president votes: %w", err)
	}
	return players + presidents, nil
}
