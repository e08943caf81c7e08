package votemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating vote tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS player_votes (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					kl_matchday_id UUID NOT NULL REFERENCES kl_matchdays(id),
					player_id UUID NOT NULL REFERENCES players(id),
					base_vote NUMERIC(4,1) NOT NULL DEFAULT 0 CHECK (base_vote >= 0 AND base_vote <= 10),
					goals INTEGER NOT NULL DEFAULT 0,
					goals_double INTEGER NOT NULL DEFAULT 0,
					penalties_scored INTEGER NOT NULL DEFAULT 0,
					penalties_missed INTEGER NOT NULL DEFAULT 0,
					assists INTEGER NOT NULL DEFAULT 0,
					yellow_cards INTEGER NOT NULL DEFAULT 0,
					red_cards INTEGER NOT NULL DEFAULT 0,
					clean_sheet BOOLEAN NOT NULL DEFAULT FALSE,
					shootout_scored INTEGER NOT NULL DEFAULT 0,
					shootout_missed INTEGER NOT NULL DEFAULT 0,
					own_goals INTEGER NOT NULL DEFAULT 0,
					goals_conceded INTEGER NOT NULL DEFAULT 0,
					shootout_conceded INTEGER NOT NULL DEFAULT 0,
					minutes_played INTEGER NOT NULL DEFAULT 0,
					final_score NUMERIC NOT NULL DEFAULT 0,
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT player_votes_matchday_player_key UNIQUE (kl_matchday_id, player_id)
				);
				CREATE INDEX IF NOT EXISTS idx_player_votes_player_id ON player_votes(player_id);
			`); err != nil {
				return fmt.Errorf("failed to create player_votes table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS president_votes (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					kl_matchday_id UUID NOT NULL REFERENCES kl_matchdays(id),
					president_id UUID NOT NULL REFERENCES presidents(id),
					penalty_scored BOOLEAN NOT NULL DEFAULT FALSE,
					penalty_missed BOOLEAN NOT NULL DEFAULT FALSE,
					final_score NUMERIC NOT NULL DEFAULT 0,
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT president_votes_matchday_president_key UNIQUE (kl_matchday_id, president_id),
					CONSTRAINT president_votes_single_outcome CHECK (NOT (penalty_scored AND penalty_missed))
				);
			`); err != nil {
				return fmt.Errorf("failed to create president_votes table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping vote tables...")
		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS president_votes;
			DROP TABLE IF EXISTS player_votes;
		`)
		return err
	})
}
