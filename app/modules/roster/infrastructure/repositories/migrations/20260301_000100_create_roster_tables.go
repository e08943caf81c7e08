package rostermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating roster tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS kl_matchdays (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					matchday_number INTEGER NOT NULL,
					date TIMESTAMPTZ NOT NULL,
					is_playoff BOOLEAN NOT NULL DEFAULT FALSE
				);
				CREATE INDEX IF NOT EXISTS idx_kl_matchdays_number ON kl_matchdays(matchday_number);
			`); err != nil {
				return fmt.Errorf("failed to create kl_matchdays table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS kings_league_teams (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name TEXT NOT NULL,
					is_eliminated BOOLEAN NOT NULL DEFAULT FALSE
				);
			`); err != nil {
				return fmt.Errorf("failed to create kings_league_teams table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS players (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					team_id UUID NOT NULL REFERENCES kings_league_teams(id),
					role CHAR(1) NOT NULL CHECK (role IN ('P', 'D', 'C', 'A')),
					name TEXT NOT NULL,
					is_wildcard BOOLEAN NOT NULL DEFAULT FALSE,
					overall_rating INTEGER,
					avatar_url TEXT
				);
				CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id);
			`); err != nil {
				return fmt.Errorf("failed to create players table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS presidents (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					team_id UUID NOT NULL REFERENCES kings_league_teams(id),
					name TEXT NOT NULL
				);
				CREATE INDEX IF NOT EXISTS idx_presidents_team_id ON presidents(team_id);
			`); err != nil {
				return fmt.Errorf("failed to create presidents table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping roster tables...")
		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS presidents;
			DROP TABLE IF EXISTS players;
			DROP TABLE IF EXISTS kings_league_teams;
			DROP TABLE IF EXISTS kl_matchdays;
		`)
		return err
	})
}
