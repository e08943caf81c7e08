package scoringmigrations

import (
	"context"
	"fmt"

	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scoring_config table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS scoring_config (
					key TEXT PRIMARY KEY,
					value NUMERIC NOT NULL DEFAULT 0
				);
			`); err != nil {
				return fmt.Errorf("failed to create scoring_config table: %w", err)
			}

			for _, key := range scoringdomain.KnownKeys {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO scoring_config (key, value) VALUES (?, ?) ON CONFLICT (key) DO NOTHING`,
					string(key), scoringdomain.DefaultCoefficients[key],
				); err != nil {
					return fmt.Errorf("failed to seed scoring_config %s: %w", key, err)
				}
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scoring_config table...")
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS scoring_config;`)
		return err
	})
}
