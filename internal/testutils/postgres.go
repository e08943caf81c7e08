package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/migrate"

	_ "github.com/jackc/pgx/v5/stdlib"

	rostermigrations "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories/migrations"
	scoringmigrations "github.com/fantakl/votes-admin/app/modules/scoring/infrastructure/repositories/migrations"
	votemigrations "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories/migrations"
)

const (
	dbName    = "testdb"
	dbUser    = "testuser"
	dbPass    = "testpass"
	imageName = "postgres:16-alpine"
)

// SkipUnlessIntegration skips t unless INTEGRATION_TESTS=1.
func SkipUnlessIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("INTEGRATION_TESTS") != "1" {
		t.Skip("set INTEGRATION_TESTS=1 to run repository tests against Postgres")
	}
}

// SetupPostgresContainer starts Postgres and returns the container and a
// sslmode=disable connection string.
func SetupPostgresContainer(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	pgContainer, err := postgres.Run(ctx,
		imageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPass),
		testcontainers.WithWaitStrategy(
			wait.ForSQL("5432/tcp", "pgx",
				func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						dbUser, dbPass, host, port.Port(), dbName)
				},
			).WithStartupTimeout(45*time.Second),
		),
	)
	if err != nil {
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get postgres connection string: %w", err)
	}

	parsedURL, err := url.Parse(connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to parse connection string: %w", err)
	}
	query := parsedURL.Query()
	query.Set("sslmode", "disable")
	parsedURL.RawQuery = query.Encode()

	return pgContainer, parsedURL.String(), nil
}

// NewTestDB starts a container, applies every module's migrations in
// dependency order and registers cleanup on t.
func NewTestDB(t *testing.T) *bun.DB {
	t.Helper()
	SkipUnlessIntegration(t)

	ctx := context.Background()
	pgContainer, connStr, err := SetupPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("failed to set up postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open sql DB connection: %v", err)
	}
	db := bun.NewDB(sqlDB, pgdialect.New())
	t.Cleanup(func() { db.Close() })

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// RunMigrations applies scoring, roster and vote migrations in that order.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	ordered := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"scoring", scoringmigrations.Migrations},
		{"roster", rostermigrations.Migrations},
		{"vote", votemigrations.Migrations},
	}
	for _, m := range ordered {
		migrator := migrate.NewMigrator(db, m.migrations,
			migrate.WithTableName("bun_migrations_"+m.name),
			migrate.WithLocksTableName("bun_migration_locks_"+m.name),
		)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", m.name, err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("apply %s migrations: %w", m.name, err)
		}
	}
	return nil
}
