package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	authdomain "github.com/fantakl/votes-admin/app/modules/auth/domain"
	authjwt "github.com/fantakl/votes-admin/app/modules/auth/infrastructure/jwt"
	"github.com/fantakl/votes-admin/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	rostermigrations "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories/migrations"
	scoringmigrations "github.com/fantakl/votes-admin/app/modules/scoring/infrastructure/repositories/migrations"
	votemigrations "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories/migrations"
)

// moduleMigrator pairs a module name with its migrator. The vote tables
// reference roster tables, so order matters.
type moduleMigrator struct {
	name     string
	migrator *migrate.Migrator
}

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	defer db.Close()

	migrators := []moduleMigrator{
		newModuleMigrator(db, "scoring", scoringmigrations.Migrations),
		newModuleMigrator(db, "roster", rostermigrations.Migrations),
		newModuleMigrator(db, "vote", votemigrations.Migrations),
	}

	cliApp := &cli.App{
		Name: "bun",
		Commands: []*cli.Command{
			newMultiModuleDBCommand(migrators),
			newTokenCommand(cfg),
		},
	}

	if err := cliApp.Run(append([]string{os.Args[0]}, flag.Args()...)); err != nil {
		log.Fatal(err)
	}
}

func newModuleMigrator(db *bun.DB, name string, migrations *migrate.Migrations) moduleMigrator {
	return moduleMigrator{
		name: name,
		migrator: migrate.NewMigrator(db, migrations,
			migrate.WithTableName("bun_migrations_"+name),
			migrate.WithLocksTableName("bun_migration_locks_"+name),
		),
	}
}

func findMigrator(migrators []moduleMigrator, name string) (*migrate.Migrator, error) {
	i := slices.IndexFunc(migrators, func(m moduleMigrator) bool { return m.name == name })
	if i < 0 {
		return nil, fmt.Errorf("invalid module name: %s", name)
	}
	return migrators[i].migrator, nil
}

func newMultiModuleDBCommand(migrators []moduleMigrator) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						fmt.Printf("Initializing migrations for module: %s\n", m.name)
						if err := m.migrator.Init(c.Context); err != nil {
							return fmt.Errorf("init %s: %w", m.name, err)
						}
					}
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						if err := m.migrator.Lock(c.Context); err != nil {
							return err
						}
						group, err := m.migrator.Migrate(c.Context)
						if unlockErr := m.migrator.Unlock(c.Context); unlockErr != nil && err == nil {
							err = unlockErr
						}
						if err != nil {
							return fmt.Errorf("migrate %s: %w", m.name, err)
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", m.name)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", m.name, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group of every module",
				Action: func(c *cli.Context) error {
					// Reverse order so that referencing tables go first.
					for _, m := range slices.Backward(migrators) {
						group, err := m.migrator.Rollback(c.Context)
						if err != nil {
							return fmt.Errorf("rollback %s: %w", m.name, err)
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", m.name)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", m.name, group)
						}
					}
					return nil
				},
			},
			{
				Name:      "create_go",
				Usage:     "create Go migration",
				ArgsUsage: "<module> <name>",
				Action: func(c *cli.Context) error {
					moduleName := c.Args().First()
					migrator, err := findMigrator(migrators, moduleName)
					if err != nil {
						return err
					}

					name := strings.Join(c.Args().Tail(), "_")
					mf, err := migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", moduleName, mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					for _, m := range migrators {
						ms, err := m.migrator.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("Migrations for module: %s\n", m.name)
						fmt.Printf("  %s\n", ms)
						fmt.Printf("  Applied: %s\n", ms.Applied())
						fmt.Printf("  Unapplied: %s\n", ms.Unapplied())
					}
					return nil
				},
			},
		},
	}
}

// newTokenCommand issues bearer tokens for the admin API.
func newTokenCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue an admin API token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "subject", Value: "admin", Usage: "token subject"},
			&cli.StringFlag{Name: "role", Value: string(authdomain.RoleAdmin), Usage: "admin or viewer"},
			&cli.DurationFlag{Name: "ttl", Value: 12 * time.Hour, Usage: "token lifetime"},
		},
		Action: func(c *cli.Context) error {
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("jwt.secret is not configured")
			}
			role := authdomain.Role(c.String("role"))
			if !role.IsValid() {
				return fmt.Errorf("invalid role: %s", role)
			}
			token, err := authjwt.NewProvider(cfg.JWT.Secret).GenerateToken(c.String("subject"), role, c.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, token)
			return nil
		},
	}
}
