package testutils

import (
	"context"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	rosterdomain "github.com/fantakl/votes-admin/app/modules/roster/domain"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TestDataGenerator builds roster rows with realistic names.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator; the seed defaults to the clock.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), seed: s}
}

func (g *TestDataGenerator) Seed() int64 { return g.seed }

func (g *TestDataGenerator) Team(eliminated bool) rosterdb.Team {
	return rosterdb.Team{
		ID:           uuid.New(),
		Name:         g.faker.City() + " " + g.faker.RandomString([]string{"FC", "United", "Kings", "Club"}),
		IsEliminated: eliminated,
	}
}

func (g *TestDataGenerator) Player(teamID uuid.UUID, role rosterdomain.Role) rosterdb.Player {
	rating := g.faker.IntRange(50, 99)
	return rosterdb.Player{
		ID:            uuid.New(),
		TeamID:        teamID,
		Role:          role,
		Name:          g.faker.Name(),
		OverallRating: &rating,
	}
}

func (g *TestDataGenerator) President(teamID uuid.UUID) rosterdb.President {
	return rosterdb.President{ID: uuid.New(), TeamID: teamID, Name: g.faker.Name()}
}

func (g *TestDataGenerator) Matchday(number int) rosterdb.Matchday {
	return rosterdb.Matchday{
		ID:             uuid.New(),
		MatchdayNumber: number,
		Date:           time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*(number-1)),
	}
}

// League is a seeded matchday with two teams of one player per role and a
// president each.
type League struct {
	Matchday   rosterdb.Matchday
	Teams      [2]rosterdb.Team
	Players    []rosterdb.Player
	Presidents []rosterdb.President
}

// SeedLeague inserts a League. Teams and presidents have no repository
// writer, so they are inserted directly.
func (g *TestDataGenerator) SeedLeague(ctx context.Context, db bun.IDB) (League, error) {
	l := League{
		Matchday: g.Matchday(1),
		Teams:    [2]rosterdb.Team{g.Team(false), g.Team(true)},
	}
	for _, team := range l.Teams {
		for _, role := range []rosterdomain.Role{
			rosterdomain.RoleGoalkeeper, rosterdomain.RoleDefender,
			rosterdomain.RoleMidfielder, rosterdomain.RoleAttacker,
		} {
			l.Players = append(l.Players, g.Player(team.ID, role))
		}
		l.Presidents = append(l.Presidents, g.President(team.ID))
	}

	if _, err := db.NewInsert().Model(&l.Matchday).Exec(ctx); err != nil {
		return League{}, err
	}
	teams := l.Teams[:]
	if _, err := db.NewInsert().Model(&teams).Exec(ctx); err != nil {
		return League{}, err
	}
	if _, err := db.NewInsert().Model(&l.Players).Exec(ctx); err != nil {
		return League{}, err
	}
	if _, err := db.NewInsert().Model(&l.Presidents).Exec(ctx); err != nil {
		return League{}, err
	}
	return l, nil
}
