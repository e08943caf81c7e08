package voteservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	rosterdomain "github.com/fantakl/votes-admin/app/modules/roster/domain"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
	votedb "github.com/fantakl/votes-admin/app/modules/vote/infrastructure/repositories"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

var fixedNow = time.Date(2026, 10, 11, 18, 0, 0, 0, time.UTC)

type league struct {
	roster *FakeRosterRepo
	sel    votedomain.MatchSelection

	keeperA, strikerA, defenderB uuid.UUID
	presidentA                   uuid.UUID
}

// newLeague builds two teams: A (active, goalkeeper + attacker, president)
// and B (eliminated, one defender, no president).
func newLeague() league {
	l := league{roster: NewFakeRosterRepo()}
	matchdayID, teamA, teamB := uuid.New(), uuid.New(), uuid.New()
	l.keeperA, l.strikerA, l.defenderB, l.presidentA = uuid.New(), uuid.New(), uuid.New(), uuid.New()

	l.roster.Matchdays[matchdayID] = rosterdb.Matchday{ID: matchdayID, MatchdayNumber: 4}
	l.roster.Teams[teamA] = rosterdb.Team{ID: teamA, Name: "Saiyans FC"}
	l.roster.Teams[teamB] = rosterdb.Team{ID: teamB, Name: "Rayo de Barcelona", IsEliminated: true}
	l.roster.Players = []rosterdb.Player{
		{ID: l.strikerA, TeamID: teamA, Name: "Zeus", Role: rosterdomain.RoleAttacker},
		{ID: l.defenderB, TeamID: teamB, Name: "Nil", Role: rosterdomain.RoleDefender},
		{ID: l.keeperA, TeamID: teamA, Name: "Aitor", Role: rosterdomain.RoleGoalkeeper},
	}
	l.roster.Presidents = []rosterdb.President{{ID: l.presidentA, TeamID: teamA, Name: "TheGrefg"}}
	l.sel = votedomain.MatchSelection{MatchdayID: matchdayID, TeamAID: teamA, TeamBID: teamB}
	return l
}

func newTestService(l league, votes *FakeVoteRepo, cfg *FakeConfigLoader, pub *FakePublisher, explicit bool) *VoteService {
	s := NewVoteService(
		votes,
		l.roster,
		cfg,
		votedomain.Policy{RequireExplicitStart: explicit},
		pub,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewNoop(),
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestSelectMatch_Validation(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	svc := newTestService(l, votes, &FakeConfigLoader{}, &FakePublisher{}, true)

	tests := []struct {
		name      string
		sel       votedomain.MatchSelection
		wantField string
	}{
		{"no matchday", votedomain.MatchSelection{TeamAID: l.sel.TeamAID, TeamBID: l.sel.TeamBID}, "matchday_id"},
		{"same teams", votedomain.MatchSelection{MatchdayID: l.sel.MatchdayID, TeamAID: l.sel.TeamAID, TeamBID: l.sel.TeamAID}, "team_b_id"},
		{"unknown matchday", votedomain.MatchSelection{MatchdayID: uuid.New(), TeamAID: l.sel.TeamAID, TeamBID: l.sel.TeamBID}, "matchday_id"},
		{"unknown team", votedomain.MatchSelection{MatchdayID: l.sel.MatchdayID, TeamAID: uuid.New(), TeamBID: l.sel.TeamBID}, "team_a_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SelectMatch(context.Background(), tt.sel)
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
	assert.Empty(t, votes.Trace())
}

func TestSelectMatch_NotStarted(t *testing.T) {
	for _, explicit := range []bool{true, false} {
		l := newLeague()
		svc := newTestService(l, NewFakeVoteRepo(), &FakeConfigLoader{}, &FakePublisher{}, explicit)

		session, err := svc.SelectMatch(context.Background(), l.sel)
		require.NoError(t, err)

		assert.Equal(t, votedomain.NotStarted, session.State)
		assert.Equal(t, !explicit, session.Editable)
		assert.Equal(t, 4, session.MatchdayNumber)

		got := []string{}
		for _, row := range session.Players {
			got = append(got, row.Name)
		}
		assert.Equal(t, []string{"Aitor", "Zeus", "Nil"}, got, "team A in role order, then team B")

		assert.Equal(t, 6.0, session.Players[0].Stats.BaseVote)
		assert.Equal(t, 5.0, session.Players[2].Stats.BaseVote, "eliminated team default")
		require.Len(t, session.Presidents, 1)
		assert.Equal(t, scoringdomain.PenaltyNone, session.Presidents[0].Outcome)
	}
}

func TestSelectMatch_StartedCarriesStoredValues(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	votes.PlayerVotes = []votedb.PlayerVote{{
		MatchdayID: l.sel.MatchdayID, PlayerID: l.strikerA, BaseVote: 7, Goals: 2, FinalScore: 13,
	}}
	votes.PresidentVotes = []votedb.PresidentVote{{
		MatchdayID: l.sel.MatchdayID, PresidentID: l.presidentA, PenaltyMissed: true, FinalScore: -1,
	}}
	svc := newTestService(l, votes, &FakeConfigLoader{}, &FakePublisher{}, true)

	session, err := svc.SelectMatch(context.Background(), l.sel)
	require.NoError(t, err)

	assert.Equal(t, votedomain.Started, session.State)
	assert.True(t, session.Editable)

	striker := session.Players[1]
	assert.True(t, striker.Stored)
	assert.Equal(t, 2, striker.Stats.Goals)
	assert.Equal(t, 13.0, striker.FinalScore)

	keeper := session.Players[0]
	assert.False(t, keeper.Stored, "missing rows fall back to defaults")
	assert.Equal(t, 6.0, keeper.Stats.BaseVote)

	assert.Equal(t, scoringdomain.PenaltyMissed, session.Presidents[0].Outcome)
}

func TestStartMatch(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	pub := &FakePublisher{}
	svc := newTestService(l, votes, &FakeConfigLoader{}, pub, true)

	session, err := svc.StartMatch(context.Background(), l.sel)
	require.NoError(t, err)

	assert.Equal(t, votedomain.Started, session.State)
	assert.True(t, session.Editable)
	assert.Equal(t, []string{"InsertPlayerVotes", "InsertPresidentVotes"}, votes.Writes())

	byPlayer := map[uuid.UUID]votedb.PlayerVote{}
	for _, v := range votes.PlayerVotes {
		byPlayer[v.PlayerID] = v
	}
	require.Len(t, byPlayer, 3)
	assert.Equal(t, 6.0, byPlayer[l.keeperA].BaseVote)
	assert.Equal(t, 6.0, byPlayer[l.keeperA].FinalScore)
	assert.Equal(t, 5.0, byPlayer[l.defenderB].BaseVote)
	assert.Equal(t, 5.0, byPlayer[l.defenderB].FinalScore)
	assert.Zero(t, byPlayer[l.strikerA].Goals)

	require.Len(t, votes.PresidentVotes, 1)
	assert.Zero(t, votes.PresidentVotes[0].FinalScore)

	require.Equal(t, []string{eventbus.MatchStartedV1}, pub.Topics)
	payload := pub.Payloads[0].(eventbus.MatchStartedPayloadV1)
	assert.Equal(t, 3, payload.PlayerVotes)
	assert.Equal(t, 1, payload.PresidentVotes)
}

func TestStartMatch_AlreadyStarted(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	votes.PlayerVotes = []votedb.PlayerVote{{MatchdayID: l.sel.MatchdayID, PlayerID: l.keeperA, BaseVote: 6}}
	pub := &FakePublisher{}
	svc := newTestService(l, votes, &FakeConfigLoader{}, pub, true)

	_, err := svc.StartMatch(context.Background(), l.sel)

	assert.ErrorIs(t, err, votedomain.ErrMatchAlreadyStarted)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Empty(t, votes.Writes())
	assert.Empty(t, pub.Topics)
}

func TestSelectMatch_OtherPairingStartsMatchday(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	votes.PlayerVotes = []votedb.PlayerVote{{
		MatchdayID: l.sel.MatchdayID, PlayerID: uuid.New(), BaseVote: 6, FinalScore: 6,
	}}
	pub := &FakePublisher{}
	svc := newTestService(l, votes, &FakeConfigLoader{}, pub, true)

	session, err := svc.SelectMatch(context.Background(), l.sel)
	require.NoError(t, err)

	assert.Equal(t, votedomain.Started, session.State)
	assert.True(t, session.Editable)
	for _, row := range session.Players {
		assert.False(t, row.Stored, row.Name)
	}
	assert.Equal(t, 6.0, session.Players[0].Stats.BaseVote)

	_, err = svc.StartMatch(context.Background(), l.sel)
	assert.ErrorIs(t, err, votedomain.ErrMatchAlreadyStarted)

	summary, err := svc.SaveVotes(context.Background(), SaveRequest{
		Selection: l.sel,
		Players:   []PlayerVoteInput{{PlayerID: l.strikerA, Stats: scoringdomain.PlayerStats{BaseVote: 7}}},
	})
	require.NoError(t, err)
	assert.False(t, summary.Implicit)
	assert.Equal(t, []string{"UpsertPlayerVotes", "UpsertPresidentVotes"}, votes.Writes())
	require.Len(t, votes.PlayerVotes, 2)
}

func TestSaveVotes_RequiresStart(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	pub := &FakePublisher{}
	svc := newTestService(l, votes, &FakeConfigLoader{}, pub, true)

	_, err := svc.SaveVotes(context.Background(), SaveRequest{
		Selection: l.sel,
		Players:   []PlayerVoteInput{{PlayerID: l.strikerA, Stats: scoringdomain.PlayerStats{BaseVote: 6}}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, votedomain.ErrMatchNotStarted)
	assert.Equal(t, "start match first", err.Error())
	assert.Empty(t, votes.Writes())
	assert.Empty(t, pub.Topics)
}

func TestSaveVotes_ImplicitCreation(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	svc := newTestService(l, votes, &FakeConfigLoader{}, &FakePublisher{}, false)

	summary, err := svc.SaveVotes(context.Background(), SaveRequest{
		Selection: l.sel,
		Players:   []PlayerVoteInput{{PlayerID: l.strikerA, Stats: scoringdomain.PlayerStats{BaseVote: 6}}},
	})
	require.NoError(t, err)

	assert.True(t, summary.Implicit)
	assert.Equal(t, []string{"UpsertPlayerVotes", "UpsertPresidentVotes"}, votes.Writes())
	require.Len(t, votes.PlayerVotes, 1)
}

func TestSaveVotes_ScoresWithFreshConfig(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	votes.PlayerVotes = []votedb.PlayerVote{{MatchdayID: l.sel.MatchdayID, PlayerID: l.strikerA, BaseVote: 6, FinalScore: 6}}
	cfg := &FakeConfigLoader{LoadFunc: func(ctx context.Context) (scoringdomain.Config, error) {
		return scoringdomain.NewConfig(map[scoringdomain.Key]float64{
			scoringdomain.KeyGoalNormal:             3,
			scoringdomain.KeyAssist:                 1,
			scoringdomain.KeyYellowCard:             -0.5,
			scoringdomain.KeyCleanSheet:             1,
			scoringdomain.KeyGoalConceded:           -1,
			scoringdomain.KeyPresidentPenaltyScored: 2,
			scoringdomain.KeyPresidentPenaltyMissed: -1,
		}), nil
	}}
	pub := &FakePublisher{}
	svc := newTestService(l, votes, cfg, pub, true)

	summary, err := svc.SaveVotes(context.Background(), SaveRequest{
		Selection: l.sel,
		Players: []PlayerVoteInput{
			{PlayerID: l.strikerA, Stats: scoringdomain.PlayerStats{BaseVote: 6, Goals: 2, Assists: 1, YellowCards: 1, CleanSheet: true, GoalsConceded: 3}},
			{PlayerID: l.keeperA, Stats: scoringdomain.PlayerStats{BaseVote: 6.5, CleanSheet: true}},
		},
		Presidents: []PresidentVoteInput{{PresidentID: l.presidentA, PenaltyScored: true}},
	})
	require.NoError(t, err)

	assert.False(t, summary.Implicit)
	assert.Equal(t, fixedNow, summary.SavedAt)
	want := []ScoredVote{{ID: l.strikerA, FinalScore: 12.5}, {ID: l.keeperA, FinalScore: 7.5}}
	if diff := cmp.Diff(want, summary.Players); diff != "" {
		t.Errorf("player scores mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []ScoredVote{{ID: l.presidentA, FinalScore: 2}}, summary.Presidents)
	assert.Equal(t, 1, cfg.Calls, "config is read once per save")

	var striker votedb.PlayerVote
	for _, v := range votes.PlayerVotes {
		if v.PlayerID == l.strikerA {
			striker = v
		}
	}
	assert.False(t, striker.CleanSheet, "goalkeeper fields are cleared for outfield players")
	assert.Zero(t, striker.GoalsConceded)
	assert.Equal(t, fixedNow, striker.UpdatedAt)
	assert.Equal(t, []string{eventbus.VotesSavedV1}, pub.Topics)
}

func TestSaveVotes_Idempotent(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	svc := newTestService(l, votes, &FakeConfigLoader{}, &FakePublisher{}, true)
	_, err := svc.StartMatch(context.Background(), l.sel)
	require.NoError(t, err)

	req := SaveRequest{
		Selection: l.sel,
		Players:   []PlayerVoteInput{{PlayerID: l.strikerA, Stats: scoringdomain.PlayerStats{BaseVote: 6, Goals: 1}}},
	}
	_, err = svc.SaveVotes(context.Background(), req)
	require.NoError(t, err)
	first := append([]votedb.PlayerVote(nil), votes.PlayerVotes...)

	_, err = svc.SaveVotes(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, votes.PlayerVotes, 3)
	if diff := cmp.Diff(first, votes.PlayerVotes); diff != "" {
		t.Errorf("second identical save changed rows (-first +second):\n%s", diff)
	}
}

func TestSaveVotes_PlayedToggle(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	svc := newTestService(l, votes, &FakeConfigLoader{}, &FakePublisher{}, false)
	yes, no := true, false

	summary, err := svc.SaveVotes(context.Background(), SaveRequest{
		Selection: l.sel,
		Players: []PlayerVoteInput{
			{PlayerID: l.strikerA, Played: &no, Stats: scoringdomain.PlayerStats{BaseVote: 7}},
			{PlayerID: l.keeperA, Played: &yes},
			{PlayerID: l.defenderB, Played: &yes, Stats: scoringdomain.PlayerStats{BaseVote: 7.5}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, summary.Players[0].FinalScore)
	assert.Equal(t, 6.0, summary.Players[1].FinalScore)
	assert.Equal(t, 7.5, summary.Players[2].FinalScore)
}

func TestSaveVotes_RejectsInvalidRows(t *testing.T) {
	l := newLeague()
	started := func() *FakeVoteRepo {
		v := NewFakeVoteRepo()
		v.PlayerVotes = []votedb.PlayerVote{{MatchdayID: l.sel.MatchdayID, PlayerID: l.keeperA, BaseVote: 6}}
		return v
	}

	tests := []struct {
		name      string
		req       SaveRequest
		wantField string
	}{
		{
			name:      "empty submission",
			req:       SaveRequest{Selection: l.sel},
			wantField: "players",
		},
		{
			name:      "foreign player",
			req:       SaveRequest{Selection: l.sel, Players: []PlayerVoteInput{{PlayerID: uuid.New(), Stats: scoringdomain.PlayerStats{BaseVote: 6}}}},
			wantField: "players[0].player_id",
		},
		{
			name: "duplicate player",
			req: SaveRequest{Selection: l.sel, Players: []PlayerVoteInput{
				{PlayerID: l.keeperA, Stats: scoringdomain.PlayerStats{BaseVote: 6}},
				{PlayerID: l.keeperA, Stats: scoringdomain.PlayerStats{BaseVote: 6}},
			}},
			wantField: "players[1].player_id",
		},
		{
			name: "base vote out of range",
			req: SaveRequest{Selection: l.sel, Players: []PlayerVoteInput{
				{PlayerID: l.keeperA, Stats: scoringdomain.PlayerStats{BaseVote: 6}},
				{PlayerID: l.strikerA, Stats: scoringdomain.PlayerStats{BaseVote: 11}},
			}},
			wantField: "players[1].base_vote",
		},
		{
			name:      "base vote with two decimals",
			req:       SaveRequest{Selection: l.sel, Players: []PlayerVoteInput{{PlayerID: l.strikerA, Stats: scoringdomain.PlayerStats{BaseVote: 6.25}}}},
			wantField: "players[0].base_vote",
		},
		{
			name:      "negative counter",
			req:       SaveRequest{Selection: l.sel, Players: []PlayerVoteInput{{PlayerID: l.keeperA, Stats: scoringdomain.PlayerStats{BaseVote: 6, RedCards: -1}}}},
			wantField: "players[0].red_cards",
		},
		{
			name:      "president scored and missed",
			req:       SaveRequest{Selection: l.sel, Presidents: []PresidentVoteInput{{PresidentID: l.presidentA, PenaltyScored: true, PenaltyMissed: true}}},
			wantField: "presidents[0]",
		},
		{
			name:      "foreign president",
			req:       SaveRequest{Selection: l.sel, Presidents: []PresidentVoteInput{{PresidentID: uuid.New()}}},
			wantField: "presidents[0].president_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			votes := started()
			pub := &FakePublisher{}
			svc := newTestService(l, votes, &FakeConfigLoader{}, pub, true)

			_, err := svc.SaveVotes(context.Background(), tt.req)

			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Empty(t, votes.Writes(), "validation happens before any write")
			assert.Empty(t, pub.Topics)
		})
	}
}

func TestSaveVotes_PersistenceFailure(t *testing.T) {
	l := newLeague()
	votes := NewFakeVoteRepo()
	votes.UpsertPlayerVotesFunc = func(ctx context.Context, db bun.IDB, v []votedb.PlayerVote) error {
		return errors.New("connection reset")
	}
	pub := &FakePublisher{}
	svc := newTestService(l, votes, &FakeConfigLoader{}, pub, false)

	_, err := svc.SaveVotes(context.Background(), SaveRequest{
		Selection: l.sel,
		Players:   []PlayerVoteInput{{PlayerID: l.keeperA, Stats: scoringdomain.PlayerStats{BaseVote: 6}}},
	})

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, []string{"UpsertPlayerVotes"}, votes.Writes())
	assert.Empty(t, pub.Topics)
}
