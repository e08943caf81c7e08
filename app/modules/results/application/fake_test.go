package resultsservice

import (
	"context"
	"encoding/json"

	resultsdb "github.com/fantakl/votes-admin/app/modules/results/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Results Repo
// ------------------------

type FakeResultsRepo struct {
	trace []string

	ProcessMatchdayResultsFunc func(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (json.RawMessage, error)
}

func NewFakeResultsRepo() *FakeResultsRepo {
	return &FakeResultsRepo{trace: []string{}}
}

func (f *FakeResultsRepo) ProcessMatchdayResults(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (json.RawMessage, error) {
	f.trace = append(f.trace, "ProcessMatchdayResults")
	if f.ProcessMatchdayResultsFunc != nil {
		return f.ProcessMatchdayResultsFunc(ctx, db, matchdayID)
	}
	return json.RawMessage(`{"success": true}`), nil
}

func (f *FakeResultsRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ resultsdb.Repository = (*FakeResultsRepo)(nil)

type FakePublisher struct {
	Topics []string
}

func (f *FakePublisher) Publish(ctx context.Context, topic string, payload any) error {
	f.Topics = append(f.Topics, topic)
	return nil
}
