package scoringservice

import (
	"context"

	scoringdb "github.com/fantakl/votes-admin/app/modules/scoring/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Scoring Repo
// ------------------------

type FakeScoringRepo struct {
	trace []string

	ListAllFunc     func(ctx context.Context, db bun.IDB) ([]scoringdb.ConfigEntry, error)
	UpdateValueFunc func(ctx context.Context, db bun.IDB, key string, value float64) error
}

func NewFakeScoringRepo() *FakeScoringRepo {
	return &FakeScoringRepo{
		trace: []string{},
	}
}

func (f *FakeScoringRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoringRepo) ListAll(ctx context.Context, db bun.IDB) ([]scoringdb.ConfigEntry, error) {
	f.record("ListAll")
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeScoringRepo) UpdateValue(ctx context.Context, db bun.IDB, key string, value float64) error {
	f.record("UpdateValue:" + key)
	if f.UpdateValueFunc != nil {
		return f.UpdateValueFunc(ctx, db, key, value)
	}
	return nil
}

func (f *FakeScoringRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ scoringdb.Repository = (*FakeScoringRepo)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics      []string
	PublishFunc func(ctx context.Context, topic string, payload any) error
}

func (f *FakePublisher) Publish(ctx context.Context, topic string, payload any) error {
	f.Topics = append(f.Topics, topic)
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, topic, payload)
	}
	return nil
}
