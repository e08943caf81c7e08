package scoringhandlers

import (
	"context"

	scoringservice "github.com/fantakl/votes-admin/app/modules/scoring/application"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
)

// ------------------------
// Fake Scoring Service
// ------------------------

type FakeScoringService struct {
	trace []string

	LoadFunc       func(ctx context.Context) (scoringdomain.Config, error)
	UpdateFunc     func(ctx context.Context, key scoringdomain.Key, value float64) (scoringdomain.Config, error)
	UpdateManyFunc func(ctx context.Context, values map[scoringdomain.Key]float64) (scoringdomain.Config, error)
}

func NewFakeScoringService() *FakeScoringService {
	return &FakeScoringService{trace: []string{}}
}

func (f *FakeScoringService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeScoringService) Load(ctx context.Context) (scoringdomain.Config, error) {
	f.record("Load")
	if f.LoadFunc != nil {
		return f.LoadFunc(ctx)
	}
	return scoringdomain.Config{}, nil
}

func (f *FakeScoringService) Update(ctx context.Context, key scoringdomain.Key, value float64) (scoringdomain.Config, error) {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, key, value)
	}
	return scoringdomain.Config{}, nil
}

func (f *FakeScoringService) UpdateMany(ctx context.Context, values map[scoringdomain.Key]float64) (scoringdomain.Config, error) {
	f.record("UpdateMany")
	if f.UpdateManyFunc != nil {
		return f.UpdateManyFunc(ctx, values)
	}
	return scoringdomain.Config{}, nil
}

func (f *FakeScoringService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ scoringservice.Service = (*FakeScoringService)(nil)
