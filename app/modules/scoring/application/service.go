package scoringservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	scoringdb "github.com/fantakl/votes-admin/app/modules/scoring/infrastructure/repositories"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/operation"
	"github.com/fantakl/votes-admin/pkg/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnknownKey is returned when updating a key that is not in the table.
var ErrUnknownKey = errors.New("unknown scoring config key")

type configResult = results.OperationResult[scoringdomain.Config, error]

// ScoringService implements the Service interface.
type ScoringService struct {
	repo      scoringdb.Repository
	publisher eventbus.Publisher
	logger    *slog.Logger
	runner    operation.Runner
}

// NewScoringService creates a new ScoringService.
func NewScoringService(
	repo scoringdb.Repository,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *ScoringService {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = eventbus.Noop{}
	}
	return &ScoringService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		runner: operation.Runner{
			Service: "ScoringService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
			DB:      db,
		},
	}
}

// Load returns a fresh snapshot of every coefficient.
func (s *ScoringService) Load(ctx context.Context) (scoringdomain.Config, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "Load", "scoring_config", func(ctx context.Context) (configResult, error) {
		return operation.Run(ctx, s.loadLogic)
	})
	return operation.Unwrap(result, err)
}

func (s *ScoringService) loadLogic(ctx context.Context, db bun.IDB) (configResult, error) {
	cfg, err := s.load(ctx, db)
	if err != nil {
		return configResult{}, err
	}
	return results.SuccessResult[scoringdomain.Config, error](cfg), nil
}

func (s *ScoringService) load(ctx context.Context, db bun.IDB) (scoringdomain.Config, error) {
	entries, err := s.repo.ListAll(ctx, db)
	if err != nil {
		return scoringdomain.Config{}, apperrors.NewPersistenceError("load scoring config", err)
	}
	values := make(map[scoringdomain.Key]float64, len(entries))
	for _, e := range entries {
		values[scoringdomain.Key(e.Key)] = e.Value
	}
	return scoringdomain.NewConfig(values), nil
}

// Update changes one existing coefficient and returns the new snapshot.
func (s *ScoringService) Update(ctx context.Context, key scoringdomain.Key, value float64) (scoringdomain.Config, error) {
	return s.UpdateMany(ctx, map[scoringdomain.Key]float64{key: value})
}

// UpdateMany applies several point updates in key order inside one transaction.
func (s *ScoringService) UpdateMany(ctx context.Context, values map[scoringdomain.Key]float64) (scoringdomain.Config, error) {
	keys := make([]scoringdomain.Key, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result, err := operation.WithTelemetry(s.runner, ctx, "UpdateMany", fmt.Sprint(keys), func(ctx context.Context) (configResult, error) {
		return operation.RunInTx(s.runner, ctx, func(ctx context.Context, db bun.IDB) (configResult, error) {
			return s.updateLogic(ctx, db, keys, values)
		})
	})
	cfg, err := operation.Unwrap(result, err)
	if err != nil {
		return scoringdomain.Config{}, err
	}

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	if err := s.publisher.Publish(ctx, eventbus.ScoringConfigUpdatedV1, eventbus.ScoringConfigUpdatedPayloadV1{Keys: names}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish scoring config update", attr.Error(err))
	}
	return cfg, nil
}

func (s *ScoringService) updateLogic(ctx context.Context, db bun.IDB, keys []scoringdomain.Key, values map[scoringdomain.Key]float64) (configResult, error) {
	if len(keys) == 0 {
		return results.FailureResult[scoringdomain.Config, error](apperrors.NewValidationError("values", "no coefficients to update")), nil
	}

	for _, key := range keys {
		value := values[key]
		if key == "" {
			return results.FailureResult[scoringdomain.Config, error](apperrors.NewValidationError("key", "key is required")), nil
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return results.FailureResult[scoringdomain.Config, error](apperrors.NewValidationError(string(key), "value must be a finite number")), nil
		}

		if err := s.repo.UpdateValue(ctx, db, string(key), value); err != nil {
			if errors.Is(err, scoringdb.ErrNotFound) {
				return results.FailureResult[scoringdomain.Config, error](fmt.Errorf("%w: %s: %w", ErrUnknownKey, key,
					apperrors.NewValidationError(string(key), "key does not exist"))), nil
			}
			return configResult{}, apperrors.NewPersistenceError("update scoring config", err)
		}
	}

	cfg, err := s.load(ctx, db)
	if err != nil {
		return configResult{}, err
	}
	return results.SuccessResult[scoringdomain.Config, error](cfg), nil
}
