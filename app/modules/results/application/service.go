package resultsservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fantakl/votes-admin/app/eventbus"
	"github.com/fantakl/votes-admin/app/observability"
	resultsdomain "github.com/fantakl/votes-admin/app/modules/results/domain"
	resultsdb "github.com/fantakl/votes-admin/app/modules/results/infrastructure/repositories"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/operation"
	"github.com/fantakl/votes-admin/pkg/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// ResultsService implements the Service interface.
type ResultsService struct {
	repo      resultsdb.Repository
	publisher eventbus.Publisher
	logger    *slog.Logger
	runner    operation.Runner
}

// NewResultsService creates a new ResultsService. The procedure runs in its
// own transaction on the database side, so no runner DB is set.
func NewResultsService(
	repo resultsdb.Repository,
	publisher eventbus.Publisher,
	logger *slog.Logger,
	metrics observability.OperationMetrics,
	tracer trace.Tracer,
) *ResultsService {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = eventbus.Noop{}
	}
	return &ResultsService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		runner: operation.Runner{
			Service: "ResultsService",
			Logger:  logger,
			Metrics: metrics,
			Tracer:  tracer,
		},
	}
}

// Calculate invokes process_matchday_results. A payload with success=false
// fails with a RemoteProcedureError whose message is the payload's error.
func (s *ResultsService) Calculate(ctx context.Context, matchdayID uuid.UUID) (*resultsdomain.Outcome, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "Calculate", matchdayID.String(), func(ctx context.Context) (results.OperationResult[*resultsdomain.Outcome, error], error) {
		return s.calculateLogic(ctx, matchdayID)
	})
	outcome, err := operation.Unwrap(result, err)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, eventbus.MatchdayResultsComputed, eventbus.MatchdayResultsComputedPayloadV1{
		MatchdayID:          matchdayID,
		Processed:           outcome.Processed,
		CompetitionsUpdated: outcome.CompetitionsUpdated,
		Errors:              outcome.Errors,
	}); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish matchday results",
			attr.UUID("matchday_id", matchdayID),
			attr.Error(err),
		)
	}
	return outcome, nil
}

func (s *ResultsService) calculateLogic(ctx context.Context, matchdayID uuid.UUID) (results.OperationResult[*resultsdomain.Outcome, error], error) {
	fail := func(err error) (results.OperationResult[*resultsdomain.Outcome, error], error) {
		return results.FailureResult[*resultsdomain.Outcome, error](err), nil
	}

	if matchdayID == uuid.Nil {
		return fail(apperrors.NewValidationError("matchday_id", "matchday is required"))
	}

	raw, err := s.repo.ProcessMatchdayResults(ctx, nil, matchdayID)
	if err != nil {
		return fail(&apperrors.RemoteProcedureError{
			Procedure: resultsdomain.ProcedureName,
			Message:   err.Error(),
			Err:       err,
		})
	}

	var outcome resultsdomain.Outcome
	if err := json.Unmarshal(raw, &outcome); err != nil {
		return fail(&apperrors.RemoteProcedureError{
			Procedure: resultsdomain.ProcedureName,
			Message:   fmt.Sprintf("unexpected response from %s: %v", resultsdomain.ProcedureName, err),
			Err:       err,
		})
	}

	if !outcome.Success {
		msg := outcome.Error
		if msg == "" {
			msg = resultsdomain.ProcedureName + " reported failure"
		}
		return fail(&apperrors.RemoteProcedureError{Procedure: resultsdomain.ProcedureName, Message: msg})
	}

	return results.SuccessResult[*resultsdomain.Outcome, error](&outcome), nil
}
