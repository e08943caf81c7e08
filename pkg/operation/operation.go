// Package operation wraps service operations with tracing, metrics, panic
// recovery, structured logging and transactions.
package operation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/results"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Metrics is the subset of operation metrics the runner records.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
}

// Runner carries the per-service telemetry handles.
type Runner struct {
	Service string
	Logger  *slog.Logger
	Metrics Metrics
	Tracer  trace.Tracer
	DB      *bun.DB
}

// Func is the generic signature for service operation functions.
type Func[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// TxFunc runs against the transaction handle, or nil when no database is configured.
type TxFunc[S any, F any] func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error)

// WithTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func WithTelemetry[S any, F any](
	r Runner,
	ctx context.Context,
	operationName string,
	identifier string,
	op Func[S, F],
) (result results.OperationResult[S, F], err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var span trace.Span
	if r.Tracer != nil {
		ctx, span = r.Tracer.Start(ctx, r.Service+"."+operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	if r.Metrics != nil {
		r.Metrics.RecordOperationAttempt(ctx, operationName, r.Service)
	}

	startTime := time.Now()
	defer func() {
		if r.Metrics != nil {
			r.Metrics.RecordOperationDuration(ctx, operationName, r.Service, time.Since(startTime))
		}
	}()

	logger.InfoContext(ctx, "Operation triggered",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
		attr.String("identifier", identifier),
	)

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, rec)
			logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			if r.Metrics != nil {
				r.Metrics.RecordOperationFailure(ctx, operationName, r.Service)
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Error(wrappedErr),
		)
		if r.Metrics != nil {
			r.Metrics.RecordOperationFailure(ctx, operationName, r.Service)
		}
		span.RecordError(wrappedErr)
		span.SetStatus(codes.Error, wrappedErr.Error())
		return result, wrappedErr
	}

	if result.IsFailure() {
		logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		logger.InfoContext(ctx, "Operation completed successfully",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
		)
	}

	if r.Metrics != nil {
		r.Metrics.RecordOperationSuccess(ctx, operationName, r.Service)
	}

	return result, nil
}

// RunInTx runs fn inside a transaction. Without a database handle fn gets a
// nil bun.IDB and repositories fall back to their default connection.
func RunInTx[S any, F any](r Runner, ctx context.Context, fn TxFunc[S, F]) (results.OperationResult[S, F], error) {
	if r.DB == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]
	err := r.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		if txErr == nil && result.IsFailure() {
			// Domain failures roll back anything written so far.
			return errDomainFailure
		}
		return txErr
	})
	if errors.Is(err, errDomainFailure) {
		return result, nil
	}
	return result, err
}

// Run calls fn without a transaction.
func Run[S any, F any](ctx context.Context, fn TxFunc[S, F]) (results.OperationResult[S, F], error) {
	return fn(ctx, nil)
}

// Unwrap converts a result into the (value, error) pair handlers expect.
func Unwrap[S any](result results.OperationResult[S, error], err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	if result.IsFailure() {
		return zero, *result.Failure
	}
	if result.Success == nil {
		return zero, nil
	}
	return *result.Success, nil
}
