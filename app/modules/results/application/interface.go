package resultsservice

import (
	"context"

	resultsdomain "github.com/fantakl/votes-admin/app/modules/results/domain"
	"github.com/google/uuid"
)

// Service runs the downstream aggregation for a matchday.
type Service interface {
	Calculate(ctx context.Context, matchdayID uuid.UUID) (*resultsdomain.Outcome, error)
}
