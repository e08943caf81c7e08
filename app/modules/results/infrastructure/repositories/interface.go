package resultsdb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository invokes the results aggregation procedure.
type Repository interface {
	// ProcessMatchdayResults returns the raw JSON payload of the procedure.
	ProcessMatchdayResults(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (json.RawMessage, error)
}
