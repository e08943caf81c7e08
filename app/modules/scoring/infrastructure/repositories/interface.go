package scoringdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for scoring configuration persistence.
type Repository interface {
	// ListAll returns every coefficient row ordered by key.
	ListAll(ctx context.Context, db bun.IDB) ([]ConfigEntry, error)

	// UpdateValue changes one existing coefficient. It never inserts.
	UpdateValue(ctx context.Context, db bun.IDB, key string, value float64) error
}
