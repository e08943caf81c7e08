package scoringservice

import (
	"context"

	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
)

// Service manages the scoring coefficient table.
type Service interface {
	// Load returns a fresh snapshot of every coefficient.
	Load(ctx context.Context) (scoringdomain.Config, error)

	// Update changes one existing coefficient and returns the new snapshot.
	Update(ctx context.Context, key scoringdomain.Key, value float64) (scoringdomain.Config, error)

	// UpdateMany applies several point updates in key order, stopping at the first failure.
	UpdateMany(ctx context.Context, values map[scoringdomain.Key]float64) (scoringdomain.Config, error)
}
