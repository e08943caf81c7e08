package resultsdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new results repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) ProcessMatchdayResults(ctx context.Context, db bun.IDB, matchdayID uuid.UUID) (json.RawMessage, error) {
	db = r.resolveDB(db)
	var payload []byte
	if err := db.NewRaw("SELECT process_matchday_results(p_kl_matchday_id := ?)::text", matchdayID).
		Scan(ctx, &payload); err != nil {
		return nil, fmt.Errorf("process_matchday_results: %w", err)
	}
	return json.RawMessage(payload), nil
}
