package scoringdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a coefficient key does not exist.
var ErrNotFound = errors.New("scoring config key not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new scoring config repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// ListAll returns every coefficient row ordered by key.
func (r *Impl) ListAll(ctx context.Context, db bun.IDB) ([]ConfigEntry, error) {
	db = r.resolveDB(db)
	var entries []ConfigEntry
	if err := db.NewSelect().
		Model(&entries).
		Order("key ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list scoring config: %w", err)
	}
	return entries, nil
}

// UpdateValue is a point update; a missing key yields ErrNotFound.
func (r *Impl) UpdateValue(ctx context.Context, db bun.IDB, key string, value float64) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*ConfigEntry)(nil)).
		Set("value = ?", value).
		Where("key = ?", key).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update scoring config %q: %w", key, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
