package reportservice

import (
	"context"

	"github.com/google/uuid"
)

// Export is a rendered file ready to be served.
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Service renders read-only reports from stored votes.
type Service interface {
	ExportMatchday(ctx context.Context, matchdayID uuid.UUID) (*Export, error)
	PlayerScoreChart(ctx context.Context, playerID uuid.UUID) (*Export, error)
}
