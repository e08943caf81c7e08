package reporthandlers

import (
	"context"

	reportservice "github.com/fantakl/votes-admin/app/modules/report/application"
	"github.com/google/uuid"
)

type FakeReportService struct {
	ExportMatchdayFunc   func(ctx context.Context, matchdayID uuid.UUID) (*reportservice.Export, error)
	PlayerScoreChartFunc func(ctx context.Context, playerID uuid.UUID) (*reportservice.Export, error)
}

func (f *FakeReportService) ExportMatchday(ctx context.Context, matchdayID uuid.UUID) (*reportservice.Export, error) {
	return f.ExportMatchdayFunc(ctx, matchdayID)
}

func (f *FakeReportService) PlayerScoreChart(ctx context.Context, playerID uuid.UUID) (*reportservice.Export, error) {
	return f.PlayerScoreChartFunc(ctx, playerID)
}

var _ reportservice.Service = (*FakeReportService)(nil)
