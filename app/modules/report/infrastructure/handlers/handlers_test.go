package reporthandlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	reportservice "github.com/fantakl/votes-admin/app/modules/report/application"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func get(svc *FakeReportService, path string) *httptest.ResponseRecorder {
	h := NewReportHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	h.Routes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandleExportMatchday(t *testing.T) {
	svc := &FakeReportService{ExportMatchdayFunc: func(ctx context.Context, id uuid.UUID) (*reportservice.Export, error) {
		return &reportservice.Export{FileName: "matchday-03-votes.xlsx", ContentType: "application/x-test", Data: []byte("PK")}, nil
	}}

	w := get(svc, "/matchdays/"+uuid.NewString()+"/export.xlsx")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-test", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="matchday-03-votes.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
}

func TestHandlePlayerChart_NotFound(t *testing.T) {
	svc := &FakeReportService{PlayerScoreChartFunc: func(ctx context.Context, id uuid.UUID) (*reportservice.Export, error) {
		return nil, apperrors.ErrNotFound
	}}

	w := get(svc, "/players/"+uuid.NewString()+"/chart.png")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
