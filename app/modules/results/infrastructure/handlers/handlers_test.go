package resultshandlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	resultsservice "github.com/fantakl/votes-admin/app/modules/results/application"
	resultsdomain "github.com/fantakl/votes-admin/app/modules/results/domain"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type FakeResultsService struct {
	Calls         int
	CalculateFunc func(ctx context.Context, matchdayID uuid.UUID) (*resultsdomain.Outcome, error)
}

func (f *FakeResultsService) Calculate(ctx context.Context, matchdayID uuid.UUID) (*resultsdomain.Outcome, error) {
	f.Calls++
	return f.CalculateFunc(ctx, matchdayID)
}

var _ resultsservice.Service = (*FakeResultsService)(nil)

func serve(svc *FakeResultsService, path string) *httptest.ResponseRecorder {
	h := NewResultsHandlers(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), noop.NewTracerProvider().Tracer("test"))
	r := chi.NewRouter()
	h.Routes(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func TestHandleCalculate_Success(t *testing.T) {
	svc := &FakeResultsService{CalculateFunc: func(ctx context.Context, id uuid.UUID) (*resultsdomain.Outcome, error) {
		return &resultsdomain.Outcome{Success: true, Processed: 6, CompetitionsUpdated: 3}, nil
	}}

	w := serve(svc, "/matchdays/"+uuid.NewString()+"/results")

	require.Equal(t, http.StatusOK, w.Code)
	var got CalculateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, CalculateResponse{
		Status:              "Processed 6 matches, 3 competitions updated.",
		Processed:           6,
		CompetitionsUpdated: 3,
	}, got)
}

func TestHandleCalculate_RemoteErrorVerbatim(t *testing.T) {
	svc := &FakeResultsService{CalculateFunc: func(ctx context.Context, id uuid.UUID) (*resultsdomain.Outcome, error) {
		return nil, &apperrors.RemoteProcedureError{Procedure: "process_matchday_results", Message: "no matches found"}
	}}

	w := serve(svc, "/matchdays/"+uuid.NewString()+"/results")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error": "no matches found"}`, w.Body.String())
}

func TestHandleCalculate_BadID(t *testing.T) {
	svc := &FakeResultsService{}

	w := serve(svc, "/matchdays/42/results")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.Calls)
}
