package resultshandlers

import (
	"log/slog"
	"net/http"

	resultsservice "github.com/fantakl/votes-admin/app/modules/results/application"
	"github.com/fantakl/votes-admin/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// CalculateResponse reports the aggregation counts and the status line.
type CalculateResponse struct {
	Status              string `json:"status"`
	Processed           int    `json:"processed"`
	CompetitionsUpdated int    `json:"competitions_updated"`
	Errors              int    `json:"errors"`
}

// ResultsHandlers serves the results calculation endpoint.
type ResultsHandlers struct {
	service resultsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewResultsHandlers creates a new ResultsHandlers instance.
func NewResultsHandlers(service resultsservice.Service, logger *slog.Logger, tracer trace.Tracer) *ResultsHandlers {
	return &ResultsHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *ResultsHandlers) Routes(r chi.Router) {
	r.Post("/matchdays/{matchdayID}/results", h.HandleCalculate)
}

// HandleCalculate answers 502 with the procedure's own message when it fails.
func (h *ResultsHandlers) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ResultsHandlers.HandleCalculate")
	defer span.End()

	matchdayID, err := httpx.UUIDParam(r, "matchdayID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	outcome, err := h.service.Calculate(ctx, matchdayID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, CalculateResponse{
		Status:              outcome.StatusMessage(),
		Processed:           outcome.Processed,
		CompetitionsUpdated: outcome.CompetitionsUpdated,
		Errors:              outcome.Errors,
	})
}
