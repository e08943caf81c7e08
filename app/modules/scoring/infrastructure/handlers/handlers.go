package scoringhandlers

import (
	"log/slog"
	"net/http"
	"sort"

	scoringservice "github.com/fantakl/votes-admin/app/modules/scoring/application"
	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// CoefficientDTO is one coefficient as returned by the API.
type CoefficientDTO struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// ConfigResponse lists coefficients sorted by key.
type ConfigResponse struct {
	Coefficients []CoefficientDTO `json:"coefficients"`
}

type updateOneRequest struct {
	Value *float64 `json:"value"`
}

type updateManyRequest struct {
	Values map[string]float64 `json:"values"`
}

// ScoringHandlers serves the scoring configuration endpoints.
type ScoringHandlers struct {
	service scoringservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewScoringHandlers creates a new ScoringHandlers instance.
func NewScoringHandlers(service scoringservice.Service, logger *slog.Logger, tracer trace.Tracer) *ScoringHandlers {
	return &ScoringHandlers{service: service, logger: logger, tracer: tracer}
}

// Routes mounts the handlers on r.
func (h *ScoringHandlers) Routes(r chi.Router) {
	r.Get("/scoring-config", h.HandleGetConfig)
	r.Put("/scoring-config", h.HandleUpdateMany)
	r.Put("/scoring-config/{key}", h.HandleUpdateOne)
}

func (h *ScoringHandlers) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleGetConfig")
	defer span.End()

	cfg, err := h.service.Load(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(cfg))
}

func (h *ScoringHandlers) HandleUpdateOne(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleUpdateOne")
	defer span.End()

	var req updateOneRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if req.Value == nil {
		httpx.WriteError(w, r, h.logger, apperrors.NewValidationError("value", "value is required"))
		return
	}

	cfg, err := h.service.Update(ctx, scoringdomain.Key(chi.URLParam(r, "key")), *req.Value)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(cfg))
}

func (h *ScoringHandlers) HandleUpdateMany(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ScoringHandlers.HandleUpdateMany")
	defer span.End()

	var req updateManyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	values := make(map[scoringdomain.Key]float64, len(req.Values))
	for k, v := range req.Values {
		values[scoringdomain.Key(k)] = v
	}

	cfg, err := h.service.UpdateMany(ctx, values)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toResponse(cfg))
}

func toResponse(cfg scoringdomain.Config) ConfigResponse {
	values := cfg.Values()
	out := ConfigResponse{Coefficients: make([]CoefficientDTO, 0, len(values))}
	for k, v := range values {
		out.Coefficients = append(out.Coefficients, CoefficientDTO{Key: string(k), Value: v})
	}
	sort.Slice(out.Coefficients, func(i, j int) bool {
		return out.Coefficients[i].Key < out.Coefficients[j].Key
	})
	return out
}
