package votehandlers

import (
	"log/slog"
	"net/http"

	voteservice "github.com/fantakl/votes-admin/app/modules/vote/application"
	"github.com/fantakl/votes-admin/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// VoteHandlers serves the match load, start and save endpoints.
type VoteHandlers struct {
	service voteservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewVoteHandlers creates a new VoteHandlers instance.
func NewVoteHandlers(service voteservice.Service, logger *slog.Logger, tracer trace.Tracer) *VoteHandlers {
	return &VoteHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *VoteHandlers) Routes(r chi.Router) {
	r.Route("/matches", func(r chi.Router) {
		r.Post("/load", h.HandleLoad)
		r.Post("/start", h.HandleStart)
		r.Post("/save", h.HandleSave)
	})
}

// HandleLoad returns the editor rows for a matchday and two teams.
func (h *VoteHandlers) HandleLoad(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VoteHandlers.HandleLoad")
	defer span.End()

	var req selectionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	session, err := h.service.SelectMatch(ctx, req.toDomain())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSessionResponse(session))
}

// HandleStart creates the default votes. A second start answers 409.
func (h *VoteHandlers) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VoteHandlers.HandleStart")
	defer span.End()

	var req selectionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	session, err := h.service.StartMatch(ctx, req.toDomain())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (h *VoteHandlers) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "VoteHandlers.HandleSave")
	defer span.End()

	var req saveRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	summary, err := h.service.SaveVotes(ctx, req.toInput())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSaveResponse(summary))
}
