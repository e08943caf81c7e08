package rosterhandlers

import (
	"log/slog"
	"net/http"

	rosterservice "github.com/fantakl/votes-admin/app/modules/roster/application"
	"github.com/fantakl/votes-admin/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// RosterHandlers serves teams, players and the matchday calendar.
type RosterHandlers struct {
	service rosterservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRosterHandlers creates a new RosterHandlers instance.
func NewRosterHandlers(service rosterservice.Service, logger *slog.Logger, tracer trace.Tracer) *RosterHandlers {
	return &RosterHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *RosterHandlers) Routes(r chi.Router) {
	r.Get("/matchdays", h.HandleListMatchdays)
	r.Post("/matchdays", h.HandleScheduleMatchday)
	r.Get("/teams", h.HandleListTeams)
	r.Get("/teams/{teamID}/roster", h.HandleGetRoster)
	r.Post("/players", h.HandleAddPlayer)
}

func (h *RosterHandlers) HandleListMatchdays(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleListMatchdays")
	defer span.End()

	matchdays, err := h.service.ListMatchdays(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	out := make([]MatchdayDTO, 0, len(matchdays))
	for _, m := range matchdays {
		out = append(out, toMatchdayDTO(m))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *RosterHandlers) HandleScheduleMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleScheduleMatchday")
	defer span.End()

	var req scheduleMatchdayRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	matchday, err := h.service.ScheduleMatchday(ctx, rosterservice.ScheduleMatchdayRequest{
		MatchdayNumber: req.MatchdayNumber,
		Date:           req.Date,
		IsPlayoff:      req.IsPlayoff,
	})
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toMatchdayDTO(*matchday))
}

func (h *RosterHandlers) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleListTeams")
	defer span.End()

	teams, err := h.service.ListTeams(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	out := make([]TeamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamDTO(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *RosterHandlers) HandleGetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleGetRoster")
	defer span.End()

	teamID, err := httpx.UUIDParam(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	roster, err := h.service.GetRoster(ctx, teamID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRosterResponse(roster))
}

func (h *RosterHandlers) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RosterHandlers.HandleAddPlayer")
	defer span.End()

	var req addPlayerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	player, err := h.service.AddPlayer(ctx, rosterservice.AddPlayerRequest{
		TeamID:        req.TeamID,
		Name:          req.Name,
		Role:          req.Role,
		IsWildcard:    req.IsWildcard,
		OverallRating: req.OverallRating,
		AvatarURL:     req.AvatarURL,
	})
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toPlayerDTO(*player))
}
