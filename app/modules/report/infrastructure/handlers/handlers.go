package reporthandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	reportservice "github.com/fantakl/votes-admin/app/modules/report/application"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// ReportHandlers serves file downloads.
type ReportHandlers struct {
	service reportservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewReportHandlers(service reportservice.Service, logger *slog.Logger, tracer trace.Tracer) *ReportHandlers {
	return &ReportHandlers{service: service, logger: logger, tracer: tracer}
}

func (h *ReportHandlers) Routes(r chi.Router) {
	r.Get("/matchdays/{matchdayID}/export.xlsx", h.HandleExportMatchday)
	r.Get("/players/{playerID}/chart.png", h.HandlePlayerChart)
}

func (h *ReportHandlers) HandleExportMatchday(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ReportHandlers.HandleExportMatchday")
	defer span.End()

	matchdayID, err := httpx.UUIDParam(r, "matchdayID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	export, err := h.service.ExportMatchday(ctx, matchdayID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	h.writeFile(w, r, export)
}

func (h *ReportHandlers) HandlePlayerChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ReportHandlers.HandlePlayerChart")
	defer span.End()

	playerID, err := httpx.UUIDParam(r, "playerID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	export, err := h.service.PlayerScoreChart(ctx, playerID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	h.writeFile(w, r, export)
}

func (h *ReportHandlers) writeFile(w http.ResponseWriter, r *http.Request, export *reportservice.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(export.Data); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to write report body",
			attr.String("file", export.FileName),
			attr.Error(err),
		)
	}
}
