package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/sports-data-service/internal/domain"
	"github.com/preston-bernstein/sports-data-service/internal/logging"
	"github.com/preston-bernstein/sports-data-service/internal/metrics"
)

// Handler wires HTTP routes to the league services.
type Handler struct {
	endpoints map[endpointKey]endpoint
	metrics   *metrics.Recorder
	logger    *slog.Logger
}

// NewHandler constructs a Handler. A nil service leaves its resource unrouted (404).
func NewHandler(sched ScheduleService, stand StandingsService, play PlayersService, recorder *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		endpoints: buildEndpoints(sched, stand, play),
		metrics:   recorder,
		logger:    logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeFailure(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Root is the /api liveness endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Success(map[string]string{"status": "ok"}), h.logger)
}

// Options answers any preflight the CORS layer passes through.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true}, h.logger)
}

// Resource serves /api/{league}/{resource}: fetch, normalize and wrap in the envelope.
// Cache-Control is set whether or not the fetch succeeds.
func (h *Handler) Resource(w http.ResponseWriter, r *http.Request) {
	league := chi.URLParam(r, "league")
	resource := chi.URLParam(r, "resource")
	logger := loggerFromContext(r, h.logger)

	ep, ok := h.endpoints[endpointKey{league: league, resource: resource}]
	if !ok {
		logging.Warn(logger, "unknown resource",
			slog.String(logging.FieldLeague, league),
			slog.String(logging.FieldResource, resource),
		)
		writeFailure(w, r, http.StatusNotFound, "unknown league or resource: "+league+"/"+resource, logger)
		return
	}

	w.Header().Set(headerCacheControl, ep.cacheControl)

	data, err := ep.fetch(r.Context())
	if err != nil {
		h.metrics.RecordFailedResponse(league, resource)
		logging.Error(logger, "resource fetch failed", err,
			slog.String(logging.FieldLeague, league),
			slog.String(logging.FieldResource, resource),
		)
		writeJSON(w, http.StatusInternalServerError, domain.Failure(err), logger)
		return
	}

	writeJSON(w, http.StatusOK, domain.Success(data), logger)
}

// NotFound writes a 404 failure envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed writes a 405 failure envelope.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
