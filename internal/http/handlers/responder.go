package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/sports-data-service/internal/domain"
	"github.com/preston-bernstein/sports-data-service/internal/logging"
)

const headerCacheControl = "Cache-Control"

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		logging.Error(logger, "failed to encode response", err)
		body, _ = sonic.Marshal(domain.FailureMessage("failed to encode response"))
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Warn(logger, "failed to write response", slog.Any(logging.FieldError, err))
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, domain.FailureMessage(message), loggerFromContext(r, logger))
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
