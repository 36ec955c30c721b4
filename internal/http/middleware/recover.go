package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/bytedance/sonic"

	"github.com/preston-bernstein/sports-data-service/internal/domain"
	"github.com/preston-bernstein/sports-data-service/internal/logging"
)

// Recover turns a handler panic into a 500 failure envelope.
func Recover(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger := logging.FromContext(r.Context(), baseLogger)
				panicErr := fmt.Errorf("panic: %v", rec)
				logging.Error(logger, "handler panic", panicErr,
					slog.String(logging.FieldPath, r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				body, err := sonic.Marshal(domain.Failure(panicErr))
				if err != nil {
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(body)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
