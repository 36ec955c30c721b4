package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/sports-data-service/internal/http/handlers"
	"github.com/preston-bernstein/sports-data-service/internal/http/middleware"
	"github.com/preston-bernstein/sports-data-service/internal/metrics"
)

// RouterOptions carries the cross-cutting pieces the router wraps every route with.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(middleware.Recover(opts.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			nethttp.MethodGet, nethttp.MethodHead, nethttp.MethodPost, nethttp.MethodPut,
			nethttp.MethodPatch, nethttp.MethodDelete, nethttp.MethodOptions,
		},
		AllowedHeaders:     []string{"*"},
		ExposedHeaders:     []string{"X-Request-ID"},
		OptionsPassthrough: true,
	}))
	r.Use(answerOptions(handler.Options))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/api", handler.Root)
	r.Get("/api/{league}/{resource}", handler.Resource)
	return r
}

// answerOptions short-circuits every OPTIONS request, whatever the path.
func answerOptions(h nethttp.HandlerFunc) func(nethttp.Handler) nethttp.Handler {
	return func(next nethttp.Handler) nethttp.Handler {
		return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			if r.Method == nethttp.MethodOptions {
				h(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
