package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/preston-bernstein/sports-data-service/internal/app/players"
	"github.com/preston-bernstein/sports-data-service/internal/app/schedules"
	"github.com/preston-bernstein/sports-data-service/internal/app/standings"
	"github.com/preston-bernstein/sports-data-service/internal/config"
	httpserver "github.com/preston-bernstein/sports-data-service/internal/http"
	"github.com/preston-bernstein/sports-data-service/internal/http/handlers"
	"github.com/preston-bernstein/sports-data-service/internal/logging"
	"github.com/preston-bernstein/sports-data-service/internal/metrics"
	"github.com/preston-bernstein/sports-data-service/internal/providers"
	"github.com/preston-bernstein/sports-data-service/internal/providers/footballdata"
	"github.com/preston-bernstein/sports-data-service/internal/providers/mlbstats"
	"github.com/preston-bernstein/sports-data-service/internal/providers/sportsdata"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

type services struct {
	schedules *schedules.Service
	standings *standings.Service
	players   *players.Service
}

// New constructs a server wired to the live upstream providers.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithClient(cfg, logger, nil, nil)
}

// newServerWithClient lets tests swap the upstream transport and the recorder.
func newServerWithClient(cfg config.Config, logger *slog.Logger, client *http.Client, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	if client == nil {
		client = providers.NewHTTPClient(cfg.UpstreamTimeout)
	}

	fetcher := providers.NewFetcher(client, recorder, logger)
	svcs := buildServices(cfg, fetcher, clockwork.NewRealClock())
	httpSrv := buildHTTPServer(cfg, svcs, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(cfg config.Config, fetcher providers.JSONFetcher, clock clockwork.Clock) services {
	nba := sportsdata.NewClient(sportsdata.Config{
		BaseURL:      cfg.SportsData.BaseURL,
		StatsBaseURL: cfg.SportsData.StatsBaseURL,
		APIKey:       cfg.SportsData.APIKey,
	}, fetcher)
	mlb := mlbstats.NewClient(mlbstats.Config{BaseURL: cfg.MLBStats.BaseURL}, fetcher)
	soccer := footballdata.NewClient(footballdata.Config{
		BaseURL:       cfg.FootballData.BaseURL,
		APIKey:        cfg.FootballData.APIKey,
		CompetitionID: cfg.FootballData.CompetitionID,
	}, fetcher)

	return services{
		schedules: schedules.NewService(clock, nba, mlb, soccer),
		standings: standings.NewService(clock, nba, mlb, soccer),
		players:   players.NewService(clock, nba, mlb, soccer),
	}
}

func buildHTTPServer(cfg config.Config, svcs services, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svcs.schedules, svcs.standings, svcs.players, recorder, logger)
	router := httpserver.NewRouter(handler, httpserver.RouterOptions{
		Logger:      logger,
		Metrics:     recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(router, "sports-data-service"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeoutFor(cfg.UpstreamTimeout),
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := cfg.Metrics.Telemetry()
	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any(logging.FieldError, err))
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logging.Warn(logger, name+" server failed", slog.Any(logging.FieldError, err))
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
