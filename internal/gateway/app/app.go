// Package app wires configuration, stores, use cases and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"astroguide/internal/calculator"
	"astroguide/internal/chart"
	"astroguide/internal/gateway/config"
	"astroguide/internal/gateway/handler"
	"astroguide/internal/gateway/server"
	"astroguide/internal/gateway/usecase/chat"
	"astroguide/internal/gateway/usecase/intake"
	"astroguide/internal/geo"
	"astroguide/internal/logging"
	"astroguide/internal/observability"
)

type App struct {
	server *server.Server
	router http.Handler
	stores *gatewayStores
	logger *zap.Logger
}

// New loads configuration and builds the app with its own logger.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return NewWithConfig(context.Background(), cfg, logger)
}

func NewWithConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	logger = logging.OrNop(logger)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetricsWithRegisterer(reg)

	// Dependencies
	stores, err := initStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := stores.registerMetrics(reg); err != nil {
		_ = stores.Close()
		return nil, err
	}
	resolver, err := geo.NewResolver(logger)
	if err != nil {
		_ = stores.Close()
		return nil, err
	}
	intakeSvc := intake.New(intake.Deps{
		Calculator:    newCalculator(cfg, logger),
		Geocoder:      resolver,
		Renderer:      newRenderer(cfg, logger),
		Artifacts:     stores.artifacts,
		Profiles:      stores.profiles,
		Metrics:       metrics,
		Logger:        logger,
		PublicBaseURL: cfg.PublicBaseURL,
	}, time.Now)
	chatSvc := chat.New(chat.Deps{
		Profiles: stores.profiles,
		Metrics:  metrics,
		Logger:   logger,
	}, time.Now)

	// Routing & Server
	h := handler.New(intakeSvc, chatSvc, stores.artifacts, logger)
	router := server.NewRouter(h, server.RouterOptions{
		Logger:       logger,
		Gatherer:     reg,
		ExposeErrors: isDevelopment(cfg.Env),
	})

	return &App{
		server: server.New(cfg.Port, router, logger),
		router: router,
		stores: stores,
		logger: logger,
	}, nil
}

func newCalculator(cfg *config.Config, logger *zap.Logger) calculator.Calculator {
	if dir := strings.TrimSpace(cfg.Python.CalculatorScriptsDir); dir != "" {
		logger.Info("calculator: python scripts", zap.String("dir", dir))
		return calculator.NewScriptCalculator(cfg.Python.Path, dir, calculator.WithLogger(logger))
	}
	logger.Info("calculator: built-in")
	return calculator.NewBuiltinCalculator()
}

func newRenderer(cfg *config.Config, logger *zap.Logger) chart.Renderer {
	if script := strings.TrimSpace(cfg.Python.ChartScript); script != "" {
		logger.Info("chart renderer: python script", zap.String("script", script))
		return chart.NewScriptRenderer(cfg.Python.Path, script, chart.WithLogger(logger))
	}
	logger.Info("chart renderer: disabled")
	return chart.DisabledRenderer{}
}

func isDevelopment(env string) bool {
	return strings.EqualFold(strings.TrimSpace(env), "development")
}

// Handler exposes the routed handler without the h2c wrapper.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	return errors.Join(err, a.stores.Close())
}

// Run serves until ctx is cancelled, then shuts down within timeout.
func (a *App) Run(ctx context.Context, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Start()
	}()

	select {
	case err := <-errCh:
		_ = a.stores.Close()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return <-errCh
}
