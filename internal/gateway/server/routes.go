package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"astroguide/internal/gateway/handler"
	"astroguide/internal/gateway/middleware"
)

type RouterOptions struct {
	Logger *zap.Logger
	// Gatherer backs /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer
	// ExposeErrors adds panic detail to 500 responses.
	ExposeErrors bool
}

func NewRouter(h *handler.Handler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.AccessLog(logger),
		middleware.Recover(logger, opts.ExposeErrors),
		middleware.CORS,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", h.Health)
		r.Post("/user", h.CreateUser)
		r.Post("/chat", h.Chat)
		r.Get("/users/{id}", h.GetUser)
		r.Get("/users/{id}/chat", h.ChatHistory)
		r.Get("/users/{id}/charts", h.UserCharts)
	})
	r.Get("/charts/{file}", h.Chart)
	r.Get("/ws/chat", h.ChatWS)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not found"}` + "\n"))
	})
	return r
}
