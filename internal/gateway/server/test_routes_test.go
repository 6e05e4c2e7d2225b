package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"astroguide/internal/gateway/handler"
	"astroguide/internal/gateway/middleware"
	"astroguide/internal/observability"
)

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetricsWithRegisterer(reg).RecordChatTurn("love")
	router := NewRouter(handler.New(nil, nil, nil, nil), RouterOptions{Gatherer: reg})

	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		contains string
	}{
		{"health", http.MethodGet, "/api/test", http.StatusOK, `"Server is running!"`},
		{"preflight", http.MethodOptions, "/api/user", http.StatusNoContent, ""},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, `"Not found"`},
		{"charts bad id", http.MethodGet, "/api/users/abc/charts", http.StatusBadRequest, `"Invalid user ID"`},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, `astroguide_chat_turns_total{topic="love"} 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Fatalf("body %q does not contain %q", rec.Body.String(), tt.contains)
			}
			if rec.Header().Get(middleware.RequestIDHeader) == "" {
				t.Fatalf("missing request id header")
			}
		})
	}
}
