package transport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dwain-barnes/uk-ons-mcp-server/internal/datasets"
)

const (
	MCPPath    = "/mcp"
	HealthPath = "/health"
)

// HealthChecker reports the reachability of the upstream API
type HealthChecker interface {
	HealthCheck(ctx context.Context) *datasets.Health
}

// NewHandler serves the streamable HTTP transport at /mcp and the health check at /health.
func NewHandler(mcpServer *mcp.Server, hc HealthChecker) http.Handler {
	r := mux.NewRouter()

	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)
	r.Handle(MCPPath, mcpHandler)
	r.HandleFunc(HealthPath, healthHandler(hc)).Methods(http.MethodGet)

	return alice.New(recoverer, requestLogger).Then(r)
}

func healthHandler(hc HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := hc.HealthCheck(r.Context())
		w.Header().Set("Content-Type", "application/json")
		if h.Status != datasets.StatusHealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		if err := json.NewEncoder(w).Encode(h); err != nil {
			slog.Error("failed to write health response", "error", err)
		}
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Flush keeps streaming responses working through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		slog.Debug("http request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				slog.Error("panic serving request", "path", req.URL.Path, "panic", p)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, req)
	})
}
