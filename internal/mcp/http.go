package mcp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const defaultEndpointPath = "/mcp"

// NewRouter mounts the streamable HTTP handler at endpointPath next to a
// liveness probe.
func NewRouter(mcpHandler http.Handler, endpointPath string) http.Handler {
	if endpointPath == "" {
		endpointPath = defaultEndpointPath
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodPost, endpointPath, mcpHandler)
	r.Method(http.MethodGet, endpointPath, mcpHandler)
	r.Method(http.MethodDelete, endpointPath, mcpHandler)
	return r
}
