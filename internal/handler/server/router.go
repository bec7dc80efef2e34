package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bagdasarian/users-service/internal/handler"
	"github.com/bagdasarian/users-service/internal/metrics"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.Handle("GET /users/ping", metrics.Wrap("/users/ping", h.Ping))
	mux.Handle("GET /users", metrics.Wrap("/users", h.ListUsers))
	mux.Handle("POST /users", metrics.Wrap("/users", h.CreateUser))
	mux.Handle("GET /users/{id}", metrics.Wrap("/users/{id}", h.GetUser))
	mux.Handle("GET /metrics", promhttp.Handler())
}
