package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/moviehub/migration-proxy/internal/handler"
	"github.com/moviehub/migration-proxy/internal/metrics"
)

// setupRouter builds the static route table. Every public endpoint except
// the liveness probe sits inside the failure-translation boundary; paths
// outside the table fall through to a plain 404 with no side effects.
func setupRouter(proxy *handler.ProxyHandler, registry *metrics.Registry) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", proxy.Health).Methods(http.MethodGet)
	r.Handle("/metrics", proxy.Wrap("/metrics", registry.Handler())).Methods(http.MethodGet)
	r.Handle("/api/movies", proxy.Wrap("/api/movies", http.HandlerFunc(proxy.Movies))).Methods(http.MethodGet)
	r.Handle("/api/events", proxy.Wrap("/api/events", http.HandlerFunc(proxy.Events))).Methods(http.MethodGet)
	r.Handle("/api/users", proxy.Wrap("/api/users", http.HandlerFunc(proxy.Users))).Methods(http.MethodGet)

	return r
}
