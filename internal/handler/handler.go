package handler

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/moviehub/migration-proxy/config"
	"github.com/moviehub/migration-proxy/internal/backend"
	"github.com/moviehub/migration-proxy/internal/metrics"
	"github.com/moviehub/migration-proxy/internal/splitter"
)

// Targets holds the three upstream identities the proxy forwards to.
type Targets struct {
	Monolith *backend.Target
	Movies   *backend.Target
	Events   *backend.Target
}

// ProxyHandler couples the split policy, the backend client and the metrics
// registry. It is the only component that does so; every forwarded request
// produces exactly one duration observation and one status counter
// increment, labeled with the backend actually invoked.
type ProxyHandler struct {
	logger    *slog.Logger
	client    *backend.Client
	metrics   *metrics.Registry
	migration config.MigrationConfig
	rng       splitter.Rand
	targets   Targets
}

// sharedRand draws from the concurrency-safe shared source in math/rand/v2.
type sharedRand struct{}

func (sharedRand) IntN(n int) int {
	return rand.IntN(n)
}

// NewProxyHandler creates the forwarding handler. Passing a nil rng selects
// the shared math/rand/v2 source; tests inject a deterministic one.
func NewProxyHandler(
	logger *slog.Logger,
	client *backend.Client,
	registry *metrics.Registry,
	migration config.MigrationConfig,
	rng splitter.Rand,
	targets Targets,
) *ProxyHandler {
	if rng == nil {
		rng = sharedRand{}
	}

	return &ProxyHandler{
		logger:    logger,
		client:    client,
		metrics:   registry,
		migration: migration,
		rng:       rng,
		targets:   targets,
	}
}

// Movies forwards to either the monolith or the movies microservice,
// decided per request by the split policy.
func (p *ProxyHandler) Movies(w http.ResponseWriter, r *http.Request) {
	target := p.targets.Monolith
	if splitter.Choose(p.rng, p.migration) == splitter.Microservice {
		target = p.targets.Movies
	}

	p.forward(w, r, target, "/api/movies")
}

// Events always forwards to the events service; it is not part of the
// gradual migration.
func (p *ProxyHandler) Events(w http.ResponseWriter, r *http.Request) {
	p.forward(w, r, p.targets.Events, "/api/events")
}

func (p *ProxyHandler) forward(w http.ResponseWriter, r *http.Request, target *backend.Target, endpoint string) {
	start := time.Now()
	result, err := p.client.Forward(r.Context(), target, endpoint)
	p.metrics.ObserveDuration(target.Name(), endpoint, time.Since(start).Seconds())

	if err != nil {
		var transportErr *backend.TransportError
		if errors.As(err, &transportErr) {
			p.logger.Warn("Backend unreachable",
				slog.String("service", target.Name()),
				slog.String("endpoint", endpoint),
				slog.Any("err", transportErr.Unwrap()))

			p.metrics.IncrementCount(target.Name(), endpoint, http.StatusServiceUnavailable)
			writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
			return
		}

		p.logger.Error("Forwarding failed",
			slog.String("service", target.Name()),
			slog.String("endpoint", endpoint),
			slog.Any("err", err))

		p.metrics.IncrementCount(target.Name(), endpoint, http.StatusInternalServerError)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	p.logger.Info("Forwarded request",
		slog.String("service", target.Name()),
		slog.String("endpoint", endpoint),
		slog.Int("status", result.StatusCode))

	p.metrics.IncrementCount(target.Name(), endpoint, result.StatusCode)

	if result.ContentType != "" {
		w.Header().Set("Content-Type", result.ContentType)
	}
	w.WriteHeader(result.StatusCode)
	w.Write(result.Body)
}
