package healthcheck

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/moviehub/migration-proxy/internal/backend"
	"github.com/moviehub/migration-proxy/internal/metrics"
)

// Watch periodically probes a backend's /health endpoint and records the
// result in the proxy_backend_up gauge. Routing never consults this state;
// it exists for operator visibility during the migration.
func Watch(
	ctx context.Context,
	target *backend.Target,
	interval time.Duration,
	registry *metrics.Registry,
	logger *slog.Logger,
) {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	known := false
	up := false

	for {
		select {
		case <-ctx.Done():
			logger.Info("Health check stopped",
				slog.String("backend", target.Name()))
			return

		case <-ticker.C:
			healthy := probe(ctx, client, target)
			registry.SetBackendUp(target.Name(), healthy)

			if known && healthy == up {
				continue
			}

			if healthy {
				logger.Info("Backend is up",
					slog.String("backend", target.Name()),
					slog.String("url", target.BaseURL().String()))
			} else {
				logger.Warn("Backend is down",
					slog.String("backend", target.Name()),
					slog.String("url", target.BaseURL().String()))
			}

			known = true
			up = healthy
		}
	}
}

func probe(ctx context.Context, client *http.Client, target *backend.Target) bool {
	healthURL := target.BaseURL().ResolveReference(&url.URL{Path: "/health"})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL.String(), nil)
	if err != nil {
		return false
	}

	res, err := client.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()

	return res.StatusCode == http.StatusOK
}
