package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Wrap is the uniform failure-translation boundary around every public
// endpoint. Anything that escapes the wrapped handler is classified as an
// internal failure: logged with its cause, counted, and answered with a
// generic 500 body that carries no internal detail.
func (p *ProxyHandler) Wrap(endpoint string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				p.logger.Error("Handler panicked",
					slog.String("endpoint", endpoint),
					slog.Any("panic", rec))

				p.metrics.IncrementCount("proxy", endpoint, http.StatusInternalServerError)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
