package handler

import (
	"encoding/json"
	"net/http"
)

// The user listing was never extracted from the monolith; the proxy answers
// it directly with the monolith's fixed catalogue, no outbound call.
var users = []string{"Пользователь 1", "Пользователь 2", "Пользователь 3"}

// Users serves the static user listing.
func (p *ProxyHandler) Users(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

// Health answers the liveness probe. It never touches a backend and is
// deliberately outside the instrumentation boundary.
func (p *ProxyHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"status": true})
}
