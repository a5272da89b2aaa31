// Backend is a fake upstream service used for manual proxy testing.
// It serves the same endpoints as the monolith and the extracted
// microservices, tagging every payload with its own name so the observed
// traffic split can be counted on the client side.
//
// Usage:
//
//	go run ./scripts/backend -port 8000 -name monolith
//	go run ./scripts/backend -port 8001 -name movies-microservice -delay 50ms
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

func main() {
	var (
		port  = flag.Int("port", 8000, "Port to listen on")
		name  = flag.String("name", "monolith", "Service name embedded in every payload")
		delay = flag.Duration("delay", 0, "Artificial latency before answering")
	)
	flag.Parse()

	list := func(kind string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s from %s", r.Method, r.URL.Path, r.RemoteAddr)

			if *delay > 0 {
				time.Sleep(*delay)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]string{
				fmt.Sprintf("%s %s 1", *name, kind),
				fmt.Sprintf("%s %s 2", *name, kind),
				fmt.Sprintf("%s %s 3", *name, kind),
			})
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/movies", list("movie"))
	mux.HandleFunc("/api/events", list("event"))
	mux.HandleFunc("/api/users", list("user"))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"status": true})
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("fake backend %q listening on %s", *name, addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
