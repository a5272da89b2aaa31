// Splittest drives traffic at the proxy's /api/movies endpoint and reports
// the observed monolith/microservice distribution, for eyeballing against
// the configured migration percentage. Run two fake backends (see
// scripts/backend) with distinct -name values first.
//
// Usage:
//
//	go run ./scripts/splittest -url http://localhost:8080/api/movies -requests 1000 -concurrency 10
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

func main() {
	var (
		target      = flag.String("url", "http://localhost:8080/api/movies", "Proxy endpoint to hit")
		requests    = flag.Int("requests", 1000, "Total number of requests")
		concurrency = flag.Int("concurrency", 10, "Concurrent workers")
		marker      = flag.String("marker", "microservice", "Substring identifying microservice responses")
	)
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	var (
		microservice int64
		monolith     int64
		failures     int64
		wg           sync.WaitGroup
	)

	jobs := make(chan struct{})

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				res, err := client.Get(*target)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					continue
				}

				body, err := io.ReadAll(res.Body)
				res.Body.Close()
				if err != nil || res.StatusCode != http.StatusOK {
					atomic.AddInt64(&failures, 1)
					continue
				}

				if strings.Contains(string(body), *marker) {
					atomic.AddInt64(&microservice, 1)
				} else {
					atomic.AddInt64(&monolith, 1)
				}
			}
		}()
	}

	start := time.Now()
	for i := 0; i < *requests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	total := microservice + monolith
	if total == 0 {
		fmt.Fprintln(os.Stderr, "no successful responses; is the proxy running?")
		os.Exit(1)
	}

	fmt.Printf("requests:      %d (%.1f req/s)\n", *requests, float64(*requests)/elapsed.Seconds())
	fmt.Printf("microservice:  %d (%.1f%%)\n", microservice, 100*float64(microservice)/float64(total))
	fmt.Printf("monolith:      %d (%.1f%%)\n", monolith, 100*float64(monolith)/float64(total))
	fmt.Printf("failures:      %d\n", failures)
}
