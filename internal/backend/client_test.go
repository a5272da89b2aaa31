package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moviehub/migration-proxy/internal/backend"
)

func TestBackend(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Backend Suite")
}

func mustParseURL(rawURL string) *url.URL {
	u, err := url.Parse(rawURL)
	if err != nil {
		panic(err)
	}
	return u
}

var _ = Describe("Target", func() {
	It("should expose its name and base URL", func() {
		u := mustParseURL("http://localhost:8000")
		t := backend.NewTarget("monolith", u)

		Expect(t.Name()).To(Equal("monolith"))
		Expect(t.BaseURL()).To(Equal(u))
	})
})

var _ = Describe("Client", func() {
	var (
		client   *backend.Client
		upstream *httptest.Server
	)

	BeforeEach(func() {
		client = backend.NewClient(2 * time.Second)
	})

	AfterEach(func() {
		if upstream != nil {
			upstream.Close()
			upstream = nil
		}
	})

	Describe("Forward", func() {
		Context("when the backend answers", func() {
			BeforeEach(func() {
				upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "application/vnd.movies+json")
					w.WriteHeader(http.StatusTeapot)
					w.Write([]byte(`["Фильм 1","Фильм 2","Фильм 3"]`))
				}))
			})

			It("should relay status, body and content type untouched", func() {
				target := backend.NewTarget("movies-microservice", mustParseURL(upstream.URL))

				result, err := client.Forward(context.Background(), target, "/api/movies")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusTeapot))
				Expect(result.Body).To(Equal([]byte(`["Фильм 1","Фильм 2","Фильм 3"]`)))
				Expect(result.ContentType).To(Equal("application/vnd.movies+json"))
			})

			It("should request the base address joined with the path", func() {
				var seenPath string
				upstream.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					seenPath = r.URL.Path
				})

				target := backend.NewTarget("events-service", mustParseURL(upstream.URL))

				_, err := client.Forward(context.Background(), target, "/api/events")

				Expect(err).NotTo(HaveOccurred())
				Expect(seenPath).To(Equal("/api/events"))
			})
		})

		Context("when the connection is refused", func() {
			It("should return a TransportError carrying the cause", func() {
				srv := httptest.NewServer(http.NotFoundHandler())
				deadURL := srv.URL
				srv.Close()

				target := backend.NewTarget("monolith", mustParseURL(deadURL))

				result, err := client.Forward(context.Background(), target, "/api/movies")

				Expect(result).To(BeNil())
				var transportErr *backend.TransportError
				Expect(errors.As(err, &transportErr)).To(BeTrue())
				Expect(transportErr.Service).To(Equal("monolith"))
				Expect(transportErr.Path).To(Equal("/api/movies"))
				Expect(transportErr.Unwrap()).To(HaveOccurred())
			})
		})

		Context("when the backend is slower than the client timeout", func() {
			It("should give up and return a TransportError", func() {
				upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					select {
					case <-time.After(5 * time.Second):
					case <-r.Context().Done():
					}
				}))

				impatient := backend.NewClient(50 * time.Millisecond)
				target := backend.NewTarget("monolith", mustParseURL(upstream.URL))

				_, err := impatient.Forward(context.Background(), target, "/api/movies")

				var transportErr *backend.TransportError
				Expect(errors.As(err, &transportErr)).To(BeTrue())
			})
		})

		Context("when the caller cancels", func() {
			It("should abort the outbound call", func() {
				upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					select {
					case <-time.After(5 * time.Second):
					case <-r.Context().Done():
					}
				}))

				ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
				defer cancel()

				target := backend.NewTarget("monolith", mustParseURL(upstream.URL))

				_, err := client.Forward(ctx, target, "/api/movies")

				var transportErr *backend.TransportError
				Expect(errors.As(err, &transportErr)).To(BeTrue())
			})
		})
	})
})

var _ = Describe("TransportError", func() {
	It("should describe the failed call", func() {
		err := &backend.TransportError{
			Service: "events-service",
			Path:    "/api/events",
			Err:     errors.New("connection refused"),
		}

		Expect(err.Error()).To(ContainSubstring("events-service"))
		Expect(err.Error()).To(ContainSubstring("/api/events"))
		Expect(err.Error()).To(ContainSubstring("connection refused"))
	})
})
