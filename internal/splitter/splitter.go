package splitter

import (
	"github.com/moviehub/migration-proxy/config"
)

// Choice identifies which of the two interchangeable implementations
// should serve a request.
type Choice int

const (
	Monolith Choice = iota
	Microservice
)

func (c Choice) String() string {
	if c == Microservice {
		return "microservice"
	}
	return "monolith"
}

// Rand is the source of randomness for split decisions. *rand.Rand from
// math/rand/v2 satisfies it; tests inject a deterministic source.
type Rand interface {
	IntN(n int) int
}

// Choose decides which implementation serves a single request. Calls are
// independent Bernoulli trials with success probability Percent/100; no
// state is kept between decisions.
//
// When gradual migration is disabled the microservice serves everything,
// regardless of the configured percentage.
func Choose(r Rand, cfg config.MigrationConfig) Choice {
	if !cfg.Enabled {
		return Microservice
	}

	draw := r.IntN(100) + 1
	if draw <= cfg.Percent {
		return Microservice
	}

	return Monolith
}
