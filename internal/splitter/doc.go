// Package splitter implements the weighted traffic split between the
// monolith and the movies microservice. The decision is a pure function of
// the migration configuration and an injected random source, which keeps it
// independently testable without binding to a particular generator.
package splitter
