// Package service implements the query service
package service

import (
	"context"

	"sitequery/internal/core/queryparse"
	"sitequery/internal/platform/clock"
	"sitequery/internal/platform/logger"
)

// Config for the query service
type Config struct {
	// DefaultLimit is substituted when a query carries no limit language
	DefaultLimit int
	// Clock overrides the wall clock, primarily for tests
	Clock clock.Clock
}

// Service implements domain.ParserPort
type Service struct {
	parser *queryparse.Parser
}

// New constructs a new query service
func New(cfg Config) *Service {
	return &Service{
		parser: queryparse.NewWithOptions(queryparse.Options{
			Clock:        cfg.Clock,
			DefaultLimit: cfg.DefaultLimit,
		}),
	}
}

// Parse runs the interpreter pipeline over text
func (s *Service) Parse(ctx context.Context, text string) queryparse.ParsedQuery {
	q := s.parser.Parse(text)
	logger.C(ctx).Debug().
		Str("entity", string(q.Entity)).
		Int("filters", len(q.Filters)).
		Float64("confidence", q.Confidence).
		Msg("query parsed")
	return q
}

// Validate checks a descriptor for internal consistency
func (s *Service) Validate(ctx context.Context, q queryparse.ParsedQuery) queryparse.ValidationResult {
	res := queryparse.Validate(q)
	if !res.Valid {
		logger.C(ctx).Debug().Int("errors", len(res.Errors)).Msg("query rejected")
	}
	return res
}

// Describe renders a descriptor into a confirmation sentence
func (s *Service) Describe(_ context.Context, q queryparse.ParsedQuery) string {
	return queryparse.Describe(q)
}
