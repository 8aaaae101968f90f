package domain

import (
	"context"

	"sitequery/internal/core/queryparse"
)

// ParserPort is the external port for the query interpreter
type ParserPort interface {
	// Parse never fails; weak input degrades to low confidence plus
	// ambiguity text on the descriptor
	Parse(ctx context.Context, text string) queryparse.ParsedQuery

	// Validate checks a descriptor for internal consistency
	Validate(ctx context.Context, q queryparse.ParsedQuery) queryparse.ValidationResult

	// Describe renders a descriptor into a confirmation sentence
	Describe(ctx context.Context, q queryparse.ParsedQuery) string
}
