package queryparse

import (
	"math"
	"strings"

	"sitequery/internal/platform/clock"
)

// Parser runs the detection pipeline. It is stateless apart from its
// configuration and safe for concurrent use
type Parser struct {
	clock        clock.Clock
	defaultLimit int
}

// Options controls parser behavior
type Options struct {
	// Clock supplies "now" for relative date resolution; defaults to the
	// system clock. One instant is captured per Parse call so a single
	// parse is internally time-consistent
	Clock clock.Clock
	// DefaultLimit is substituted when no limit language is detected
	// (default 25)
	DefaultLimit int
}

// New creates a Parser with default options
func New() *Parser { return NewWithOptions(Options{}) }

// NewWithOptions creates a Parser with custom options
func NewWithOptions(opts Options) *Parser {
	c := opts.Clock
	if c == nil {
		c = clock.System()
	}
	dl := opts.DefaultLimit
	if dl <= 0 {
		dl = DefaultLimit
	}
	return &Parser{clock: c, defaultLimit: dl}
}

// Ambiguity and suggestion strings surfaced to the user
const (
	ambiguityNoFilters = "No specific filters detected; results may be broad"
	ambiguityNoEntity  = "Could not determine what to search for; defaulting to invoices"
	suggestionLimit    = `Add "top 10" to limit the number of results`
)

// noSignalPenalty dampens confidence when a parse produced zero filters,
// no date range, and no aggregation
const noSignalPenalty = 0.7

// Parse turns free text into a ParsedQuery. It never fails: weak or absent
// signal degrades to a defaulted entity, empty filters, lowered confidence,
// and populated ambiguities
func (p *Parser) Parse(text string) ParsedQuery {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	now := p.clock()

	em, entityFound := detectEntity(lower)
	entity := EntityInvoices
	conf := entityConfDefault
	if entityFound {
		entity = em.entity
		conf = em.confidence
	}

	// detection order fixes filter order: status, amount, name
	filters := make([]QueryFilter, 0, 3)
	if f := detectStatus(lower, entity); f != nil {
		filters = append(filters, *f)
	}
	if f := detectAmount(lower, entity); f != nil {
		filters = append(filters, *f)
	}
	if f := detectName(trimmed, entity); f != nil {
		filters = append(filters, *f)
	}

	dateRange := detectDateRange(lower, entity, now)
	sort := detectSort(lower, entity)
	agg := detectAggregation(lower)

	limit, limitFound := detectLimit(lower)
	if !limitFound {
		limit = p.defaultLimit
	}

	var ambiguities, suggestions []string
	if len(filters) == 0 && dateRange == nil && agg == nil {
		conf *= noSignalPenalty
		ambiguities = append(ambiguities, ambiguityNoFilters)
	}
	if !entityFound {
		ambiguities = append(ambiguities, ambiguityNoEntity)
	}
	if len(filters) == 0 {
		s, ok := filterSuggestions[entity]
		if !ok {
			s = defaultFilterSuggestion
		}
		suggestions = append(suggestions, s)
	}
	if !limitFound {
		suggestions = append(suggestions, suggestionLimit)
	}

	return ParsedQuery{
		OriginalText: trimmed,
		Entity:       entity,
		Filters:      filters,
		Sort:         sort,
		Limit:        limit,
		DateRange:    dateRange,
		Aggregation:  agg,
		Confidence:   round2(conf),
		Ambiguities:  ambiguities,
		Suggestions:  suggestions,
	}
}

// round2 reports confidence to two decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
