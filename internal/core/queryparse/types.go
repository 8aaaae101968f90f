// Package queryparse turns free-text search phrases into structured,
// executable query descriptors via a pipeline of stateless heuristic stages
package queryparse

import "time"

// Entity is the business object type a query targets
type Entity string

// The closed set of queryable entities
const (
	EntityInvoices       Entity = "invoices"
	EntityProjects       Entity = "projects"
	EntityClients        Entity = "clients"
	EntityTasks          Entity = "tasks"
	EntityTimeEntries    Entity = "timeEntries"
	EntityExpenses       Entity = "expenses"
	EntityEstimates      Entity = "estimates"
	EntityPhotos         Entity = "photos"
	EntityDailyLogs      Entity = "dailyLogs"
	EntitySubcontractors Entity = "subcontractors"
	EntityScheduleEvents Entity = "scheduleEvents"
)

// Operator is a filter comparison operator
type Operator string

// Supported filter operators
const (
	OpEq       Operator = "eq"
	OpNeq      Operator = "neq"
	OpGt       Operator = "gt"
	OpLt       Operator = "lt"
	OpGte      Operator = "gte"
	OpLte      Operator = "lte"
	OpContains Operator = "contains"
	OpIn       Operator = "in"
	OpNotIn    Operator = "not_in"
	OpBetween  Operator = "between"
)

// Direction is a sort direction
type Direction string

// Sort directions
const (
	DirAsc  Direction = "asc"
	DirDesc Direction = "desc"
)

// AggType is an aggregation kind
type AggType string

// Aggregation kinds
const (
	AggCount AggType = "count"
	AggSum   AggType = "sum"
	AggAvg   AggType = "avg"
	AggMin   AggType = "min"
	AggMax   AggType = "max"
)

// Limit bounds enforced by Validate; the parser itself always fills
// DefaultLimit when no limit language is detected
const (
	MinLimit     = 1
	MaxLimit     = 1000
	DefaultLimit = 25
)

// QueryFilter is one field/operator/value constraint.
// Value2 is only set for between, holding the upper bound
type QueryFilter struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
	Value2   any      `json:"value2,omitempty"`
}

// Sort is a requested ordering
type Sort struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// DateRange is an inclusive time window on a date field
type DateRange struct {
	Field string    `json:"field"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Aggregation is a count/sum/avg intent
type Aggregation struct {
	Type  AggType `json:"type"`
	Field string  `json:"field,omitempty"`
}

// ParsedQuery is the structured descriptor produced from free text.
// It is created fresh on every Parse call and never mutated afterwards
type ParsedQuery struct {
	OriginalText string        `json:"originalText"`
	Entity       Entity        `json:"entity"`
	Filters      []QueryFilter `json:"filters"`
	Sort         *Sort         `json:"sort,omitempty"`
	Limit        int           `json:"limit"`
	DateRange    *DateRange    `json:"dateRange,omitempty"`
	Aggregation  *Aggregation  `json:"aggregation,omitempty"`
	Confidence   float64       `json:"confidence"`
	Ambiguities  []string      `json:"ambiguities,omitempty"`
	Suggestions  []string      `json:"suggestions,omitempty"`
}
