package queryparse

import "fmt"

// ValidationError is one user-facing consistency problem in a descriptor
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of Validate
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// conflictThreshold is how many filters may share a field before Validate
// flags a conflict. The pipeline itself produces at most one filter per
// category, so 3 guards against merged descriptors from future callers
const conflictThreshold = 3

// Validate checks an already-produced descriptor for internal consistency.
// It is an independent second pass over a ParsedQuery, not over raw text,
// and never panics; problems come back as structured, recoverable errors
func Validate(q ParsedQuery) ValidationResult {
	errs := []ValidationError{}

	if q.Entity == "" {
		errs = append(errs, ValidationError{Field: "entity", Message: "missing target entity"})
	}

	counts := make(map[string]int, len(q.Filters))
	for _, f := range q.Filters {
		counts[f.Field]++
	}
	for _, f := range q.Filters {
		if counts[f.Field] >= conflictThreshold {
			errs = append(errs, ValidationError{
				Field:   f.Field,
				Message: fmt.Sprintf("multiple conflicting filters on field: %s", f.Field),
			})
			counts[f.Field] = 0 // report each conflicting field once
		}
	}

	if q.Limit < MinLimit || q.Limit > MaxLimit {
		errs = append(errs, ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("limit must be between %d and %d", MinLimit, MaxLimit),
		})
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
