package queryparse

import (
	"regexp"
	"strings"
)

var aggAverage = regexp.MustCompile(`\b(?:average|avg)\b`)

// detectAggregation extracts count/sum/average intent, at most one result.
// There is no min/max heuristic yet; the descriptor supports both so the
// execution layer can accept them from other producers
func detectAggregation(lower string) *Aggregation {
	if strings.Contains(lower, "how many") ||
		strings.Contains(lower, "count of") ||
		strings.Contains(lower, "number of") {
		return &Aggregation{Type: AggCount}
	}
	if strings.Contains(lower, "total") &&
		(strings.Contains(lower, "amount") ||
			strings.Contains(lower, "value") ||
			strings.Contains(lower, "sum")) {
		return &Aggregation{Type: AggSum, Field: "amount"}
	}
	if aggAverage.MatchString(lower) {
		return &Aggregation{Type: AggAvg, Field: "amount"}
	}
	return nil
}
