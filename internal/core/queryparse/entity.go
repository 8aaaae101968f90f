package queryparse

import "strings"

// entityMatch is the outcome of the entity stage
type entityMatch struct {
	entity     Entity
	confidence float64
}

// Confidence factors for entity keyword hits
const (
	entityConfBoundary = 0.95 // keyword at string start or preceded by a space
	entityConfLoose    = 0.80 // keyword embedded anywhere else
	entityConfDefault  = 0.50 // nothing matched, entity defaulted
)

// detectEntity scans the lowercased query for entity keywords. The longest
// keyword found anywhere wins across all entities; ties go to the entity
// declared earlier in entityTable
func detectEntity(lower string) (entityMatch, bool) {
	bestLen := 0
	bestIdx := -1
	var best Entity

	for _, row := range entityTable {
		for _, kw := range row.words {
			idx := strings.Index(lower, kw)
			if idx < 0 {
				continue
			}
			if len(kw) > bestLen {
				bestLen = len(kw)
				bestIdx = idx
				best = row.entity
			}
		}
	}

	if bestIdx < 0 {
		return entityMatch{}, false
	}

	conf := entityConfLoose
	if bestIdx == 0 || lower[bestIdx-1] == ' ' {
		conf = entityConfBoundary
	}
	return entityMatch{entity: best, confidence: conf}, true
}
