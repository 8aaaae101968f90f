package queryparse

import "regexp"

// Name extraction runs over the original (case-preserved) text: the
// connector word is case-insensitive but the captured name must be one or
// two capitalized words
var (
	nameAfterConnector = regexp.MustCompile(`(?:\b(?i:for|from|client|named|by)\b)\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)?)`)
	nameAfterProject   = regexp.MustCompile(`\b(?i:project)\b\s+([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)?)`)
)

// detectName extracts a free-text name reference. The primary pattern maps
// onto an entity-specific field (clientName, name, assigneeName); the
// secondary "project <Name>" pattern filters on projectName when the query
// does not already target projects. First pattern to match wins
func detectName(text string, e Entity) *QueryFilter {
	if field, ok := nameFields[e]; ok {
		if m := nameAfterConnector.FindStringSubmatch(text); m != nil {
			return &QueryFilter{Field: field, Operator: OpContains, Value: m[1]}
		}
	}
	if e != EntityProjects {
		if m := nameAfterProject.FindStringSubmatch(text); m != nil {
			return &QueryFilter{Field: "projectName", Operator: OpContains, Value: m[1]}
		}
	}
	return nil
}
