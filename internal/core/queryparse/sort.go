package queryparse

import "regexp"

var (
	sortNewest  = regexp.MustCompile(`\b(?:newest|most recent|latest)\b`)
	sortOldest  = regexp.MustCompile(`\b(?:oldest|earliest)\b`)
	sortHighest = regexp.MustCompile(`\b(?:highest|largest|biggest)\b`)
	sortLowest  = regexp.MustCompile(`\b(?:lowest|smallest)\b`)
	sortGeneric = regexp.MustCompile(`\b(?:sort(?:ed)?\s+by|order(?:ed)?\s+by|by)\s+([a-z]+)\b`)
)

// detectSort extracts a requested ordering. Named shortcuts are checked in
// priority order; otherwise a generic "sort by <word>" is resolved through
// sortFieldSynonyms with direction ascending for name/status and descending
// for everything else
func detectSort(lower string, e Entity) *Sort {
	switch {
	case sortNewest.MatchString(lower):
		return &Sort{Field: "createdAt", Direction: DirDesc}
	case sortOldest.MatchString(lower):
		return &Sort{Field: "createdAt", Direction: DirAsc}
	case sortHighest.MatchString(lower):
		return &Sort{Field: sortAmountField(e), Direction: DirDesc}
	case sortLowest.MatchString(lower):
		return &Sort{Field: sortAmountField(e), Direction: DirAsc}
	}

	m := sortGeneric.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	field, ok := sortFieldSynonyms[m[1]]
	if !ok {
		return nil
	}
	dir := DirDesc
	if field == "name" || field == "status" {
		dir = DirAsc
	}
	return &Sort{Field: field, Direction: dir}
}
