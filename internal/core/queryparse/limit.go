package queryparse

import (
	"regexp"
	"strconv"
)

// limitPatterns are checked in order; the first to match wins
var limitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btop\s+(\d+)\b`),
	regexp.MustCompile(`\bfirst\s+(\d+)\b`),
	regexp.MustCompile(`\bshow\s+(\d+)\b`),
	regexp.MustCompile(`\bget\s+(\d+)\b`),
	regexp.MustCompile(`\bfind\s+(\d+)\b`),
}

// limitLeading catches "5 invoices" style queries that open with a count
var limitLeading = regexp.MustCompile(`^(\d+)\s+[a-z]`)

// detectLimit extracts a result cap; the second return reports whether any
// limit language was present (the orchestrator substitutes DefaultLimit)
func detectLimit(lower string) (int, bool) {
	for _, re := range limitPatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n, true
			}
		}
	}
	if m := limitLeading.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	return 0, false
}
