package queryparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amt is the monetary token sub-pattern: "$5,000", "$5000", "5k", "5000"
const amt = `\$?\s*\d[\d,]*(?:\.\d+)?\s*[kK]?`

// amountPatterns are checked in priority order; only the first match is used
var amountPatterns = []struct {
	op Operator
	re *regexp.Regexp
}{
	{OpGt, regexp.MustCompile(`(?i)(?:\bover\b|\bmore than\b|\bgreater than\b|\babove\b|\bexceeding\b|>)\s*(` + amt + `)`)},
	{OpLt, regexp.MustCompile(`(?i)(?:\bunder\b|\bless than\b|\bbelow\b|<)\s*(` + amt + `)`)},
	{OpGte, regexp.MustCompile(`(?i)(?:\bat least\b|\bminimum\b|\bmin\b)\s*(` + amt + `)`)},
	{OpBetween, regexp.MustCompile(`(?i)\bbetween\s*(` + amt + `)\s*(?:\band\b|\bto\b|-)\s*(` + amt + `)`)},
}

// parseAmount turns an amount token into a number: strips "$", commas and
// whitespace, and multiplies by 1000 for a k/K suffix. Non-finite results
// are treated as no match
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)

	k := false
	if strings.HasSuffix(s, "k") || strings.HasSuffix(s, "K") {
		k = true
		s = strings.TrimSpace(s[:len(s)-1])
	}
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if k {
		v *= 1000
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// detectAmount extracts a monetary comparison for entities that carry a
// monetary field. Between bounds are normalized so value <= value2 no matter
// the order the two numbers appeared in the text
func detectAmount(lower string, e Entity) *QueryFilter {
	field, ok := amountField(e)
	if !ok {
		return nil
	}

	for _, p := range amountPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		if p.op == OpBetween {
			a, okA := parseAmount(m[1])
			b, okB := parseAmount(m[2])
			if !okA || !okB {
				return nil
			}
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			return &QueryFilter{Field: field, Operator: OpBetween, Value: lo, Value2: hi}
		}

		v, ok := parseAmount(m[1])
		if !ok {
			return nil
		}
		return &QueryFilter{Field: field, Operator: p.op, Value: v}
	}
	return nil
}
