package queryparse

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// operatorPhrases renders operators for the confirmation sentence
var operatorPhrases = map[Operator]string{
	OpEq:       "equals",
	OpNeq:      "not equal to",
	OpGt:       "greater than",
	OpLt:       "less than",
	OpGte:      "at least",
	OpLte:      "at most",
	OpContains: "containing",
	OpIn:       "in",
	OpNotIn:    "not in",
	OpBetween:  "between",
}

// describeDateFormat is the localized date rendering for range bounds
const describeDateFormat = "Jan 2, 2006"

var describePrinter = message.NewPrinter(language.English)

// Describe renders a descriptor back into one explanatory sentence for user
// confirmation. Clause order is fixed: entity, filters, date range, sort,
// limit
func Describe(q ParsedQuery) string {
	var b strings.Builder
	b.WriteString("Searching for ")
	b.WriteString(string(q.Entity))

	for _, f := range q.Filters {
		b.WriteString(", ")
		b.WriteString(f.Field)
		b.WriteString(" ")
		b.WriteString(operatorPhrases[f.Operator])
		b.WriteString(" ")
		b.WriteString(describeValue(f.Field, f.Value))
		if f.Operator == OpBetween {
			b.WriteString(" and ")
			b.WriteString(describeValue(f.Field, f.Value2))
		}
	}

	if q.DateRange != nil {
		b.WriteString(", ")
		b.WriteString(q.DateRange.Field)
		b.WriteString(" between ")
		b.WriteString(q.DateRange.Start.Format(describeDateFormat))
		b.WriteString(" and ")
		b.WriteString(q.DateRange.End.Format(describeDateFormat))
	}

	if q.Sort != nil {
		dir := "oldest first"
		if q.Sort.Direction == DirDesc {
			dir = "newest first"
		}
		fmt.Fprintf(&b, ", sorted by %s (%s)", q.Sort.Field, dir)
	}

	fmt.Fprintf(&b, ", limited to %d results", q.Limit)

	return b.String()
}

// describeValue renders a filter value; monetary fields get grouped digits
// and a dollar sign ("$5,000")
func describeValue(field string, v any) string {
	f, isNum := v.(float64)
	if !isNum {
		return fmt.Sprintf("%v", v)
	}
	s := describePrinter.Sprintf("%v", number.Decimal(f))
	if field == "amount" || field == "budget" {
		return "$" + s
	}
	return s
}
