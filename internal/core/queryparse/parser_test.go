package queryparse

import (
	"strings"
	"testing"

	"sitequery/internal/platform/clock"
)

func testParser() *Parser {
	return NewWithOptions(Options{Clock: clock.Frozen(anchor)})
}

func TestParse_OverdueInvoices(t *testing.T) {
	q := testParser().Parse("show overdue invoices")

	if q.Entity != EntityInvoices {
		t.Fatalf("entity = %s", q.Entity)
	}
	if len(q.Filters) != 1 {
		t.Fatalf("filters = %+v", q.Filters)
	}
	f := q.Filters[0]
	if f.Field != "status" || f.Operator != OpEq || f.Value != "overdue" {
		t.Fatalf("filter = %+v", f)
	}
	if q.Limit != DefaultLimit {
		t.Fatalf("limit = %d, want default %d", q.Limit, DefaultLimit)
	}
}

func TestParse_AmountFilter(t *testing.T) {
	q := testParser().Parse("invoices over $5000")

	found := false
	for _, f := range q.Filters {
		if f.Field == "amount" && f.Operator == OpGt && f.Value == 5000.0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing amount filter: %+v", q.Filters)
	}
}

func TestParse_NameFilter(t *testing.T) {
	q := testParser().Parse("projects for Smith")

	if q.Entity != EntityProjects {
		t.Fatalf("entity = %s", q.Entity)
	}
	found := false
	for _, f := range q.Filters {
		if f.Field == "clientName" && f.Operator == OpContains && f.Value == "Smith" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing name filter: %+v", q.Filters)
	}
}

func TestParse_TopNewest(t *testing.T) {
	q := testParser().Parse("top 5 newest projects")

	if q.Limit != 5 {
		t.Fatalf("limit = %d", q.Limit)
	}
	if q.Sort == nil || q.Sort.Field != "createdAt" || q.Sort.Direction != DirDesc {
		t.Fatalf("sort = %+v", q.Sort)
	}
}

func TestParse_BetweenOrderInvariance(t *testing.T) {
	a := testParser().Parse("expenses between $1000 and $5000")
	b := testParser().Parse("expenses between $5000 and $1000")

	for _, q := range []ParsedQuery{a, b} {
		var f *QueryFilter
		for i := range q.Filters {
			if q.Filters[i].Operator == OpBetween {
				f = &q.Filters[i]
			}
		}
		if f == nil {
			t.Fatalf("missing between filter: %+v", q.Filters)
		}
		if f.Field != "amount" || f.Value != 1000.0 || f.Value2 != 5000.0 {
			t.Fatalf("filter = %+v", f)
		}
	}
}

func TestParse_FiltersInDetectionOrder(t *testing.T) {
	q := testParser().Parse("overdue invoices over $5000 for Smith")

	if len(q.Filters) != 3 {
		t.Fatalf("filters = %+v", q.Filters)
	}
	if q.Filters[0].Field != "status" || q.Filters[1].Field != "amount" || q.Filters[2].Field != "clientName" {
		t.Fatalf("order = %s, %s, %s", q.Filters[0].Field, q.Filters[1].Field, q.Filters[2].Field)
	}
}

func TestParse_ZeroSignalDegrades(t *testing.T) {
	q := testParser().Parse("gibberish words here")

	if q.Entity != EntityInvoices {
		t.Fatalf("entity = %s, want defaulted invoices", q.Entity)
	}
	if q.Confidence > 0.35 {
		t.Fatalf("confidence = %v, want <= 0.35", q.Confidence)
	}
	if len(q.Ambiguities) == 0 {
		t.Fatalf("expected ambiguities")
	}
	if len(q.Suggestions) == 0 {
		t.Fatalf("expected suggestions")
	}
	if q.Limit != DefaultLimit {
		t.Fatalf("limit = %d", q.Limit)
	}
}

func TestParse_ConfidenceBounds(t *testing.T) {
	inputs := []string{
		"",
		"show overdue invoices",
		"top 5 newest projects for Smith over 50k due soon",
		"???",
		"how many daily logs this week",
	}
	for _, in := range inputs {
		q := testParser().Parse(in)
		if q.Confidence < 0 || q.Confidence > 1 {
			t.Fatalf("%q: confidence = %v out of range", in, q.Confidence)
		}
	}
}

func TestParse_TrimsOriginalText(t *testing.T) {
	q := testParser().Parse("  overdue invoices  ")
	if q.OriginalText != "overdue invoices" {
		t.Fatalf("originalText = %q", q.OriginalText)
	}
}

func TestParse_DateRangeUsesInjectedClock(t *testing.T) {
	q := testParser().Parse("invoices due this week")
	if q.DateRange == nil {
		t.Fatalf("expected a date range")
	}
	if q.DateRange.Field != "dueDate" {
		t.Fatalf("field = %s", q.DateRange.Field)
	}
	// anchor is a Monday; the week window starts the preceding Sunday
	if q.DateRange.Start.Weekday() != 0 {
		t.Fatalf("start weekday = %v, want Sunday", q.DateRange.Start.Weekday())
	}
}

func TestParse_SuggestsLimitWhenMissing(t *testing.T) {
	q := testParser().Parse("overdue invoices")
	found := false
	for _, s := range q.Suggestions {
		if strings.Contains(s, "top 10") {
			found = true
		}
	}
	if !found {
		t.Fatalf("suggestions = %+v", q.Suggestions)
	}

	q = testParser().Parse("top 5 overdue invoices")
	for _, s := range q.Suggestions {
		if strings.Contains(s, "top 10") {
			t.Fatalf("unexpected limit suggestion: %+v", q.Suggestions)
		}
	}
}
