package queryparse

import "testing"

func TestDetectEntity_LongestKeywordWins(t *testing.T) {
	// "subcontractor" (13) beats "sub" and every shorter keyword
	m, ok := detectEntity("unpaid subcontractor bills")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.entity != EntitySubcontractors {
		t.Fatalf("entity = %s, want %s", m.entity, EntitySubcontractors)
	}
}

func TestDetectEntity_BoundaryConfidence(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"invoices due this week", entityConfBoundary}, // string start
		{"show invoices", entityConfBoundary},          // preceded by space
		{"xinvoices", entityConfLoose},                 // embedded
	}
	for _, tc := range cases {
		m, ok := detectEntity(tc.in)
		if !ok {
			t.Fatalf("%q: expected a match", tc.in)
		}
		if m.confidence != tc.want {
			t.Fatalf("%q: confidence = %v, want %v", tc.in, m.confidence, tc.want)
		}
	}
}

func TestDetectEntity_TableOrderBreaksTies(t *testing.T) {
	// "bill" (invoices) and "jobs" (projects) are both 4 chars; with equal
	// longest lengths the earlier table row must win
	m, ok := detectEntity("jobs and bill")
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.entity != EntityInvoices {
		t.Fatalf("entity = %s, want %s (earlier table row)", m.entity, EntityInvoices)
	}
}

func TestDetectEntity_NoMatch(t *testing.T) {
	if _, ok := detectEntity("completely unrelated words"); ok {
		t.Fatalf("expected no match")
	}
}
