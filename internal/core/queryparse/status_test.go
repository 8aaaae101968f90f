package queryparse

import "testing"

func TestDetectStatus_InvoiceSynonyms(t *testing.T) {
	for _, in := range []string{"overdue invoices", "invoices past due", "late invoices"} {
		f := detectStatus(in, EntityInvoices)
		if f == nil {
			t.Fatalf("%q: expected a status filter", in)
		}
		if f.Field != "status" || f.Operator != OpEq || f.Value != "overdue" {
			t.Fatalf("%q: got %+v", in, f)
		}
	}
}

func TestDetectStatus_DeclarationOrderWins(t *testing.T) {
	// "finished" (completed rule) and "paused" (on_hold rule) both appear;
	// the earlier declared rule must win regardless of position in the text
	f := detectStatus("paused or finished projects", EntityProjects)
	if f == nil {
		t.Fatalf("expected a status filter")
	}
	if f.Value != "completed" {
		t.Fatalf("value = %v, want completed (first declared rule)", f.Value)
	}
}

func TestDetectStatus_WordBoundaries(t *testing.T) {
	f := detectStatus("unpaid invoices", EntityInvoices)
	if f == nil {
		t.Fatalf("expected a status filter")
	}
	// "unpaid" must resolve through its own rule, not fire the "paid" rule
	// as a substring
	if f.Value != "sent" {
		t.Fatalf("value = %v, want sent", f.Value)
	}
}

func TestDetectStatus_NoTableForEntity(t *testing.T) {
	if f := detectStatus("overdue photos", EntityPhotos); f != nil {
		t.Fatalf("expected nil, got %+v", f)
	}
}

func TestDetectStatus_NoKeyword(t *testing.T) {
	if f := detectStatus("all invoices", EntityInvoices); f != nil {
		t.Fatalf("expected nil, got %+v", f)
	}
}
