package queryparse

import "testing"

func TestDetectName_FieldByEntity(t *testing.T) {
	cases := []struct {
		in     string
		entity Entity
		field  string
		value  string
	}{
		{"projects for Smith", EntityProjects, "clientName", "Smith"},
		{"invoices from Acme Builders", EntityInvoices, "clientName", "Acme Builders"},
		{"clients named Johnson", EntityClients, "name", "Johnson"},
		{"tasks by Maria Lopez", EntityTasks, "assigneeName", "Maria Lopez"},
	}
	for _, tc := range cases {
		f := detectName(tc.in, tc.entity)
		if f == nil {
			t.Fatalf("%q: expected a filter", tc.in)
		}
		if f.Field != tc.field || f.Operator != OpContains || f.Value != tc.value {
			t.Fatalf("%q: got %+v", tc.in, f)
		}
	}
}

func TestDetectName_ProjectReference(t *testing.T) {
	f := detectName("photos from project Lakeside", EntityPhotos)
	if f == nil {
		t.Fatalf("expected a filter")
	}
	if f.Field != "projectName" || f.Value != "Lakeside" {
		t.Fatalf("got %+v", f)
	}

	// when the entity is projects itself, "project <Name>" is not a
	// cross-entity reference
	f = detectName("project Lakeside", EntityProjects)
	if f != nil {
		t.Fatalf("expected nil, got %+v", f)
	}
}

func TestDetectName_RequiresCapitalizedWord(t *testing.T) {
	if f := detectName("invoices for smith", EntityInvoices); f != nil {
		t.Fatalf("expected nil for lowercase name, got %+v", f)
	}
}

func TestDetectName_UnmappedEntity(t *testing.T) {
	if f := detectName("expenses for Smith", EntityExpenses); f != nil {
		t.Fatalf("expected nil, got %+v", f)
	}
}
