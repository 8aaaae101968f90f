package queryparse

import "testing"

func TestDetectSort_NamedShortcuts(t *testing.T) {
	cases := []struct {
		in     string
		entity Entity
		field  string
		dir    Direction
	}{
		{"newest invoices", EntityInvoices, "createdAt", DirDesc},
		{"most recent tasks", EntityTasks, "createdAt", DirDesc},
		{"oldest photos", EntityPhotos, "createdAt", DirAsc},
		{"highest invoices", EntityInvoices, "amount", DirDesc},
		{"largest projects", EntityProjects, "budget", DirDesc},
		{"lowest expenses", EntityExpenses, "amount", DirAsc},
	}
	for _, tc := range cases {
		s := detectSort(tc.in, tc.entity)
		if s == nil {
			t.Fatalf("%q: expected a sort", tc.in)
		}
		if s.Field != tc.field || s.Direction != tc.dir {
			t.Fatalf("%q: got %+v", tc.in, s)
		}
	}
}

func TestDetectSort_GenericSynonyms(t *testing.T) {
	cases := []struct {
		in    string
		field string
		dir   Direction
	}{
		{"invoices sorted by date", "createdAt", DirDesc},
		{"invoices order by due", "dueDate", DirDesc},
		{"clients by name", "name", DirAsc},
		{"tasks sort by status", "status", DirAsc},
		{"projects sorted by budget", "budget", DirDesc},
	}
	for _, tc := range cases {
		s := detectSort(tc.in, EntityInvoices)
		if s == nil {
			t.Fatalf("%q: expected a sort", tc.in)
		}
		if s.Field != tc.field || s.Direction != tc.dir {
			t.Fatalf("%q: got %+v", tc.in, s)
		}
	}
}

func TestDetectSort_UnknownSynonym(t *testing.T) {
	if s := detectSort("invoices by whatever", EntityInvoices); s != nil {
		t.Fatalf("expected nil, got %+v", s)
	}
}
