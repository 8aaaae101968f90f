package queryparse

// Static keyword/config tables for the detector stages. All of these are
// initialized once and must be treated as immutable constants; detectors
// receive them as data so each stage stays independently testable.

// entityKeywords maps one entity to the phrases that select it
type entityKeywords struct {
	entity Entity
	words  []string
}

// entityTable is scanned in declaration order; when two entities match
// keywords of equal length, the earlier row wins. The order below is the
// fixed, documented tiebreak order
var entityTable = []entityKeywords{
	{EntityInvoices, []string{"invoices", "invoice", "bills", "bill", "payments", "payment"}},
	{EntityProjects, []string{"projects", "project", "jobs", "job"}},
	{EntityClients, []string{"clients", "client", "customers", "customer"}},
	{EntityTasks, []string{"tasks", "task", "todos", "todo", "to-dos", "to-do"}},
	{EntityTimeEntries, []string{"time entries", "time entry", "timesheets", "timesheet", "hours", "logged time"}},
	{EntityExpenses, []string{"expenses", "expense", "receipts", "receipt", "costs"}},
	{EntityEstimates, []string{"estimates", "estimate", "quotes", "quote", "proposals", "proposal"}},
	{EntityPhotos, []string{"photos", "photo", "pictures", "picture", "images", "image"}},
	{EntityDailyLogs, []string{"daily logs", "daily log", "logs", "log", "journal"}},
	{EntitySubcontractors, []string{"subcontractors", "subcontractor", "subs", "sub", "vendors", "vendor"}},
	{EntityScheduleEvents, []string{"schedule events", "schedule", "events", "event", "appointments", "appointment", "meetings", "meeting"}},
}

// statusRule maps synonym phrases to one canonical backend status value
type statusRule struct {
	phrases []string
	value   string
}

// statusTables hold per-entity status vocabularies. Unlike the entity table,
// rules match in declaration order, not longest-first; the first phrase found
// anywhere in the text wins. Do not unify this with the entity detector's
// longest-match without checking which status wins on ambiguous phrasing
var statusTables = map[Entity][]statusRule{
	EntityInvoices: {
		{[]string{"overdue", "past due", "late"}, "overdue"},
		{[]string{"paid"}, "paid"},
		{[]string{"unpaid", "outstanding", "sent"}, "sent"},
		{[]string{"draft"}, "draft"},
	},
	EntityProjects: {
		{[]string{"active", "in progress", "ongoing"}, "active"},
		{[]string{"completed", "finished", "done"}, "completed"},
		{[]string{"on hold", "paused"}, "on_hold"},
		{[]string{"planned", "upcoming"}, "planning"},
	},
	EntityTasks: {
		{[]string{"completed", "done", "finished"}, "completed"},
		{[]string{"in progress", "started"}, "in_progress"},
		{[]string{"blocked", "stuck"}, "blocked"},
		{[]string{"pending", "open"}, "pending"},
	},
	EntityEstimates: {
		{[]string{"accepted", "approved"}, "accepted"},
		{[]string{"declined", "rejected"}, "declined"},
		{[]string{"pending", "sent"}, "pending"},
		{[]string{"draft"}, "draft"},
	},
	EntityScheduleEvents: {
		{[]string{"confirmed"}, "confirmed"},
		{[]string{"cancelled", "canceled"}, "cancelled"},
		{[]string{"tentative"}, "tentative"},
	},
}

// amountField returns the monetary field for entities that have one
func amountField(e Entity) (string, bool) {
	switch e {
	case EntityProjects:
		return "budget", true
	case EntityInvoices, EntityExpenses, EntityEstimates:
		return "amount", true
	}
	return "", false
}

// sortAmountField is the field "highest"/"lowest" sorts on; every entity
// gets one even when the amount filter does not apply
func sortAmountField(e Entity) string {
	if e == EntityProjects {
		return "budget"
	}
	return "amount"
}

// dateFields maps each entity to its default date field
var dateFields = map[Entity]string{
	EntityInvoices:       "dueDate",
	EntityProjects:       "startDate",
	EntityClients:        "createdAt",
	EntityTasks:          "dueDate",
	EntityTimeEntries:    "date",
	EntityExpenses:       "date",
	EntityEstimates:      "createdAt",
	EntityPhotos:         "createdAt",
	EntityDailyLogs:      "date",
	EntitySubcontractors: "createdAt",
	EntityScheduleEvents: "startTime",
}

// nameFields maps entities to the field a detected proper-noun filter lands
// on; entities absent here get no primary name filter
var nameFields = map[Entity]string{
	EntityProjects:    "clientName",
	EntityInvoices:    "clientName",
	EntityEstimates:   "clientName",
	EntityClients:     "name",
	EntityTasks:       "assigneeName",
	EntityTimeEntries: "assigneeName",
}

// sortFieldSynonyms resolves the captured word of a generic "sort by <word>"
var sortFieldSynonyms = map[string]string{
	"date":    "createdAt",
	"amount":  "amount",
	"name":    "name",
	"status":  "status",
	"due":     "dueDate",
	"budget":  "budget",
	"created": "createdAt",
	"updated": "updatedAt",
}

// filterSuggestions offers example filter phrasing per entity when a query
// carried no filter signal at all
var filterSuggestions = map[Entity]string{
	EntityInvoices:  `Try a filter like "overdue" or "over $5,000"`,
	EntityProjects:  `Try a filter like "active" or "for Smith"`,
	EntityTasks:     `Try a filter like "in progress" or "due this week"`,
	EntityExpenses:  `Try a filter like "over $500" or "last 30 days"`,
	EntityEstimates: `Try a filter like "pending" or "over $10,000"`,
}

// defaultFilterSuggestion covers entities with no tailored example
const defaultFilterSuggestion = `Try adding a status, amount, or date filter to narrow results`
