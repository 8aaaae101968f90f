package queryparse

import (
	"strings"
	"time"
)

// dueSoonDays is the forward-looking window for "due soon"
const dueSoonDays = 7

// periodRule resolves one relative period phrase against a captured instant
type periodRule struct {
	phrases []string
	resolve func(now time.Time) (time.Time, time.Time)
}

// periodRules is the fixed priority list; exactly one phrase is honored per
// parse, the first one in this order that appears in the text
var periodRules = []periodRule{
	{[]string{"today"}, func(now time.Time) (time.Time, time.Time) {
		return startOfDay(now), endOfDay(now)
	}},
	{[]string{"yesterday"}, func(now time.Time) (time.Time, time.Time) {
		d := now.AddDate(0, 0, -1)
		return startOfDay(d), endOfDay(d)
	}},
	{[]string{"tomorrow"}, func(now time.Time) (time.Time, time.Time) {
		d := now.AddDate(0, 0, 1)
		return startOfDay(d), endOfDay(d)
	}},
	{[]string{"this week"}, func(now time.Time) (time.Time, time.Time) {
		s := startOfWeek(now)
		return s, endOfDay(s.AddDate(0, 0, 6))
	}},
	{[]string{"last week"}, func(now time.Time) (time.Time, time.Time) {
		s := startOfWeek(now).AddDate(0, 0, -7)
		return s, endOfDay(s.AddDate(0, 0, 6))
	}},
	{[]string{"next week"}, func(now time.Time) (time.Time, time.Time) {
		s := startOfWeek(now).AddDate(0, 0, 7)
		return s, endOfDay(s.AddDate(0, 0, 6))
	}},
	{[]string{"this month"}, func(now time.Time) (time.Time, time.Time) {
		s := startOfMonth(now)
		return s, endOfDay(s.AddDate(0, 1, -1))
	}},
	{[]string{"last month"}, func(now time.Time) (time.Time, time.Time) {
		s := startOfMonth(now).AddDate(0, -1, 0)
		return s, endOfDay(s.AddDate(0, 1, -1))
	}},
	{[]string{"this year"}, func(now time.Time) (time.Time, time.Time) {
		s := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return s, endOfDay(time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()))
	}},
	{[]string{"last 90 days"}, lastNDays(90)},
	{[]string{"last 30 days"}, lastNDays(30)},
	// aliases for the trailing 30-day window
	{[]string{"past month"}, lastNDays(30)},
	{[]string{"recent"}, lastNDays(30)},
}

func lastNDays(n int) func(time.Time) (time.Time, time.Time) {
	return func(now time.Time) (time.Time, time.Time) {
		return startOfDay(now.AddDate(0, 0, -n)), endOfDay(now)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay is 23:59:59.999 local, matching the calendar-day bound the rest
// of the product uses
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// startOfWeek treats Sunday as the first day of the week
func startOfWeek(t time.Time) time.Time {
	return startOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// detectDateRange resolves the first relative period phrase against now,
// which must be the single instant captured at the top of the parse.
// "due soon" overrides the target field to dueDate for invoices and tasks
// with a forward window of dueSoonDays, regardless of the entity default
func detectDateRange(lower string, e Entity, now time.Time) *DateRange {
	if (e == EntityInvoices || e == EntityTasks) && strings.Contains(lower, "due soon") {
		return &DateRange{Field: "dueDate", Start: now, End: endOfDay(now.AddDate(0, 0, dueSoonDays))}
	}

	field, ok := dateFields[e]
	if !ok {
		return nil
	}
	for _, rule := range periodRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(lower, phrase) {
				start, end := rule.resolve(now)
				return &DateRange{Field: field, Start: start, End: end}
			}
		}
	}
	return nil
}
