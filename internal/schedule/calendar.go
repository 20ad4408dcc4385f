// Package schedule implements the temporal core of the chart generator:
// workday calendars, duration expressions and task due date resolution.
// It is purely functional; callers supply every input including "today".
package schedule

import (
	"strings"
	"time"

	"github.com/maxkimambo/gantt/internal/errors"
)

// canonical render order is Monday through Sunday
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

var weekdayTokens = map[string]time.Weekday{
	"m": time.Monday, "mon": time.Monday, "monday": time.Monday,
	"t": time.Tuesday, "tue": time.Tuesday, "tuesday": time.Tuesday,
	"w": time.Wednesday, "wed": time.Wednesday, "wednesday": time.Wednesday,
	"th": time.Thursday, "thu": time.Thursday, "thursday": time.Thursday,
	"f": time.Friday, "fri": time.Friday, "friday": time.Friday,
	"sa": time.Saturday, "sat": time.Saturday, "saturday": time.Saturday,
	"su": time.Sunday, "sun": time.Sunday, "sunday": time.Sunday,
}

var weekdayLabels = map[time.Weekday]string{
	time.Monday: "Mon", time.Tuesday: "Tue", time.Wednesday: "Wed",
	time.Thursday: "Thu", time.Friday: "Fri", time.Saturday: "Sat",
	time.Sunday: "Sun",
}

// WorkdaySet is the set of weekdays that count as working days.
// A valid set is never empty; ParseWorkdays enforces this so that
// working-day advancement always terminates.
type WorkdaySet struct {
	days [7]bool
}

// DefaultWorkdays returns the Monday through Friday working week.
func DefaultWorkdays() WorkdaySet {
	var ws WorkdaySet
	for _, d := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		ws.days[d] = true
	}
	return ws
}

// ParseWorkdays parses a comma-separated list of weekday tokens into a
// WorkdaySet. Both long ("Mon") and short ("M", "Th") spellings are
// accepted, case-insensitively. An unknown token or an empty result
// yields an invalid calendar error.
func ParseWorkdays(spec string) (WorkdaySet, error) {
	var ws WorkdaySet
	any := false
	for _, part := range strings.Split(spec, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		day, ok := weekdayTokens[token]
		if !ok {
			return WorkdaySet{}, errors.NewInvalidCalendarError(spec).
				WithContext("token", part)
		}
		ws.days[day] = true
		any = true
	}
	if !any {
		return WorkdaySet{}, errors.NewInvalidCalendarError(spec)
	}
	return ws, nil
}

// Contains reports whether the weekday is a working day.
func (ws WorkdaySet) Contains(day time.Weekday) bool {
	return ws.days[day]
}

// IsWorkingDay reports whether the date falls on a working day.
func (ws WorkdaySet) IsWorkingDay(date time.Time) bool {
	return ws.days[date.Weekday()]
}

// Len returns the number of working days per week.
func (ws WorkdaySet) Len() int {
	n := 0
	for _, on := range ws.days {
		if on {
			n++
		}
	}
	return n
}

// String renders the set in canonical Monday-to-Sunday order,
// regardless of the order tokens were given in.
func (ws WorkdaySet) String() string {
	var parts []string
	for _, d := range weekdayOrder {
		if ws.days[d] {
			parts = append(parts, weekdayLabels[d])
		}
	}
	return strings.Join(parts, ",")
}

// AdvanceWorkingDays returns the date n working days after start,
// walking forward one calendar day at a time and counting only members
// of the set. n must already be rounded up to a whole number of days;
// n <= 0 returns start unchanged.
func (ws WorkdaySet) AdvanceWorkingDays(start time.Time, n int) time.Time {
	if n <= 0 {
		return start
	}
	current := start
	for added := 0; added < n; {
		current = current.AddDate(0, 0, 1)
		if ws.days[current.Weekday()] {
			added++
		}
	}
	return current
}
