// Package calendar exports a schedule as an iCalendar feed so sessions and
// milestone deadlines can be subscribed to from a regular calendar client.
package calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/ksylvia16/weekly-messaging/internal/compose"
	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

const productID = "-//weekly-messaging//schedule//EN"

// Build renders rows as an iCalendar document: one all-day event per dated
// session plus one all-day event per resolved milestone due date. Holiday
// placeholder rows become events too so breaks show up on the calendar.
// Duplicate milestone deadlines (same title, section, and date) collapse to
// a single event.
func Build(rows []schedule.Row, pol compose.Policies, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	type deadline struct {
		title   string
		section string
		due     time.Time
	}
	seen := make(map[deadline]bool)
	var deadlines []deadline

	for _, row := range schedule.SortedByDate(rows) {
		if row.Date != nil && !schedule.IsBlank(row.Title) {
			summary := sessionSummary(row, pol)
			ev := cal.AddEvent(uuid.NewString())
			ev.SetDtStampTime(now)
			ev.SetAllDayStartAt(*row.Date)
			ev.SetAllDayEndAt(row.Date.AddDate(0, 0, 1))
			ev.SetSummary(summary)
			if !schedule.IsBlank(row.Notes) {
				ev.SetDescription(row.Notes)
			}
		}

		due, ok := schedule.ResolveDueDate(row.Date, row.Section, row.MilestoneTitle, row.Track, pol.Overrides, pol.DueDays)
		if !ok {
			continue
		}
		d := deadline{title: strings.TrimSpace(row.MilestoneTitle), section: row.Section, due: due}
		if seen[d] {
			continue
		}
		seen[d] = true
		deadlines = append(deadlines, d)
	}

	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].due.Before(deadlines[j].due)
	})
	for _, d := range deadlines {
		ev := cal.AddEvent(uuid.NewString())
		ev.SetDtStampTime(now)
		ev.SetAllDayStartAt(d.due)
		ev.SetAllDayEndAt(d.due.AddDate(0, 0, 1))
		ev.SetSummary(fmt.Sprintf("Due: %s (%s)", d.title, d.section))
	}

	return cal.Serialize()
}

func sessionSummary(row schedule.Row, pol compose.Policies) string {
	scope := row.Section
	if row.Track != "" {
		scope = row.Track + " " + row.Section
	}
	switch {
	case pol.Holiday.IsHoliday(row):
		return fmt.Sprintf("No LiveLab (%s)", scope)
	case !schedule.IsBlank(row.SessionLabel):
		return fmt.Sprintf("LL %s: %s (%s)", row.SessionLabel, row.Title, scope)
	default:
		return fmt.Sprintf("%s (%s)", row.Title, scope)
	}
}
