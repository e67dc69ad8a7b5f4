package schedule

import (
	"fmt"
	"strings"
	"time"
)

// WeekdayNames in schedule order, Monday first. Due-days policies and
// weekly-digest ordering both index into this list.
var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayAbbr maps full weekday names to the three-letter form used in
// digest schedule strings.
var WeekdayAbbr = map[string]string{
	"Monday": "Mon", "Tuesday": "Tue", "Wednesday": "Wed", "Thursday": "Thu",
	"Friday": "Fri", "Saturday": "Sat", "Sunday": "Sun",
}

// mondayIndex converts a time.Weekday (Sunday=0) to the Monday=0 indexing
// the schedule domain uses everywhere.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// ParseLooseDate extracts a calendar date from roster cells formatted like
// "Monday, 09/01 SKIPPED FOR HOLIDAY!". The text before the first comma is
// ignored; the first whitespace-delimited token after it must be MM/DD,
// which is combined with fallbackYear. Any malformed input yields ok=false,
// never an error.
func ParseLooseDate(raw string, fallbackYear int) (time.Time, bool) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) < 2 {
		return time.Time{}, false
	}
	fields := strings.Fields(parts[1])
	if len(fields) == 0 {
		return time.Time{}, false
	}
	d, err := time.Parse("1/2/2006", fmt.Sprintf("%s/%d", fields[0], fallbackYear))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// FormatOrdinal renders a date as "Monday, September 1st". A nil date
// renders as "Unknown Date".
func FormatOrdinal(d *time.Time) string {
	if d == nil {
		return "Unknown Date"
	}
	day := d.Day()
	return fmt.Sprintf("%s, %s %d%s", d.Weekday(), d.Month(), day, ordinalSuffix(day))
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

// FormatShort renders a date as "Monday, 09/01".
func FormatShort(d time.Time) string {
	return fmt.Sprintf("%s, %s", d.Weekday(), d.Format("01/02"))
}

// MostRecentFriday returns d if it falls on a Friday, otherwise the nearest
// Friday before it.
func MostRecentFriday(d time.Time) time.Time {
	back := (int(d.Weekday()) - int(time.Friday) + 7) % 7
	return d.AddDate(0, 0, -back)
}

// FridaysBetween returns every Friday in [start, end] inclusive, ascending.
func FridaysBetween(start, end time.Time) []time.Time {
	current := start
	for current.Weekday() != time.Friday {
		current = current.AddDate(0, 0, 1)
	}
	var fridays []time.Time
	for !current.After(end) {
		fridays = append(fridays, current)
		current = current.AddDate(0, 0, 7)
	}
	return fridays
}
