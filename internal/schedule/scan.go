package schedule

import (
	"strings"
	"time"
)

// FindFirstAfter scans rows at strictly increasing indices after anchor and
// returns the first row satisfying pred. Every "look ahead for the next X"
// need goes through this one primitive. Pass anchor -1 to scan from the
// start.
func FindFirstAfter(rows []Row, anchor int, pred func(Row) bool) (Row, bool) {
	for i := anchor + 1; i < len(rows); i++ {
		if pred(rows[i]) {
			return rows[i], true
		}
	}
	return Row{}, false
}

// PartitionByDate splits rows around pivot: past holds rows dated at or
// before pivot ordered nearest-past first, future holds strictly later rows
// ordered soonest first. Rows without a date appear in neither.
func PartitionByDate(rows []Row, pivot time.Time) (past, future []Row) {
	for _, row := range SortedByDate(rows) {
		if row.Date == nil {
			continue
		}
		if row.Date.After(pivot) {
			future = append(future, row)
		} else {
			past = append(past, row)
		}
	}
	for i, j := 0, len(past)-1; i < j; i, j = i+1, j-1 {
		past[i], past[j] = past[j], past[i]
	}
	return past, future
}

// HolidayMarkers describes how holiday placeholder rows are recognized:
// a title exactly matching one of the sentinels (case-insensitive, trimmed)
// or notes containing one of the phrases.
type HolidayMarkers struct {
	TitleSentinels []string
	NotePhrases    []string
}

// DefaultHolidayMarkers returns the markers roster authors conventionally
// use.
func DefaultHolidayMarkers() HolidayMarkers {
	return HolidayMarkers{
		TitleSentinels: []string{"holiday"},
		NotePhrases:    []string{"no livelab"},
	}
}

// IsHoliday reports whether the row is a non-session placeholder. Such rows
// are skipped when reasoning about the most recent and next session, though
// the Friday recap still calls one out when it is the next calendar event.
func (m HolidayMarkers) IsHoliday(r Row) bool {
	title := strings.ToLower(strings.TrimSpace(r.Title))
	for _, s := range m.TitleSentinels {
		if title == strings.ToLower(s) {
			return true
		}
	}
	notes := strings.ToLower(r.Notes)
	for _, p := range m.NotePhrases {
		if strings.Contains(notes, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
