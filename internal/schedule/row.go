package schedule

import (
	"sort"
	"strings"
	"time"
)

// Row is one scheduled LiveLab session as loaded from a roster source.
// A nil Date means the raw value could not be parsed; such rows sort after
// all dated rows and are excluded from past/future reasoning.
type Row struct {
	Section         string
	Track           string
	SessionLabel    string // raw LL_num cell, e.g. "LL12" or "3"
	Date            *time.Time
	Title           string
	Notes           string
	VideoAssignment string
	MilestoneTitle  string

	// InputIndex preserves original load order for stable tie-breaks.
	InputIndex int
}

// SessionIndex extracts the numeric session index from SessionLabel: the
// first run of digits, so "LL12" yields 12. Returns false when the label
// carries no digits.
func (r Row) SessionIndex() (int, bool) {
	start := -1
	for i, c := range r.SessionLabel {
		if c >= '0' && c <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return atoiDigits(r.SessionLabel[start:i]), true
		}
	}
	if start >= 0 {
		return atoiDigits(r.SessionLabel[start:]), true
	}
	return 0, false
}

func atoiDigits(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// IsBlank reports whether a cell value carries no information. Roster
// sources exported from spreadsheets leave "nan"/"none"-style placeholders
// behind, which count as empty.
func IsBlank(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "nat", "none", "null":
		return true
	}
	return false
}

// SortedByDate returns a copy of rows sorted ascending by date with the
// original input order as a stable tie-break. Rows with a nil date sort
// after every dated row.
func SortedByDate(rows []Row) []Row {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].Date, sorted[j].Date
		switch {
		case di == nil && dj == nil:
			return sorted[i].InputIndex < sorted[j].InputIndex
		case di == nil:
			return false
		case dj == nil:
			return true
		case di.Equal(*dj):
			return sorted[i].InputIndex < sorted[j].InputIndex
		default:
			return di.Before(*dj)
		}
	})
	return sorted
}
