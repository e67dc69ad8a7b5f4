package schedule

import (
	"strings"
	"time"
)

// Override is an explicit due-date exception for one milestone in one
// section. Section holds the full form "DA Section 1A"; comparisons are
// whitespace-trimmed and case-insensitive.
type Override struct {
	Section   string
	Milestone string
	Due       time.Time
}

// Overrides is the per-deployment exception table. It always wins over
// computed due dates.
type Overrides []Override

// DueDaysPolicy maps a section code to the ordered weekday names on which
// its milestones may fall due.
type DueDaysPolicy map[string][]string

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveDueDate computes when a milestone is due after the session on
// base. An override keyed by ("<track> Section <section>", milestone) takes
// precedence. Otherwise each allowed weekday projects forward from base to
// its next occurrence (zero days when base already falls on it) and the
// earliest candidate wins. Returns false when the milestone or base date is
// absent, or the section has no due-days policy.
func ResolveDueDate(base *time.Time, section, milestone, track string, overrides Overrides, policy DueDaysPolicy) (time.Time, bool) {
	if IsBlank(milestone) || base == nil {
		return time.Time{}, false
	}

	sectionKey := normalizeKey(track + " Section " + section)
	milestoneKey := normalizeKey(milestone)
	for _, o := range overrides {
		if normalizeKey(o.Section) == sectionKey && normalizeKey(o.Milestone) == milestoneKey {
			return o.Due, true
		}
	}

	var best time.Time
	found := false
	for _, day := range policy[section] {
		idx := weekdayNameIndex(day)
		if idx < 0 {
			continue
		}
		cand := base.AddDate(0, 0, (idx-mondayIndex(base.Weekday())+7)%7)
		if !found || cand.Before(best) {
			best = cand
			found = true
		}
	}
	return best, found
}

func weekdayNameIndex(name string) int {
	for i, n := range WeekdayNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return i
		}
	}
	return -1
}
