// Package compose builds announcement message text from schedule rows.
// Every builder is a pure function of its inputs: identical rows, reference
// dates, and policies always produce byte-identical output.
package compose

import (
	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// Policies bundles the read-only lookup tables the composers consult.
type Policies struct {
	Overrides schedule.Overrides
	DueDays   schedule.DueDaysPolicy
	Holiday   schedule.HolidayMarkers
}

// DefaultPolicies returns empty tables with the conventional holiday
// markers.
func DefaultPolicies() Policies {
	return Policies{Holiday: schedule.DefaultHolidayMarkers()}
}

// InstructorFunc resolves a section identifier to an instructor display
// string. The composer never owns the mapping; it calls this as a pure
// lookup collaborator.
type InstructorFunc func(section string) string

// InstructorsFromMap builds an InstructorFunc from a config map keyed by
// the conventional "<section>.csv" file-name form. Unknown sections resolve
// to "TBD".
func InstructorsFromMap(m map[string]string) InstructorFunc {
	return func(section string) string {
		if name, ok := m[section+".csv"]; ok {
			return name
		}
		if name, ok := m[section]; ok {
			return name
		}
		return "TBD"
	}
}

func hasVideo(r schedule.Row) bool {
	return !schedule.IsBlank(r.VideoAssignment)
}

func hasMilestone(r schedule.Row) bool {
	return !schedule.IsBlank(r.MilestoneTitle)
}
