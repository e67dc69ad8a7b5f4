package config

import (
	"fmt"
	"time"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

const overrideDueLayout = "2006-01-02"

// ScheduleOverrides converts the configured exceptions into the schedule
// package's override table. A malformed due date fails the whole conversion
// so a typo cannot silently drop an exception.
func (c *Config) ScheduleOverrides() (schedule.Overrides, error) {
	if len(c.Overrides) == 0 {
		return nil, nil
	}
	out := make(schedule.Overrides, 0, len(c.Overrides))
	for _, o := range c.Overrides {
		due, err := time.Parse(overrideDueLayout, o.Due)
		if err != nil {
			return nil, fmt.Errorf("override %q/%q: bad due date %q (want YYYY-MM-DD)", o.Section, o.Milestone, o.Due)
		}
		out = append(out, schedule.Override{
			Section:   o.Section,
			Milestone: o.Milestone,
			Due:       due,
		})
	}
	return out, nil
}

// DueDaysPolicy returns the configured due-weekday table.
func (c *Config) DueDaysPolicy() schedule.DueDaysPolicy {
	if len(c.DueDays) == 0 {
		return nil
	}
	return schedule.DueDaysPolicy(c.DueDays)
}

// HolidayMarkers returns the configured holiday detection markers, falling
// back to the conventional ones when both lists are empty.
func (c *Config) HolidayMarkers() schedule.HolidayMarkers {
	if len(c.Holiday.TitleSentinels) == 0 && len(c.Holiday.NotePhrases) == 0 {
		return schedule.DefaultHolidayMarkers()
	}
	return schedule.HolidayMarkers{
		TitleSentinels: c.Holiday.TitleSentinels,
		NotePhrases:    c.Holiday.NotePhrases,
	}
}

// FallbackYear resolves the year assumed for schedule dates written without
// one.
func (c *Config) FallbackYear() int {
	if c.Term.FallbackYear > 0 {
		return c.Term.FallbackYear
	}
	return time.Now().Year()
}
