package compose

import (
	"fmt"
	"strings"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// ReminderBlock is the end-of-lab checklist for one session: what to watch
// and what is due before the class meets again.
type ReminderBlock struct {
	Section string
	Header  string
	Bullets []string
}

// Render formats the block as markdown.
func (b ReminderBlock) Render() string {
	lines := make([]string, 0, len(b.Bullets)+1)
	lines = append(lines, b.Header)
	for _, bullet := range b.Bullets {
		lines = append(lines, "- "+bullet)
	}
	return strings.Join(lines, "\n\n")
}

// EndOfLabReminders builds one reminder block per real session, in date
// order. Holiday placeholders and untitled rows are dropped from the
// sequence entirely, so "next session" always means the next actual lab;
// forward scans for videos and milestones start fresh from each row.
func EndOfLabReminders(rows []schedule.Row, track, section string, pol Policies) []ReminderBlock {
	var scoped []schedule.Row
	for _, row := range rows {
		if track != "" && row.Track != track {
			continue
		}
		if section != "" && row.Section != section {
			continue
		}
		scoped = append(scoped, row)
	}

	var sched []schedule.Row
	for _, row := range schedule.SortedByDate(scoped) {
		if pol.Holiday.IsHoliday(row) || schedule.IsBlank(row.Title) {
			continue
		}
		sched = append(sched, row)
	}

	blocks := make([]ReminderBlock, 0, len(sched))
	for i, row := range sched {
		var next *schedule.Row
		if i+1 < len(sched) {
			next = &sched[i+1]
		}

		var bullets []string

		// SkillBuilder due before the next lab.
		if next == nil {
			bullets = append(bullets, "🎬 No upcoming LiveLab — you're at the end of the schedule. 🎉")
		} else if hasVideo(*next) {
			bullets = append(bullets, fmt.Sprintf(
				"🎬 **Watch** *%s* **before** **LL: %s** on **%s**.",
				strings.TrimSpace(next.VideoAssignment), next.Title, schedule.FormatOrdinal(next.Date)))
		} else if later, ok := schedule.FindFirstAfter(sched, i+1, hasVideo); ok {
			bullets = append(bullets, fmt.Sprintf(
				"🎬 No SkillBuilder due before the next LiveLab — **get a head start** on _%s_ (you'll want this before **LL: %s** on **%s**).",
				later.VideoAssignment, later.Title, schedule.FormatOrdinal(later.Date)))
		}

		// Milestone due before the next lab.
		due, dueOK := schedule.ResolveDueDate(row.Date, row.Section, row.MilestoneTitle, row.Track, pol.Overrides, pol.DueDays)
		if dueOK && (next == nil || next.Date == nil || !due.After(*next.Date)) {
			bullets = append(bullets, fmt.Sprintf(
				"📌 **Milestone:** _%s_ is due **%s**.", row.MilestoneTitle, schedule.FormatOrdinal(&due)))
		} else if later, ok := schedule.FindFirstAfter(sched, i, hasMilestone); ok {
			if laterDue, ok := schedule.ResolveDueDate(later.Date, later.Section, later.MilestoneTitle, later.Track, pol.Overrides, pol.DueDays); ok {
				bullets = append(bullets, fmt.Sprintf(
					"📌 No milestone due before the next LiveLab — **get a head start** on _%s_ due **%s**.",
					later.MilestoneTitle, schedule.FormatOrdinal(&laterDue)))
			}
		}

		if len(bullets) == 0 {
			bullets = append(bullets, "Nothing due — nice work! 🎉")
		}

		when := "Unknown Date"
		if row.Date != nil {
			when = schedule.FormatShort(*row.Date)
		}
		blocks = append(blocks, ReminderBlock{
			Section: row.Section,
			Header:  fmt.Sprintf("📝 At the end of **%s %s** on *%s*", row.SessionLabel, row.Title, when),
			Bullets: bullets,
		})
	}

	return blocks
}
