package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// RecapBlock is one section's Friday recap message, ready to post.
type RecapBlock struct {
	Section string
	PostOn  time.Time
	Text    string
}

// RecapResult carries the blocks plus any recoverable conditions hit while
// composing: a non-Friday reference date (auto-adjusted) or a section with
// no past sessions (skipped).
type RecapResult struct {
	Friday   time.Time
	Adjusted bool
	Notices  []string
	Blocks   []RecapBlock
}

// FridayRecaps builds the end-of-week recap/look-ahead message for each
// section of a track. The reference date snaps to the most recent Friday
// when it is not one. Sections without any session at or before the target
// Friday produce a notice instead of a block.
func FridayRecaps(rows []schedule.Row, track string, friday time.Time, section string, pol Policies) RecapResult {
	res := RecapResult{Friday: friday}

	if friday.Weekday() != time.Friday {
		res.Notices = append(res.Notices, fmt.Sprintf("%s is not a Friday.", schedule.FormatOrdinal(&friday)))
		friday = schedule.MostRecentFriday(friday)
		res.Friday = friday
		res.Adjusted = true
		res.Notices = append(res.Notices, fmt.Sprintf("Adjusted to most recent Friday: %s.", schedule.FormatOrdinal(&friday)))
	}

	var trackRows []schedule.Row
	for _, row := range rows {
		if track == "" || row.Track == track {
			trackRows = append(trackRows, row)
		}
	}

	sections := []string{section}
	if section == "" {
		sections = uniqueSections(trackRows)
	}

	for _, sec := range sections {
		var secRows []schedule.Row
		for _, row := range trackRows {
			if row.Section == sec {
				secRows = append(secRows, row)
			}
		}

		past, future := schedule.PartitionByDate(secRows, friday)
		if len(past) == 0 {
			res.Notices = append(res.Notices, fmt.Sprintf("No past LiveLabs for section %s.", sec))
			continue
		}
		last := past[0]

		text := recapText(last, future, sec, track, pol)
		res.Blocks = append(res.Blocks, RecapBlock{Section: sec, PostOn: friday, Text: text})
	}

	return res
}

func recapText(last schedule.Row, future []schedule.Row, sec, track string, pol Policies) string {
	var next *schedule.Row
	if len(future) > 0 {
		next = &future[0]
	}

	futureVideo, haveFutureVideo := schedule.FindFirstAfter(future, -1, hasVideo)
	futureMilestone, haveFutureMilestone := schedule.FindFirstAfter(future, -1, hasMilestone)

	due, dueOK := schedule.ResolveDueDate(last.Date, sec, last.MilestoneTitle, track, pol.Overrides, pol.DueDays)
	var nextDue time.Time
	nextDueOK := false
	if haveFutureMilestone {
		nextDue, nextDueOK = schedule.ResolveDueDate(futureMilestone.Date, sec, futureMilestone.MilestoneTitle, track, pol.Overrides, pol.DueDays)
	}

	var paras []string
	paras = append(paras, fmt.Sprintf(
		"🔎 **INSTRUCTOR SANITY CHECK**: The most recent LiveLab was **%s: %s** on %s",
		last.SessionLabel, last.Title, schedule.FormatOrdinal(last.Date)))
	paras = append(paras, "### Hey everyone! 👋\n\nThanks for hanging out with me in lab this week! Here's what's coming up ⬇️")

	// Milestone line: due before the next session beats a look-ahead.
	switch {
	case hasMilestone(last) && dueOK && (next == nil || !due.After(*next.Date)):
		paras = append(paras, fmt.Sprintf(
			"🎯 **Don't forget!** **%s** is due on **%s**. Swing by a drop-in session or reach out to the HelpHub with any questions!",
			last.MilestoneTitle, schedule.FormatOrdinal(&due)))
	case haveFutureMilestone && nextDueOK:
		paras = append(paras, fmt.Sprintf(
			"🔜 **Heads up!** Your next milestone, %s, is due on **%s**.",
			futureMilestone.MilestoneTitle, schedule.FormatOrdinal(&nextDue)))
	default:
		paras = append(paras, "ℹ️ No scheduled milestones to announce.")
	}

	if next == nil {
		paras = append(paras, "⏭️ No upcoming LiveLabs scheduled.")
	} else if pol.Holiday.IsHoliday(*next) {
		paras = append(paras, fmt.Sprintf(
			"🎉 The next scheduled day, **%s**, is a holiday — there will be no LiveLab that day. Enjoy your break!",
			schedule.FormatOrdinal(next.Date)))
	} else {
		title := next.Title
		if schedule.IsBlank(title) {
			title = "an upcoming LiveLab"
		}
		desc := next.Notes
		if schedule.IsBlank(desc) {
			desc = "No description available 😅"
		}
		paras = append(paras, fmt.Sprintf(
			"⏭️ Your next LiveLab is **%s** on **%s**. %s",
			title, schedule.FormatOrdinal(next.Date), desc))

		switch {
		case hasVideo(*next):
			paras = append(paras, fmt.Sprintf(
				"🍿 To prepare, please be sure to watch **%s** before then.", next.VideoAssignment))
		case haveFutureVideo:
			paras = append(paras, fmt.Sprintf(
				"📌 While there's no SkillBuilder due before the next LiveLab, your next one will be **%s** for %s on **%s**.",
				futureVideo.VideoAssignment, futureVideo.SessionLabel, schedule.FormatOrdinal(futureVideo.Date)))
		default:
			paras = append(paras, "📌 No upcoming SkillBuilders found in the schedule.")
		}
	}

	paras = append(paras, "Have a wonderful weekend, and see you all next week!")
	return strings.Join(paras, "\n\n")
}

func uniqueSections(rows []schedule.Row) []string {
	seen := make(map[string]bool)
	var sections []string
	for _, row := range rows {
		if !seen[row.Section] {
			seen[row.Section] = true
			sections = append(sections, row.Section)
		}
	}
	return sections
}
