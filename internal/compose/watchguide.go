package compose

import (
	"fmt"
	"strings"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

const watchGuideClosing = "Remember, your Watched Video Lesson score is the percentage of assigned SkillBuilder " +
	"videos you've completed so far. It updates once a day to help you keep track of your progress."

const watchGuidePart1Intro = "As promised, here is this handy guide for when your SkillBuilders should be viewed before each LiveLab. " +
	"Please use this as a reference, but don't you worry, the Team and I will remind you as we go. " +
	"The date you see is the date you need to have seen them by! Remember: you can always come back and " +
	"watch these videos to make up your Watched Video Lecture score!"

const watchGuidePart2Intro = "Time to switch gears into the next phase of this experience! " +
	"Below is your new watch-by guide. The date shown is your deadline " +
	"to be ready before each LiveLab."

// WatchGuides splits the schedule into its numbered parts and renders one
// watch-by guide per non-empty part. Part 1 gets the kickoff intro; later
// parts get the welcome-back intro.
func WatchGuides(rows []schedule.Row, maxParts int, pol Policies) []string {
	parts := schedule.SplitByReset(rows, maxParts)
	guides := make([]string, 0, len(parts))
	for i, part := range parts {
		if len(part) == 0 {
			continue
		}
		header, intro := "### Hey everyone! 👋", watchGuidePart1Intro
		if i > 0 {
			header, intro = "### Welcome back! 👋", watchGuidePart2Intro
		}
		guides = append(guides, watchGuide(part, header, intro, pol.Holiday))
	}
	return guides
}

func watchGuide(part []schedule.Row, header, intro string, holiday schedule.HolidayMarkers) string {
	var lines []string
	for _, row := range part {
		if schedule.IsBlank(row.VideoAssignment) || schedule.IsBlank(row.Title) {
			continue
		}

		var when string
		switch {
		case row.Date == nil:
			when = "ASAP if you haven't yet!"
		case holiday.IsHoliday(row):
			when = fmt.Sprintf("by %s (no LiveLab but this will help you stay on track!)", schedule.FormatShort(*row.Date))
		case !schedule.IsBlank(row.SessionLabel):
			when = fmt.Sprintf("by LiveLab on %s", schedule.FormatShort(*row.Date))
		default:
			when = fmt.Sprintf("by %s", schedule.FormatShort(*row.Date))
		}

		lines = append(lines, fmt.Sprintf("- Watch %s %s", strings.TrimSpace(row.VideoAssignment), when))
	}

	return strings.Join([]string{
		header,
		intro,
		"**📆 SkillBuilder Schedule**",
		strings.Join(lines, "\n"),
		watchGuideClosing,
	}, "\n\n")
}
