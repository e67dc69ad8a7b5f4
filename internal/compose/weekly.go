package compose

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// DigestOptions configures the weekly digest. All fields are plain values
// fed from config so the digest stays a pure text transform.
type DigestOptions struct {
	// TermLabel replaces the "Week of ..." header label when set.
	TermLabel string
	// HeaderTemplate is the digest headline; "{label}" is substituted.
	HeaderTemplate string
	// PlaceholderBullets is how many "- Placeholder note" lines follow each
	// lab line for the poster to fill in.
	PlaceholderBullets int
	// TitleAliases maps raw roster titles to a single display title.
	// Matching is exact after trimming, case-insensitive.
	TitleAliases map[string]string
	// Instructor resolves sections to instructor names; nil means every
	// lab shows "TBD".
	Instructor InstructorFunc
}

const defaultHeaderTemplate = "Happy {label}! :fallen_leaf:"

// WeeklyDigest renders the Monday announcement for the week starting at
// weekMonday: every lab in [weekMonday, weekMonday+7d), grouped by
// normalized title, each group listing its weekday/instructor schedule.
// A week with no labs yields a single notice line.
func WeeklyDigest(rows []schedule.Row, weekMonday time.Time, opts DigestOptions) string {
	label := opts.TermLabel
	if label == "" {
		label = "Week of " + weekMonday.Format("Jan 02")
	}

	weekEnd := weekMonday.AddDate(0, 0, 7)
	var inWeek []schedule.Row
	for _, row := range schedule.SortedByDate(rows) {
		if row.Date == nil || row.Date.Before(weekMonday) || !row.Date.Before(weekEnd) {
			continue
		}
		inWeek = append(inWeek, row)
	}
	if len(inWeek) == 0 {
		return fmt.Sprintf("No labs found for %s.", label)
	}

	instructor := opts.Instructor
	if instructor == nil {
		instructor = InstructorsFromMap(nil)
	}

	// Sort by weekday rank, then date, then display title; groups are then
	// emitted in order of first occurrence.
	// Grouping is case-insensitive on the trimmed title: "Lab A" and
	// "lab a " land in one group, displayed under the first occurrence's
	// spelling (or the alias table's, when one matches).
	type weekRow struct {
		row   schedule.Row
		title string
		key   string
		rank  int
	}
	aliases := aliasLookup(opts.TitleAliases)
	sorted := make([]weekRow, 0, len(inWeek))
	for _, row := range inWeek {
		title := normalizeTitle(row.Title, aliases)
		sorted = append(sorted, weekRow{
			row:   row,
			title: title,
			key:   strings.ToLower(title),
			rank:  weekdayRank(*row.Date),
		})
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].rank != sorted[j].rank {
			return sorted[i].rank < sorted[j].rank
		}
		if !sorted[i].row.Date.Equal(*sorted[j].row.Date) {
			return sorted[i].row.Date.Before(*sorted[j].row.Date)
		}
		return sorted[i].key < sorted[j].key
	})

	type group struct {
		title          string
		dayInstructors map[string][]string
	}
	groupIndex := make(map[string]*group)
	var groupOrder []*group
	for _, wr := range sorted {
		g, ok := groupIndex[wr.key]
		if !ok {
			g = &group{title: wr.title, dayInstructors: make(map[string][]string)}
			groupIndex[wr.key] = g
			groupOrder = append(groupOrder, g)
		}
		day := wr.row.Date.Weekday().String()[:3]
		name := instructor(wr.row.Section)
		if !containsString(g.dayInstructors[day], name) {
			g.dayInstructors[day] = append(g.dayInstructors[day], name)
		}
	}

	template := opts.HeaderTemplate
	if template == "" {
		template = defaultHeaderTemplate
	}

	var lines []string
	lines = append(lines, "### "+strings.ReplaceAll(template, "{label}", label))
	lines = append(lines, "")
	lines = append(lines, "#### :loudspeaker: **ANNOUNCEMENTS** :loudspeaker:")
	lines = append(lines, "- Placeholder note")
	lines = append(lines, "")
	lines = append(lines, "#### :test_tube: **LABS THIS WEEK** :test_tube:")

	for _, g := range groupOrder {
		var segments []string
		for _, full := range schedule.WeekdayNames {
			abbr := schedule.WeekdayAbbr[full]
			if instructors, ok := g.dayInstructors[abbr]; ok {
				segments = append(segments, fmt.Sprintf("*%s - %s*", abbr, strings.Join(instructors, " / ")))
			}
		}
		lines = append(lines, fmt.Sprintf(":nerd_face: **%s** (%s)", g.title, strings.Join(segments, ", ")))
		for i := 0; i < opts.PlaceholderBullets; i++ {
			lines = append(lines, "- Placeholder note")
		}
	}

	return strings.Join(lines, "\n")
}

// aliasLookup lowers alias keys into a direct lookup table. Keys that fold
// to the same title are resolved in sorted key order so the winner does not
// depend on map iteration.
func aliasLookup(aliases map[string]string) map[string]string {
	if len(aliases) == 0 {
		return nil
	}
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lookup := make(map[string]string, len(aliases))
	for _, k := range keys {
		folded := strings.ToLower(strings.TrimSpace(k))
		if _, ok := lookup[folded]; !ok {
			lookup[folded] = aliases[k]
		}
	}
	return lookup
}

func normalizeTitle(title string, lookup map[string]string) string {
	trimmed := strings.TrimSpace(title)
	if display, ok := lookup[strings.ToLower(trimmed)]; ok {
		return display
	}
	return trimmed
}

func weekdayRank(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7 // Monday first
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
