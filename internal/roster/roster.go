// Package roster loads schedule rows from the files curriculum teams
// actually maintain: a directory of per-section CSV exports, or an xlsx
// workbook with one sheet per section.
package roster

import (
	"regexp"
	"strings"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// canonical column names, with the aliases seen across exports
var columnAliases = map[string]string{
	"date":                 "date",
	"livelab_title":        "title",
	"title":                "title",
	"ll_num":               "label",
	"session_number":       "label",
	"notes":                "notes",
	"videos_watch_by":      "video",
	"video_assignment":     "video",
	"assignment_due_after": "milestone",
	"milestone_title":      "milestone",
	"track":                "track",
	"wave_section":         "section",
	"section_id":           "section",
	"section":              "section",
}

// mapHeader resolves a header row to canonical-name -> column-index.
// Unrecognized columns are ignored; the first occurrence of a name wins.
func mapHeader(header []string) map[string]int {
	cols := make(map[string]int)
	for i, h := range header {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
		name, ok := columnAliases[key]
		if !ok {
			continue
		}
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}
	return cols
}

func cell(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// buildRow converts one data record into a schedule row. section and track
// are defaults taken from the file or sheet name; an explicit column
// overrides them.
func buildRow(record []string, cols map[string]int, section, track string, fallbackYear, inputIndex int) schedule.Row {
	row := schedule.Row{
		Section:         section,
		Track:           track,
		SessionLabel:    cell(record, cols, "label"),
		Title:           cell(record, cols, "title"),
		Notes:           cell(record, cols, "notes"),
		VideoAssignment: cell(record, cols, "video"),
		MilestoneTitle:  cell(record, cols, "milestone"),
		InputIndex:      inputIndex,
	}
	if s := cell(record, cols, "section"); s != "" {
		row.Section = s
	}
	if t := cell(record, cols, "track"); t != "" {
		row.Track = t
	}
	if d, ok := schedule.ParseLooseDate(cell(record, cols, "date"), fallbackYear); ok {
		row.Date = &d
	}
	return row
}

var trackTokenRe = regexp.MustCompile(`^([A-Za-z0-9]+)[\s_-]`)

// InferTrack extracts the track code from a section name like
// "DA Section 1A": the leading token before the first space, underscore, or
// hyphen. A name with no separator is its own track.
func InferTrack(name string) string {
	name = strings.TrimSpace(name)
	if m := trackTokenRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// matchesTrack reports whether a section name belongs to track: the name
// must start with the track code followed by a word boundary.
func matchesTrack(name, track string) bool {
	if track == "" {
		return true
	}
	return strings.EqualFold(InferTrack(name), track)
}

// SectionCode extracts the short section code from a full section name:
// the token after "Section" when present ("DA Section 1A" -> "1A"),
// otherwise the last token.
func SectionCode(name string) string {
	fields := strings.Fields(strings.TrimSpace(name))
	if len(fields) == 0 {
		return ""
	}
	for i, f := range fields[:len(fields)-1] {
		if strings.EqualFold(f, "section") {
			return fields[i+1]
		}
	}
	return fields[len(fields)-1]
}
