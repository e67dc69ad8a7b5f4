// Package engine wires configuration, roster loading, and message
// composition into one service the CLI and web server both drive.
package engine

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ksylvia16/weekly-messaging/internal/calendar"
	"github.com/ksylvia16/weekly-messaging/internal/compose"
	"github.com/ksylvia16/weekly-messaging/internal/config"
	"github.com/ksylvia16/weekly-messaging/internal/roster"
	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// Engine generates announcement messages from the configured rosters.
type Engine struct {
	cfg *config.Config
	log *zap.Logger

	// loadRows is swapped in tests to avoid touching the filesystem
	loadRows func(track string) ([]schedule.Row, error)
}

// New creates an engine over cfg. A nil logger disables logging.
func New(cfg *config.Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{cfg: cfg, log: log}
	e.loadRows = e.loadFromDisk
	return e
}

func (e *Engine) loadFromDisk(track string) ([]schedule.Row, error) {
	year := e.cfg.FallbackYear()
	if wb := e.cfg.Data.Workbook; wb != "" {
		e.log.Debug("loading workbook", zap.String("path", wb), zap.String("track", track))
		return roster.LoadWorkbook(wb, track, year)
	}
	e.log.Debug("loading roster dir", zap.String("dir", e.cfg.Data.Dir), zap.String("track", track))
	return roster.LoadDir(e.cfg.Data.Dir, track, year)
}

// Policies builds the composition policy tables from config.
func (e *Engine) Policies() (compose.Policies, error) {
	overrides, err := e.cfg.ScheduleOverrides()
	if err != nil {
		return compose.Policies{}, err
	}
	return compose.Policies{
		Overrides: overrides,
		DueDays:   e.cfg.DueDaysPolicy(),
		Holiday:   e.cfg.HolidayMarkers(),
	}, nil
}

// instructorFunc resolves instructors from config. Keys may be full section
// names ("DA Section 1A", with or without .csv) or bare section codes;
// rows carry the code, so full-name keys are indexed by their code too.
// Keys are processed in sorted order, so when two full names share a code
// the sorted-first key claims it, and a bare-code key always beats a
// derived one.
func (e *Engine) instructorFunc() compose.InstructorFunc {
	keys := make([]string, 0, len(e.cfg.Instructors))
	for k := range e.cfg.Instructors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := make(map[string]string, len(keys)*2)
	for _, k := range keys {
		m[k] = e.cfg.Instructors[k]
	}
	for _, k := range keys {
		name := strings.TrimSuffix(k, ".csv")
		if code := roster.SectionCode(name); code != "" {
			if _, taken := m[code]; !taken {
				m[code] = e.cfg.Instructors[k]
			}
		}
	}
	return compose.InstructorsFromMap(m)
}

// Weekly renders the Monday digest for one track and week.
func (e *Engine) Weekly(track string, weekMonday time.Time) (string, error) {
	rows, err := e.loadRows(track)
	if err != nil {
		return "", err
	}
	opts := compose.DigestOptions{
		TermLabel:          e.cfg.Term.Label,
		HeaderTemplate:     e.cfg.Digest.HeaderTemplate,
		PlaceholderBullets: e.cfg.Digest.PlaceholderBullets,
		TitleAliases:       e.cfg.Digest.TitleAliases,
		Instructor:         e.instructorFunc(),
	}
	return compose.WeeklyDigest(rows, weekMonday, opts), nil
}

// Friday renders the end-of-week recap for one track, optionally scoped to
// a single section.
func (e *Engine) Friday(track string, friday time.Time, section string) (compose.RecapResult, error) {
	rows, err := e.loadRows(track)
	if err != nil {
		return compose.RecapResult{}, err
	}
	pol, err := e.Policies()
	if err != nil {
		return compose.RecapResult{}, err
	}
	return compose.FridayRecaps(rows, track, friday, section, pol), nil
}

// Reminders renders the end-of-lab reminder blocks.
func (e *Engine) Reminders(track, section string) ([]compose.ReminderBlock, error) {
	rows, err := e.loadRows(track)
	if err != nil {
		return nil, err
	}
	pol, err := e.Policies()
	if err != nil {
		return nil, err
	}
	return compose.EndOfLabReminders(rows, track, section, pol), nil
}

// WatchGuides renders the per-part SkillBuilder watch-by guides for one
// section.
func (e *Engine) WatchGuides(track, section string) ([]string, error) {
	rows, err := e.loadRows(track)
	if err != nil {
		return nil, err
	}
	if section != "" {
		var scoped []schedule.Row
		for _, row := range rows {
			if row.Section == section {
				scoped = append(scoped, row)
			}
		}
		rows = scoped
	}
	pol, err := e.Policies()
	if err != nil {
		return nil, err
	}
	return compose.WatchGuides(rows, e.cfg.Guide.MaxParts, pol), nil
}

// Calendar renders the iCalendar feed for one track.
func (e *Engine) Calendar(track string, now time.Time) (string, error) {
	rows, err := e.loadRows(track)
	if err != nil {
		return "", err
	}
	pol, err := e.Policies()
	if err != nil {
		return "", err
	}
	return calendar.Build(rows, pol, now), nil
}

// Tracks lists the track codes available in the configured roster
// directory.
func (e *Engine) Tracks() ([]string, error) {
	return roster.DiscoverTracks(e.cfg.Data.Dir)
}

// Sections lists the full section names available in the configured roster
// directory.
func (e *Engine) Sections() ([]string, error) {
	return roster.SectionNames(e.cfg.Data.Dir)
}
